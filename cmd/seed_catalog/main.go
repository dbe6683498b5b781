// seed_catalog genera un script SQL idempotente para poblar proveedores, clientes y productos
// a partir de un CSV exportado de sistemas anteriores (muchas veces en Big5 o Latin-1).
//
// Uso: go run ./cmd/seed_catalog <catalogo.csv> [--charset big5|latin1|utf8] > seed.sql
//
// Columnas: kind,taxid,name[,port_number]. kind es supplier, customer o product;
// en product, taxid es el del proveedor dueño.
package main

import (
	"fmt"
	"os"
	"strings"
)

func main() {
	path, charset, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\nuso: seed_catalog <catalogo.csv> [--charset big5|latin1|utf8]\n", err)
		os.Exit(2)
	}
	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	r, err := decodeReader(f, charset)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Charset: %v\n", err)
		os.Exit(1)
	}
	cat, err := readCatalog(r)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
		os.Exit(1)
	}
	if err := writeSQL(os.Stdout, cat); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir SQL: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "Generado: %d proveedores, %d clientes, %d productos\n",
		len(cat.Suppliers), len(cat.Customers), len(cat.Products))
}

func parseArgs(args []string) (path, charset string, err error) {
	charset = "utf8"
	for i := 0; i < len(args); i++ {
		a := args[i]
		switch {
		case a == "--charset" || a == "-charset":
			if i+1 >= len(args) {
				return "", "", fmt.Errorf("--charset requiere un valor")
			}
			charset = args[i+1]
			i++
		case strings.HasPrefix(a, "--charset="):
			charset = strings.TrimPrefix(a, "--charset=")
		case path == "":
			path = a
		default:
			return "", "", fmt.Errorf("argumento inesperado %q", a)
		}
	}
	if path == "" {
		return "", "", fmt.Errorf("falta la ruta del CSV")
	}
	return path, charset, nil
}
