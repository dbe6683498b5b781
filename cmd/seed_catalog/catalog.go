package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/transform"
)

type party struct {
	TaxID int64
	Name  string
}

type product struct {
	PortNumber    int64
	Name          string
	SupplierTaxID int64
}

type catalog struct {
	Suppliers []party
	Customers []party
	Products  []product
}

// decodeReader convierte la entrada a UTF-8 según charset.
func decodeReader(r io.Reader, charset string) (io.Reader, error) {
	switch strings.ToLower(strings.ReplaceAll(charset, "-", "")) {
	case "", "utf8":
		return r, nil
	case "big5":
		return transform.NewReader(r, traditionalchinese.Big5.NewDecoder()), nil
	case "latin1", "iso88591":
		return transform.NewReader(r, charmap.ISO8859_1.NewDecoder()), nil
	}
	return nil, fmt.Errorf("charset no soportado %q", charset)
}

// readCatalog lee filas kind,taxid,name[,port_number]. Líneas vacías y las que empiezan con # se ignoran.
func readCatalog(r io.Reader) (*catalog, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.Comment = '#'
	cr.TrimLeadingSpace = true

	cat := &catalog{}
	line := 0
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		line++
		if line == 1 && strings.EqualFold(strings.TrimSpace(rec[0]), "kind") {
			continue
		}
		if len(rec) < 3 {
			return nil, fmt.Errorf("fila %d: se esperaban al menos 3 columnas", line)
		}
		kind := strings.ToLower(strings.TrimSpace(rec[0]))
		taxID, err := strconv.ParseInt(strings.TrimSpace(rec[1]), 10, 64)
		if err != nil || taxID <= 0 {
			return nil, fmt.Errorf("fila %d: taxid inválido %q", line, rec[1])
		}
		name := strings.TrimSpace(rec[2])
		if name == "" {
			return nil, fmt.Errorf("fila %d: nombre vacío", line)
		}
		switch kind {
		case "supplier":
			cat.Suppliers = append(cat.Suppliers, party{TaxID: taxID, Name: name})
		case "customer":
			cat.Customers = append(cat.Customers, party{TaxID: taxID, Name: name})
		case "product":
			if len(rec) < 4 {
				return nil, fmt.Errorf("fila %d: product requiere port_number", line)
			}
			pn, err := strconv.ParseInt(strings.TrimSpace(rec[3]), 10, 64)
			if err != nil || pn <= 0 {
				return nil, fmt.Errorf("fila %d: port_number inválido %q", line, rec[3])
			}
			cat.Products = append(cat.Products, product{PortNumber: pn, Name: name, SupplierTaxID: taxID})
		default:
			return nil, fmt.Errorf("fila %d: kind desconocido %q", line, kind)
		}
	}
	return cat, nil
}

// writeSQL escribe proveedores antes que productos para respetar la FK.
func writeSQL(w io.Writer, cat *catalog) error {
	sort.Slice(cat.Suppliers, func(i, j int) bool { return cat.Suppliers[i].TaxID < cat.Suppliers[j].TaxID })
	sort.Slice(cat.Customers, func(i, j int) bool { return cat.Customers[i].TaxID < cat.Customers[j].TaxID })
	sort.Slice(cat.Products, func(i, j int) bool { return cat.Products[i].PortNumber < cat.Products[j].PortNumber })

	var b strings.Builder
	b.WriteString("-- Catálogo inicial: proveedores, clientes y productos\n")
	b.WriteString("BEGIN;\n\n")
	for _, s := range cat.Suppliers {
		fmt.Fprintf(&b, "INSERT INTO suppliers (taxid, name) VALUES (%d, '%s') ON CONFLICT DO NOTHING;\n", s.TaxID, escapeSQL(s.Name))
	}
	for _, c := range cat.Customers {
		fmt.Fprintf(&b, "INSERT INTO customers (taxid, name) VALUES (%d, '%s') ON CONFLICT DO NOTHING;\n", c.TaxID, escapeSQL(c.Name))
	}
	for _, p := range cat.Products {
		fmt.Fprintf(&b, "INSERT INTO products (port_number, name, supplier_taxid) VALUES (%d, '%s', %d) ON CONFLICT DO NOTHING;\n",
			p.PortNumber, escapeSQL(p.Name), p.SupplierTaxID)
	}
	b.WriteString("\nCOMMIT;\n")
	_, err := io.WriteString(w, b.String())
	return err
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
