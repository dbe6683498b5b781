package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/traditionalchinese"
)

func TestReadCatalog_GeneraSQLIdempotente(t *testing.T) {
	in := "kind,taxid,name,port_number\n" +
		"product,900,Tornillo,1001\n" +
		"supplier,900,O'Brien\n" +
		"# comentario\n" +
		"customer,500,Cliente Uno\n"
	cat, err := readCatalog(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, cat.Suppliers, 1)
	require.Len(t, cat.Customers, 1)
	require.Len(t, cat.Products, 1)

	var out bytes.Buffer
	require.NoError(t, writeSQL(&out, cat))
	sql := out.String()
	assert.Contains(t, sql, "VALUES (900, 'O''Brien') ON CONFLICT DO NOTHING")
	assert.Contains(t, sql, "INSERT INTO products (port_number, name, supplier_taxid) VALUES (1001, 'Tornillo', 900)")
	assert.Less(t, strings.Index(sql, "INSERT INTO suppliers"), strings.Index(sql, "INSERT INTO products"),
		"los proveedores deben ir antes que sus productos")
}

func TestReadCatalog_FilasInvalidas(t *testing.T) {
	cases := []string{
		"supplier,abc,Acme\n",
		"supplier,900,\n",
		"product,900,Tornillo\n",
		"warehouse,1,X\n",
	}
	for _, in := range cases {
		_, err := readCatalog(strings.NewReader(in))
		assert.Error(t, err, in)
	}
}

func TestDecodeReader_Big5YLatin1(t *testing.T) {
	big5, err := traditionalchinese.Big5.NewEncoder().String("supplier,1,臺灣五金\n")
	require.NoError(t, err)
	r, err := decodeReader(strings.NewReader(big5), "big5")
	require.NoError(t, err)
	cat, err := readCatalog(r)
	require.NoError(t, err)
	assert.Equal(t, "臺灣五金", cat.Suppliers[0].Name)

	latin, err := charmap.ISO8859_1.NewEncoder().String("customer,2,Ferretería Ñandú\n")
	require.NoError(t, err)
	r, err = decodeReader(strings.NewReader(latin), "latin1")
	require.NoError(t, err)
	cat, err = readCatalog(r)
	require.NoError(t, err)
	assert.Equal(t, "Ferretería Ñandú", cat.Customers[0].Name)

	_, err = decodeReader(strings.NewReader(""), "ebcdic")
	assert.Error(t, err)
}

func TestParseArgs(t *testing.T) {
	path, cs, err := parseArgs([]string{"cat.csv", "--charset", "big5"})
	require.NoError(t, err)
	assert.Equal(t, "cat.csv", path)
	assert.Equal(t, "big5", cs)

	_, cs, err = parseArgs([]string{"--charset=latin1", "cat.csv"})
	require.NoError(t, err)
	assert.Equal(t, "latin1", cs)

	_, _, err = parseArgs(nil)
	assert.Error(t, err)
}
