package catalog

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-ledger-api/internal/application/dto"
)

func TestParse_UTF8ConEncabezado(t *testing.T) {
	in := "nombre;cantidad;minimo\nTornillos;10;5\n\n Clavos ; 0 ; 2\n"
	items, rowErrs, err := Parse(strings.NewReader(in), Options{})
	require.NoError(t, err)
	assert.Empty(t, rowErrs)
	assert.Equal(t, []dto.CreateItemRequest{
		{Name: "Tornillos", Quantity: 10, MinimumThreshold: 5},
		{Name: "Clavos", Quantity: 0, MinimumThreshold: 2},
	}, items)
}

func TestParse_Latin1(t *testing.T) {
	// "Piñones" en ISO-8859-1: ñ = 0xF1
	in := []byte("Pi\xf1ones;3;1\n")
	items, _, err := Parse(bytes.NewReader(in), Options{Charset: "latin1"})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Piñones", items[0].Name)
}

func TestParse_Windows1252SeparadorComa(t *testing.T) {
	// "Cinta 3€" en cp1252: € = 0x80
	in := []byte("Cinta 3\x80,4,0\n")
	items, _, err := Parse(bytes.NewReader(in), Options{Charset: CharsetWindows, Separator: ','})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Cinta 3€", items[0].Name)
}

func TestParse_FilasInvalidas(t *testing.T) {
	in := "Tornillos;10;5\n;1;1\nBrocas;x;1\nLijas;-1;0\nSolo;1\ntornillos;2;2\n"
	items, rowErrs, err := Parse(strings.NewReader(in), Options{})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Tornillos", items[0].Name)

	lines := make([]int, 0, len(rowErrs))
	for _, e := range rowErrs {
		lines = append(lines, e.Line)
	}
	assert.Equal(t, []int{2, 3, 4, 5, 6}, lines)
	assert.Contains(t, rowErrs[4].Error(), "repetido")
}

func TestParse_CharsetDesconocido(t *testing.T) {
	_, _, err := Parse(strings.NewReader("a;1;1"), Options{Charset: "ebcdic"})
	assert.True(t, errors.Is(err, ErrUnsupportedCharset))
}
