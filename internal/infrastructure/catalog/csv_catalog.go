// Package catalog lee catálogos de items exportados desde hojas de cálculo para la carga inicial.
package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/stock-ledger-api/internal/application/dto"
)

// Codificaciones de entrada soportadas.
const (
	CharsetUTF8    = "utf-8"
	CharsetLatin1  = "iso-8859-1"
	CharsetWindows = "windows-1252"
)

// ErrUnsupportedCharset codificación no reconocida.
var ErrUnsupportedCharset = errors.New("catalog: codificación no soportada")

// Options controla la lectura del CSV.
type Options struct {
	Charset   string // vacío = utf-8
	Separator rune   // 0 = ';'
}

// RowError describe una fila descartada.
type RowError struct {
	Line   int
	Reason string
}

func (e RowError) Error() string { return fmt.Sprintf("línea %d: %s", e.Line, e.Reason) }

// Parse lee filas nombre;cantidad;minimo. La primera fila se ignora si no es numérica (encabezado).
// Las filas inválidas se devuelven aparte y no detienen la lectura.
func Parse(r io.Reader, opts Options) ([]dto.CreateItemRequest, []RowError, error) {
	decoded, err := decodeReader(r, opts.Charset)
	if err != nil {
		return nil, nil, err
	}
	cr := csv.NewReader(decoded)
	cr.Comma = opts.Separator
	if cr.Comma == 0 {
		cr.Comma = ';'
	}
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var (
		items  []dto.CreateItemRequest
		errs   []RowError
		seen   = make(map[string]int)
		lineNo int
	)
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		lineNo++
		if err != nil {
			return nil, nil, fmt.Errorf("catalog: leer csv: %w", err)
		}
		if isBlank(rec) {
			continue
		}
		if len(rec) < 3 {
			errs = append(errs, RowError{Line: lineNo, Reason: "se esperan 3 columnas"})
			continue
		}
		name := norm.NFC.String(strings.TrimSpace(rec[0]))
		qty, qErr := strconv.ParseInt(strings.TrimSpace(rec[1]), 10, 64)
		min, mErr := strconv.ParseInt(strings.TrimSpace(rec[2]), 10, 64)
		if qErr != nil || mErr != nil {
			if lineNo == 1 {
				continue
			}
			errs = append(errs, RowError{Line: lineNo, Reason: "cantidad o mínimo no es entero"})
			continue
		}
		switch {
		case name == "":
			errs = append(errs, RowError{Line: lineNo, Reason: "nombre vacío"})
			continue
		case qty < 0 || min < 0:
			errs = append(errs, RowError{Line: lineNo, Reason: "cantidad y mínimo deben ser >= 0"})
			continue
		}
		key := strings.ToLower(name)
		if prev, ok := seen[key]; ok {
			errs = append(errs, RowError{Line: lineNo, Reason: fmt.Sprintf("nombre repetido (línea %d)", prev)})
			continue
		}
		seen[key] = lineNo
		items = append(items, dto.CreateItemRequest{Name: name, Quantity: qty, MinimumThreshold: min})
	}
	return items, errs, nil
}

func decodeReader(r io.Reader, charset string) (io.Reader, error) {
	switch strings.ToLower(strings.TrimSpace(charset)) {
	case "", CharsetUTF8, "utf8":
		return r, nil
	case CharsetLatin1, "iso8859-1", "latin1":
		return transform.NewReader(r, charmap.ISO8859_1.NewDecoder()), nil
	case CharsetWindows, "cp1252":
		return transform.NewReader(r, charmap.Windows1252.NewDecoder()), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedCharset, charset)
}

func isBlank(rec []string) bool {
	for _, f := range rec {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
