package commands

import (
	"fmt"
	"io"

	"github.com/erraggy/keycase/codec"
	"github.com/erraggy/keycase/multicase"
	"github.com/erraggy/keycase/naming"
)

// RenderTable renders rows under headers.
// In quiet mode, headers are omitted and rows are tab-separated for piping.
// In normal mode, a fixed-width table with headers is rendered.
func RenderTable(w io.Writer, headers []string, rows [][]string, quiet bool) {
	if len(rows) == 0 {
		return
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	if !quiet {
		writeRow(w, headers, widths, "  ")
	}
	for _, row := range rows {
		if quiet {
			writeRow(w, row, nil, "\t")
		} else {
			writeRow(w, row, widths, "  ")
		}
	}
}

func writeRow(w io.Writer, cells []string, widths []int, sep string) {
	for i, cell := range cells {
		if i > 0 {
			_, _ = fmt.Fprint(w, sep)
		}
		if i < len(widths) && i < len(cells)-1 {
			_, _ = fmt.Fprintf(w, "%-*s", widths[i], cell)
		} else {
			_, _ = fmt.Fprint(w, cell)
		}
	}
	_, _ = fmt.Fprintln(w)
}

// RenderStructured renders rows as a sequence of mappings keyed by the
// snake_case form of each header.
func RenderStructured(w io.Writer, headers []string, rows [][]string, format codec.Format) error {
	records := make(multicase.List, 0, len(rows))
	for _, row := range rows {
		rec := multicase.NewMap(len(headers))
		for i, h := range headers {
			val := ""
			if i < len(row) {
				val = row[i]
			}
			rec.Set(naming.ToSnakeCase(h), multicase.ScalarOf(val))
		}
		records = append(records, rec)
	}

	data, err := codec.EncodeIndent(records, format, "  ")
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing %s output: %w", format, err)
	}
	return nil
}
