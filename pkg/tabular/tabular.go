// Package tabular reads header-plus-rows tables from CSV, XLSX and HTML files.
package tabular

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/xuri/excelize/v2"
)

var ErrNoTable = errors.New("tabular: no table found")

// Table is a raw string grid. Rows may be shorter than Header.
type Table struct {
	Header []string
	Rows   [][]string
}

// ReadFile picks the reader by extension; anything unrecognised is read as CSV.
// A missing file surfaces as an error satisfying errors.Is(err, fs.ErrNotExist).
func ReadFile(path string) (*Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return ReadXLSX(path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return ReadHTML(f)
	default:
		return ReadCSV(f)
	}
}

func ReadCSV(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	head, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoTable
		}
		return nil, fmt.Errorf("tabular: read csv header: %w", err)
	}
	t := &Table{Header: cleanHeader(head)}
	for {
		rec, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("tabular: read csv: %w", err)
		}
		t.Rows = append(t.Rows, rec)
	}
	return t, nil
}

// ReadXLSX reads the first sheet of a workbook.
func ReadXLSX(path string) (*Table, error) {
	x, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer x.Close()

	sheets := x.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoTable
	}
	rows, err := x.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("tabular: read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, ErrNoTable
	}
	return &Table{Header: cleanHeader(rows[0]), Rows: rows[1:]}, nil
}

// ReadHTML reads the first <table> in the document. The first row holding cells is the header.
func ReadHTML(r io.Reader) (*Table, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("tabular: parse html: %w", err)
	}
	sel := doc.Find("table").First()
	if sel.Length() == 0 {
		return nil, ErrNoTable
	}

	t := &Table{}
	sel.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		var cells []string
		tr.ChildrenFiltered("th,td").Each(func(_ int, td *goquery.Selection) {
			cells = append(cells, strings.TrimSpace(td.Text()))
		})
		if len(cells) == 0 {
			return
		}
		if t.Header == nil {
			t.Header = cleanHeader(cells)
			return
		}
		t.Rows = append(t.Rows, cells)
	})
	if t.Header == nil {
		return nil, ErrNoTable
	}
	return t, nil
}

func cleanHeader(h []string) []string {
	out := make([]string, len(h))
	for i, s := range h {
		out[i] = strings.TrimSpace(strings.TrimPrefix(s, "\uFEFF"))
	}
	return out
}

// Index returns the position of the exact header name, or -1.
func (t *Table) Index(name string) int {
	for i, h := range t.Header {
		if h == name {
			return i
		}
	}
	return -1
}

// RenameIfAbsent renames column from to to, but only when to is not already a column.
func (t *Table) RenameIfAbsent(from, to string) {
	if t.Index(to) >= 0 {
		return
	}
	if i := t.Index(from); i >= 0 {
		t.Header[i] = to
	}
}

// FindAny resolves the first alias present, comparing loosely (case, spaces, '-' and '_' ignored).
func (t *Table) FindAny(aliases ...string) int {
	for _, a := range aliases {
		for i, h := range t.Header {
			if Norm(h) == Norm(a) {
				return i
			}
		}
	}
	return -1
}

// Cell guards against short rows and negative indexes.
func Cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// Norm is the loose header key used by FindAny.
func Norm(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "\uFEFF")
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, "_", "")
	return s
}
