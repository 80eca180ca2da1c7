// Package refdata loads polynomial curve definitions from Excel
// workbooks. One curve per row on the first sheet, no header: column A
// holds the curve name, columns B onward hold coefficients ordered
// highest degree first.
//
// Rows come out ready for plotting: names are non-empty and unique,
// coefficient vectors respect the pipeline's degree cap. Everything
// repaired or dropped along the way is reported as a SkipRow rather
// than failing the whole workbook.
package refdata

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/gogpu/polyplot"
)

// SkipRow is one loader diagnostic: a workbook row that was dropped, or
// a note about a value repaired in place.
type SkipRow struct {
	// Row is the 1-based workbook row the diagnostic refers to.
	Row int

	// Name is the curve name, empty when the row had none.
	Name string

	Reason string
}

// String formats the diagnostic as "row N (name): reason".
func (s SkipRow) String() string {
	if s.Name == "" {
		return fmt.Sprintf("row %d: %s", s.Row, s.Reason)
	}
	return fmt.Sprintf("row %d (%s): %s", s.Row, s.Name, s.Reason)
}

// Load reads curves from the workbook at path.
func Load(path string) ([]polyplot.Curve, []SkipRow, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("refdata: open %s: %w", path, err)
	}
	defer f.Close()
	return loadFile(f)
}

// LoadReader reads curves from an in-memory workbook, for callers that
// receive the file as an upload or embed it.
func LoadReader(r io.Reader) ([]polyplot.Curve, []SkipRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, fmt.Errorf("refdata: open workbook: %w", err)
	}
	defer f.Close()
	return loadFile(f)
}

func loadFile(f *excelize.File) ([]polyplot.Curve, []SkipRow, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, fmt.Errorf("refdata: workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, nil, fmt.Errorf("refdata: read sheet %q: %w", sheets[0], err)
	}
	curves, skipped := parseRows(rows)
	return curves, skipped, nil
}

// parseRows turns sheet rows into curves. Empty cells drop out of the
// coefficient vector; unparseable cells become zero with a diagnostic,
// the same per-value recovery the pipeline applies to non-finite
// coefficients. Later rows reusing a name are dropped, and vectors
// beyond the degree cap are truncated here so the pipeline sees clean
// input.
func parseRows(rows [][]string) ([]polyplot.Curve, []SkipRow) {
	var curves []polyplot.Curve
	var skipped []SkipRow
	seen := make(map[string]int)

	for i, row := range rows {
		rowNum := i + 1
		if len(row) == 0 {
			continue
		}
		name := strings.TrimSpace(row[0])
		if name == "" {
			if !rowHasData(row) {
				continue
			}
			skipped = append(skipped, SkipRow{Row: rowNum, Reason: "no curve name"})
			continue
		}
		if first, dup := seen[name]; dup {
			skipped = append(skipped, SkipRow{
				Row:    rowNum,
				Name:   name,
				Reason: fmt.Sprintf("duplicate of row %d", first),
			})
			continue
		}

		var coeffs []float64
		for j, cell := range row[1:] {
			cell = strings.TrimSpace(cell)
			if cell == "" {
				continue
			}
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				skipped = append(skipped, SkipRow{
					Row:    rowNum,
					Name:   name,
					Reason: fmt.Sprintf("cell %s: cannot parse %q, substituted 0", cellRef(j+2, rowNum), cell),
				})
				v = 0
			}
			coeffs = append(coeffs, v)
		}
		if len(coeffs) == 0 {
			skipped = append(skipped, SkipRow{Row: rowNum, Name: name, Reason: "no coefficients"})
			continue
		}
		if len(coeffs) > polyplot.MaxDegree+1 {
			skipped = append(skipped, SkipRow{
				Row:    rowNum,
				Name:   name,
				Reason: fmt.Sprintf("degree %d truncated to %d", len(coeffs)-1, polyplot.MaxDegree),
			})
			coeffs = coeffs[:polyplot.MaxDegree+1]
		}

		seen[name] = rowNum
		curves = append(curves, polyplot.Curve{Name: name, Coeffs: coeffs})
	}
	return curves, skipped
}

// rowHasData reports whether any cell beyond the name column is
// non-empty.
func rowHasData(row []string) bool {
	for _, cell := range row[1:] {
		if strings.TrimSpace(cell) != "" {
			return true
		}
	}
	return false
}

func cellRef(col, row int) string {
	ref, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return fmt.Sprintf("col %d row %d", col, row)
	}
	return ref
}
