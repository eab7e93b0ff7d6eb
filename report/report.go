// Package report writes calculation results as XLSX workbooks and TSV tables.
package report

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/cwbudde/algo-inductance/inductance"
	"github.com/cwbudde/algo-inductance/units"
	"github.com/xuri/excelize/v2"
)

// Sheet names of the workbook.
const (
	SummarySheet = "Summary"
	PointsSheet  = "Points"
)

// ErrNoUnit is returned when a Result carries no inductance display unit.
var ErrNoUnit = errors.New("report: inductance unit not set")

// Entry is one input parameter as shown to the user.
type Entry struct {
	Name  string
	Value any
	Unit  string
}

// Result is one evaluated geometry, optionally with a frequency sweep.
type Result struct {
	Geometry   string
	Title      string
	Reference  string
	Accuracy   inductance.Accuracy
	Params     []Entry
	Inductance float64 // H
	Frequency  float64 // Hz, operating point
	SkinFactor float64 // 0 for geometries without skin effect
	Unit       units.Unit
	Points     []inductance.Point
}

func (r *Result) validate() error {
	if r.Unit.Kind != units.Inductance || r.Unit.Scale == 0 {
		return ErrNoUnit
	}

	return nil
}

func (r *Result) pointsHeader() []string {
	return []string{"frequency [Hz]", "skin factor", "inductance [" + r.Unit.Symbol + "]", "accuracy"}
}

// accuracy is empty for results that carry no stated accuracy.
func (r *Result) accuracy() string {
	if r.Accuracy.RelErr <= 0 {
		return ""
	}

	return r.Accuracy.String()
}

// WriteXLSX writes r as a workbook with a Summary sheet and, when the result
// has sweep points, a Points sheet.
func WriteXLSX(w io.Writer, r *Result) error {
	if err := r.validate(); err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SummarySheet); err != nil {
		return err
	}

	rows := [][]any{
		{"geometry", r.Geometry},
		{"title", r.Title},
		{"inductance [" + r.Unit.Symbol + "]", r.Unit.FromSI(r.Inductance)},
		{"frequency [Hz]", r.Frequency},
		{"skin factor", r.SkinFactor},
		{"reference", r.Reference},
		{"accuracy", r.accuracy()},
		{},
		{"parameter", "value", "unit"},
	}

	for _, e := range r.Params {
		rows = append(rows, []any{e.Name, e.Value, e.Unit})
	}

	if err := writeRows(f, SummarySheet, rows); err != nil {
		return err
	}

	if len(r.Points) > 0 {
		if _, err := f.NewSheet(PointsSheet); err != nil {
			return err
		}

		header := r.pointsHeader()
		rows = [][]any{{header[0], header[1], header[2]}}

		scaled := r.Unit.FromSIAll(nil, inductance.Inductances(r.Points))
		for i, p := range r.Points {
			rows = append(rows, []any{p.Frequency, p.SkinFactor, scaled[i]})
		}

		if err := writeRows(f, PointsSheet, rows); err != nil {
			return err
		}
	}

	return f.Write(w)
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		for j, v := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				return err
			}

			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return fmt.Errorf("report: %s!%s: %w", sheet, cell, err)
			}
		}
	}

	return nil
}

// WriteTSV writes the sweep points of r as tab-separated values, each row
// carrying the accuracy of the formula. A result without points is written as
// a single row at its operating point.
func WriteTSV(w io.Writer, r *Result) error {
	if err := r.validate(); err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	cw.Comma = '\t'

	if err := cw.Write(r.pointsHeader()); err != nil {
		return err
	}

	points := r.Points
	if len(points) == 0 {
		points = []inductance.Point{{Frequency: r.Frequency, Inductance: r.Inductance, SkinFactor: r.SkinFactor}}
	}

	scaled := r.Unit.FromSIAll(nil, inductance.Inductances(points))
	for i, p := range points {
		row := []string{formatFloat(p.Frequency), formatFloat(p.SkinFactor), formatFloat(scaled[i]), r.accuracy()}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()

	return cw.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// SaveXLSX writes r to the named file.
func SaveXLSX(filename string, r *Result) error {
	return save(filename, r, WriteXLSX)
}

// SaveTSV writes r to the named file.
func SaveTSV(filename string, r *Result) error {
	return save(filename, r, WriteTSV)
}

func save(filename string, r *Result, write func(io.Writer, *Result) error) error {
	fp, err := os.Create(filename)
	if err != nil {
		return err
	}

	if err := write(fp, r); err != nil {
		fp.Close()
		return err
	}

	return fp.Close()
}
