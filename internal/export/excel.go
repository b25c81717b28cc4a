// Package export writes fit-check results to exchange formats: an Excel
// report for sharing the numbers and a DXF sketch for opening the room
// outline in CAD tools.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"roomfit/internal/fit"
	"roomfit/internal/units"
)

const reportSheet = "Fit check"

// header style colors, dark gray banner with white text.
const (
	headerFillColor = "1F2937"
	headerFontColor = "FFFFFF"
)

// ExportExcel writes the fit analysis and its recommendation to an XLSX
// workbook: the inputs, a table with both orientations' numbers, and the
// guidance bullets.
func ExportExcel(path string, analysis fit.FitAnalysis, rec fit.Recommendation, sys units.System) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", reportSheet); err != nil {
		return err
	}

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14},
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
	})
	if err != nil {
		return err
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: headerFontColor},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{headerFillColor}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return err
	}

	unit := sys.LengthLabel()
	dim := func(cm float64) string {
		return units.Format(units.FromCm(cm, sys)) + " " + unit
	}

	// Title block
	f.SetCellValue(reportSheet, "A1", fmt.Sprintf("Room fit check — %s + %s", analysis.Room.Label, analysis.Item.Label))
	f.MergeCell(reportSheet, "A1", "G1")
	f.SetCellStyle(reportSheet, "A1", "A1", titleStyle)

	// Inputs
	f.SetCellValue(reportSheet, "A3", "Room")
	f.SetCellValue(reportSheet, "B3", fmt.Sprintf("%s (%s × %s)", analysis.Room.Label, dim(analysis.RoomLengthCm), dim(analysis.RoomWidthCm)))
	f.SetCellValue(reportSheet, "A4", "Item")
	f.SetCellValue(reportSheet, "B4", fmt.Sprintf("%s (%s × %s)", analysis.Item.Label, dim(analysis.ItemLengthCm), dim(analysis.ItemWidthCm)))
	f.SetCellValue(reportSheet, "A5", "Verdict")
	f.SetCellValue(reportSheet, "B5", analysis.Best.Verdict.Label())

	// Orientation table
	headers := []string{"Orientation", "Required length", "Required width", "Remaining length", "Remaining width", "Occupancy", "Verdict"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 7)
		f.SetCellValue(reportSheet, cell, h)
	}
	f.SetCellStyle(reportSheet, "A7", "G7", headerStyle)

	for row, o := range []fit.OrientationOutcome{analysis.Best, analysis.Other} {
		values := []interface{}{
			o.OrientationLabel(),
			dim(o.RequiredLengthCm),
			dim(o.RequiredWidthCm),
			dim(o.RemainingLengthCm),
			dim(o.RemainingWidthCm),
			fmt.Sprintf("%.1f%%", o.OccupancyRatio*100),
			o.Verdict.Label(),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, 8+row)
			f.SetCellValue(reportSheet, cell, v)
		}
	}

	// Recommendation
	f.SetCellValue(reportSheet, "A11", rec.Title)
	f.SetCellValue(reportSheet, "A12", rec.Summary)
	line := 13
	for _, b := range rec.Bullets {
		cell, _ := excelize.CoordinatesToCellName(1, line)
		f.SetCellValue(reportSheet, cell, "• "+b)
		line++
	}
	if rec.Tip != "" {
		cell, _ := excelize.CoordinatesToCellName(1, line+1)
		f.SetCellValue(reportSheet, cell, rec.Tip)
	}

	f.SetColWidth(reportSheet, "A", "G", 20)

	return f.SaveAs(path)
}
