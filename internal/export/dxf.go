package export

import (
	"fmt"

	"github.com/yofu/dxf"
	dxfcolor "github.com/yofu/dxf/color"
	"github.com/yofu/dxf/drawing"
	"github.com/yofu/dxf/table"

	"roomfit/internal/fit"
)

// DXF layer names. The sketch is schematic: all rectangles share the room's
// bottom-left corner, since the checker reasons about sizes, not placement.
const (
	layerRoom      = "ROOM"
	layerFootprint = "FOOTPRINT"
	layerItem      = "ITEM"
	layerNotes     = "NOTES"
)

const noteTextHeightCm = 12.0

// drawer accumulates the first drawing error so the happy path stays flat.
type drawer struct {
	d   *drawing.Drawing
	err error
}

func (dr *drawer) line(x1, y1, x2, y2 float64) {
	if dr.err != nil {
		return
	}
	_, dr.err = dr.d.Line(x1, y1, 0, x2, y2, 0)
}

func (dr *drawer) rect(x, y, w, h float64) {
	dr.line(x, y, x+w, y)
	dr.line(x+w, y, x+w, y+h)
	dr.line(x+w, y+h, x, y+h)
	dr.line(x, y+h, x, y)
}

func (dr *drawer) text(s string, x, y, height float64) {
	if dr.err != nil {
		return
	}
	_, dr.err = dr.d.Text(s, x, y, 0, height)
}

func (dr *drawer) layer(name string, cl dxfcolor.ColorNumber) {
	if dr.err != nil {
		return
	}
	_, dr.err = dr.d.AddLayer(name, cl, table.LT_CONTINUOUS, true)
}

// ExportDXF writes a simple plan sketch of the analysis in centimeter
// drawing units: the room outline, the best orientation's operating
// footprint, and the item's raw footprint, each on its own layer.
func ExportDXF(path string, analysis fit.FitAnalysis) error {
	dr := &drawer{d: dxf.NewDrawing()}

	best := analysis.Best

	itemLen, itemWid := analysis.ItemLengthCm, analysis.ItemWidthCm
	if best.Rotated {
		itemLen, itemWid = itemWid, itemLen
	}

	dr.layer(layerRoom, dxfcolor.White)
	dr.rect(0, 0, analysis.RoomLengthCm, analysis.RoomWidthCm)

	dr.layer(layerFootprint, dxfcolor.Red)
	dr.rect(0, 0, best.RequiredLengthCm, best.RequiredWidthCm)

	dr.layer(layerItem, dxfcolor.Green)
	dr.rect(0, 0, itemLen, itemWid)

	dr.layer(layerNotes, dxfcolor.Cyan)
	dr.text(fmt.Sprintf("%s %.0fx%.0f cm", analysis.Room.Label, analysis.RoomLengthCm, analysis.RoomWidthCm),
		0, analysis.RoomWidthCm+noteTextHeightCm, noteTextHeightCm)
	dr.text(fmt.Sprintf("%s (%s) needs %.0fx%.0f cm", analysis.Item.Label, best.OrientationLabel(),
		best.RequiredLengthCm, best.RequiredWidthCm),
		0, -2*noteTextHeightCm, noteTextHeightCm)

	if dr.err != nil {
		return fmt.Errorf("draw sketch: %w", dr.err)
	}
	return dr.d.SaveAs(path)
}
