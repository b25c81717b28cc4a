// Package roomcheck answers a simpler question than the fit checker: is a
// room of this size pleasant to live with at all, regardless of furniture?
// It compares the room's area against per-room comfort benchmarks and
// applies a gentle shape downgrade when one side is narrow.
package roomcheck

import (
	"errors"

	"roomfit/internal/catalog"
	"roomfit/internal/fit"
	"roomfit/internal/units"
)

var (
	// ErrMissingDimensions is returned when the dims method lacks a side.
	ErrMissingDimensions = errors.New("length and width are required")
	// ErrMissingArea is returned when the area method lacks an area.
	ErrMissingArea = errors.New("area is required")
	// ErrNonPositive is returned for dimensions or areas <= 0.
	ErrNonPositive = errors.New("dimensions must be positive")
)

// Method selects how the room size was entered.
type Method string

const (
	MethodDims Method = "dims"
	MethodArea Method = "area"
)

// Inputs are the raw room size values, in the caller's display unit.
// Unused fields are zero. With MethodArea, one optional side lets the
// check infer the shape.
type Inputs struct {
	Method  Method
	Length  float64
	Width   float64
	Area    float64
	HasArea bool
}

// Result is the room quality verdict. LengthM/WidthM are zero when the
// shape could not be inferred.
type Result struct {
	Status    fit.Status `json:"status"`
	Verdict   string     `json:"verdict"`
	AreaM2    float64    `json:"area_m2"`
	LengthM   float64    `json:"length_m"`
	WidthM    float64    `json:"width_m"`
	ShapeNote string     `json:"shape_note,omitempty"`
}

const (
	noteNarrowSide = "One side is quite narrow, so daily movement may feel less comfortable."
	noteElongated  = "The room is long and narrow, so it may feel less comfortable in everyday use."
)

// shapeNote flags shapes likely to feel narrow. It never upgrades a verdict.
func shapeNote(room catalog.RoomType, lengthM, widthM float64) string {
	if lengthM <= 0 || widthM <= 0 {
		return ""
	}
	long, short := lengthM, widthM
	if short > long {
		long, short = short, long
	}

	b := room.Benchmarks
	if b.MinSideM > 0 && short < b.MinSideM {
		return noteNarrowSide
	}

	// Corridors are long and narrow on purpose.
	if room.ID != "corridor" && b.MaxAspectRatio > 0 && long/short > b.MaxAspectRatio {
		return noteElongated
	}
	return ""
}

// Evaluate classifies the room size against its comfort benchmarks.
func Evaluate(room catalog.RoomType, in Inputs, sys units.System) (Result, error) {
	var lengthM, widthM, areaM2 float64

	switch in.Method {
	case MethodDims:
		if in.Length <= 0 && in.Width <= 0 {
			return Result{}, ErrMissingDimensions
		}
		if in.Length <= 0 || in.Width <= 0 {
			return Result{}, ErrNonPositive
		}
		lengthM = units.ToM(in.Length, sys)
		widthM = units.ToM(in.Width, sys)
		areaM2 = lengthM * widthM

	case MethodArea:
		if !in.HasArea {
			return Result{}, ErrMissingArea
		}
		areaM2 = units.ToM2(in.Area, sys)
		if areaM2 <= 0 {
			return Result{}, ErrNonPositive
		}
		// If one side was also given, infer the shape from it.
		switch {
		case in.Length > 0 && in.Width <= 0:
			lengthM = units.ToM(in.Length, sys)
			widthM = areaM2 / lengthM
		case in.Width > 0 && in.Length <= 0:
			widthM = units.ToM(in.Width, sys)
			lengthM = areaM2 / widthM
		case in.Length > 0 && in.Width > 0:
			lengthM = units.ToM(in.Length, sys)
			widthM = units.ToM(in.Width, sys)
		}

	default:
		return Result{}, errors.New("unknown room size method")
	}

	note := shapeNote(room, lengthM, widthM)

	b := room.Benchmarks
	var status fit.Status
	var verdict string
	switch {
	case areaM2 >= b.ComfortableAreaM2:
		status, verdict = fit.StatusOK, "Comfortable"
	case areaM2 >= b.MinAreaM2:
		status, verdict = fit.StatusWarning, "Acceptable but tight"
	default:
		status, verdict = fit.StatusNotOK, "Not recommended"
	}

	// A narrow shape downgrades a comfortable area verdict, never upgrades.
	if note != "" && status == fit.StatusOK {
		status, verdict = fit.StatusWarning, "Acceptable but tight"
	}

	return Result{
		Status:    status,
		Verdict:   verdict,
		AreaM2:    areaM2,
		LengthM:   lengthM,
		WidthM:    widthM,
		ShapeNote: note,
	}, nil
}
