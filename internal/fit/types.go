// Package fit implements the fit-evaluation core: room shape validation,
// operating-footprint expansion, two-orientation fit evaluation, and the
// recommendation mapping. Every operation is a pure function over the
// read-only catalog and per-call inputs, safe for concurrent use.
package fit

import (
	"errors"

	"roomfit/internal/catalog"
)

// ErrNonPositiveDimension is returned when a room or item dimension is <= 0.
var ErrNonPositiveDimension = errors.New("dimensions must be positive")

// Verdict classifies a single orientation, or the best-of-two evaluation.
// The ordering of the constants doubles as the ranking used to pick the
// better orientation.
type Verdict int

const (
	VerdictNotSuitable Verdict = iota
	VerdictTight
	VerdictComfortable
)

func (v Verdict) String() string {
	switch v {
	case VerdictComfortable:
		return "comfortable"
	case VerdictTight:
		return "tight"
	default:
		return "not_suitable"
	}
}

// Label is the user-facing verdict wording.
func (v Verdict) Label() string {
	switch v {
	case VerdictComfortable:
		return "Comfortable"
	case VerdictTight:
		return "Acceptable but tight"
	default:
		return "Not recommended"
	}
}

// MarshalJSON encodes verdicts by their stable string form.
func (v Verdict) MarshalJSON() ([]byte, error) {
	return []byte(`"` + v.String() + `"`), nil
}

// Status is the three-way flag used by the dimension validator.
type Status string

const (
	StatusOK      Status = "ok"
	StatusWarning Status = "warning"
	StatusNotOK   Status = "not_ok"
)

// DimensionValidationResult reports whether a room's proportions describe a
// realistically usable space.
type DimensionValidationResult struct {
	OK      bool   `json:"ok"`
	Verdict string `json:"verdict"`
	Status  Status `json:"status"`
	Reason  string `json:"reason"`
}

// OrientationOutcome describes one of the two candidate placements of an
// item in a room. Remaining clearances may be negative.
type OrientationOutcome struct {
	Rotated           bool    `json:"rotated"`
	RequiredLengthCm  float64 `json:"required_length_cm"`
	RequiredWidthCm   float64 `json:"required_width_cm"`
	RemainingLengthCm float64 `json:"remaining_length_cm"`
	RemainingWidthCm  float64 `json:"remaining_width_cm"`
	OccupancyRatio    float64 `json:"occupancy_ratio"`
	Verdict           Verdict `json:"verdict"`
	Reason            string  `json:"reason"`
}

// MinRemainingCm returns the smaller of the two remaining clearances.
func (o OrientationOutcome) MinRemainingCm() float64 {
	if o.RemainingLengthCm < o.RemainingWidthCm {
		return o.RemainingLengthCm
	}
	return o.RemainingWidthCm
}

// OrientationLabel names the placement for display.
func (o OrientationOutcome) OrientationLabel() string {
	if o.Rotated {
		return "Rotated (90°)"
	}
	return "Normal orientation"
}

// FitAnalysis is the full evaluation result. Room dimensions are normalized
// so that length >= width. Both orientations are retained; Best points at
// the selected one.
type FitAnalysis struct {
	Room         catalog.RoomType   `json:"room"`
	Item         catalog.ItemType   `json:"item"`
	RoomLengthCm float64            `json:"room_length_cm"`
	RoomWidthCm  float64            `json:"room_width_cm"`
	ItemLengthCm float64            `json:"item_length_cm"`
	ItemWidthCm  float64            `json:"item_width_cm"`
	Best         OrientationOutcome `json:"best"`
	Other        OrientationOutcome `json:"other"`
}

// Recommendation is the user-facing guidance card built from a FitAnalysis.
type Recommendation struct {
	Title   string   `json:"title"`
	Status  Verdict  `json:"status"`
	Summary string   `json:"summary"`
	Bullets []string `json:"bullets"`
	Tip     string   `json:"tip,omitempty"`
}
