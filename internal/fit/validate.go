package fit

import (
	"fmt"
	"strings"

	"roomfit/internal/units"
)

// maxAspectRatio rejects unusably elongated room shapes: the longer side may
// be at most three times the shorter one.
const maxAspectRatio = 3.0

// minSideM returns the strict minimum short side for a room category, in
// meters. The intent is to reject unusable shapes before any fit math runs.
func minSideM(roomID string) float64 {
	switch strings.ToLower(strings.TrimSpace(roomID)) {
	case "bedroom", "master-bedroom", "children-room":
		return 2.4
	case "living-room", "dining-room":
		return 2.8
	case "kitchen":
		return 1.8
	case "bathroom":
		return 1.5
	case "wc":
		return 0.9
	case "office":
		return 1.8
	case "garage":
		return 2.5
	case "corridor", "entrance":
		return 1.0
	default:
		return 1.8
	}
}

func notOK(reason string) DimensionValidationResult {
	return DimensionValidationResult{
		OK:      false,
		Verdict: VerdictNotSuitable.Label(),
		Status:  StatusNotOK,
		Reason:  reason,
	}
}

// ValidateRoomDimensions checks that a room's proportions describe a real
// usable space. Dimensions are in meters; nil marks a missing or
// non-numeric input. The unit system is only used to phrase the reason in
// the caller's units. When the result is not OK the pipeline short-circuits
// and the fit evaluator is never invoked.
func ValidateRoomDimensions(roomID, roomLabel string, lengthM, widthM *float64, sys units.System) DimensionValidationResult {
	if lengthM == nil || widthM == nil {
		return notOK(
			"To check if this space works in real life, please enter both room sides. " +
				"Surface alone can't confirm if the room is too narrow.")
	}
	if *lengthM <= 0 || *widthM <= 0 {
		return notOK("Please enter room dimensions greater than 0.")
	}

	long, short := *lengthM, *widthM
	if short > long {
		long, short = short, long
	}

	label := strings.ToLower(strings.TrimSpace(roomLabel))
	if label == "" {
		label = "room"
	}

	if min := minSideM(roomID); short < min {
		target := units.Format(units.FromM(min, sys))
		return notOK(fmt.Sprintf(
			"This %s is too narrow to work well in real life. Try at least %s %s for a more comfortable layout.",
			label, target, sys.RoomLengthLabel()))
	}

	if long/short > maxAspectRatio {
		return notOK(fmt.Sprintf(
			"This %s is too long and narrow to feel practical day to day. A more balanced shape works much better.",
			label))
	}

	return DimensionValidationResult{
		OK:      true,
		Verdict: VerdictComfortable.Label(),
		Status:  StatusOK,
		Reason:  "",
	}
}
