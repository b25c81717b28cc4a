package fit

import (
	"fmt"

	"roomfit/internal/catalog"
)

// Fixed reason strings. Each classification branch carries exactly one of
// these so the same condition always produces the same wording.
const (
	reasonNoFit          = "It simply doesn't fit in this room size."
	reasonWalkwayBlocked = "It would make the space feel blocked when walking through."
	reasonWalkwayTight   = "It fits, but passing through will feel tight."
	reasonWalkwaySqueeze = "It fits, but you'll need to squeeze past in one spot."
	reasonOvercrowded    = "The room would feel overcrowded with this item."
	reasonComfortable    = "This layout feels comfortable for everyday use."
	reasonTight          = "It fits, but movement will feel tight in at least one area."
)

// Classification thresholds. Hand-tuned contractual constants; the test
// suite is calibrated against them.
const (
	comfortMinRemainingCm = 30.0
	comfortMaxOccupancy   = 0.45

	overcrowdLimitDefault = 0.65
	overcrowdLimitLenient = 0.90

	// Walkway bands, subtracted from the room's preferred walkway width.
	walkwayStrictBlockCm  = 40.0
	walkwayStrictTightCm  = 15.0
	walkwayLenientBlockCm = 50.0
	walkwayLenientTightCm = 20.0
)

// strictWalkwayRooms use the tighter walkway band: these spaces exist to be
// walked through, so the passage must stay genuinely usable.
var strictWalkwayRooms = map[string]bool{
	"corridor": true,
	"entrance": true,
}

// lenientOvercrowdRooms tolerate a higher occupancy before rejecting
// outright (a packed garage is still a usable garage).
var lenientOvercrowdRooms = map[string]bool{
	"garage":   true,
	"corridor": true,
	"entrance": true,
	"balcony":  true,
}

// classify turns one orientation's numbers into a verdict plus its fixed
// reason. Rules apply in order; the first match wins. Walkway thresholds
// only downgrade or reject, never upgrade.
func classify(room catalog.RoomType, remainingLen, remainingWid, occupancy float64) (Verdict, string) {
	minRemaining := remainingLen
	if remainingWid < minRemaining {
		minRemaining = remainingWid
	}

	if minRemaining < 0 {
		return VerdictNotSuitable, reasonNoFit
	}

	if room.PreferredWalkwayCm > 0 {
		// Width is typically the pinch point for walking past items.
		walkwayLeft := remainingWid

		if strictWalkwayRooms[room.ID] {
			if walkwayLeft < room.PreferredWalkwayCm-walkwayStrictBlockCm {
				return VerdictNotSuitable, reasonWalkwayBlocked
			}
			if walkwayLeft < room.PreferredWalkwayCm-walkwayStrictTightCm {
				return VerdictTight, reasonWalkwayTight
			}
		} else {
			if walkwayLeft < room.PreferredWalkwayCm-walkwayLenientBlockCm {
				return VerdictNotSuitable, reasonWalkwayBlocked
			}
			if walkwayLeft < room.PreferredWalkwayCm-walkwayLenientTightCm {
				return VerdictTight, reasonWalkwaySqueeze
			}
		}
	}

	overcrowdLimit := overcrowdLimitDefault
	if lenientOvercrowdRooms[room.ID] {
		overcrowdLimit = overcrowdLimitLenient
	}
	if occupancy >= overcrowdLimit {
		return VerdictNotSuitable, reasonOvercrowded
	}

	if minRemaining >= comfortMinRemainingCm && occupancy <= comfortMaxOccupancy {
		return VerdictComfortable, reasonComfortable
	}

	return VerdictTight, reasonTight
}

// orientationScore is the three-key ranking used to pick the better
// orientation: verdict rank, then larger minimum remaining clearance, then
// lower occupancy ratio.
type orientationScore struct {
	rank         int
	minRemaining float64
	occupancy    float64
}

func scoreOf(o OrientationOutcome) orientationScore {
	return orientationScore{
		rank:         int(o.Verdict),
		minRemaining: o.MinRemainingCm(),
		occupancy:    o.OccupancyRatio,
	}
}

func (s orientationScore) betterThan(other orientationScore) bool {
	if s.rank != other.rank {
		return s.rank > other.rank
	}
	if s.minRemaining != other.minRemaining {
		return s.minRemaining > other.minRemaining
	}
	return s.occupancy < other.occupancy
}

// Evaluate computes the fit of an item in a room, in centimeters. The room
// is normalized so length >= width, both orientations are evaluated, and
// the better one is selected. Rotation is tried exhaustively rather than
// via a placement search: furniture against a wall is assumed axis-aligned
// with one of its two natural orientations.
func Evaluate(room catalog.RoomType, item catalog.ItemType, roomLengthCm, roomWidthCm, itemLengthCm, itemWidthCm float64) (FitAnalysis, error) {
	if roomLengthCm <= 0 || roomWidthCm <= 0 {
		return FitAnalysis{}, fmt.Errorf("room %w", ErrNonPositiveDimension)
	}
	if itemLengthCm <= 0 || itemWidthCm <= 0 {
		return FitAnalysis{}, fmt.Errorf("item %w", ErrNonPositiveDimension)
	}

	// Normalize so wording like "too narrow" stays orientation-stable.
	if roomWidthCm > roomLengthCm {
		roomLengthCm, roomWidthCm = roomWidthCm, roomLengthCm
	}

	roomArea := roomLengthCm * roomWidthCm

	outcome := func(rotated bool) OrientationOutcome {
		reqLen, reqWid := ExpandFootprint(item.Profile, itemLengthCm, itemWidthCm, rotated)
		remainingLen := roomLengthCm - reqLen
		remainingWid := roomWidthCm - reqWid

		occupancy := 1.0
		if roomArea > 0 {
			occupancy = (max(0, reqLen) * max(0, reqWid)) / roomArea
		}

		verdict, reason := classify(room, remainingLen, remainingWid, occupancy)
		return OrientationOutcome{
			Rotated:           rotated,
			RequiredLengthCm:  reqLen,
			RequiredWidthCm:   reqWid,
			RemainingLengthCm: remainingLen,
			RemainingWidthCm:  remainingWid,
			OccupancyRatio:    occupancy,
			Verdict:           verdict,
			Reason:            reason,
		}
	}

	normal := outcome(false)
	rotated := outcome(true)

	best, other := normal, rotated
	if scoreOf(rotated).betterThan(scoreOf(normal)) {
		best, other = rotated, normal
	}

	return FitAnalysis{
		Room:         room,
		Item:         item,
		RoomLengthCm: roomLengthCm,
		RoomWidthCm:  roomWidthCm,
		ItemLengthCm: itemLengthCm,
		ItemWidthCm:  itemWidthCm,
		Best:         best,
		Other:        other,
	}, nil
}
