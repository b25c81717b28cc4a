package fit

// Titles are fixed per verdict so the same result always reads the same.
const (
	titleComfortable = "✅ Comfortable fit"
	titleTight       = "⚠️ Possible but tight"
	titleNotSuitable = "❌ Not suitable"
)

const walkwayTip = "Tip: keep a clear walking path through the room — it matters every single day."

// rotationGainThreshold is the occupancy reduction that makes the alternate
// orientation worth mentioning when both verdicts agree.
const rotationGainThreshold = 0.02

func titleFor(v Verdict) string {
	switch v {
	case VerdictComfortable:
		return titleComfortable
	case VerdictTight:
		return titleTight
	default:
		return titleNotSuitable
	}
}

func layoutBullet(o OrientationOutcome) string {
	if o.Rotated {
		return "Recommended layout: rotate it 90°."
	}
	return "Recommended layout: keep it as-is."
}

// BuildRecommendation maps a fit analysis into user-facing guidance. It is
// a deterministic text selection over the evaluator's output; no wording is
// derived at call sites.
func BuildRecommendation(analysis FitAnalysis) Recommendation {
	best := analysis.Best
	other := analysis.Other

	var bullets []string

	// Orientation comparison first: a verdict change is the headline, a
	// small occupancy gain is a minor note, anything less is omitted.
	switch {
	case best.Verdict != other.Verdict:
		if best.Rotated {
			bullets = append(bullets, "Rotating it 90° works noticeably better in this room.")
		} else {
			bullets = append(bullets, "Keeping it as-is works better — rotating it makes the setup feel worse.")
		}
	case other.OccupancyRatio < best.OccupancyRatio-rotationGainThreshold:
		if other.Rotated {
			bullets = append(bullets, "Rotating it 90° would free up a little more floor space.")
		} else {
			bullets = append(bullets, "Keeping it as-is would free up a little more floor space.")
		}
	}

	bullets = append(bullets, layoutBullet(best))

	switch best.Verdict {
	case VerdictTight:
		bullets = append(bullets,
			"If it feels tight, a smaller or less-deep option usually works better.",
			"Placing it against a wall keeps the middle of the room open.")
	case VerdictNotSuitable:
		bullets = append(bullets,
			"A smaller version of this item would suit the room much better.",
			"Keep the corner where the door swings open completely clear.")
	}

	tip := ""
	if best.Verdict != VerdictComfortable && analysis.Room.PreferredWalkwayCm > 0 {
		tip = walkwayTip
	}

	return Recommendation{
		Title:   titleFor(best.Verdict),
		Status:  best.Verdict,
		Summary: best.Reason,
		Bullets: bullets,
		Tip:     tip,
	}
}

// BuildInvalidRoomRecommendation is the short-circuit path used when the
// dimension validator rejected the room outright: the fit evaluator never
// ran, so the card simply relays the validator's reason.
func BuildInvalidRoomRecommendation(validation DimensionValidationResult) Recommendation {
	return Recommendation{
		Title:   titleNotSuitable,
		Status:  VerdictNotSuitable,
		Summary: validation.Reason,
		Bullets: []string{"Choose a more balanced room shape before planning furniture."},
	}
}
