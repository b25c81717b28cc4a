package fit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roomfit/internal/catalog"
)

func mustRoom(t *testing.T, id string) catalog.RoomType {
	t.Helper()
	room, err := catalog.Default().Room(id)
	require.NoError(t, err)
	return room
}

func mustItem(t *testing.T, id string) catalog.ItemType {
	t.Helper()
	item, err := catalog.Default().Item(id)
	require.NoError(t, err)
	return item
}

func TestEvaluateQueenBedInMidSizeBedroom(t *testing.T) {
	room := mustRoom(t, "bedroom")
	item := mustItem(t, "bed_queen")

	analysis, err := Evaluate(room, item, 420, 350, 200, 160)
	require.NoError(t, err)

	best := analysis.Best
	assert.False(t, best.Rotated, "normal orientation should win on remaining clearance")
	assert.Equal(t, VerdictTight, best.Verdict)
	assert.Equal(t, 270.0, best.RequiredLengthCm)
	assert.Equal(t, 300.0, best.RequiredWidthCm)
	assert.Equal(t, 150.0, best.RemainingLengthCm)
	assert.Equal(t, 50.0, best.RemainingWidthCm)
	assert.InDelta(t, 0.551, best.OccupancyRatio, 0.001)
	assert.Equal(t, reasonTight, best.Reason)

	other := analysis.Other
	assert.True(t, other.Rotated)
	assert.Equal(t, VerdictTight, other.Verdict)
	assert.Equal(t, 10.0, other.MinRemainingCm())
}

func TestEvaluateConsoleTableBlocksNarrowCorridor(t *testing.T) {
	room := mustRoom(t, "corridor")
	item := mustItem(t, "console_table")

	analysis, err := Evaluate(room, item, 150, 70, 120, 35)
	require.NoError(t, err)

	best := analysis.Best
	assert.False(t, best.Rotated)
	assert.Equal(t, VerdictNotSuitable, best.Verdict)
	assert.Equal(t, reasonWalkwayBlocked, best.Reason)

	// Rotated it does not even fit.
	assert.Equal(t, VerdictNotSuitable, analysis.Other.Verdict)
	assert.Equal(t, reasonNoFit, analysis.Other.Reason)
}

func TestEvaluateComfortableFit(t *testing.T) {
	room := mustRoom(t, "bedroom")
	item := mustItem(t, "bedside_table")

	analysis, err := Evaluate(room, item, 420, 350, 50, 40)
	require.NoError(t, err)

	assert.Equal(t, VerdictComfortable, analysis.Best.Verdict)
	assert.Equal(t, reasonComfortable, analysis.Best.Reason)
	assert.True(t, analysis.Best.MinRemainingCm() >= 30)
	assert.True(t, analysis.Best.OccupancyRatio <= 0.45)
}

func TestEvaluateNoFitWhenClearanceExceedsRoom(t *testing.T) {
	room := mustRoom(t, "bedroom")
	item := mustItem(t, "bed_king")

	analysis, err := Evaluate(room, item, 250, 240, 200, 180)
	require.NoError(t, err)

	assert.Equal(t, VerdictNotSuitable, analysis.Best.Verdict)
	assert.True(t, analysis.Best.MinRemainingCm() < 0)
	assert.Equal(t, reasonNoFit, analysis.Best.Reason)
}

func TestEvaluateOvercrowdedWithoutWalkway(t *testing.T) {
	// Fits with positive clearance everywhere but fills most of the floor.
	room := mustRoom(t, "living-room")
	item := mustItem(t, "sectional_sofa")

	analysis, err := Evaluate(room, item, 330, 280, 280, 170)
	require.NoError(t, err)

	assert.Equal(t, VerdictNotSuitable, analysis.Best.Verdict)
	assert.Equal(t, reasonOvercrowded, analysis.Best.Reason)
}

func TestEvaluateGarageToleratesHighOccupancy(t *testing.T) {
	room := mustRoom(t, "garage")
	item := mustItem(t, "car")

	// The car fills ~73% of a 600x290 garage, above the default overcrowd
	// limit but below the lenient one; only the walkway keeps it at tight.
	analysis, err := Evaluate(room, item, 600, 290, 450, 180)
	require.NoError(t, err)

	assert.InDelta(t, 0.731, analysis.Best.OccupancyRatio, 0.001)
	assert.Equal(t, VerdictTight, analysis.Best.Verdict)
}

func TestEvaluateNormalizesRoomOrientation(t *testing.T) {
	room := mustRoom(t, "bedroom")
	item := mustItem(t, "bed_queen")

	a, err := Evaluate(room, item, 420, 350, 200, 160)
	require.NoError(t, err)
	b, err := Evaluate(room, item, 350, 420, 200, 160)
	require.NoError(t, err)

	assert.Equal(t, a, b, "swapping room sides must not change the analysis")
	assert.Equal(t, 420.0, b.RoomLengthCm)
	assert.Equal(t, 350.0, b.RoomWidthCm)
}

func TestEvaluateItemRotationSymmetry(t *testing.T) {
	room := mustRoom(t, "bedroom")
	item := mustItem(t, "bed_queen")

	a, err := Evaluate(room, item, 420, 350, 200, 160)
	require.NoError(t, err)
	b, err := Evaluate(room, item, 420, 350, 160, 200)
	require.NoError(t, err)

	// Swapping the item's sides swaps which orientation is which, but the
	// numbers of the two candidate placements are identical.
	normalOf := func(an FitAnalysis) OrientationOutcome {
		if !an.Best.Rotated {
			return an.Best
		}
		return an.Other
	}
	rotatedOf := func(an FitAnalysis) OrientationOutcome {
		if an.Best.Rotated {
			return an.Best
		}
		return an.Other
	}

	na, rb := normalOf(a), rotatedOf(b)
	assert.Equal(t, na.RequiredLengthCm, rb.RequiredLengthCm)
	assert.Equal(t, na.RequiredWidthCm, rb.RequiredWidthCm)
	assert.Equal(t, na.Verdict, rb.Verdict)
	assert.Equal(t, na.OccupancyRatio, rb.OccupancyRatio)
}

func TestEvaluateIsDeterministic(t *testing.T) {
	room := mustRoom(t, "kitchen")
	item := mustItem(t, "refrigerator")

	first, err := Evaluate(room, item, 320, 260, 75, 70)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := Evaluate(room, item, 320, 260, 75, 70)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestEvaluateGrowingRoomNeverWorsensVerdict(t *testing.T) {
	room := mustRoom(t, "bedroom")
	item := mustItem(t, "bed_queen")

	prev := VerdictNotSuitable
	for _, side := range []float64{260, 300, 340, 380, 420, 460, 500, 560} {
		analysis, err := Evaluate(room, item, side+60, side, 200, 160)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, int(analysis.Best.Verdict), int(prev),
			"verdict worsened when the room grew to %.0f", side)
		prev = analysis.Best.Verdict
	}
}

func TestEvaluateRejectsNonPositiveDimensions(t *testing.T) {
	room := mustRoom(t, "bedroom")
	item := mustItem(t, "bed_queen")

	_, err := Evaluate(room, item, 0, 350, 200, 160)
	assert.ErrorIs(t, err, ErrNonPositiveDimension)
	_, err = Evaluate(room, item, 420, -1, 200, 160)
	assert.ErrorIs(t, err, ErrNonPositiveDimension)
	_, err = Evaluate(room, item, 420, 350, 0, 160)
	assert.ErrorIs(t, err, ErrNonPositiveDimension)
	_, err = Evaluate(room, item, 420, 350, 200, -5)
	assert.ErrorIs(t, err, ErrNonPositiveDimension)
}
