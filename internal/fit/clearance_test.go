package fit

import (
	"testing"

	"roomfit/internal/catalog"
)

func TestExpandFootprintPerProfile(t *testing.T) {
	tests := []struct {
		profile catalog.MovementProfile
		wantLen float64
		wantWid float64
	}{
		{catalog.ProfileAroundLarge, 220, 170},
		{catalog.ProfileAroundSmall, 190, 140},
		{catalog.ProfileFrontUseLarge, 100, 140},
		{catalog.ProfileFrontUseMedium, 100, 110},
		{catalog.ProfileFrontUseSmall, 100, 95},
		{catalog.ProfileBedAccess, 170, 190},
		{catalog.ProfileSeatedWork, 100, 140},
		{catalog.ProfileSmallItem, 120, 70},
		{catalog.ProfileWallHug, 110, 60},
		{catalog.ProfileGarageVehicle, 180, 110},
		{catalog.ProfileGarageVehicleSmall, 160, 90},
		{catalog.ProfileUnknown, 160, 110},
	}
	for _, tt := range tests {
		t.Run(tt.profile.String(), func(t *testing.T) {
			gotLen, gotWid := ExpandFootprint(tt.profile, 100, 50, false)
			if gotLen != tt.wantLen || gotWid != tt.wantWid {
				t.Errorf("got %.0fx%.0f, want %.0fx%.0f", gotLen, gotWid, tt.wantLen, tt.wantWid)
			}
		})
	}
}

func TestExpandFootprintRotationSwapsBeforeExpanding(t *testing.T) {
	// Rotation swaps the raw sides first; the clearance stays on its axes.
	gotLen, gotWid := ExpandFootprint(catalog.ProfileBedAccess, 200, 160, true)
	if gotLen != 230 || gotWid != 340 {
		t.Errorf("rotated queen bed: got %.0fx%.0f, want 230x340", gotLen, gotWid)
	}
}

func TestExpandFootprintRotationSymmetry(t *testing.T) {
	// Expanding (l, w) rotated must equal expanding (w, l) unrotated.
	for p := catalog.ProfileUnknown; p <= catalog.ProfileGarageVehicleSmall; p++ {
		rl, rw := ExpandFootprint(p, 180, 75, true)
		nl, nw := ExpandFootprint(p, 75, 180, false)
		if rl != nl || rw != nw {
			t.Errorf("profile %s: rotated %0.fx%.0f != swapped %.0fx%.0f", p, rl, rw, nl, nw)
		}
	}
}
