package fit

import "roomfit/internal/catalog"

// clearance is the space added to each axis of a raw footprint, in cm.
type clearance struct {
	lengthCm float64
	widthCm  float64
}

// profileClearance is the single source of truth for "comfortable use":
// how much room an item needs beyond its own footprint, keyed solely by its
// movement profile. It never depends on the room type.
func profileClearance(p catalog.MovementProfile) clearance {
	switch p {
	case catalog.ProfileAroundLarge:
		// Full walk-around clearance for large social-use furniture.
		return clearance{lengthCm: 120, widthCm: 120}
	case catalog.ProfileAroundSmall:
		return clearance{lengthCm: 90, widthCm: 90}
	case catalog.ProfileFrontUseLarge:
		// Door/appliance swing plus standing room, one side only.
		return clearance{widthCm: 90}
	case catalog.ProfileFrontUseMedium:
		return clearance{widthCm: 60}
	case catalog.ProfileFrontUseSmall:
		return clearance{widthCm: 45}
	case catalog.ProfileBedAccess:
		// Headboard against a wall; side and foot access only.
		return clearance{lengthCm: 70, widthCm: 140}
	case catalog.ProfileSeatedWork:
		// Chair plus legroom in front.
		return clearance{widthCm: 90}
	case catalog.ProfileSmallItem:
		return clearance{lengthCm: 20, widthCm: 20}
	case catalog.ProfileWallHug:
		return clearance{lengthCm: 10, widthCm: 10}
	case catalog.ProfileGarageVehicle:
		// Door opening plus walking space around a vehicle.
		return clearance{lengthCm: 80, widthCm: 60}
	case catalog.ProfileGarageVehicleSmall:
		return clearance{lengthCm: 60, widthCm: 40}
	default:
		// Conservative fallback for unrecognized profiles.
		return clearance{lengthCm: 60, widthCm: 60}
	}
}

// ExpandFootprint converts an item's raw length/width into the operating
// footprint: the space the item plus its usage clearance occupies. If
// rotated, length and width are swapped before expanding.
func ExpandFootprint(profile catalog.MovementProfile, lengthCm, widthCm float64, rotated bool) (requiredLengthCm, requiredWidthCm float64) {
	if rotated {
		lengthCm, widthCm = widthCm, lengthCm
	}
	c := profileClearance(profile)
	return lengthCm + c.lengthCm, widthCm + c.widthCm
}
