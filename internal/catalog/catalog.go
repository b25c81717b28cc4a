// Package catalog holds the static reference data for the fit checker:
// room types, item types, and the movement profiles that drive clearance
// expansion. The catalog is built once at startup and is read-only after
// that; concurrent readers need no synchronization.
package catalog

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownRoom is returned when a room identifier is not in the catalog.
	ErrUnknownRoom = errors.New("unknown room type")
	// ErrUnknownItem is returned when an item identifier is not in the catalog.
	ErrUnknownItem = errors.New("unknown item type")
)

// MovementProfile selects which clearance-expansion rule applies to an item.
// It is a closed enumeration: adding a profile here without updating the
// clearance table in internal/fit falls through to the conservative fallback.
type MovementProfile int

const (
	ProfileUnknown          MovementProfile = iota
	ProfileAroundLarge                      // walk-around clearance, large social-use furniture
	ProfileAroundSmall                      // walk-around clearance, smaller pieces
	ProfileFrontUseLarge                    // door/appliance swing + standing room, one side
	ProfileFrontUseMedium                   // moderate front clearance
	ProfileFrontUseSmall                    // light front clearance
	ProfileBedAccess                        // headboard on a wall; side + foot access
	ProfileSeatedWork                       // chair + legroom in front
	ProfileSmallItem                        // minimal buffer
	ProfileWallHug                          // sits flush against a wall
	ProfileGarageVehicle                    // door opening + walking space around a vehicle
	ProfileGarageVehicleSmall               // reduced clearance for two-wheelers
)

var profileNames = map[MovementProfile]string{
	ProfileAroundLarge:        "around_large",
	ProfileAroundSmall:        "around_small",
	ProfileFrontUseLarge:      "front_use_large",
	ProfileFrontUseMedium:     "front_use_medium",
	ProfileFrontUseSmall:      "front_use_small",
	ProfileBedAccess:          "bed_access",
	ProfileSeatedWork:         "seated_work",
	ProfileSmallItem:          "small_item",
	ProfileWallHug:            "wall_hug",
	ProfileGarageVehicle:      "garage_vehicle",
	ProfileGarageVehicleSmall: "garage_vehicle_small",
}

func (p MovementProfile) String() string {
	if name, ok := profileNames[p]; ok {
		return name
	}
	return "unknown"
}

// ParseMovementProfile maps a profile tag to its enum value.
// Unrecognized tags map to ProfileUnknown, which the footprint expander
// treats with a conservative fallback clearance.
func ParseMovementProfile(tag string) MovementProfile {
	for p, name := range profileNames {
		if name == tag {
			return p
		}
	}
	return ProfileUnknown
}

// Benchmarks are per-room comfort ranges used by the standalone room quality
// check. These are UX guidance values, not legal rules.
type Benchmarks struct {
	MinAreaM2         float64 `json:"min_area_m2"`
	ComfortableAreaM2 float64 `json:"comfortable_area_m2"`
	MinSideM          float64 `json:"min_side_m"`
	MaxAspectRatio    float64 `json:"max_aspect_ratio"` // 0 means ignore
}

// RoomType is a catalog entry for one kind of room.
type RoomType struct {
	ID                 string     `json:"id"`
	Label              string     `json:"label"`
	Description        string     `json:"description"`
	Icon               string     `json:"icon"`
	ItemIDs            []string   `json:"item_ids"`
	PreferredWalkwayCm float64    `json:"preferred_walkway_cm"` // 0 means no walkway constraint
	Benchmarks         Benchmarks `json:"benchmarks"`
}

// ItemType is a catalog entry for one kind of furniture or appliance.
type ItemType struct {
	ID              string          `json:"id"`
	Label           string          `json:"label"`
	DefaultLengthCm float64         `json:"default_length_cm"`
	DefaultWidthCm  float64         `json:"default_width_cm"`
	Profile         MovementProfile `json:"-"`
}

// Catalog is the process-wide read-only reference data. Build it once with
// Default() and pass it by reference into every call.
type Catalog struct {
	rooms     map[string]RoomType
	items     map[string]ItemType
	roomOrder []string
}

// Room looks up a room type by identifier.
func (c *Catalog) Room(id string) (RoomType, error) {
	r, ok := c.rooms[id]
	if !ok {
		return RoomType{}, fmt.Errorf("%w: %q", ErrUnknownRoom, id)
	}
	return r, nil
}

// Item looks up an item type by identifier.
func (c *Catalog) Item(id string) (ItemType, error) {
	it, ok := c.items[id]
	if !ok {
		return ItemType{}, fmt.Errorf("%w: %q", ErrUnknownItem, id)
	}
	return it, nil
}

// Rooms returns all room types in display order.
func (c *Catalog) Rooms() []RoomType {
	rooms := make([]RoomType, 0, len(c.roomOrder))
	for _, id := range c.roomOrder {
		rooms = append(rooms, c.rooms[id])
	}
	return rooms
}

// ItemsFor returns the room's allowed items, in the room's declared order.
// Identifiers without a catalog entry are skipped.
func (c *Catalog) ItemsFor(room RoomType) []ItemType {
	items := make([]ItemType, 0, len(room.ItemIDs))
	for _, id := range room.ItemIDs {
		if it, ok := c.items[id]; ok {
			items = append(items, it)
		}
	}
	return items
}

// DefaultItemFor resolves the caller-side default: the first allowed item of
// the room. The core evaluator is never asked to handle an undefined item;
// callers default here before invoking it.
func (c *Catalog) DefaultItemFor(room RoomType) (ItemType, error) {
	for _, id := range room.ItemIDs {
		if it, ok := c.items[id]; ok {
			return it, nil
		}
	}
	return ItemType{}, fmt.Errorf("%w: room %q lists no known items", ErrUnknownItem, room.ID)
}

// ResolveItem returns the item for id, restricted to the room's allowed list
// when id is set, or the room's default item when id is empty.
func (c *Catalog) ResolveItem(room RoomType, id string) (ItemType, error) {
	if id == "" {
		return c.DefaultItemFor(room)
	}
	for _, allowed := range room.ItemIDs {
		if allowed == id {
			return c.Item(id)
		}
	}
	return ItemType{}, fmt.Errorf("%w: %q is not offered for %s", ErrUnknownItem, id, room.Label)
}

func item(id, label string, lengthCm, widthCm float64, profile MovementProfile) ItemType {
	return ItemType{ID: id, Label: label, DefaultLengthCm: lengthCm, DefaultWidthCm: widthCm, Profile: profile}
}

// Default builds the built-in catalog.
func Default() *Catalog {
	items := []ItemType{
		// Beds
		item("bed_single", "Single bed", 190, 90, ProfileBedAccess),
		item("bed_double", "Double bed", 200, 140, ProfileBedAccess),
		item("bed_queen", "Queen bed", 200, 160, ProfileBedAccess),
		item("bed_king", "King bed", 200, 180, ProfileBedAccess),

		// Bedroom / storage
		item("wardrobe", "Wardrobe", 200, 60, ProfileFrontUseLarge),
		item("dresser", "Dresser", 120, 50, ProfileFrontUseMedium),
		item("bedside_table", "Bedside table", 50, 40, ProfileSmallItem),
		item("desk", "Desk", 120, 60, ProfileSeatedWork),

		// Living / dining
		item("sofa", "Sofa", 200, 95, ProfileFrontUseMedium),
		item("sectional_sofa", "Sectional sofa", 280, 170, ProfileFrontUseMedium),
		item("armchair", "Armchair", 85, 85, ProfileFrontUseSmall),
		item("coffee_table", "Coffee table", 110, 60, ProfileAroundSmall),
		item("tv_unit", "TV unit", 160, 45, ProfileFrontUseSmall),
		item("dining_table_4", "Dining table (4 seats)", 140, 80, ProfileAroundLarge),
		item("dining_table_6", "Dining table (6 seats)", 180, 90, ProfileAroundLarge),

		// Kitchen appliances
		item("refrigerator", "Refrigerator", 75, 70, ProfileFrontUseLarge),
		item("stove", "Stove / cooker", 60, 60, ProfileFrontUseLarge),
		item("oven", "Oven", 60, 60, ProfileFrontUseLarge),
		item("sink", "Sink base", 80, 60, ProfileFrontUseLarge),
		item("dishwasher", "Dishwasher", 60, 60, ProfileFrontUseLarge),
		item("kitchen_island", "Kitchen island", 160, 90, ProfileAroundLarge),

		// Bathroom / laundry
		item("shower", "Shower", 90, 90, ProfileFrontUseMedium),
		item("bathtub", "Bathtub", 170, 75, ProfileFrontUseMedium),
		item("wc", "WC", 70, 40, ProfileFrontUseMedium),
		item("washbasin", "Washbasin", 60, 50, ProfileFrontUseMedium),
		item("washing_machine", "Washing machine", 60, 60, ProfileFrontUseLarge),
		item("storage_shelves", "Storage shelves", 180, 45, ProfileFrontUseSmall),

		// Garage
		item("car", "Car", 450, 180, ProfileGarageVehicle),
		item("motorcycle", "Motorcycle", 220, 80, ProfileGarageVehicleSmall),

		// Corridor / foyer
		item("console_table", "Console table", 120, 35, ProfileWallHug),
		item("coat_rack", "Coat rack", 60, 60, ProfileSmallItem),

		// Balcony / terrace
		item("outdoor_table", "Outdoor table", 120, 70, ProfileAroundSmall),
		item("outdoor_chairs", "Outdoor chair", 55, 55, ProfileSmallItem),
	}

	rooms := []RoomType{
		{
			ID: "bedroom", Label: "Bedroom", Icon: "fa-solid fa-bed",
			Description: "Beds, wardrobes and work corners — check if it still feels easy to move around.",
			ItemIDs:     []string{"bed_single", "bed_double", "bed_queen", "bed_king", "wardrobe", "dresser", "bedside_table", "desk"},
			Benchmarks:  Benchmarks{MinAreaM2: 9.0, ComfortableAreaM2: 12.0, MinSideM: 2.4, MaxAspectRatio: 2.6},
		},
		{
			ID: "master-bedroom", Label: "Master bedroom", Icon: "fa-solid fa-bed",
			Description: "Main bedroom with larger furniture — keep it comfortable for daily use.",
			ItemIDs:     []string{"bed_queen", "bed_king", "wardrobe", "dresser", "bedside_table", "desk"},
			Benchmarks:  Benchmarks{MinAreaM2: 12.0, ComfortableAreaM2: 16.0, MinSideM: 2.7, MaxAspectRatio: 2.4},
		},
		{
			ID: "children-room", Label: "Children's room", Icon: "fa-solid fa-child-reaching",
			Description: "Sleep + play + study — avoid a cramped feel.",
			ItemIDs:     []string{"bed_single", "desk", "wardrobe", "dresser"},
			Benchmarks:  Benchmarks{MinAreaM2: 8.0, ComfortableAreaM2: 10.0, MinSideM: 2.3, MaxAspectRatio: 2.6},
		},
		{
			ID: "living-room", Label: "Living room", Icon: "fa-solid fa-couch",
			Description: "Sofas, seating and TV areas — check comfort for everyday movement.",
			ItemIDs:     []string{"sofa", "sectional_sofa", "armchair", "coffee_table", "tv_unit", "dining_table_4"},
			Benchmarks:  Benchmarks{MinAreaM2: 14.0, ComfortableAreaM2: 20.0, MinSideM: 2.8, MaxAspectRatio: 2.7},
		},
		{
			ID: "dining-room", Label: "Dining room", Icon: "fa-solid fa-chair",
			Description: "Dining tables need space to sit and stand up easily.",
			ItemIDs:     []string{"dining_table_4", "dining_table_6", "storage_shelves"},
			Benchmarks:  Benchmarks{MinAreaM2: 10.0, ComfortableAreaM2: 14.0, MinSideM: 2.5, MaxAspectRatio: 2.7},
		},
		{
			ID: "kitchen", Label: "Kitchen", Icon: "fa-solid fa-utensils",
			Description: "Kitchen appliances and islands — make sure the room still feels usable.",
			ItemIDs:     []string{"refrigerator", "stove", "oven", "sink", "dishwasher", "kitchen_island", "dining_table_4"},
			Benchmarks:  Benchmarks{MinAreaM2: 7.0, ComfortableAreaM2: 10.0, MinSideM: 2.2, MaxAspectRatio: 3.0},
		},
		{
			ID: "bathroom", Label: "Bathroom", Icon: "fa-solid fa-bath",
			Description: "Shower, bathtub, basin and WC — check practical day-to-day comfort.",
			ItemIDs:     []string{"shower", "bathtub", "washbasin", "wc", "washing_machine"},
			Benchmarks:  Benchmarks{MinAreaM2: 3.5, ComfortableAreaM2: 5.0, MinSideM: 1.7, MaxAspectRatio: 2.8},
		},
		{
			ID: "wc", Label: "WC", Icon: "fa-solid fa-toilet",
			Description: "Quick WC fit check — does it feel usable?",
			ItemIDs:     []string{"wc", "washbasin"},
			Benchmarks:  Benchmarks{MinAreaM2: 1.2, ComfortableAreaM2: 1.8, MinSideM: 0.9, MaxAspectRatio: 3.0},
		},
		{
			ID: "office", Label: "Office / Home office", Icon: "fa-solid fa-laptop",
			Description: "Desk and chair space — aim for a comfortable work setup.",
			ItemIDs:     []string{"desk", "storage_shelves"},
			Benchmarks:  Benchmarks{MinAreaM2: 6.0, ComfortableAreaM2: 9.0, MinSideM: 2.0, MaxAspectRatio: 2.8},
		},
		{
			ID: "garage", Label: "Garage", Icon: "fa-solid fa-warehouse",
			Description: "Vehicles and storage — make sure doors can open and you can move around.",
			ItemIDs:     []string{"car", "motorcycle", "storage_shelves"}, PreferredWalkwayCm: 90,
			Benchmarks: Benchmarks{MinAreaM2: 12.0, ComfortableAreaM2: 18.0, MinSideM: 2.6, MaxAspectRatio: 3.4},
		},
		{
			ID: "corridor", Label: "Corridor / Hallway", Icon: "fa-solid fa-route",
			Description: "Keep a comfortable walking path along the corridor.",
			ItemIDs:     []string{"console_table", "coat_rack"}, PreferredWalkwayCm: 90,
			Benchmarks: Benchmarks{MinAreaM2: 3.0, ComfortableAreaM2: 5.0, MinSideM: 0.9},
		},
		{
			ID: "entrance", Label: "Entrance / Foyer", Icon: "fa-solid fa-door-open",
			Description: "Small furniture near the entry — keep it welcoming and easy to pass.",
			ItemIDs:     []string{"console_table", "coat_rack", "storage_shelves"}, PreferredWalkwayCm: 90,
			Benchmarks: Benchmarks{MinAreaM2: 3.0, ComfortableAreaM2: 5.0, MinSideM: 1.2, MaxAspectRatio: 3.0},
		},
		{
			ID: "laundry", Label: "Laundry room", Icon: "fa-solid fa-soap",
			Description: "Washing machine and storage — check if it still feels workable.",
			ItemIDs:     []string{"washing_machine", "storage_shelves"},
			Benchmarks:  Benchmarks{MinAreaM2: 3.0, ComfortableAreaM2: 5.0, MinSideM: 1.6, MaxAspectRatio: 3.2},
		},
		{
			ID: "storage", Label: "Store / Storage room", Icon: "fa-solid fa-box-archive",
			Description: "Shelving and storage — keep access practical.",
			ItemIDs:     []string{"storage_shelves"},
			Benchmarks:  Benchmarks{MinAreaM2: 2.0, ComfortableAreaM2: 4.0, MinSideM: 1.2, MaxAspectRatio: 3.5},
		},
		{
			ID: "dressing", Label: "Dressing room", Icon: "fa-solid fa-shirt",
			Description: "Wardrobes and storage — avoid a tight feeling when getting dressed.",
			ItemIDs:     []string{"wardrobe", "dresser", "storage_shelves"}, PreferredWalkwayCm: 90,
			Benchmarks: Benchmarks{MinAreaM2: 4.0, ComfortableAreaM2: 6.0, MinSideM: 1.6, MaxAspectRatio: 3.0},
		},
		{
			ID: "balcony", Label: "Balcony / Terrace", Icon: "fa-solid fa-sun",
			Description: "Outdoor furniture — keep a clear path to enjoy the space.",
			ItemIDs:     []string{"outdoor_table", "outdoor_chairs"}, PreferredWalkwayCm: 80,
			Benchmarks: Benchmarks{MinAreaM2: 3.0, ComfortableAreaM2: 6.0, MinSideM: 1.2, MaxAspectRatio: 3.5},
		},
	}

	c := &Catalog{
		rooms:     make(map[string]RoomType, len(rooms)),
		items:     make(map[string]ItemType, len(items)),
		roomOrder: make([]string, 0, len(rooms)),
	}
	for _, it := range items {
		c.items[it.ID] = it
	}
	for _, r := range rooms {
		c.rooms[r.ID] = r
		c.roomOrder = append(c.roomOrder, r.ID)
	}
	return c
}
