package roster

// Profile describes the column layout of a roster CSV export.
// Column names are stored normalized (lowercase, trimmed). Adding a new
// export language is just adding a new Profile to the profiles slice.
type Profile struct {
	Name         string
	FloorCol     string
	RoomCol      string
	AreaCol      string
	BedroomsCol  string
	BathroomsCol string
}

// requiredCols returns the column names that must be present for this
// profile to match. Room, bedroom and bathroom columns are optional.
func (p Profile) requiredCols() []string {
	return []string{p.FloorCol, p.AreaCol}
}

// profiles is the ordered list of roster export formats to try during
// auto-detection.
var profiles = []Profile{
	{
		Name:         "vietnamese",
		FloorCol:     "tầng",
		RoomCol:      "phòng",
		AreaCol:      "diện tích",
		BedroomsCol:  "phòng ngủ",
		BathroomsCol: "phòng tắm",
	},
	{
		Name:         "english",
		FloorCol:     "floor",
		RoomCol:      "room",
		AreaCol:      "area",
		BedroomsCol:  "bedrooms",
		BathroomsCol: "bathrooms",
	},
}
