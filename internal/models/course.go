package models

// CourseType identifies the racing surface/course a race was run over.
// The numeric value is only used for deterministic ordering.
type CourseType int

const (
	AllWeatherTraining CourseType = iota + 1
	Dirt
	Turf
	InnerTurf
	OuterTurf
	AllWeatherTrack
	DirtTraining
	InnerTrack
	WoodChips
	Timber
	DownhillTurf
	TurfTraining
	Jump
	Hurdle
	Steeplechase
	HuntOnTurf
)

var courseByLetter = map[string]CourseType{
	"A": AllWeatherTraining,
	"D": Dirt,
	"E": AllWeatherTrack,
	"F": DirtTraining,
	"N": InnerTrack,
	"W": WoodChips,
	"B": Timber,
	"C": DownhillTurf,
	"G": TurfTraining,
	"I": InnerTurf,
	"J": Jump,
	"M": Hurdle,
	"O": OuterTurf,
	"S": Steeplechase,
	"T": Turf,
	"U": HuntOnTurf,
}

// Only seven course types carry a display name and a letter of their own.
// Everything else has no entry; see DisplayNameOrDefault and LetterOrDefault.
var courseNames = map[CourseType]string{
	AllWeatherTrack: "Tapeta",
	Dirt:            "Dirt",
	Hurdle:          "Hurdle",
	InnerTrack:      "Inner Track",
	InnerTurf:       "Inner Turf",
	OuterTurf:       "Outer Turf",
	Turf:            "Turf",
}

var courseLetters = map[CourseType]string{
	AllWeatherTrack: "E",
	Dirt:            "D",
	Hurdle:          "M",
	InnerTrack:      "N",
	InnerTurf:       "I",
	OuterTurf:       "O",
	Turf:            "T",
}

var courseColors = map[string]string{
	"E": "FF8C00",
	"D": "000000",
	"M": "000000",
	"N": "000000",
	"I": "154734",
	"O": "154734",
	"T": "178F17",
}

var courseIdentifiers = [...]string{
	"UNKNOWN",
	"ALL_WEATHER_TRAINING",
	"DIRT",
	"TURF",
	"INNER_TURF",
	"OUTER_TURF",
	"ALL_WEATHER_TRACK",
	"DIRT_TRAINING",
	"INNER_TRACK",
	"WOOD_CHIPS",
	"TIMBER",
	"DOWNHILL_TURF",
	"TURF_TRAINING",
	"JUMP",
	"HURDLE",
	"STEEPLECHASE",
	"HUNT_ON_TURF",
}

// ParseCourseType maps a chart course letter to its CourseType.
// Unknown letters parse as Dirt.
func ParseCourseType(letter string) CourseType {
	if ct, ok := courseByLetter[letter]; ok {
		return ct
	}
	return Dirt
}

// CourseTypes returns all sixteen variants in ordering value order.
func CourseTypes() []CourseType {
	all := make([]CourseType, 0, len(courseIdentifiers)-1)
	for ct := AllWeatherTraining; ct <= HuntOnTurf; ct++ {
		all = append(all, ct)
	}
	return all
}

// DisplayName returns the long name for the course type, if it has one.
func (c CourseType) DisplayName() (string, bool) {
	name, ok := courseNames[c]
	return name, ok
}

// DisplayNameOrDefault returns the long name, falling back to "Dirt".
func (c CourseType) DisplayNameOrDefault() string {
	if name, ok := c.DisplayName(); ok {
		return name
	}
	return courseNames[Dirt]
}

// Letter returns the chart letter for the course type, if it has one.
func (c CourseType) Letter() (string, bool) {
	letter, ok := courseLetters[c]
	return letter, ok
}

// LetterOrDefault returns the chart letter, falling back to "D".
func (c CourseType) LetterOrDefault() string {
	if letter, ok := c.Letter(); ok {
		return letter
	}
	return courseLetters[Dirt]
}

// IsValid reports whether c is one of the sixteen declared variants.
func (c CourseType) IsValid() bool {
	return c >= AllWeatherTraining && c <= HuntOnTurf
}

func (c CourseType) String() string {
	if !c.IsValid() {
		return courseIdentifiers[0]
	}
	return courseIdentifiers[c]
}

// CourseColor returns the spreadsheet colour (RRGGBB) used for a course letter.
func CourseColor(letter string) (string, bool) {
	color, ok := courseColors[letter]
	return color, ok
}
