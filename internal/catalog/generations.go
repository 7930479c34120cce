package catalog

// GenerationRange bounds the dex ids introduced in one generation.
type GenerationRange struct {
	Min SpeciesID
	Max SpeciesID
}

// GenerationRanges maps generation number (1..9) to its dex id span.
var GenerationRanges = map[int]GenerationRange{
	1: {1, 151},
	2: {152, 251},
	3: {252, 386},
	4: {387, 493},
	5: {494, 649},
	6: {650, 721},
	7: {722, 809},
	8: {810, 905},
	9: {906, 1025},
}

// Contains reports whether id falls inside the range.
func (r GenerationRange) Contains(id SpeciesID) bool {
	return id >= r.Min && id <= r.Max
}
