package catalog

// FusionRecipe names a fusion a species can initiate: the partner species it
// consumes and the resulting form. Name is the result's display label.
type FusionRecipe struct {
	PartnerID SpeciesID
	ResultID  SpeciesID
	Name      string
}

// fusionRecipes keys the base species that initiates the fusion.
var fusionRecipes = map[SpeciesID][]FusionRecipe{
	800: { // Necrozma
		{PartnerID: 791, ResultID: 10155, Name: "Dusk Mane"},
		{PartnerID: 792, ResultID: 10156, Name: "Dawn Wings"},
	},
	646: { // Kyurem
		{PartnerID: 644, ResultID: 10023, Name: "Black Kyurem"},
		{PartnerID: 643, ResultID: 10022, Name: "White Kyurem"},
	},
	898: { // Calyrex
		{PartnerID: 896, ResultID: 10193, Name: "Ice Rider"},
		{PartnerID: 897, ResultID: 10194, Name: "Shadow Rider"},
	},
}

// FusionRecipes returns the fusion options a species can initiate, or nil.
// The returned slice must not be mutated.
func FusionRecipes(base SpeciesID) []FusionRecipe {
	return fusionRecipes[base]
}
