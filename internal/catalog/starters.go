package catalog

// Starter describes one of the three creatures offered on a fresh save.
// Bonus categories are fixed so each starter pushes the player toward a
// different table.
type Starter struct {
	Key       string
	SpeciesID SpeciesID
	Name      string
	Bonus     BonusCategory
}

var starters = []Starter{
	{Key: "bulbasaur", SpeciesID: 1, Name: "Bulbasaur", Bonus: BonusRoulette},
	{Key: "charmander", SpeciesID: 4, Name: "Charmander", Bonus: BonusRocket},
	{Key: "squirtle", SpeciesID: 7, Name: "Squirtle", Bonus: BonusSlots},
}

// Starters returns the fixed starter offers in display order.
func Starters() []Starter {
	return starters
}

// StarterByKey resolves a starter by its selection key.
func StarterByKey(key string) (Starter, bool) {
	for _, s := range starters {
		if s.Key == key {
			return s, true
		}
	}
	return Starter{}, false
}
