package catalog

// Credit costs for identity-changing operations.
const (
	EvolveCost     float64 = 5000
	MegaEvolveCost float64 = 50000
	FormChangeCost float64 = 25000
	FusionCost     float64 = 100000
)

// StartingCredits is the balance a fresh save begins with.
const StartingCredits float64 = 1000

// SellCreatureRate is the fraction of the recorded price paid out when a
// creature is sold back.
const SellCreatureRate = 0.75

// SellItemRate is the fraction of catalog price paid out when an item is
// sold back.
const SellItemRate = 0.5

// MaxEquipped caps how many creatures contribute bonuses at once.
const MaxEquipped = 6
