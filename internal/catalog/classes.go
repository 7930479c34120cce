package catalog

// ClassWeight pairs a class with its draw weight out of 100.
type ClassWeight struct {
	Class  Class
	Weight int
}

// ClassWeights is the market's class distribution for ordinary species,
// iterated weakest-first so cumulative sampling lands on F most often.
var ClassWeights = []ClassWeight{
	{ClassF, 40},
	{ClassE, 25},
	{ClassD, 15},
	{ClassC, 10},
	{ClassB, 7},
	{ClassA, 3},
}

// HighTierAChance is the probability that a legendary, mythical, or
// ultra-beast species rolls class A instead of B.
const HighTierAChance = 0.3

var classFactors = map[Class]float64{
	ClassF: 0.5,
	ClassE: 1.0,
	ClassD: 2.0,
	ClassC: 5.0,
	ClassB: 10.0,
	ClassA: 25.0,
}

// ClassFactor returns the fixed factor a class contributes to both the
// bonus multiplier and the purchase price.
func ClassFactor(c Class) float64 {
	factor, ok := classFactors[c]
	if !ok {
		return classFactors[ClassF]
	}
	return factor
}
