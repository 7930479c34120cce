package catalog

// SpeciesID is the numeric key identifying a creature's base form in the
// external dex. Values above 10000 address alternate forms (megas, fusions,
// origin formes) that never appear in the base 1..1025 range.
type SpeciesID int

// MaxSpeciesID bounds the base dex range the market samples from.
const MaxSpeciesID SpeciesID = 1025

// Class is the discrete power tier assigned at acquisition time. Tiers are
// ordered from weakest (F) to strongest (A).
type Class string

const (
	ClassF Class = "F"
	ClassE Class = "E"
	ClassD Class = "D"
	ClassC Class = "C"
	ClassB Class = "B"
	ClassA Class = "A"
)

// Classes lists every tier from weakest to strongest.
var Classes = []Class{ClassF, ClassE, ClassD, ClassC, ClassB, ClassA}

// ParseClass validates a class string received from a client.
func ParseClass(value string) (Class, bool) {
	switch Class(value) {
	case ClassF, ClassE, ClassD, ClassC, ClassB, ClassA:
		return Class(value), true
	default:
		return "", false
	}
}

// Rank orders classes for comparisons; higher is stronger.
func (c Class) Rank() int {
	for i, candidate := range Classes {
		if candidate == c {
			return i
		}
	}
	return -1
}

// BonusCategory names the casino game a creature's multiplier applies to.
type BonusCategory string

const (
	BonusRoulette BonusCategory = "roulette"
	BonusRocket   BonusCategory = "rocket"
	BonusSlots    BonusCategory = "slot"
)

// BonusCategories lists the three casino affinities.
var BonusCategories = []BonusCategory{BonusRoulette, BonusRocket, BonusSlots}

// ParseBonusCategory validates a bonus category string.
func ParseBonusCategory(value string) (BonusCategory, bool) {
	switch BonusCategory(value) {
	case BonusRoulette, BonusRocket, BonusSlots:
		return BonusCategory(value), true
	default:
		return "", false
	}
}

// ElementType is one of the eighteen elemental tags a species can carry.
type ElementType string

const (
	TypeNormal   ElementType = "normal"
	TypeFire     ElementType = "fire"
	TypeWater    ElementType = "water"
	TypeGrass    ElementType = "grass"
	TypeElectric ElementType = "electric"
	TypeIce      ElementType = "ice"
	TypeFighting ElementType = "fighting"
	TypePoison   ElementType = "poison"
	TypeGround   ElementType = "ground"
	TypeFlying   ElementType = "flying"
	TypePsychic  ElementType = "psychic"
	TypeBug      ElementType = "bug"
	TypeRock     ElementType = "rock"
	TypeGhost    ElementType = "ghost"
	TypeDragon   ElementType = "dragon"
	TypeSteel    ElementType = "steel"
	TypeDark     ElementType = "dark"
	TypeFairy    ElementType = "fairy"
)

// ElementTypes lists every elemental tag.
var ElementTypes = []ElementType{
	TypeNormal, TypeFire, TypeWater, TypeGrass, TypeElectric, TypeIce,
	TypeFighting, TypePoison, TypeGround, TypeFlying, TypePsychic, TypeBug,
	TypeRock, TypeGhost, TypeDragon, TypeSteel, TypeDark, TypeFairy,
}

// ParseElementType validates an elemental tag string.
func ParseElementType(value string) (ElementType, bool) {
	for _, t := range ElementTypes {
		if t == ElementType(value) {
			return t, true
		}
	}
	return "", false
}

// Group names a fixed creature cohort used by the market filter.
type Group string

const (
	GroupAny        Group = "ALL"
	GroupStarter    Group = "starter"
	GroupPseudo     Group = "pseudo"
	GroupParadox    Group = "paradox"
	GroupUltraBeast Group = "ultrabeast"
	GroupMythical   Group = "mythical"
	GroupLegendary  Group = "legendary"
)

// ParseGroup validates a group string; an empty string maps to GroupAny.
func ParseGroup(value string) (Group, bool) {
	switch Group(value) {
	case GroupAny, GroupStarter, GroupPseudo, GroupParadox, GroupUltraBeast, GroupMythical, GroupLegendary:
		return Group(value), true
	case "":
		return GroupAny, true
	default:
		return "", false
	}
}
