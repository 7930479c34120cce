package catalog

// heldRequirements maps a species to the specific item it must hold before a
// gated transition (mega evolution or a form change) is allowed. The same
// table drives held-item compatibility: a species-bound item may only be
// given to a species that appears here with that item.
var heldRequirements = map[SpeciesID]ItemID{
	3:   ItemVenusaurite,
	6:   ItemCharizarditeX,
	9:   ItemBlastoisinite,
	94:  ItemGengarite,
	130: ItemGyaradosite,
	150: ItemMewtwoniteY,
	248: ItemTyranitarite,
	373: ItemSalamencite,
	376: ItemMetagrossite,
	445: ItemGarchompite,
	448: ItemLucarionite,

	382: ItemBlueOrb,
	383: ItemRedOrb,
	483: ItemAdamantOrb,
	484: ItemLustrousOrb,
	487: ItemGriseousOrb,
}

// HeldRequirement returns the item a species must hold for its gated
// transition, if any.
func HeldRequirement(species SpeciesID) (ItemID, bool) {
	item, ok := heldRequirements[species]
	return item, ok
}

// SpeciesForHeldItem lists every species a species-bound item is compatible
// with. An empty result means the item is not species-bound and any creature
// may hold it.
func SpeciesForHeldItem(item ItemID) []SpeciesID {
	var species []SpeciesID
	for id, required := range heldRequirements {
		if required == item {
			species = append(species, id)
		}
	}
	return species
}

// fusionItemRequirements maps a fusion result to the key item the player
// must possess before the fusion is allowed. Results missing from this table
// fall back to the generic DNA splicers.
var fusionItemRequirements = map[SpeciesID]ItemID{
	10155: ItemNSolarizer,
	10156: ItemNLunarizer,
	10022: ItemDNASplicers,
	10023: ItemDNASplicers,
	10193: ItemReinsOfUnity,
	10194: ItemReinsOfUnity,
}

// FusionItemRequirement returns the key item gating a fusion result,
// defaulting to DNA splicers when no specific mapping exists.
func FusionItemRequirement(result SpeciesID) ItemID {
	if item, ok := fusionItemRequirements[result]; ok {
		return item
	}
	return ItemDNASplicers
}
