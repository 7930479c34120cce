package catalog

// Membership lists for cohorts the dex cannot express through simple flags.
// These mirror the dex numbering and are intentionally compiled in.

var starterIDs = []SpeciesID{
	1, 4, 7,
	152, 155, 158,
	252, 255, 258,
	387, 390, 393,
	495, 498, 501,
	650, 653, 656,
	722, 725, 728,
	810, 813, 816,
	906, 909, 912,
}

var pseudoLegendaryIDs = []SpeciesID{
	147, 148, 149,
	246, 247, 248,
	371, 372, 373,
	374, 375, 376,
	443, 444, 445,
	633, 634, 635,
	704, 705, 706,
	782, 783, 784,
	885, 886, 887,
	996, 997, 998,
}

var ultraBeastIDs = []SpeciesID{
	793, 794, 795, 796, 797, 798, 799, 800, 803, 804, 805, 806,
}

var paradoxIDs = []SpeciesID{
	984, 985, 986, 987, 988, 989, 990, 991, 992, 993,
	994, 995, 1005, 1006, 1007, 1008, 1009, 1010,
}

var legendaryIDs = []SpeciesID{
	144, 145, 146, 150,
	243, 244, 245, 249, 250,
	377, 378, 379, 380, 381, 382, 383, 384,
	480, 481, 482, 483, 484, 485, 486, 487, 488,
	638, 639, 640, 641, 642, 643, 644, 645, 646,
	716, 717, 718,
	772, 773, 785, 786, 787, 788, 789, 790, 791, 792, 800,
	888, 889, 890, 891, 892, 894, 895, 896, 897, 898,
	1001, 1002, 1003, 1004, 1007, 1008, 1014, 1015, 1016, 1017, 1024,
}

var mythicalIDs = []SpeciesID{
	151,
	251,
	385, 386,
	489, 490, 491, 492, 493,
	494, 647, 648, 649,
	719, 720, 721,
	801, 802, 807, 808, 809,
	893,
	1025,
}

var groupMembers = map[Group][]SpeciesID{
	GroupStarter:    starterIDs,
	GroupPseudo:     pseudoLegendaryIDs,
	GroupUltraBeast: ultraBeastIDs,
	GroupParadox:    paradoxIDs,
	GroupLegendary:  legendaryIDs,
	GroupMythical:   mythicalIDs,
}

var groupSets = buildGroupSets()

func buildGroupSets() map[Group]map[SpeciesID]struct{} {
	sets := make(map[Group]map[SpeciesID]struct{}, len(groupMembers))
	for group, ids := range groupMembers {
		set := make(map[SpeciesID]struct{}, len(ids))
		for _, id := range ids {
			set[id] = struct{}{}
		}
		sets[group] = set
	}
	return sets
}

// GroupMembers returns the fixed membership list for a group, or nil for
// GroupAny and unknown groups. The returned slice must not be mutated.
func GroupMembers(group Group) []SpeciesID {
	return groupMembers[group]
}

// InGroup reports whether a species belongs to the named cohort.
func InGroup(group Group, id SpeciesID) bool {
	set, ok := groupSets[group]
	if !ok {
		return false
	}
	_, member := set[id]
	return member
}

// IsStarter reports membership in the starter cohort.
func IsStarter(id SpeciesID) bool { return InGroup(GroupStarter, id) }

// IsPseudoLegendary reports membership in the pseudo-legendary cohort.
func IsPseudoLegendary(id SpeciesID) bool { return InGroup(GroupPseudo, id) }

// IsUltraBeast reports membership in the ultra-beast cohort.
func IsUltraBeast(id SpeciesID) bool { return InGroup(GroupUltraBeast, id) }

// IsParadox reports membership in the paradox cohort.
func IsParadox(id SpeciesID) bool { return InGroup(GroupParadox, id) }
