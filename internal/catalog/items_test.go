package catalog

import "testing"

func TestHeldRequirementsReferenceCatalogItems(t *testing.T) {
	for species, itemID := range heldRequirements {
		item, ok := ItemFor(itemID)
		if !ok {
			t.Fatalf("species %d requires unknown item %s", species, itemID)
		}
		if !item.Holdable() {
			t.Fatalf("species %d held requirement %s is a key item", species, itemID)
		}
	}
}

func TestFusionRequirementsAreKeyItems(t *testing.T) {
	for result, itemID := range fusionItemRequirements {
		item, ok := ItemFor(itemID)
		if !ok {
			t.Fatalf("fusion result %d requires unknown item %s", result, itemID)
		}
		if item.Category != ItemCategoryKey {
			t.Fatalf("fusion gate %s for result %d should be a key item", itemID, result)
		}
	}
	if got := FusionItemRequirement(99999); got != ItemDNASplicers {
		t.Fatalf("unmapped fusion result should fall back to dna splicers, got %s", got)
	}
}

func TestKeyItemsAreNotHoldable(t *testing.T) {
	for _, item := range Items() {
		if item.Category == ItemCategoryKey && item.Holdable() {
			t.Fatalf("key item %s reported holdable", item.ID)
		}
	}
}

func TestSpeciesForHeldItemRoundTrip(t *testing.T) {
	species := SpeciesForHeldItem(ItemGriseousOrb)
	if len(species) != 1 || species[0] != 487 {
		t.Fatalf("expected griseous orb to bind only giratina, got %v", species)
	}
	if bound := SpeciesForHeldItem(ItemAmuletCoin); bound != nil {
		t.Fatalf("generic held items should bind no species, got %v", bound)
	}
}

func TestGroupMembershipConsistency(t *testing.T) {
	for _, group := range []Group{GroupStarter, GroupPseudo, GroupParadox, GroupUltraBeast, GroupMythical, GroupLegendary} {
		members := GroupMembers(group)
		if len(members) == 0 {
			t.Fatalf("group %s has no members", group)
		}
		for _, id := range members {
			if !InGroup(group, id) {
				t.Fatalf("member %d missing from %s set", id, group)
			}
			if id < 1 || id > MaxSpeciesID {
				t.Fatalf("member %d of %s outside dex range", id, group)
			}
		}
	}
	if GroupMembers(GroupAny) != nil {
		t.Fatalf("GroupAny should have no fixed membership")
	}
}

func TestGenerationRangesCoverDex(t *testing.T) {
	covered := 0
	for gen := 1; gen <= 9; gen++ {
		r, ok := GenerationRanges[gen]
		if !ok {
			t.Fatalf("missing generation %d", gen)
		}
		if r.Min > r.Max {
			t.Fatalf("generation %d range inverted", gen)
		}
		covered += int(r.Max-r.Min) + 1
	}
	if covered != int(MaxSpeciesID) {
		t.Fatalf("generation ranges cover %d ids, want %d", covered, MaxSpeciesID)
	}
}
