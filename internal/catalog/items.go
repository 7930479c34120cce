package catalog

import (
	"fmt"
	"sort"
)

// ItemID identifies an item in the static catalog.
type ItemID string

// ItemCategory partitions the item catalog by how an item is used.
type ItemCategory string

const (
	// ItemCategoryMegaStone marks species-bound held stones enabling mega
	// evolution.
	ItemCategoryMegaStone ItemCategory = "mega_stone"
	// ItemCategoryOrb marks species-bound held orbs gating form changes.
	ItemCategoryOrb ItemCategory = "orb"
	// ItemCategoryHeld marks generic held items with no gate attached.
	ItemCategoryHeld ItemCategory = "held_item"
	// ItemCategoryKey marks possession-only gates; key items are never held
	// by a creature.
	ItemCategoryKey ItemCategory = "key_item"
)

const (
	ItemMegaBracelet ItemID = "mega_bracelet"
	ItemZRing        ItemID = "z_ring"
	ItemDynamaxBand  ItemID = "dynamax_band"
	ItemDNASplicers  ItemID = "dna_splicers"
	ItemNSolarizer   ItemID = "n_solarizer"
	ItemNLunarizer   ItemID = "n_lunarizer"
	ItemReinsOfUnity ItemID = "reins_of_unity"

	ItemVenusaurite   ItemID = "venusaurite"
	ItemCharizarditeX ItemID = "charizardite_x"
	ItemBlastoisinite ItemID = "blastoisinite"
	ItemGengarite     ItemID = "gengarite"
	ItemGyaradosite   ItemID = "gyaradosite"
	ItemMewtwoniteY   ItemID = "mewtwonite_y"
	ItemTyranitarite  ItemID = "tyranitarite"
	ItemSalamencite   ItemID = "salamencite"
	ItemMetagrossite  ItemID = "metagrossite"
	ItemGarchompite   ItemID = "garchompite"
	ItemLucarionite   ItemID = "lucarionite"

	ItemAdamantOrb  ItemID = "adamant_orb"
	ItemLustrousOrb ItemID = "lustrous_orb"
	ItemGriseousOrb ItemID = "griseous_orb"
	ItemRedOrb      ItemID = "red_orb"
	ItemBlueOrb     ItemID = "blue_orb"

	ItemAmuletCoin ItemID = "amulet_coin"
	ItemLuckyCharm ItemID = "lucky_charm"
)

// Item is a static catalog entry. Key items gate transitions through
// possession alone; every other category can sit in the bag or be traded to
// a creature's single held slot.
type Item struct {
	ID          ItemID
	Name        string
	Price       float64
	Category    ItemCategory
	Description string
}

// Holdable reports whether the item can occupy a creature's held slot.
func (i Item) Holdable() bool {
	return i.Category != ItemCategoryKey
}

var itemCatalog = buildItemCatalog()

func buildItemCatalog() map[ItemID]Item {
	defs := []Item{
		mustDefineItem(Item{
			ID:          ItemMegaBracelet,
			Name:        "Mega Bracelet",
			Price:       250000,
			Category:    ItemCategoryKey,
			Description: "Unlocks mega evolution for every stone-bearing creature you own.",
		}),
		mustDefineItem(Item{
			ID:          ItemZRing,
			Name:        "Z-Power Ring",
			Price:       200000,
			Category:    ItemCategoryKey,
			Description: "Channels ultra energy. Required to trigger an ultra burst.",
		}),
		mustDefineItem(Item{
			ID:          ItemDynamaxBand,
			Name:        "Dynamax Band",
			Price:       300000,
			Category:    ItemCategoryKey,
			Description: "Required to push Eternatus into its eternamax form.",
		}),
		mustDefineItem(Item{
			ID:          ItemDNASplicers,
			Name:        "DNA Splicers",
			Price:       150000,
			Category:    ItemCategoryKey,
			Description: "Splices Kyurem together with Reshiram or Zekrom.",
		}),
		mustDefineItem(Item{
			ID:          ItemNSolarizer,
			Name:        "N-Solarizer",
			Price:       175000,
			Category:    ItemCategoryKey,
			Description: "Fuses Necrozma with Solgaleo into Dusk Mane.",
		}),
		mustDefineItem(Item{
			ID:          ItemNLunarizer,
			Name:        "N-Lunarizer",
			Price:       175000,
			Category:    ItemCategoryKey,
			Description: "Fuses Necrozma with Lunala into Dawn Wings.",
		}),
		mustDefineItem(Item{
			ID:          ItemReinsOfUnity,
			Name:        "Reins of Unity",
			Price:       200000,
			Category:    ItemCategoryKey,
			Description: "Lets Calyrex ride Glastrier or Spectrier once more.",
		}),

		mustDefineItem(Item{
			ID:          ItemVenusaurite,
			Name:        "Venusaurite",
			Price:       50000,
			Category:    ItemCategoryMegaStone,
			Description: "A mega stone resonating with Venusaur.",
		}),
		mustDefineItem(Item{
			ID:          ItemCharizarditeX,
			Name:        "Charizardite X",
			Price:       50000,
			Category:    ItemCategoryMegaStone,
			Description: "A mega stone resonating with Charizard.",
		}),
		mustDefineItem(Item{
			ID:          ItemBlastoisinite,
			Name:        "Blastoisinite",
			Price:       50000,
			Category:    ItemCategoryMegaStone,
			Description: "A mega stone resonating with Blastoise.",
		}),
		mustDefineItem(Item{
			ID:          ItemGengarite,
			Name:        "Gengarite",
			Price:       50000,
			Category:    ItemCategoryMegaStone,
			Description: "A mega stone resonating with Gengar.",
		}),
		mustDefineItem(Item{
			ID:          ItemGyaradosite,
			Name:        "Gyaradosite",
			Price:       50000,
			Category:    ItemCategoryMegaStone,
			Description: "A mega stone resonating with Gyarados.",
		}),
		mustDefineItem(Item{
			ID:          ItemMewtwoniteY,
			Name:        "Mewtwonite Y",
			Price:       80000,
			Category:    ItemCategoryMegaStone,
			Description: "A mega stone resonating with Mewtwo.",
		}),
		mustDefineItem(Item{
			ID:          ItemTyranitarite,
			Name:        "Tyranitarite",
			Price:       60000,
			Category:    ItemCategoryMegaStone,
			Description: "A mega stone resonating with Tyranitar.",
		}),
		mustDefineItem(Item{
			ID:          ItemSalamencite,
			Name:        "Salamencite",
			Price:       60000,
			Category:    ItemCategoryMegaStone,
			Description: "A mega stone resonating with Salamence.",
		}),
		mustDefineItem(Item{
			ID:          ItemMetagrossite,
			Name:        "Metagrossite",
			Price:       60000,
			Category:    ItemCategoryMegaStone,
			Description: "A mega stone resonating with Metagross.",
		}),
		mustDefineItem(Item{
			ID:          ItemGarchompite,
			Name:        "Garchompite",
			Price:       60000,
			Category:    ItemCategoryMegaStone,
			Description: "A mega stone resonating with Garchomp.",
		}),
		mustDefineItem(Item{
			ID:          ItemLucarionite,
			Name:        "Lucarionite",
			Price:       60000,
			Category:    ItemCategoryMegaStone,
			Description: "A mega stone resonating with Lucario.",
		}),

		mustDefineItem(Item{
			ID:          ItemAdamantOrb,
			Name:        "Adamant Orb",
			Price:       75000,
			Category:    ItemCategoryOrb,
			Description: "Held by Dialga to reach its origin forme.",
		}),
		mustDefineItem(Item{
			ID:          ItemLustrousOrb,
			Name:        "Lustrous Orb",
			Price:       75000,
			Category:    ItemCategoryOrb,
			Description: "Held by Palkia to reach its origin forme.",
		}),
		mustDefineItem(Item{
			ID:          ItemGriseousOrb,
			Name:        "Griseous Orb",
			Price:       75000,
			Category:    ItemCategoryOrb,
			Description: "Held by Giratina to reach its origin forme.",
		}),
		mustDefineItem(Item{
			ID:          ItemRedOrb,
			Name:        "Red Orb",
			Price:       90000,
			Category:    ItemCategoryOrb,
			Description: "Held by Groudon to trigger primal reversion.",
		}),
		mustDefineItem(Item{
			ID:          ItemBlueOrb,
			Name:        "Blue Orb",
			Price:       90000,
			Category:    ItemCategoryOrb,
			Description: "Held by Kyogre to trigger primal reversion.",
		}),

		mustDefineItem(Item{
			ID:          ItemAmuletCoin,
			Name:        "Amulet Coin",
			Price:       25000,
			Category:    ItemCategoryHeld,
			Description: "A lucky coin any creature can hold.",
		}),
		mustDefineItem(Item{
			ID:          ItemLuckyCharm,
			Name:        "Lucky Charm",
			Price:       10000,
			Category:    ItemCategoryHeld,
			Description: "A trinket said to bring good fortune at the tables.",
		}),
	}

	catalog := make(map[ItemID]Item, len(defs))
	for _, def := range defs {
		catalog[def.ID] = def
	}
	return catalog
}

func mustDefineItem(item Item) Item {
	if item.ID == "" || item.Name == "" {
		panic(fmt.Sprintf("catalog: incomplete item definition %+v", item))
	}
	if item.Price < 0 {
		panic(fmt.Sprintf("catalog: negative price for item %s", item.ID))
	}
	switch item.Category {
	case ItemCategoryMegaStone, ItemCategoryOrb, ItemCategoryHeld, ItemCategoryKey:
	default:
		panic(fmt.Sprintf("catalog: unknown category %q for item %s", item.Category, item.ID))
	}
	return item
}

// ItemFor fetches the definition for an item id.
func ItemFor(id ItemID) (Item, bool) {
	item, ok := itemCatalog[id]
	return item, ok
}

// ItemName resolves a display name, falling back to the raw id for items
// missing from the catalog.
func ItemName(id ItemID) string {
	if item, ok := itemCatalog[id]; ok {
		return item.Name
	}
	return string(id)
}

// Items returns every catalog entry sorted by identifier.
func Items() []Item {
	items := make([]Item, 0, len(itemCatalog))
	for _, item := range itemCatalog {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items
}
