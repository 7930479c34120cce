package dex

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"pokecasino/server/internal/catalog"
)

// DefaultBaseURL targets the public dex; deployments can point the client at
// a mirror through configuration.
const DefaultBaseURL = "https://pokeapi.co/api/v2"

// ClientConfig tunes the HTTP provider.
type ClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

// Client resolves creature data over HTTP. Resolved entries are memoized for
// the lifetime of the client; the dex is static so entries never expire.
type Client struct {
	baseURL string
	http    *http.Client

	mu           sync.RWMutex
	speciesCache map[catalog.SpeciesID]Species
	typeCache    map[catalog.ElementType][]catalog.SpeciesID
	lineageCache map[catalog.SpeciesID]LineageNode
}

// NewClient builds an HTTP-backed provider.
func NewClient(cfg ClientConfig) *Client {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:      baseURL,
		http:         &http.Client{Timeout: timeout},
		speciesCache: make(map[catalog.SpeciesID]Species),
		typeCache:    make(map[catalog.ElementType][]catalog.SpeciesID),
		lineageCache: make(map[catalog.SpeciesID]LineageNode),
	}
}

type pokemonPayload struct {
	Name  string `json:"name"`
	Stats []struct {
		BaseStat int `json:"base_stat"`
	} `json:"stats"`
	Types []struct {
		Type struct {
			Name string `json:"name"`
		} `json:"type"`
	} `json:"types"`
	Sprites struct {
		FrontDefault string `json:"front_default"`
		FrontShiny   string `json:"front_shiny"`
		Other        struct {
			OfficialArtwork struct {
				FrontDefault string `json:"front_default"`
			} `json:"official-artwork"`
			Home struct {
				FrontShiny string `json:"front_shiny"`
			} `json:"home"`
		} `json:"other"`
	} `json:"sprites"`
	Species struct {
		URL string `json:"url"`
	} `json:"species"`
}

type speciesPayload struct {
	IsLegendary    bool `json:"is_legendary"`
	IsMythical     bool `json:"is_mythical"`
	EvolutionChain struct {
		URL string `json:"url"`
	} `json:"evolution_chain"`
	Varieties []struct {
		Pokemon struct {
			Name string `json:"name"`
			URL  string `json:"url"`
		} `json:"pokemon"`
	} `json:"varieties"`
}

type chainPayload struct {
	Chain chainLink `json:"chain"`
}

type chainLink struct {
	Species struct {
		URL string `json:"url"`
	} `json:"species"`
	EvolvesTo []chainLink `json:"evolves_to"`
}

type typePayload struct {
	Pokemon []struct {
		Pokemon struct {
			URL string `json:"url"`
		} `json:"pokemon"`
	} `json:"pokemon"`
}

// Resolve implements Provider.
func (c *Client) Resolve(ctx context.Context, id catalog.SpeciesID) (Species, error) {
	c.mu.RLock()
	cached, ok := c.speciesCache[id]
	c.mu.RUnlock()
	if ok {
		return cached, nil
	}

	var pokemon pokemonPayload
	if err := c.getJSON(ctx, fmt.Sprintf("%s/pokemon/%d", c.baseURL, id), &pokemon); err != nil {
		return Species{}, fmt.Errorf("resolve %d: %w", id, err)
	}

	var speciesData speciesPayload
	if err := c.getJSON(ctx, pokemon.Species.URL, &speciesData); err != nil {
		return Species{}, fmt.Errorf("resolve species %d: %w", id, err)
	}

	total := 0
	for _, stat := range pokemon.Stats {
		total += stat.BaseStat
	}

	types := make([]catalog.ElementType, 0, len(pokemon.Types))
	for _, entry := range pokemon.Types {
		if t, ok := catalog.ParseElementType(entry.Type.Name); ok {
			types = append(types, t)
		}
	}

	sprite := pokemon.Sprites.Other.OfficialArtwork.FrontDefault
	if sprite == "" {
		sprite = pokemon.Sprites.FrontDefault
	}
	shiny := pokemon.Sprites.Other.Home.FrontShiny
	if shiny == "" {
		shiny = pokemon.Sprites.FrontShiny
	}
	if shiny == "" {
		shiny = sprite
	}

	resolved := Species{
		ID:          id,
		Name:        displayName(pokemon.Name),
		Sprite:      sprite,
		ShinySprite: shiny,
		Types:       types,
		TotalStats:  total,
		Legendary:   speciesData.IsLegendary,
		Mythical:    speciesData.IsMythical,
	}

	c.mu.Lock()
	c.speciesCache[id] = resolved
	c.mu.Unlock()
	return resolved, nil
}

// ResolveLineage implements Provider.
func (c *Client) ResolveLineage(ctx context.Context, id catalog.SpeciesID) (LineageNode, error) {
	c.mu.RLock()
	cached, ok := c.lineageCache[id]
	c.mu.RUnlock()
	if ok {
		return cached, nil
	}

	var speciesData speciesPayload
	if err := c.getJSON(ctx, fmt.Sprintf("%s/pokemon-species/%d", c.baseURL, id), &speciesData); err != nil {
		return LineageNode{}, fmt.Errorf("resolve lineage %d: %w", id, err)
	}
	var chain chainPayload
	if err := c.getJSON(ctx, speciesData.EvolutionChain.URL, &chain); err != nil {
		return LineageNode{}, fmt.Errorf("resolve chain %d: %w", id, err)
	}

	root := buildLineage(chain.Chain)
	c.mu.Lock()
	c.lineageCache[id] = root
	c.mu.Unlock()
	return root, nil
}

// ResolveByType implements Provider.
func (c *Client) ResolveByType(ctx context.Context, t catalog.ElementType) ([]catalog.SpeciesID, error) {
	c.mu.RLock()
	cached, ok := c.typeCache[t]
	c.mu.RUnlock()
	if ok {
		return cached, nil
	}

	var payload typePayload
	if err := c.getJSON(ctx, fmt.Sprintf("%s/type/%s", c.baseURL, t), &payload); err != nil {
		return nil, fmt.Errorf("resolve type %s: %w", t, err)
	}

	ids := make([]catalog.SpeciesID, 0, len(payload.Pokemon))
	for _, entry := range payload.Pokemon {
		id, ok := idFromURL(entry.Pokemon.URL)
		if !ok || id > catalog.MaxSpeciesID {
			continue
		}
		ids = append(ids, id)
	}

	c.mu.Lock()
	c.typeCache[t] = ids
	c.mu.Unlock()
	return ids, nil
}

// ResolveMegaVariety implements Provider. The dex exposes megas as extra
// varieties on the species entry; X/Y split megas resolve to the X form's
// sibling-free counterpart the same way the game always has.
func (c *Client) ResolveMegaVariety(ctx context.Context, id catalog.SpeciesID) (catalog.SpeciesID, error) {
	var speciesData speciesPayload
	if err := c.getJSON(ctx, fmt.Sprintf("%s/pokemon-species/%d", c.baseURL, id), &speciesData); err != nil {
		return 0, fmt.Errorf("resolve mega variety %d: %w", id, err)
	}
	for _, variety := range speciesData.Varieties {
		name := variety.Pokemon.Name
		if strings.Contains(name, "mega") && !strings.Contains(name, "mega-x") {
			if megaID, ok := idFromURL(variety.Pokemon.URL); ok {
				return megaID, nil
			}
		}
	}
	return 0, ErrNotFound
}

func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		io.Copy(io.Discard, resp.Body)
		return ErrNotFound
	case resp.StatusCode != http.StatusOK:
		io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("dex: unexpected status %d for %s", resp.StatusCode, url)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

func buildLineage(link chainLink) LineageNode {
	node := LineageNode{}
	if id, ok := idFromURL(link.Species.URL); ok {
		node.Species = id
	}
	for _, child := range link.EvolvesTo {
		node.Children = append(node.Children, buildLineage(child))
	}
	return node
}

// idFromURL extracts the trailing numeric segment of a dex resource URL,
// e.g. ".../pokemon-species/25/" -> 25.
func idFromURL(url string) (catalog.SpeciesID, bool) {
	trimmed := strings.TrimRight(url, "/")
	idx := strings.LastIndex(trimmed, "/")
	if idx < 0 {
		return 0, false
	}
	value, err := strconv.Atoi(trimmed[idx+1:])
	if err != nil || value <= 0 {
		return 0, false
	}
	return catalog.SpeciesID(value), true
}

func displayName(raw string) string {
	if raw == "" {
		return raw
	}
	name := strings.ToUpper(raw[:1]) + raw[1:]
	return strings.ReplaceAll(name, "-", " ")
}
