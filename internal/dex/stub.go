package dex

import (
	"context"

	"pokecasino/server/internal/catalog"
)

// StubProvider serves canned dex data from maps. Tests populate only what
// they need; anything else resolves to ErrNotFound.
type StubProvider struct {
	SpeciesByID   map[catalog.SpeciesID]Species
	LineageByID   map[catalog.SpeciesID]LineageNode
	SpeciesByType map[catalog.ElementType][]catalog.SpeciesID
	MegaByID      map[catalog.SpeciesID]catalog.SpeciesID

	// Err, when set, is returned by every call to simulate an upstream
	// outage.
	Err error
}

var _ Provider = (*StubProvider)(nil)

func (s *StubProvider) Resolve(_ context.Context, id catalog.SpeciesID) (Species, error) {
	if s.Err != nil {
		return Species{}, s.Err
	}
	species, ok := s.SpeciesByID[id]
	if !ok {
		return Species{}, ErrNotFound
	}
	return species, nil
}

func (s *StubProvider) ResolveLineage(_ context.Context, id catalog.SpeciesID) (LineageNode, error) {
	if s.Err != nil {
		return LineageNode{}, s.Err
	}
	lineage, ok := s.LineageByID[id]
	if !ok {
		return LineageNode{}, ErrNotFound
	}
	return lineage, nil
}

func (s *StubProvider) ResolveByType(_ context.Context, t catalog.ElementType) ([]catalog.SpeciesID, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	ids, ok := s.SpeciesByType[t]
	if !ok {
		return nil, ErrNotFound
	}
	return ids, nil
}

func (s *StubProvider) ResolveMegaVariety(_ context.Context, id catalog.SpeciesID) (catalog.SpeciesID, error) {
	if s.Err != nil {
		return 0, s.Err
	}
	mega, ok := s.MegaByID[id]
	if !ok {
		return 0, ErrNotFound
	}
	return mega, nil
}
