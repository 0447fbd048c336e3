package gamedata

import (
	"errors"
	"fmt"
	"math/rand"
	"slices"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/wayfarer/internal/terrain"
)

// SpeciesDef defines a settlement species loaded from JSON.
type SpeciesDef struct {
	ID          string   `json:"id"`          // Unique identifier (e.g., "elf")
	Name        string   `json:"name"`        // Display name (e.g., "Elf")
	Glyph       string   `json:"glyph"`       // Map marker for settlements of this species
	Color       string   `json:"color"`       // Hex color code
	SpawnWeight int      `json:"spawnWeight"` // Relative frequency (higher = more common)
	Terrains    []string `json:"terrains"`    // Terrain IDs this species settles on
}

// Style returns the map marker style for the species.
func (s *SpeciesDef) Style() StyleDef {
	return StyleDef{ID: s.ID, Glyph: s.Glyph, Color: s.Color}
}

// TCellColor returns the color as a tcell.Color.
func (s *SpeciesDef) TCellColor() tcell.Color {
	return s.Style().TCellColor()
}

// StateDef defines a settlement condition and its population range.
type StateDef struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	SpawnWeight int    `json:"spawnWeight"`
	MinSize     int    `json:"minSize"`
	MaxSize     int    `json:"maxSize"` // Exclusive
}

// IndustryDef defines what a settlement lives on. Terrains maps terrain IDs to
// relative weights; an industry with no weights is never picked by terrain.
type IndustryDef struct {
	ID          string         `json:"id"`
	Description string         `json:"description"`
	Terrains    map[string]int `json:"terrains"`
}

// GovernanceDef defines a form of rule.
type GovernanceDef struct {
	ID   string `json:"id"`
	Name string `json:"name"` // Adjective form (e.g., "Monarchic")
}

// NameParts are the syllables settlement names are built from.
type NameParts struct {
	Prefixes []string `json:"prefixes"`
	Suffixes []string `json:"suffixes"`
}

// SettlementsFile represents the structure of settlements.json.
type SettlementsFile struct {
	Species    []SpeciesDef    `json:"species"`
	States     []StateDef      `json:"states"`
	Industries []IndustryDef   `json:"industries"`
	Governance []GovernanceDef `json:"governance"`
	Names      NameParts       `json:"names"`
}

// SettlementTables holds loaded settlement definitions and provides weighted
// selection. All picks draw only from the supplied rng, so the same seed
// always yields the same settlement.
type SettlementTables struct {
	file SettlementsFile
}

// NewSettlementTables creates tables from loaded definitions.
func NewSettlementTables(file SettlementsFile) (*SettlementTables, error) {
	switch {
	case len(file.Species) == 0:
		return nil, errors.New("no species loaded from settlements.json")
	case len(file.States) == 0:
		return nil, errors.New("no states loaded from settlements.json")
	case len(file.Industries) == 0:
		return nil, errors.New("no industries loaded from settlements.json")
	case len(file.Governance) == 0:
		return nil, errors.New("no governance forms loaded from settlements.json")
	case len(file.Names.Prefixes) == 0 || len(file.Names.Suffixes) == 0:
		return nil, errors.New("no name parts loaded from settlements.json")
	}
	if err := file.checkTerrains(); err != nil {
		return nil, err
	}
	return &SettlementTables{file: file}, nil
}

// checkTerrains rejects terrain IDs that no classifier output can match.
func (f SettlementsFile) checkTerrains() error {
	var errs []error
	for _, sp := range f.Species {
		for _, id := range sp.Terrains {
			if _, err := terrain.ParseType(id); err != nil {
				errs = append(errs, fmt.Errorf("species %s: %w", sp.ID, err))
			}
		}
	}
	for _, ind := range f.Industries {
		for id := range ind.Terrains {
			if _, err := terrain.ParseType(id); err != nil {
				errs = append(errs, fmt.Errorf("industry %s: %w", ind.ID, err))
			}
		}
	}
	return errors.Join(errs...)
}

// LoadSettlementTables loads tables from the embedded settlements.json.
func LoadSettlementTables() (*SettlementTables, error) {
	file, err := Load[SettlementsFile]("settlements.json")
	if err != nil {
		return nil, err
	}
	return NewSettlementTables(file)
}

// PickSpecies selects a species that settles on t, weighted by spawnWeight.
// If no species lists t, every species is eligible.
func (st *SettlementTables) PickSpecies(rng *rand.Rand, t terrain.Type) *SpeciesDef {
	eligible := make([]*SpeciesDef, 0, len(st.file.Species))
	for i := range st.file.Species {
		if slices.Contains(st.file.Species[i].Terrains, t.ID()) {
			eligible = append(eligible, &st.file.Species[i])
		}
	}
	if len(eligible) == 0 {
		for i := range st.file.Species {
			eligible = append(eligible, &st.file.Species[i])
		}
	}
	return pickWeighted(rng, eligible, func(s *SpeciesDef) int { return s.SpawnWeight })
}

// PickState selects a settlement state weighted by spawnWeight.
func (st *SettlementTables) PickState(rng *rand.Rand) *StateDef {
	states := make([]*StateDef, len(st.file.States))
	for i := range st.file.States {
		states[i] = &st.file.States[i]
	}
	return pickWeighted(rng, states, func(s *StateDef) int { return s.SpawnWeight })
}

// PickSize returns a population in [state.MinSize, state.MaxSize).
func (st *SettlementTables) PickSize(rng *rand.Rand, state *StateDef) int {
	if state.MaxSize <= state.MinSize {
		return state.MinSize
	}
	return state.MinSize + rng.Intn(state.MaxSize-state.MinSize)
}

// PickIndustry selects an industry weighted by its affinity for t. Terrains
// without any affine industry fall back to the first industry in the table.
func (st *SettlementTables) PickIndustry(rng *rand.Rand, t terrain.Type) *IndustryDef {
	eligible := make([]*IndustryDef, 0, len(st.file.Industries))
	for i := range st.file.Industries {
		if st.file.Industries[i].Terrains[t.ID()] > 0 {
			eligible = append(eligible, &st.file.Industries[i])
		}
	}
	if len(eligible) == 0 {
		return &st.file.Industries[0]
	}
	return pickWeighted(rng, eligible, func(d *IndustryDef) int { return d.Terrains[t.ID()] })
}

// PickGovernance selects a form of rule uniformly.
func (st *SettlementTables) PickGovernance(rng *rand.Rand) *GovernanceDef {
	return &st.file.Governance[rng.Intn(len(st.file.Governance))]
}

// Name builds a settlement name from the syllable tables.
func (st *SettlementTables) Name(rng *rand.Rand) string {
	parts := st.file.Names
	return parts.Prefixes[rng.Intn(len(parts.Prefixes))] + parts.Suffixes[rng.Intn(len(parts.Suffixes))]
}

// SpeciesByID returns the species definition with the given ID, or nil if not found.
func (st *SettlementTables) SpeciesByID(id string) *SpeciesDef {
	for i := range st.file.Species {
		if st.file.Species[i].ID == id {
			return &st.file.Species[i]
		}
	}
	return nil
}

// pickWeighted selects an item with probability proportional to its weight.
func pickWeighted[T any](rng *rand.Rand, items []T, weight func(T) int) T {
	total := 0
	for _, it := range items {
		total += max(weight(it), 0)
	}
	if total <= 0 {
		return items[0]
	}

	roll := rng.Intn(total)
	cumulative := 0
	for _, it := range items {
		cumulative += max(weight(it), 0)
		if roll < cumulative {
			return it
		}
	}

	// Fallback (shouldn't happen)
	return items[0]
}
