package world

import (
	"fmt"
	"sort"

	"github.com/vovakirdan/critters/internal/core"
	"github.com/vovakirdan/critters/internal/critter"
)

// record is the private per-critter state. Only the agent registry owns
// records; critters never see them.
type record struct {
	id      ID
	species string
	critter critter.Critter

	pos        core.Coord
	facing     core.Direction
	justHopped bool

	// Display cache, refreshed once per turn after combat.
	color   core.Color
	display string
}

// agentRegistry is the arena of live critter records plus the per-species
// population counts.
type agentRegistry struct {
	capacity int
	lastID   ID
	records  map[ID]*record
	counts   map[string]int
}

func newAgentRegistry(capacity int) *agentRegistry {
	return &agentRegistry{
		capacity: capacity,
		records:  make(map[ID]*record),
		counts:   make(map[string]int),
	}
}

func (r *agentRegistry) nextID() ID {
	r.lastID++
	return r.lastID
}

// register creates a record for a newly placed critter.
func (r *agentRegistry) register(c critter.Critter, species string, pos core.Coord, facing core.Direction) (*record, error) {
	if len(r.records) >= r.capacity {
		return nil, fmt.Errorf("world: registering %s at %v: %w", species, pos, ErrCapacityExceeded)
	}
	rec := &record{
		id:      r.nextID(),
		species: species,
		critter: c,
		pos:     pos,
		facing:  facing,
	}
	r.records[rec.id] = rec
	return rec, nil
}

// adopt hands an already removed record to a new critter instance under a
// fresh ID. Position and facing survive; justHopped is cleared.
func (r *agentRegistry) adopt(rec *record, c critter.Critter, species string) *record {
	if _, live := r.records[rec.id]; live {
		panic(fmt.Sprintf("world: adopting record %d that is still registered", rec.id))
	}
	rec.id = r.nextID()
	rec.critter = c
	rec.species = species
	rec.justHopped = false
	r.records[rec.id] = rec
	return rec
}

func (r *agentRegistry) lookup(id ID) (*record, bool) {
	rec, ok := r.records[id]
	return rec, ok
}

func (r *agentRegistry) remove(id ID) {
	delete(r.records, id)
}

func (r *agentRegistry) adjustSpecies(name string, delta int) {
	r.counts[name] += delta
}

func (r *agentRegistry) size() int {
	return len(r.records)
}

// ids returns the live IDs in ascending order.
func (r *agentRegistry) ids() []ID {
	ids := make([]ID, 0, len(r.records))
	for id := range r.records {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// SpeciesCount is one entry of the population report.
type SpeciesCount struct {
	Species string
	Count   int
}

// snapshot returns the population counts ordered by species name.
func (r *agentRegistry) snapshot() []SpeciesCount {
	out := make([]SpeciesCount, 0, len(r.counts))
	for name, n := range r.counts {
		out = append(out, SpeciesCount{Species: name, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Species < out[j].Species })
	return out
}
