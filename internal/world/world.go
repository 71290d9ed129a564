// Package world implements the critter simulation core: the board, the
// private per-critter records, the per-species population counts and the
// turn engine that applies every critter's move once per turn.
//
// A World is not safe for concurrent use. Queries must only run between
// calls to Advance.
package world

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/critters/internal/core"
	"github.com/vovakirdan/critters/internal/critter"
	"github.com/vovakirdan/critters/internal/registry"
)

// DefaultHopAdvantage is the chance that an infection attempt fails when the
// attacker did not hop on its previous turn.
const DefaultHopAdvantage = 0.2

// Options configures a new World.
type Options struct {
	Width  int
	Height int

	// HopAdvantage must be within [0, 1].
	HopAdvantage float64

	// Rand drives turn order, placement and the infection gate.
	// If nil, a source seeded from the current time is used.
	Rand *rand.Rand

	// Factory builds critters by species name. If nil, the global species
	// registry is used with Rand for coin-flip construction.
	Factory critter.Factory

	// Logger receives engine events. If nil, logging is discarded.
	Logger *log.Logger
}

// DefaultOptions returns options for a w×h board with the standard hop advantage.
func DefaultOptions(w, h int) Options {
	return Options{
		Width:        w,
		Height:       h,
		HopAdvantage: DefaultHopAdvantage,
	}
}

// Process-wide single-world guard.
var (
	guardMu   sync.Mutex
	worldOpen bool
)

// World owns the board, the agent registry and the turn counter.
type World struct {
	board   *Board
	agents  *agentRegistry
	rng     *rand.Rand
	factory critter.Factory
	logger  *log.Logger

	hopAdvantage float64
	turn         int
	debug        bool
	last         TurnStats

	// permute orders the turn snapshot; defaults to a uniform shuffle.
	permute func([]ID)

	err    error
	closed bool
}

// New creates a world. Only one world may be open per process; New fails
// with ErrDuplicateWorld until the open one is closed.
func New(opts Options) (*World, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("world: invalid size %dx%d", opts.Width, opts.Height)
	}
	if opts.HopAdvantage < 0 || opts.HopAdvantage > 1 {
		return nil, fmt.Errorf("world: hop advantage %v outside [0, 1]", opts.HopAdvantage)
	}

	guardMu.Lock()
	defer guardMu.Unlock()
	if worldOpen {
		return nil, ErrDuplicateWorld
	}

	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	factory := opts.Factory
	if factory == nil {
		factory = registry.NewFactory(rng)
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	w := &World{
		board:        NewBoard(opts.Width, opts.Height),
		agents:       newAgentRegistry(opts.Width * opts.Height),
		rng:          rng,
		factory:      factory,
		logger:       logger,
		hopAdvantage: opts.HopAdvantage,
	}
	w.permute = func(ids []ID) {
		w.rng.Shuffle(len(ids), func(i, j int) { ids[i], ids[j] = ids[j], ids[i] })
	}

	worldOpen = true
	return w, nil
}

// Close releases the single-world guard. It is safe to call more than once.
func (w *World) Close() {
	if w.closed {
		return
	}
	guardMu.Lock()
	defer guardMu.Unlock()
	worldOpen = false
	w.closed = true
}

// Add places count new critters of species at distinct random empty cells
// with random facings. All instances are constructed before any is placed,
// so a failure leaves the world unchanged.
func (w *World) Add(count int, species string) error {
	if count < 0 {
		return fmt.Errorf("world: negative count %d for %s", count, species)
	}
	if free := w.board.Cells() - w.agents.size(); count > free {
		return fmt.Errorf("world: adding %d %s with %d free cells: %w", count, species, free, ErrCapacityExceeded)
	}

	instances := make([]critter.Critter, count)
	for i := range instances {
		c, err := w.construct(species)
		if err != nil {
			return err
		}
		instances[i] = c
	}

	for _, c := range instances {
		var at core.Coord
		for {
			at = core.C(w.rng.Intn(w.board.Width()), w.rng.Intn(w.board.Height()))
			if _, taken := w.board.Occupant(at); !taken {
				break
			}
		}
		facing := core.Directions[w.rng.Intn(len(core.Directions))]
		w.place(c, species, at, facing)
	}
	w.agents.adjustSpecies(species, count)

	w.logger.Info("population added", "species", species, "count", count)
	return nil
}

// Spawn places a single critter of species at pos with the given facing.
func (w *World) Spawn(species string, pos core.Coord, facing core.Direction) (ID, error) {
	if !w.board.InBounds(pos) {
		return 0, fmt.Errorf("world: spawning %s at %v: %w", species, pos, ErrOutOfBounds)
	}
	if _, taken := w.board.Occupant(pos); taken {
		return 0, fmt.Errorf("world: spawning %s at %v: %w", species, pos, ErrOccupied)
	}
	if w.agents.size() >= w.board.Cells() {
		return 0, fmt.Errorf("world: spawning %s: %w", species, ErrCapacityExceeded)
	}

	c, err := w.construct(species)
	if err != nil {
		return 0, err
	}
	rec := w.place(c, species, pos, facing)
	w.agents.adjustSpecies(species, 1)
	return rec.id, nil
}

// place registers and places a critter and primes its display cache.
// Callers have already checked capacity and the target cell.
func (w *World) place(c critter.Critter, species string, at core.Coord, facing core.Direction) *record {
	rec, err := w.agents.register(c, species, at, facing)
	if err != nil {
		panic(err)
	}
	w.board.Place(rec.id, at)
	rec.color = c.Color()
	rec.display = c.String()
	return rec
}

// construct builds a critter through the factory, normalizing failures to
// *critter.ConstructionError.
func (w *World) construct(species string) (critter.Critter, error) {
	c, err := w.factory.Construct(species)
	if err == nil && c == nil {
		err = errors.New("factory returned nil")
	}
	if err != nil {
		var ce *critter.ConstructionError
		if errors.As(err, &ce) {
			return nil, err
		}
		return nil, &critter.ConstructionError{Species: species, Err: err}
	}
	return c, nil
}

// RefreshDisplay recomputes every critter's cached color and display string.
// It reads only the critters' reporting functions and is idempotent.
func (w *World) RefreshDisplay() {
	for _, id := range w.agents.ids() {
		rec := w.mustLookup(id)
		rec.color = rec.critter.Color()
		rec.display = rec.critter.String()
	}
}

// CritterView is a read-only snapshot of one critter.
type CritterView struct {
	ID         ID
	Species    string
	Pos        core.Coord
	Facing     core.Direction
	JustHopped bool
	Color      core.Color
	Display    string
}

func (rec *record) view() CritterView {
	return CritterView{
		ID:         rec.id,
		Species:    rec.species,
		Pos:        rec.pos,
		Facing:     rec.facing,
		JustHopped: rec.justHopped,
		Color:      rec.color,
		Display:    rec.display,
	}
}

// Critters returns every live critter ordered by row, then column.
func (w *World) Critters() []CritterView {
	out := make([]CritterView, 0, w.agents.size())
	for _, id := range w.agents.ids() {
		out = append(out, w.mustLookup(id).view())
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Pos.Y != out[j].Pos.Y {
			return out[i].Pos.Y < out[j].Pos.Y
		}
		return out[i].Pos.X < out[j].Pos.X
	})
	return out
}

// At returns the critter at c, if any. Out-of-bounds coordinates are empty.
func (w *World) At(c core.Coord) (CritterView, bool) {
	if !w.board.InBounds(c) {
		return CritterView{}, false
	}
	id, ok := w.board.Occupant(c)
	if !ok {
		return CritterView{}, false
	}
	return w.mustLookup(id).view(), true
}

// Lookup returns the critter with the given ID, if it is still alive.
func (w *World) Lookup(id ID) (CritterView, bool) {
	rec, ok := w.agents.lookup(id)
	if !ok {
		return CritterView{}, false
	}
	return rec.view(), true
}

// Appearance returns the text to draw for a critter: its cached display
// string, or a facing arrow while the debug view is on.
func (w *World) Appearance(id ID) string {
	rec := w.mustLookup(id)
	if w.debug {
		return rec.facing.Arrow()
	}
	return rec.display
}

// ToggleDebug switches between species glyphs and facing arrows.
func (w *World) ToggleDebug() {
	w.debug = !w.debug
}

// Debug reports whether the debug view is on.
func (w *World) Debug() bool {
	return w.debug
}

// Counts returns the population per species, ordered by name.
func (w *World) Counts() []SpeciesCount {
	return w.agents.snapshot()
}

// Width returns the board width.
func (w *World) Width() int { return w.board.Width() }

// Height returns the board height.
func (w *World) Height() int { return w.board.Height() }

// Size returns the number of live critters.
func (w *World) Size() int { return w.agents.size() }

// Turn returns the number of completed turns.
func (w *World) Turn() int { return w.turn }

// LastTurn returns statistics for the most recent completed turn.
func (w *World) LastTurn() TurnStats { return w.last }

// Err returns the error that broke the world, if any.
func (w *World) Err() error { return w.err }

// CheckInvariants verifies that occupied cells and records are in bijection
// and that the population counts match the records.
func (w *World) CheckInvariants() error {
	if w.board.Occupied() != w.agents.size() {
		return fmt.Errorf("world: %d occupied cells but %d records", w.board.Occupied(), w.agents.size())
	}
	tally := make(map[string]int)
	for _, id := range w.agents.ids() {
		rec := w.mustLookup(id)
		if !w.board.InBounds(rec.pos) {
			return fmt.Errorf("world: critter %d recorded out of bounds at %v", id, rec.pos)
		}
		if at, ok := w.board.Occupant(rec.pos); !ok || at != id {
			return fmt.Errorf("world: critter %d recorded at %v but board holds %d", id, rec.pos, at)
		}
		tally[rec.species]++
	}
	total := 0
	for _, sc := range w.agents.snapshot() {
		if sc.Count != tally[sc.Species] {
			return fmt.Errorf("world: count for %s is %d but %d are alive", sc.Species, sc.Count, tally[sc.Species])
		}
		total += sc.Count
	}
	if total != w.agents.size() {
		return fmt.Errorf("world: counts sum to %d but %d records exist", total, w.agents.size())
	}
	return nil
}

func (w *World) mustLookup(id ID) *record {
	rec, ok := w.agents.lookup(id)
	if !ok {
		panic(fmt.Sprintf("world: no record for critter %d", id))
	}
	return rec
}

func (w *World) mustRecordAt(c core.Coord) *record {
	id, ok := w.board.Occupant(c)
	if !ok {
		panic(fmt.Sprintf("world: expected a critter at %v", c))
	}
	return w.mustLookup(id)
}
