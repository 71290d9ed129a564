package world

import (
	"fmt"

	"github.com/vovakirdan/critters/internal/core"
)

// TurnStats summarizes what happened during one turn.
type TurnStats struct {
	Turn       int // Turn number after the advance
	Acted      int // Critters that got to decide
	Turns      int // Successful left/right rotations
	Hops       int // Successful hops
	Blocked    int // Hops into walls or occupied cells
	Infections int // Successful infections
	Repelled   int // Infections that lost the strike-order roll
}

// Advance runs one turn: every critter alive at the start of the turn acts
// once, in a freshly shuffled order. An agent already resolved this turn
// (it hopped, or was created by infection) cannot be infected again until
// the next turn.
//
// A construction failure during infection aborts the turn and breaks the
// world; the error is returned from this and every later call.
func (w *World) Advance() error {
	if w.err != nil {
		return fmt.Errorf("%w: %w", ErrWorldBroken, w.err)
	}

	order := w.agents.ids()
	w.permute(order)

	locked := make(map[ID]struct{})
	stats := TurnStats{}

	for _, id := range order {
		rec, ok := w.agents.lookup(id)
		if !ok {
			// Infected earlier this turn
			continue
		}

		hadHopped := rec.justHopped
		rec.justHopped = false
		front := rec.pos.Step(rec.facing)

		stats.Acted++
		switch rec.critter.Decide(w.perceive(rec)) {
		case core.ActionLeft:
			rec.facing = rec.facing.RotateLeft()
			stats.Turns++
		case core.ActionRight:
			rec.facing = rec.facing.Rotate()
			stats.Turns++
		case core.ActionHop:
			if w.hop(rec, front, locked) {
				stats.Hops++
			} else {
				stats.Blocked++
			}
		case core.ActionInfect:
			infected, err := w.infect(rec, front, hadHopped, locked)
			if err != nil {
				w.err = err
				w.logger.Error("turn aborted", "turn", w.turn+1, "error", err)
				return err
			}
			switch infected {
			case infectSucceeded:
				stats.Infections++
			case infectRepelled:
				stats.Repelled++
			}
		}
	}

	w.RefreshDisplay()
	w.turn++

	stats.Turn = w.turn
	w.last = stats
	w.logger.Debug("turn complete",
		"turn", w.turn,
		"alive", w.agents.size(),
		"hops", stats.Hops,
		"infections", stats.Infections,
	)
	return nil
}

// hop moves rec into dest when dest is on the board and empty.
func (w *World) hop(rec *record, dest core.Coord, locked map[ID]struct{}) bool {
	if !w.board.InBounds(dest) {
		return false
	}
	if _, taken := w.board.Occupant(dest); taken {
		return false
	}
	w.board.Vacate(rec.pos)
	w.board.Place(rec.id, dest)
	rec.pos = dest
	rec.justHopped = true
	locked[rec.id] = struct{}{}
	return true
}

type infectResult int

const (
	infectNoTarget infectResult = iota
	infectRepelled
	infectSucceeded
)

// infect converts the critter at target to rec's species. The victim's
// record carries over to the new instance so position and facing survive.
func (w *World) infect(rec *record, target core.Coord, hadHopped bool, locked map[ID]struct{}) (infectResult, error) {
	if !w.board.InBounds(target) {
		return infectNoTarget, nil
	}
	victimID, ok := w.board.Occupant(target)
	if !ok {
		return infectNoTarget, nil
	}
	victim := w.mustLookup(victimID)
	if victim.species == rec.species {
		return infectNoTarget, nil
	}
	if _, isLocked := locked[victimID]; isLocked {
		return infectNoTarget, nil
	}
	if !hadHopped && w.rng.Float64() < w.hopAdvantage {
		return infectRepelled, nil
	}

	inst, err := w.construct(rec.species)
	if err != nil {
		return infectNoTarget, fmt.Errorf("world: infecting %v: %w", target, err)
	}

	w.agents.adjustSpecies(victim.species, -1)
	w.agents.adjustSpecies(rec.species, 1)
	w.agents.remove(victimID)
	w.board.Vacate(target)

	converted := w.agents.adopt(victim, inst, rec.species)
	w.board.Place(converted.id, target)
	locked[converted.id] = struct{}{}

	w.logger.Debug("infection",
		"at", target.String(),
		"attacker", rec.species,
		"victim", victimID,
		"replacement", converted.id,
	)
	return infectSucceeded, nil
}
