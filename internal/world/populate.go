package world

import (
	"fmt"

	"github.com/vovakirdan/critters/internal/config"
	"github.com/vovakirdan/critters/internal/core"
)

// Populate places cfg's fixed placements first, then its random
// populations in listed order. The board size of cfg is not checked
// against the world's; placements outside the board fail.
func (w *World) Populate(cfg config.WorldConfig) error {
	for i, p := range cfg.Placements {
		facing, err := p.Direction()
		if err != nil {
			return fmt.Errorf("world: placements[%d]: %w", i, err)
		}
		if _, err := w.Spawn(p.Species, core.C(p.X, p.Y), facing); err != nil {
			return fmt.Errorf("world: placements[%d]: %w", i, err)
		}
	}
	for _, p := range cfg.Populations {
		if p.Count == 0 {
			continue
		}
		if err := w.Add(p.Count, p.Species); err != nil {
			return err
		}
	}
	return nil
}
