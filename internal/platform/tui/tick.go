// Package tui provides the Bubble Tea front end for the critter world: a
// live viewer that advances the world once per tick, and a browser for
// recorded runs.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Tick rate bounds for the viewer's speed controls.
const (
	minTickRate = 1
	maxTickRate = 60
)

// TickMsg is sent to trigger one simulation turn.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(clampTickRate(tickRate))
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func clampTickRate(rate int) int {
	if rate < minTickRate {
		return minTickRate
	}
	if rate > maxTickRate {
		return maxTickRate
	}
	return rate
}
