package app

import (
	"fmt"
	"strings"

	"gridlife/pkg/core"
)

// statusLines describes the running sim for the on-screen overlay: a title
// line, a counter line when the sim tracks generations, then one line per
// parameter group.
func statusLines(sim core.Sim, paused bool) []string {
	title := sim.Name()
	if paused {
		title += " [paused]"
	}
	lines := []string{title}
	if c, ok := sim.(core.Counter); ok {
		lines = append(lines, fmt.Sprintf("gen %d  pop %d", c.Generation(), c.Population()))
	}
	p, ok := sim.(core.ParameterProvider)
	if !ok {
		return lines
	}
	for _, g := range p.Parameters().Groups {
		parts := make([]string, 0, len(g.Params))
		for _, param := range g.Params {
			if param.Value == "" {
				continue
			}
			parts = append(parts, param.Key+"="+param.Value)
		}
		if len(parts) == 0 {
			continue
		}
		lines = append(lines, g.Name+": "+strings.Join(parts, " "))
	}
	return lines
}
