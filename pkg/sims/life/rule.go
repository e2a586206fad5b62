package life

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidRule is returned by ParseRule for malformed rule strings.
var ErrInvalidRule = errors.New("life: invalid rule")

// Rule is a life-like transition rule in birth/survival notation. Index n is
// set when a cell with n live neighbors is born (Birth) or stays alive (Survive).
type Rule struct {
	Birth   [9]bool
	Survive [9]bool
}

// Conway is B3/S23.
var Conway = Rule{
	Birth:   counts(3),
	Survive: counts(2, 3),
}

func counts(ns ...int) [9]bool {
	var out [9]bool
	for _, n := range ns {
		out[n] = true
	}
	return out
}

// Next returns whether a cell is alive in the next generation.
func (r Rule) Next(alive bool, neighbors int) bool {
	if neighbors < 0 || neighbors > 8 {
		return false
	}
	if alive {
		return r.Survive[neighbors]
	}
	return r.Birth[neighbors]
}

// String formats the rule as "B<digits>/S<digits>".
func (r Rule) String() string {
	var b strings.Builder
	b.WriteByte('B')
	for n, on := range r.Birth {
		if on {
			b.WriteByte(byte('0' + n))
		}
	}
	b.WriteString("/S")
	for n, on := range r.Survive {
		if on {
			b.WriteByte(byte('0' + n))
		}
	}
	return b.String()
}

// ParseRule accepts "B3/S23" in either order and any case, or the older
// "23/3" survival/birth form. An empty string yields Conway.
func ParseRule(s string) (Rule, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Conway, nil
	}
	parts := strings.Split(s, "/")
	if len(parts) != 2 {
		return Rule{}, fmt.Errorf("%q: %w", s, ErrInvalidRule)
	}

	var r Rule
	var sawB, sawS bool
	for i, part := range parts {
		part = strings.TrimSpace(part)
		var dst *[9]bool
		switch {
		case len(part) > 0 && (part[0] == 'B' || part[0] == 'b'):
			dst, sawB, part = &r.Birth, true, part[1:]
		case len(part) > 0 && (part[0] == 'S' || part[0] == 's'):
			dst, sawS, part = &r.Survive, true, part[1:]
		case i == 0:
			dst, sawS = &r.Survive, true
		default:
			dst, sawB = &r.Birth, true
		}
		for _, ch := range part {
			if ch < '0' || ch > '8' {
				return Rule{}, fmt.Errorf("%q: neighbor count %q: %w", s, ch, ErrInvalidRule)
			}
			dst[ch-'0'] = true
		}
	}
	if !sawB || !sawS {
		return Rule{}, fmt.Errorf("%q: need one birth and one survival part: %w", s, ErrInvalidRule)
	}
	return r, nil
}
