// Package zones buckets free-text city names into named delivery zones
// via a closed, hand-curated gazetteer.
package zones

import (
	"strings"

	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// OtherZone is the catch-all bucket for empty or unmapped city names.
// It sorts last in every grouped output.
const OtherZone = "Other City"

// Zone is one delivery zone and the exact city names it covers.
type Zone struct {
	Name   string
	Cities []string
}

// Gazetteer is a compiled many-to-one city→zone lookup. It is built
// once at startup and never mutated afterwards, so a single instance is
// safe to share across concurrent pipeline runs.
type Gazetteer struct {
	order []string
	index map[string]string
}

// New compiles a gazetteer from declared zones. When a city name
// appears in more than one zone, the first declared zone wins.
func New(zones []Zone) *Gazetteer {
	g := &Gazetteer{
		order: make([]string, 0, len(zones)),
		index: make(map[string]string),
	}
	for _, z := range zones {
		g.order = append(g.order, z.Name)
		for _, city := range z.Cities {
			key := Normalize(city)
			if _, ok := g.index[key]; !ok {
				g.index[key] = z.Name
			}
		}
	}
	return g
}

// Classify maps a raw city string to its zone name. The input is
// trimmed and unicode-normalized before lookup; empty or unmapped
// cities return OtherZone, never an error.
func (g *Gazetteer) Classify(city string) string {
	key := Normalize(city)
	if key == "" {
		return OtherZone
	}
	if zone, ok := g.index[key]; ok {
		return zone
	}
	return OtherZone
}

// Names returns the declared zone order, catch-all excluded.
func (g *Gazetteer) Names() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)
	return out
}

// CityCount returns how many distinct city names map to the zone.
func (g *Gazetteer) CityCount(zone string) int {
	n := 0
	for _, z := range g.index {
		if z == zone {
			n++
		}
	}
	return n
}

// SortIndex returns the position of a zone in the declared order. The
// catch-all (and any unknown zone) sorts after every declared zone.
func (g *Gazetteer) SortIndex(zone string) int {
	for i, name := range g.order {
		if name == zone {
			return i
		}
	}
	return len(g.order)
}

// Normalize prepares a header or city string for exact comparison:
// trim, NFC composition, and width folding. Arabic text pasted through
// spreadsheets often mixes presentation forms and composed/decomposed
// sequences that render identically but compare unequal.
func Normalize(s string) string {
	return strings.TrimSpace(width.Fold.String(norm.NFC.String(s)))
}
