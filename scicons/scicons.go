// Package scicons provides the small decorative vector fragments drawn
// inside node cards. Glyphs are defined as path data in a fixed 24x24
// viewbox; callers get ready-to-embed SVG markup, tinted and scaled.
package scicons

import (
	"fmt"
	"strings"
	"sync"
)

// ViewBox is the coordinate space every glyph is authored in.
const ViewBox = 24.0

type Glyph struct {
	Name  string
	Paths []string
}

var builtin = map[string]Glyph{
	"server": {Name: "server", Paths: []string{
		"M3 4h18v6H3z",
		"M3 14h18v6H3z",
	}},
	"database": {Name: "database", Paths: []string{
		"M4 6c0-1.7 3.6-3 8-3s8 1.3 8 3v12c0 1.7-3.6 3-8 3s-8-1.3-8-3z",
	}},
	"cloud": {Name: "cloud", Paths: []string{
		"M7 18h10a4 4 0 0 0 0-8 6 6 0 0 0-11.3-1A4.5 4.5 0 0 0 7 18z",
	}},
	"user": {Name: "user", Paths: []string{
		"M12 4a4 4 0 1 1 0 8 4 4 0 0 1 0-8z",
		"M4 20c0-4 3.6-6 8-6s8 2 8 6z",
	}},
	"gear": {Name: "gear", Paths: []string{
		"M10 2h4v4h-4z",
		"M10 18h4v4h-4z",
		"M2 10h4v4H2z",
		"M18 10h4v4h-4z",
		"M12 7a5 5 0 1 0 0 10 5 5 0 0 0 0-10z",
	}},
	"queue": {Name: "queue", Paths: []string{
		"M3 6h5v12H3z",
		"M10 6h5v12h-5z",
		"M17 6h4v12h-4z",
	}},
	"lock": {Name: "lock", Paths: []string{
		"M7 11V8a5 5 0 0 1 10 0v3h1v10H6V11z",
	}},
	"globe": {Name: "globe", Paths: []string{
		"M12 2a10 10 0 1 0 0 20 10 10 0 0 0 0-20z",
	}},
	"bolt": {Name: "bolt", Paths: []string{
		"M13 2 4 14h6l-1 8 9-12h-6z",
	}},
}

// fallback is drawn for unknown icon names so a misspelled icon still
// renders something instead of leaving a hole in the card.
var fallback = Glyph{Name: "fallback", Paths: []string{
	"M12 3a9 9 0 1 0 0 18 9 9 0 0 0 0-18z",
}}

// Lookup resolves a glyph by name, falling back to the default glyph.
// The second return reports whether the name was known.
func Lookup(name string) (Glyph, bool) {
	g, ok := builtin[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return fallback, false
	}
	return g, true
}

// Names lists the built-in glyph names in no particular order.
func Names() []string {
	names := make([]string, 0, len(builtin))
	for name := range builtin {
		names = append(names, name)
	}
	return names
}

var (
	markupMu    sync.RWMutex
	markupCache = map[string]string{}
)

// Markup returns SVG markup for the named glyph centered at (x, y) at
// the given size, filled with color. Results are cached: icon sets are
// tiny and the same (name, size, color) triple repeats across nodes.
func Markup(name string, x, y, size float64, color string) string {
	key := fmt.Sprintf("%s|%.2f|%.2f|%.2f|%s", name, x, y, size, color)

	markupMu.RLock()
	cached, ok := markupCache[key]
	markupMu.RUnlock()
	if ok {
		return cached
	}

	glyph, _ := Lookup(name)
	scale := size / ViewBox

	var b strings.Builder
	fmt.Fprintf(&b, `<g transform="translate(%.2f,%.2f) scale(%.4f)">`,
		x-size/2, y-size/2, scale)
	for _, d := range glyph.Paths {
		fmt.Fprintf(&b, `<path d="%s" fill="%s" />`, d, color)
	}
	b.WriteString("</g>")
	markup := b.String()

	markupMu.Lock()
	markupCache[key] = markup
	markupMu.Unlock()
	return markup
}
