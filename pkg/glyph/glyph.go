// Package glyph defines the symbols used to mark calendar and dashboard
// entries per source.
package glyph

import "fmt"

type Glyph struct {
	Key     string
	Symbol  string
	Meaning string
}

const (
	escape        = "\x1b"
	resetCode     = 0
	boldCode      = 1
	underlineCode = 4
)

func Bold(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, boldCode, in, escape, resetCode)
}

func Underline(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, underlineCode, in, escape, resetCode)
}

// Source identifies where a calendar or dashboard entry came from.
type Source int

const (
	Water Source = iota
	Fertilize
	Project
	Manual
)

// DefaultGlyphs lists the source symbols in priority order.
func DefaultGlyphs() []Glyph {
	return []Glyph{
		{Key: "w", Symbol: "💧", Meaning: "watering due"},
		{Key: "f", Symbol: "🌿", Meaning: "fertilizing due"},
		{Key: "p", Symbol: "🧪", Meaning: "project milestone"},
		{Key: "t", Symbol: "📌", Meaning: "manual task"},
	}
}

func (s Source) Glyph() Glyph {
	g := DefaultGlyphs()
	if int(s) < 0 || int(s) >= len(g) {
		return Glyph{}
	}
	return g[s]
}

func (s Source) String() string {
	return s.Glyph().Symbol
}
