// Package brief turns a design quiz submission into image search queries and
// a build prompt. Everything here is pure and safe for concurrent use.
package brief

import "github.com/felixbrock/designkit/internal/domain"

// FeelingQueries returns the three search queries for a feeling label.
func FeelingQueries(feeling string) ([]string, bool) {
	queries, ok := domain.FeelingQueries[feeling]
	if !ok {
		return nil, false
	}
	return queries[:], true
}

// InspirationQueries returns the two search queries for an inspiration label.
func InspirationQueries(inspiration string) ([]string, bool) {
	insp, ok := domain.Inspirations[inspiration]
	if !ok {
		return nil, false
	}
	return insp.Queries[:], true
}

// Palette returns the colours and description of a palette key.
func Palette(key string) (colors []string, description string, ok bool) {
	p, ok := domain.Palettes[key]
	if !ok {
		return nil, "", false
	}
	return p.Colors[:], p.Description, true
}

// Style returns the visual style sentence for an inspiration label.
func Style(inspiration string) (string, bool) {
	insp, ok := domain.Inspirations[inspiration]
	if !ok {
		return "", false
	}
	return insp.Style, true
}
