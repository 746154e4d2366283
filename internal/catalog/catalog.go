// Package catalog holds the static table of welfare schemes and the
// localized read accessors over it. A Catalog is immutable once built and
// safe for concurrent use.
package catalog

import (
	"fmt"
	"strings"
)

// Catalog is an ordered, read-only set of schemes.
type Catalog struct {
	schemes []Scheme
	byID    map[string]int
}

// New builds a catalog from schemes, preserving their order. Scheme ids
// must be unique and non-empty.
func New(schemes []Scheme) (*Catalog, error) {
	c := &Catalog{
		schemes: make([]Scheme, len(schemes)),
		byID:    make(map[string]int, len(schemes)),
	}
	copy(c.schemes, schemes)

	for i, s := range c.schemes {
		if s.ID == "" {
			return nil, fmt.Errorf("scheme at index %d has no id", i)
		}
		if _, dup := c.byID[s.ID]; dup {
			return nil, fmt.Errorf("duplicate scheme id %q", s.ID)
		}
		c.byID[s.ID] = i
	}
	return c, nil
}

// Len returns the number of schemes.
func (c *Catalog) Len() int {
	return len(c.schemes)
}

// Schemes returns the raw records in catalog order.
func (c *Catalog) Schemes() []Scheme {
	out := make([]Scheme, len(c.schemes))
	copy(out, c.schemes)
	return out
}

// Scheme returns the raw record for id.
func (c *Catalog) Scheme(id string) (Scheme, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Scheme{}, false
	}
	return c.schemes[i], true
}

// All lists every scheme in lang.
func (c *Catalog) All(lang string) []View {
	return c.filter(lang, func(Scheme) bool { return true })
}

// ByID returns the detail view of a scheme. ok is false for unknown ids.
func (c *Catalog) ByID(id, lang string) (View, bool) {
	s, ok := c.Scheme(id)
	if !ok {
		return View{}, false
	}
	return s.View(lang, true), true
}

// ByCategory lists the schemes filed under category.
func (c *Catalog) ByCategory(category, lang string) []View {
	return c.filter(lang, func(s Scheme) bool { return s.Category == category })
}

// List is ByCategory when category is set and All otherwise.
func (c *Catalog) List(lang, category string) []View {
	if category == "" {
		return c.All(lang)
	}
	return c.ByCategory(category, lang)
}

// Search returns schemes whose canonical name, id, category or localized
// name, description or short description contain query, ignoring case.
// Extending a query can only narrow the result.
func (c *Catalog) Search(query, lang string) []View {
	q := strings.ToLower(query)
	return c.filter(lang, func(s Scheme) bool {
		t := s.Translation(lang)
		for _, field := range []string{s.Name, s.ID, s.Category, t.Name, t.Description, t.ShortDescription} {
			if strings.Contains(strings.ToLower(field), q) {
				return true
			}
		}
		return false
	})
}

// Categories lists every category with its scheme count, including empty ones.
func (c *Catalog) Categories() []CategorySummary {
	counts := make(map[string]int, len(categories))
	for _, s := range c.schemes {
		counts[s.Category]++
	}

	out := make([]CategorySummary, 0, len(categories))
	for _, cat := range categories {
		out = append(out, CategorySummary{Category: cat, SchemeCount: counts[cat.ID]})
	}
	return out
}

func (c *Catalog) filter(lang string, keep func(Scheme) bool) []View {
	out := make([]View, 0, len(c.schemes))
	for _, s := range c.schemes {
		if keep(s) {
			out = append(out, s.View(lang, false))
		}
	}
	return out
}
