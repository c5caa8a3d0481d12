package roadmaps

import (
	"fmt"
	"strings"
)

// Resolve maps an action item to its roadmap: exact key first, then
// case-insensitive containment of the pre-colon parts in either direction
// walking the table in order, then the default "Action Plan".
func (c *Catalog) Resolve(label string) Roadmap {
	if strings.TrimSpace(label) == "" {
		return c.fallbackFor(label)
	}
	for _, a := range c.actions {
		if a.Label == label {
			return withSubject(a.Roadmap, label)
		}
	}

	lower := strings.ToLower(label)
	labelHead := strings.TrimSpace(head(lower))
	for _, a := range c.actions {
		key := strings.ToLower(a.Label)
		if strings.Contains(lower, head(key)) {
			return withSubject(a.Roadmap, label)
		}
		if labelHead != "" && strings.Contains(key, labelHead) {
			return withSubject(a.Roadmap, label)
		}
	}
	return c.fallbackFor(label)
}

// ResolveDay maps a preparation-plan day to its roadmap. A day in 1..7
// selects that day directly; otherwise the focus text is matched against
// each day's keywords in day order, and finally the generic template is used.
func (c *Catalog) ResolveDay(day int, focus string) Roadmap {
	if day >= 1 && day <= len(c.days) {
		return withSubject(c.days[day-1].Roadmap, focus)
	}
	lower := strings.ToLower(focus)
	for _, d := range c.days {
		for _, kw := range d.Keywords {
			if strings.Contains(lower, kw) {
				return withSubject(d.Roadmap, focus)
			}
		}
	}
	r := c.generic.Roadmap.Clone()
	r.Title = fmt.Sprintf(c.generic.TitleFormat, day, focus)
	r.Subject = focus
	return r
}

func (c *Catalog) fallbackFor(label string) Roadmap {
	return withSubject(c.fallback, label)
}

func withSubject(r Roadmap, subject string) Roadmap {
	out := r.Clone()
	out.Subject = strings.TrimSpace(subject)
	return out
}

func head(s string) string {
	if i := strings.Index(s, ":"); i >= 0 {
		return s[:i]
	}
	return s
}

// Resolve resolves an action item against the built-in catalog.
func Resolve(label string) Roadmap { return Default().Resolve(label) }

// ResolveDay resolves a plan day against the built-in catalog.
func ResolveDay(day int, focus string) Roadmap { return Default().ResolveDay(day, focus) }

// Labels lists the built-in action keys in resolution order.
func Labels() []string { return Default().Labels() }
