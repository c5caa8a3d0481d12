package roadmaps

import (
	"embed"
	"encoding/json"
	"fmt"
	"sync"
)

//go:embed data/*.json
var dataFS embed.FS

// DayCount is the number of day-specific roadmaps.
const DayCount = 7

type actionEntry struct {
	Label string `json:"label"`
	Roadmap
}

type actionFile struct {
	Actions []actionEntry `json:"actions"`
	Default Roadmap       `json:"default"`
}

type dayEntry struct {
	Day      int      `json:"day"`
	Keywords []string `json:"keywords"`
	Roadmap
}

type genericDay struct {
	TitleFormat string `json:"titleFormat"`
	Roadmap
}

type dayFile struct {
	Days    []dayEntry `json:"days"`
	Generic genericDay `json:"generic"`
}

// Catalog holds the action and day roadmap tables. Table order is the
// resolution priority.
type Catalog struct {
	actions  []actionEntry
	fallback Roadmap
	days     []dayEntry
	generic  genericDay
}

// ParseCatalog builds a catalog from the action and day JSON documents.
func ParseCatalog(actionsJSON, daysJSON []byte) (*Catalog, error) {
	var af actionFile
	if err := json.Unmarshal(actionsJSON, &af); err != nil {
		return nil, fmt.Errorf("decode action roadmaps: %w", err)
	}
	var df dayFile
	if err := json.Unmarshal(daysJSON, &df); err != nil {
		return nil, fmt.Errorf("decode day roadmaps: %w", err)
	}
	if len(af.Actions) == 0 {
		return nil, fmt.Errorf("action roadmaps: table is empty")
	}
	if af.Default.Title == "" {
		return nil, fmt.Errorf("action roadmaps: default roadmap has no title")
	}
	if len(df.Days) != DayCount {
		return nil, fmt.Errorf("day roadmaps: want %d days, got %d", DayCount, len(df.Days))
	}
	for i, d := range df.Days {
		if d.Day != i+1 {
			return nil, fmt.Errorf("day roadmaps: entry %d has day %d", i, d.Day)
		}
		// Day roadmaps are authored as sections; steps and tips are derived.
		df.Days[i].Steps = stepsFromSections(d.Sections)
		df.Days[i].Tips = cloneStrings(d.ConfidenceTips)
	}
	if df.Generic.TitleFormat == "" {
		return nil, fmt.Errorf("day roadmaps: generic template has no titleFormat")
	}
	df.Generic.Steps = stepsFromSections(df.Generic.Sections)
	df.Generic.Tips = cloneStrings(df.Generic.ConfidenceTips)

	return &Catalog{
		actions:  af.Actions,
		fallback: af.Default,
		days:     df.Days,
		generic:  df.Generic,
	}, nil
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the catalog compiled into the binary.
func Default() *Catalog {
	defaultOnce.Do(func() {
		actions, err := dataFS.ReadFile("data/actions.json")
		if err != nil {
			panic(fmt.Sprintf("roadmaps: read actions: %v", err))
		}
		days, err := dataFS.ReadFile("data/days.json")
		if err != nil {
			panic(fmt.Sprintf("roadmaps: read days: %v", err))
		}
		c, err := ParseCatalog(actions, days)
		if err != nil {
			panic(fmt.Sprintf("roadmaps: %v", err))
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// Labels lists the action table keys in resolution order.
func (c *Catalog) Labels() []string {
	out := make([]string, 0, len(c.actions))
	for _, a := range c.actions {
		out = append(out, a.Label)
	}
	return out
}
