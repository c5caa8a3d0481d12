package roadmaps

import "strings"

// Step is one ordered stage of a roadmap.
type Step struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// SectionItem is a block of detailed activities inside a day section.
type SectionItem struct {
	Title   string   `json:"title"`
	Details []string `json:"details"`
}

// Section is a time slot of a day roadmap (morning, afternoon...).
type Section struct {
	Title string        `json:"title"`
	Items []SectionItem `json:"items"`
}

// CommonQuestions lists interview questions to rehearse.
type CommonQuestions struct {
	Technical  []string `json:"technical"`
	Behavioral []string `json:"behavioral"`
}

// Roadmap is static multi-step guidance resolved from a free-text label.
// Subject carries the label or focus the roadmap was resolved for.
type Roadmap struct {
	Title           string           `json:"title"`
	Subject         string           `json:"subject,omitempty"`
	Description     string           `json:"description"`
	Steps           []Step           `json:"steps"`
	Tips            []string         `json:"tips"`
	Resources       []string         `json:"resources,omitempty"`
	Sections        []Section        `json:"sections,omitempty"`
	ConfidenceTips  []string         `json:"confidenceTips,omitempty"`
	CommonQuestions *CommonQuestions `json:"commonQuestions,omitempty"`
}

// Clone returns a deep copy so callers never share table content.
func (r Roadmap) Clone() Roadmap {
	out := r
	out.Steps = append([]Step(nil), r.Steps...)
	out.Tips = cloneStrings(r.Tips)
	out.Resources = cloneStrings(r.Resources)
	out.ConfidenceTips = cloneStrings(r.ConfidenceTips)
	if r.Sections != nil {
		out.Sections = make([]Section, len(r.Sections))
		for i, s := range r.Sections {
			items := make([]SectionItem, len(s.Items))
			for j, it := range s.Items {
				items[j] = SectionItem{Title: it.Title, Details: cloneStrings(it.Details)}
			}
			out.Sections[i] = Section{Title: s.Title, Items: items}
		}
	}
	if r.CommonQuestions != nil {
		out.CommonQuestions = &CommonQuestions{
			Technical:  cloneStrings(r.CommonQuestions.Technical),
			Behavioral: cloneStrings(r.CommonQuestions.Behavioral),
		}
	}
	return out
}

// stepsFromSections summarizes each section as a step listing its item titles.
func stepsFromSections(sections []Section) []Step {
	steps := make([]Step, 0, len(sections))
	for _, s := range sections {
		titles := make([]string, 0, len(s.Items))
		for _, it := range s.Items {
			titles = append(titles, it.Title)
		}
		steps = append(steps, Step{Title: s.Title, Description: strings.Join(titles, "; ")})
	}
	return steps
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
