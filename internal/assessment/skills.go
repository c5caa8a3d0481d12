package assessment

import "strings"

// Skill identifies one of the six scored skills.
type Skill string

const (
	SkillExcel  Skill = "excel"
	SkillSQL    Skill = "sql"
	SkillPython Skill = "python"
	SkillStats  Skill = "stats"
	SkillML     Skill = "ml"
	SkillBI     Skill = "bi"
)

const (
	MinScore = 0
	MaxScore = 100
)

// Skills lists every skill in display order.
var Skills = []Skill{SkillExcel, SkillSQL, SkillPython, SkillStats, SkillML, SkillBI}

var skillNames = map[Skill]string{
	SkillExcel:  "Excel",
	SkillSQL:    "SQL",
	SkillPython: "Python",
	SkillStats:  "Statistics",
	SkillML:     "Machine Learning",
	SkillBI:     "BI Tools",
}

// skillAliases are alternative spellings seen in role catalogs.
var skillAliases = map[Skill][]string{
	SkillStats: {"statistics & probability", "probability"},
	SkillBI:    {"tableau & power bi", "tableau", "power bi"},
}

// DisplayName returns the human-readable skill name.
func (s Skill) DisplayName() string {
	if name, ok := skillNames[s]; ok {
		return name
	}
	return string(s)
}

// SkillScores holds the six candidate scores, each expected in [0,100].
type SkillScores struct {
	Excel  int `json:"excel"`
	SQL    int `json:"sql"`
	Python int `json:"python"`
	Stats  int `json:"stats"`
	ML     int `json:"ml"`
	BI     int `json:"bi"`
}

// Get returns the score for skill.
func (s SkillScores) Get(skill Skill) int {
	switch skill {
	case SkillExcel:
		return s.Excel
	case SkillSQL:
		return s.SQL
	case SkillPython:
		return s.Python
	case SkillStats:
		return s.Stats
	case SkillML:
		return s.ML
	case SkillBI:
		return s.BI
	default:
		return 0
	}
}

// ByName returns scores keyed by display name.
func (s SkillScores) ByName() map[string]int {
	out := make(map[string]int, len(Skills))
	for _, skill := range Skills {
		out[skill.DisplayName()] = s.Get(skill)
	}
	return out
}

// Validate reports every score outside [0,100].
func (s SkillScores) Validate() error {
	var fields []FieldError
	for _, skill := range Skills {
		v := s.Get(skill)
		if v < MinScore || v > MaxScore {
			fields = append(fields, FieldError{Field: string(skill), Issue: "must be between 0 and 100"})
		}
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// MatchSkill maps a free-form skill name ("Python (Advanced)", "Tableau & Power BI")
// to a score key using case-insensitive containment in either direction.
func MatchSkill(name string) (Skill, bool) {
	lower := strings.ToLower(strings.TrimSpace(name))
	if lower == "" {
		return "", false
	}
	for _, skill := range Skills {
		display := strings.ToLower(skill.DisplayName())
		if strings.Contains(lower, display) || strings.Contains(display, lower) {
			return skill, true
		}
		for _, alias := range skillAliases[skill] {
			if strings.Contains(lower, alias) {
				return skill, true
			}
		}
		for _, word := range strings.Fields(lower) {
			if word == string(skill) {
				return skill, true
			}
		}
	}
	return "", false
}

// SkillLabel classifies a single skill score.
func SkillLabel(score int) string {
	switch {
	case score >= 80:
		return "Excellent"
	case score >= 70:
		return "Good"
	case score >= 50:
		return "Average"
	default:
		return "Needs Improvement"
	}
}

var skillWeights = map[Skill]float64{
	SkillExcel:  0.10,
	SkillSQL:    0.20,
	SkillPython: 0.20,
	SkillStats:  0.20,
	SkillML:     0.15,
	SkillBI:     0.15,
}

// SkillWeights returns the relative weight of each skill keyed by display name.
// The weights sum to 1.
func SkillWeights() map[string]float64 {
	out := make(map[string]float64, len(skillWeights))
	for skill, w := range skillWeights {
		out[skill.DisplayName()] = w
	}
	return out
}
