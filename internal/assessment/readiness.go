package assessment

import (
	"fmt"
	"math"
)

// Status is the overall readiness tier.
type Status string

const (
	StatusReady       Status = "Ready"
	StatusAlmostReady Status = "Almost Ready"
	StatusNotReady    Status = "Not Ready"
)

const (
	readyThreshold       = 70
	almostReadyThreshold = 50
)

// SkillBreakdown is the per-skill line of a readiness result.
type SkillBreakdown struct {
	Skill  string `json:"skill"`
	Score  int    `json:"score"`
	Status string `json:"status"`
}

// Readiness is the derived placement-readiness result.
type Readiness struct {
	Status         Status           `json:"status"`
	Score          int              `json:"score"`
	Reasoning      []string         `json:"reasoning"`
	Improvements   []string         `json:"improvements"`
	SkillBreakdown []SkillBreakdown `json:"skillBreakdown"`
}

// ReadinessTemplates holds the explanatory text attached to a readiness result.
type ReadinessTemplates struct {
	Reasoning    []string
	Improvements []string
}

// DefaultReadinessTemplates is the illustrative text used by the mock path.
var DefaultReadinessTemplates = ReadinessTemplates{
	Reasoning: []string{
		"Strong foundation in data analysis fundamentals",
		"Demonstrated proficiency in core technical skills",
		"Shows potential for rapid skill development",
	},
	Improvements: []string{
		"Focus on strengthening machine learning concepts",
		"Practice more complex SQL queries",
		"Build portfolio projects showcasing skills",
	},
}

// OverallScore is the rounded arithmetic mean of the six scores.
func OverallScore(scores SkillScores) int {
	sum := 0
	for _, skill := range Skills {
		sum += scores.Get(skill)
	}
	return int(math.Round(float64(sum) / float64(len(Skills))))
}

// ClassifyScore maps an overall score to its readiness tier.
func ClassifyScore(score int) Status {
	switch {
	case score >= readyThreshold:
		return StatusReady
	case score >= almostReadyThreshold:
		return StatusAlmostReady
	default:
		return StatusNotReady
	}
}

// DeriveReadiness computes readiness with the default template text.
func DeriveReadiness(scores SkillScores) Readiness {
	return DeriveReadinessWith(scores, DefaultReadinessTemplates)
}

// DeriveReadinessWith computes readiness using the supplied template text.
func DeriveReadinessWith(scores SkillScores, tpl ReadinessTemplates) Readiness {
	score := OverallScore(scores)
	breakdown := make([]SkillBreakdown, 0, len(Skills))
	for _, skill := range Skills {
		v := scores.Get(skill)
		breakdown = append(breakdown, SkillBreakdown{
			Skill:  skill.DisplayName(),
			Score:  v,
			Status: SkillLabel(v),
		})
	}
	return Readiness{
		Status:         ClassifyScore(score),
		Score:          score,
		Reasoning:      cloneStrings(tpl.Reasoning),
		Improvements:   cloneStrings(tpl.Improvements),
		SkillBreakdown: breakdown,
	}
}

// explainReadiness builds score-derived reasoning for the service path.
func explainReadiness(scores SkillScores, score int) ReadinessTemplates {
	strongest, weakest := Skills[0], Skills[0]
	for _, skill := range Skills[1:] {
		if scores.Get(skill) > scores.Get(strongest) {
			strongest = skill
		}
		if scores.Get(skill) < scores.Get(weakest) {
			weakest = skill
		}
	}

	reasoning := []string{
		fmt.Sprintf("Overall score of %d across six core skills", score),
		fmt.Sprintf("Strongest skill: %s (%d)", strongest.DisplayName(), scores.Get(strongest)),
		fmt.Sprintf("Weakest skill: %s (%d)", weakest.DisplayName(), scores.Get(weakest)),
	}

	var improvements []string
	for _, skill := range Skills {
		if v := scores.Get(skill); v < readyThreshold {
			improvements = append(improvements, fmt.Sprintf("Raise %s from %d to at least %d", skill.DisplayName(), v, readyThreshold))
		}
	}
	if len(improvements) == 0 {
		improvements = []string{"Maintain current skill levels and focus on interview practice"}
	}
	return ReadinessTemplates{Reasoning: reasoning, Improvements: improvements}
}

func cloneStrings(in []string) []string {
	if in == nil {
		return []string{}
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
