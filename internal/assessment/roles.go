package assessment

import (
	"math"
	"sort"
)

// SkillRequirement is one minimum threshold inside a role definition.
type SkillRequirement struct {
	Skill   string `json:"skill"`
	Minimum int    `json:"minimum"`
}

// RoleRequirement describes a target job role and its skill minimums.
type RoleRequirement struct {
	Role         string             `json:"role"`
	Description  string             `json:"description"`
	Requirements []SkillRequirement `json:"requirements"`
}

// RecommendedRole is a role the candidate qualifies for.
type RecommendedRole struct {
	Role       string   `json:"role"`
	MatchScore int      `json:"matchScore"`
	Strengths  []string `json:"strengths"`
}

// RejectedRole is a role with at least one unmet threshold.
type RejectedRole struct {
	Role string   `json:"role"`
	Gaps []string `json:"gaps"`
}

// RoleSuitability splits a role catalog into recommended and rejected roles.
type RoleSuitability struct {
	Recommended    []RecommendedRole `json:"recommended"`
	NotRecommended []RejectedRole    `json:"notRecommended"`
}

// SkillGap is the shortfall for one skill of a rejected role.
type SkillGap struct {
	Skill          string `json:"skill"`
	CandidateScore int    `json:"candidateScore"`
	RequiredScore  int    `json:"requiredScore"`
	Gap            int    `json:"gap"`
}

// RoleGap groups the shortfalls of one rejected role.
type RoleGap struct {
	Role     string     `json:"role"`
	Gaps     []SkillGap `json:"gaps"`
	TotalGap int        `json:"totalGap"`
}

// AverageGap is the rounded mean gap, or 0 when there are none.
func (g RoleGap) AverageGap() int {
	if len(g.Gaps) == 0 {
		return 0
	}
	return int(math.Round(float64(g.TotalGap) / float64(len(g.Gaps))))
}

// MockRoleRequirements returns the static role catalog used when the
// requirements service is unreachable.
func MockRoleRequirements() []RoleRequirement {
	return []RoleRequirement{
		{
			Role:        "Data Analyst",
			Description: "Analyze data to provide actionable business insights",
			Requirements: []SkillRequirement{
				{Skill: "Excel", Minimum: 70},
				{Skill: "SQL", Minimum: 75},
				{Skill: "Python", Minimum: 60},
				{Skill: "Statistics", Minimum: 65},
				{Skill: "BI Tools", Minimum: 70},
			},
		},
		{
			Role:        "Business Intelligence Analyst",
			Description: "Create dashboards and reports for business decision-making",
			Requirements: []SkillRequirement{
				{Skill: "Excel", Minimum: 75},
				{Skill: "SQL", Minimum: 80},
				{Skill: "BI Tools", Minimum: 85},
				{Skill: "Statistics", Minimum: 60},
			},
		},
		{
			Role:        "Data Scientist",
			Description: "Build predictive models and derive insights from complex data",
			Requirements: []SkillRequirement{
				{Skill: "Python", Minimum: 80},
				{Skill: "Statistics", Minimum: 80},
				{Skill: "Machine Learning", Minimum: 75},
				{Skill: "SQL", Minimum: 70},
			},
		},
		{
			Role:        "ML Engineer",
			Description: "Deploy and maintain machine learning models in production",
			Requirements: []SkillRequirement{
				{Skill: "Python", Minimum: 85},
				{Skill: "Machine Learning", Minimum: 85},
				{Skill: "SQL", Minimum: 65},
				{Skill: "Statistics", Minimum: 70},
			},
		},
	}
}

type requirementCheck struct {
	skill     Skill
	candidate int
	required  int
}

// checkRole resolves a role's requirements against the candidate's scores.
// Requirements naming an unknown skill are skipped.
func checkRole(scores SkillScores, role RoleRequirement) []requirementCheck {
	checks := make([]requirementCheck, 0, len(role.Requirements))
	for _, req := range role.Requirements {
		skill, ok := MatchSkill(req.Skill)
		if !ok {
			continue
		}
		checks = append(checks, requirementCheck{
			skill:     skill,
			candidate: scores.Get(skill),
			required:  req.Minimum,
		})
	}
	return checks
}

// MatchRoles classifies each role as recommended (every threshold met) or
// not recommended.
func MatchRoles(scores SkillScores, roles []RoleRequirement) RoleSuitability {
	out := RoleSuitability{
		Recommended:    []RecommendedRole{},
		NotRecommended: []RejectedRole{},
	}
	for _, role := range roles {
		checks := checkRole(scores, role)
		var failing []string
		for _, c := range checks {
			if c.candidate < c.required {
				failing = append(failing, c.skill.DisplayName())
			}
		}
		if len(failing) > 0 {
			out.NotRecommended = append(out.NotRecommended, RejectedRole{Role: role.Role, Gaps: failing})
			continue
		}
		out.Recommended = append(out.Recommended, RecommendedRole{
			Role:       role.Role,
			MatchScore: matchScore(checks),
			Strengths:  strengthLabels(checks),
		})
	}
	sort.SliceStable(out.Recommended, func(i, j int) bool {
		return out.Recommended[i].MatchScore > out.Recommended[j].MatchScore
	})
	return out
}

// ComputeGaps returns one RoleGap per role with at least one unmet threshold.
func ComputeGaps(scores SkillScores, roles []RoleRequirement) []RoleGap {
	out := []RoleGap{}
	for _, role := range roles {
		var gaps []SkillGap
		total := 0
		for _, c := range checkRole(scores, role) {
			if c.candidate >= c.required {
				continue
			}
			gap := c.required - c.candidate
			gaps = append(gaps, SkillGap{
				Skill:          c.skill.DisplayName(),
				CandidateScore: c.candidate,
				RequiredScore:  c.required,
				Gap:            gap,
			})
			total += gap
		}
		if len(gaps) == 0 {
			continue
		}
		out = append(out, RoleGap{Role: role.Role, Gaps: gaps, TotalGap: total})
	}
	return out
}

func matchScore(checks []requirementCheck) int {
	if len(checks) == 0 {
		return MaxScore
	}
	sum := 0.0
	for _, c := range checks {
		if c.required <= 0 {
			sum++
			continue
		}
		sum += math.Min(float64(c.candidate)/float64(c.required), 1)
	}
	return int(math.Round(100 * sum / float64(len(checks))))
}

func strengthLabels(checks []requirementCheck) []string {
	labels := []string{}
	for _, c := range checks {
		if c.candidate >= readyThreshold {
			labels = append(labels, "Strong "+c.skill.DisplayName())
		}
	}
	if len(labels) > 0 {
		return labels
	}
	for _, c := range checks {
		labels = append(labels, "Meets "+c.skill.DisplayName()+" requirement")
	}
	return labels
}
