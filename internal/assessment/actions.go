package assessment

import "strings"

// Priority ranks how urgently a candidate should be put forward.
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// ActionSummary is the prioritized next-step recommendation.
type ActionSummary struct {
	Priority       Priority `json:"priority"`
	Recommendation string   `json:"recommendation"`
	ActionItems    []string `json:"actionItems"`
}

const defaultActionItem = "Complete the 7-day preparation plan"

const maxTargetRoles = 2

var recommendations = map[Status]string{
	StatusReady:       "Candidate is ready for placement. Schedule final interviews with partner companies.",
	StatusAlmostReady: "Candidate shows promise. Recommend 2-week intensive training before placement.",
	StatusNotReady:    "Candidate needs foundational work. Enroll in 4-week bootcamp program.",
}

// mockActionItems is the fixed list returned on the mock path.
var mockActionItems = []string{
	"Complete the 7-day preparation plan",
	"Update resume with recent projects",
	"Practice mock interviews",
	"Build GitHub portfolio",
}

var actionsByStatus = map[Status][]string{
	StatusReady: {
		"Update resume with recent projects",
		"Practice mock interviews",
		"Build GitHub portfolio",
	},
	StatusAlmostReady: {
		"Complete the 7-day preparation plan",
		"Schedule mock interview after 7 days",
		"Update resume with recent projects",
	},
	StatusNotReady: {
		"Delay placements and focus on skill improvement",
		"Complete the 7-day preparation plan",
		"Practice mock interviews",
	},
}

// PriorityFor maps a readiness tier to an action priority.
func PriorityFor(status Status) Priority {
	switch status {
	case StatusReady:
		return PriorityHigh
	case StatusAlmostReady:
		return PriorityMedium
	default:
		return PriorityLow
	}
}

// RecommendationFor returns the fixed recommendation text for a tier.
func RecommendationFor(status Status) string {
	if text, ok := recommendations[status]; ok {
		return text
	}
	return recommendations[StatusNotReady]
}

// SummarizeActions derives the action summary from readiness and role fit.
// Action items use the same wording as the roadmap table so each resolves
// to a specific roadmap.
func SummarizeActions(readiness Readiness, suitability RoleSuitability) ActionSummary {
	items := cloneStrings(actionsByStatus[readiness.Status])
	if len(suitability.Recommended) > 0 {
		names := make([]string, 0, maxTargetRoles)
		for _, r := range suitability.Recommended {
			if len(names) == maxTargetRoles {
				break
			}
			names = append(names, r.Role)
		}
		items = append(items, "Target roles: "+strings.Join(names, ", "))
	}
	if len(items) == 0 {
		items = []string{defaultActionItem}
	}
	return ActionSummary{
		Priority:       PriorityFor(readiness.Status),
		Recommendation: RecommendationFor(readiness.Status),
		ActionItems:    items,
	}
}
