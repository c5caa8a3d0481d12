package assessment

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// PlanDays is the length of a completed preparation plan.
const PlanDays = 7

// PreparationDay is one day of the preparation plan. Day identifies the entry.
type PreparationDay struct {
	Day        int      `json:"day"`
	Focus      string   `json:"focus"`
	Activities []string `json:"activities"`
}

var defaultPlan = [PlanDays]PreparationDay{
	{Day: 1, Focus: "Communication and fundamentals mastery", Activities: []string{"Practice explaining technical concepts", "Review core fundamentals", "Build communication skills"}},
	{Day: 2, Focus: "SQL mastery and database skills", Activities: []string{"Practice complex joins", "Work on query optimization", "Solve SQL problems"}},
	{Day: 3, Focus: "Python and problem-solving mastery", Activities: []string{"Solve DSA problems", "Practice debugging", "Work on Python projects"}},
	{Day: 4, Focus: "Statistics and probability mastery", Activities: []string{"Review statistical concepts", "Practice probability problems", "Work on case studies"}},
	{Day: 5, Focus: "Machine learning and advanced skills", Activities: []string{"Review ML algorithms", "Work on ML project", "Practice model evaluation"}},
	{Day: 6, Focus: "Full mock interview (technical + HR)", Activities: []string{"Review technical concepts", "Practice STAR method", "Prepare questions"}},
	{Day: 7, Focus: "Resume refinement and confidence preparation", Activities: []string{"Update resume", "Prepare portfolio", "Practice confidence"}},
}

// DefaultPlanDay returns the fallback entry for day, or false outside 1..7.
func DefaultPlanDay(day int) (PreparationDay, bool) {
	if day < 1 || day > PlanDays {
		return PreparationDay{}, false
	}
	return clonePlanDay(defaultPlan[day-1]), true
}

// CompletePlan returns exactly seven entries sorted by day. Later entries for
// the same day replace earlier ones, missing days use DefaultPlanDay and
// entries outside 1..7 are dropped.
func CompletePlan(days []PreparationDay) []PreparationDay {
	byDay := make(map[int]PreparationDay, PlanDays)
	for _, d := range days {
		if d.Day < 1 || d.Day > PlanDays {
			continue
		}
		byDay[d.Day] = clonePlanDay(d)
	}
	for n := 1; n <= PlanDays; n++ {
		if _, ok := byDay[n]; !ok {
			byDay[n], _ = DefaultPlanDay(n)
		}
	}
	out := make([]PreparationDay, 0, PlanDays)
	for _, d := range byDay {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day < out[j].Day })
	return out
}

var dayPrefix = regexp.MustCompile(`(?i)^\s*day\s*(\d+)\s*:\s*(.*)$`)

// BuildPlan turns focus lines such as "Day 2: SQL drills" into a completed
// plan. Lines without a day prefix take their 1-based position.
func BuildPlan(lines []string) []PreparationDay {
	days := make([]PreparationDay, 0, len(lines))
	for i, line := range lines {
		day, focus := i+1, strings.TrimSpace(line)
		if m := dayPrefix.FindStringSubmatch(line); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil {
				day = n
			}
			focus = strings.TrimSpace(m[2])
		}
		if focus == "" {
			continue
		}
		days = append(days, PreparationDay{Day: day, Focus: focus, Activities: ActivitiesFor(focus)})
	}
	return CompletePlan(days)
}

type activityRule struct {
	keywords   []string
	activities []string
}

var activityRules = []activityRule{
	{
		keywords: []string{"mock interview", "interview"},
		activities: []string{
			"Review technical concepts and coding problems",
			"Practice STAR method for behavioral questions",
			"Prepare questions to ask the interviewer",
			"Set up interview environment and test equipment",
			"Review your projects and be ready to explain them",
		},
	},
	{
		keywords: []string{"sql"},
		activities: []string{
			"Practice complex joins and subqueries",
			"Work on query optimization techniques",
			"Solve SQL problems on LeetCode/HackerRank",
			"Build a mini-project using SQL",
		},
	},
	{
		keywords: []string{"python"},
		activities: []string{
			"Solve data structures and algorithms problems",
			"Practice debugging and code review",
			"Work on Python-specific projects",
			"Review Python best practices and patterns",
		},
	},
	{
		keywords: []string{"communication", "explain"},
		activities: []string{
			"Practice explaining technical concepts clearly",
			"Record yourself and review for improvement",
			"Practice STAR method storytelling",
			"Work on clarity and structure in explanations",
		},
	},
	{
		keywords: []string{"statistics", "probability"},
		activities: []string{
			"Review core statistical concepts",
			"Practice probability problems",
			"Work on case studies and analysis",
			"Apply statistics to real-world scenarios",
		},
	},
	{
		keywords: []string{"machine learning", "ml"},
		activities: []string{
			"Review ML algorithms and concepts",
			"Work on a mini ML project",
			"Practice model evaluation techniques",
			"Study real-world ML applications",
		},
	},
	{
		keywords: []string{"resume", "confidence"},
		activities: []string{
			"Update resume with recent projects",
			"Prepare portfolio and GitHub profile",
			"Practice confidence-building exercises",
			"Review and refine your preparation",
		},
	},
}

var defaultActivities = []string{
	"Review core concepts related to today's focus",
	"Practice hands-on exercises and problems",
	"Apply learning through mini-projects",
	"Document progress and plan next steps",
}

// ActivitiesFor picks detailed activities for a focus line. Rules are checked
// in order and the first keyword hit wins.
func ActivitiesFor(focus string) []string {
	lower := strings.ToLower(focus)
	for _, rule := range activityRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return cloneStrings(rule.activities)
			}
		}
	}
	return cloneStrings(defaultActivities)
}

func clonePlanDay(d PreparationDay) PreparationDay {
	d.Activities = cloneStrings(d.Activities)
	return d
}
