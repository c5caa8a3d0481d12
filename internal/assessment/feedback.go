package assessment

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

const (
	defaultStrength = "Basic understanding of core concepts"
	defaultArea     = "No major technical gaps identified"
)

type feedbackTopic struct {
	keywords []string
	strength string
	area     string
	focus    string
}

// feedbackTopics is checked in order; keywords match at the start of a word.
var feedbackTopics = []feedbackTopic{
	{
		keywords: []string{"communicat", "explain", "articulat", "present"},
		strength: "Clear communication skills",
		area:     "Communication and explanation of technical concepts",
		focus:    "Communication and fundamentals mastery",
	},
	{
		keywords: []string{"sql", "quer", "database", "join"},
		strength: "Solid SQL and database knowledge",
		area:     "SQL and database skills",
		focus:    "SQL mastery and database skills",
	},
	{
		keywords: []string{"python", "coding", "code", "programming", "debug"},
		strength: "Programming proficiency in Python",
		area:     "Python programming and debugging",
		focus:    "Python and problem-solving mastery",
	},
	{
		keywords: []string{"problem", "analytical", "logic", "reasoning"},
		strength: "Problem-solving approach",
		area:     "Structured problem-solving",
		focus:    "Python and problem-solving mastery",
	},
	{
		keywords: []string{"statistic", "probabilit", "hypothesis"},
		strength: "Good grasp of statistics",
		area:     "Statistics and probability fundamentals",
		focus:    "Statistics and probability mastery",
	},
	{
		keywords: []string{"machine learning", "ml", "model", "algorithm"},
		strength: "Understanding of machine learning concepts",
		area:     "Machine learning concepts",
		focus:    "Machine learning and advanced skills",
	},
	{
		keywords: []string{"technical", "knowledge", "fundamental", "concept"},
		strength: "Technical knowledge demonstration",
		area:     "Depth of technical explanations",
		focus:    "Communication and fundamentals mastery",
	},
	{
		keywords: []string{"project", "portfolio", "real-world", "example"},
		strength: "Relevant project experience",
		area:     "Real-world project examples",
		focus:    "Resume refinement and confidence preparation",
	},
	{
		keywords: []string{"domain", "industry", "business"},
		strength: "Business and domain awareness",
		area:     "Industry domain knowledge",
		focus:    "Full mock interview (technical + HR)",
	},
	{
		keywords: []string{"confiden", "nervous", "hesita", "anxious"},
		strength: "Confident delivery",
		area:     "Interview confidence",
		focus:    "Full mock interview (technical + HR)",
	},
	{
		keywords: []string{"enthusias", "eager", "motivat", "curious", "passion"},
		strength: "Enthusiasm for learning",
		area:     "Engagement and motivation",
		focus:    "Communication and fundamentals mastery",
	},
}

// Cues that mark a clause as criticism. A trailing space requires a whole word.
var negativeCues = []string{
	"weak", "lack", "struggl", "need", "improv", "limited", "poor", "not ", "no ",
	"could be better", "difficult", "nervous", "hesita", "anxious", "gap", "unclear",
	"insufficient", "basic", "shallow", "missing", "unable", "cannot", "can't",
	"didn't", "doesn't",
}

var clauseBreak = regexp.MustCompile(`(?i)[.;!?\n]+|,?\s+\b(?:but|however|although|though|yet|while)\b`)

// AnalyzeFeedback extracts strengths and areas to improve from free-text
// interview feedback. Each clause is classified as praise or criticism, then
// credited to every topic it mentions. Empty lists fall back to defaults.
func AnalyzeFeedback(text string) FeedbackAnalysis {
	var strengths, areas []string
	seenStrength := map[string]bool{}
	seenArea := map[string]bool{}

	for _, clause := range clauseBreak.Split(strings.ToLower(text), -1) {
		padded := padWords(clause)
		if strings.TrimSpace(padded) == "" {
			continue
		}
		negative := hasCue(padded, negativeCues)
		for _, topic := range feedbackTopics {
			if !hasCue(padded, topic.keywords) {
				continue
			}
			if negative {
				if !seenArea[topic.area] {
					seenArea[topic.area] = true
					areas = append(areas, topic.area)
				}
				continue
			}
			if !seenStrength[topic.strength] {
				seenStrength[topic.strength] = true
				strengths = append(strengths, topic.strength)
			}
		}
	}

	if len(strengths) == 0 {
		strengths = []string{defaultStrength}
	}
	if len(areas) == 0 {
		areas = []string{defaultArea}
	}
	return FeedbackAnalysis{Strengths: strengths, AreasToImprove: areas}
}

// FocusAreas maps the areas of an analysis to plan focus lines, one per
// distinct focus, prefixed "Day N:" in order of appearance.
func FocusAreas(analysis FeedbackAnalysis) []string {
	var out []string
	seen := map[string]bool{}
	for _, area := range analysis.AreasToImprove {
		for _, topic := range feedbackTopics {
			if topic.area != area || seen[topic.focus] {
				continue
			}
			seen[topic.focus] = true
			out = append(out, topic.focus)
		}
	}
	lines := make([]string, 0, len(out))
	for i, focus := range out {
		if i >= PlanDays {
			break
		}
		lines = append(lines, "Day "+strconv.Itoa(i+1)+": "+focus)
	}
	return lines
}

func padWords(s string) string {
	mapped := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '\'' || r == '-' {
			return r
		}
		return ' '
	}, s)
	return " " + strings.Join(strings.Fields(mapped), " ") + " "
}

func hasCue(padded string, cues []string) bool {
	for _, cue := range cues {
		if strings.Contains(padded, " "+cue) {
			return true
		}
	}
	return false
}
