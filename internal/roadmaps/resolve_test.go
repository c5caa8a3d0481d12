package roadmaps

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveExactMatch(t *testing.T) {
	r := Resolve("Build GitHub portfolio")

	assert.Equal(t, "GitHub Portfolio Development", r.Title)
	require.Len(t, r.Steps, 4)
	assert.Equal(t, "Organize Your Repositories", r.Steps[0].Title)
	assert.Equal(t, "Maintain Active Contributions", r.Steps[3].Title)
}

func TestResolveUnknownFallsBackToDefault(t *testing.T) {
	r := Resolve("some totally unrecognized free text")

	assert.Equal(t, "Action Plan", r.Title)
	assert.Equal(t, "some totally unrecognized free text", r.Subject)
	assert.Equal(t, "A structured approach to complete this action item successfully.", r.Description)
	assert.Len(t, r.Steps, 4)
	assert.Equal(t, "Set specific, measurable goals", r.Tips[0])
}

func TestResolveBlankLabel(t *testing.T) {
	assert.Equal(t, "Action Plan", Resolve("").Title)
	assert.Equal(t, "Action Plan", Resolve("   ").Title)
}

func TestResolveIsDeterministic(t *testing.T) {
	for _, label := range append(Labels(), "Target roles: ML Engineer", "random words") {
		assert.Equal(t, Resolve(label), Resolve(label), label)
	}
}

func TestResolvePrefixBeforeColon(t *testing.T) {
	r := Resolve("Target roles: Data Analyst, Data Scientist")

	assert.Equal(t, "Role-Specific Preparation Guide", r.Title)
	assert.Equal(t, "Target roles: Data Analyst, Data Scientist", r.Subject)
}

func TestResolveCaseInsensitive(t *testing.T) {
	assert.Equal(t, "GitHub Portfolio Development", Resolve("BUILD GITHUB PORTFOLIO").Title)
}

func TestResolveTieBreakFollowsTableOrder(t *testing.T) {
	// Both "practice mock interviews" and "build github portfolio" are
	// contained; the earlier table entry wins.
	assert.Equal(t, "Mock Interview Mastery", Resolve("Practice mock interviews and build GitHub portfolio").Title)
	// A fragment contained in several keys picks the first of them.
	assert.Equal(t, "Mock Interview Preparation Plan", Resolve("mock interview").Title)
	assert.Equal(t, "Resume Enhancement Guide", Resolve("resume").Title)
}

func TestResolveReturnsCopies(t *testing.T) {
	first := Resolve("Practice mock interviews")
	first.Steps[0].Title = "mutated"
	first.Tips[0] = "mutated"

	second := Resolve("Practice mock interviews")
	assert.Equal(t, "Find Practice Partners", second.Steps[0].Title)
	assert.NotEqual(t, "mutated", second.Tips[0])
}

func TestLabelsOrder(t *testing.T) {
	labels := Labels()

	require.Len(t, labels, 7)
	assert.Equal(t, "Delay placements and focus on skill improvement", labels[0])
	assert.Equal(t, "Build GitHub portfolio", labels[6])
}

func TestResolveDayByNumber(t *testing.T) {
	for day := 1; day <= DayCount; day++ {
		r := ResolveDay(day, "unrelated focus")
		assert.True(t, strings.HasPrefix(r.Title, "Day "+string(rune('0'+day))+":"), r.Title)
		assert.NotEmpty(t, r.Sections)
		assert.Equal(t, r.ConfidenceTips, r.Tips)
		assert.Len(t, r.Steps, len(r.Sections))
	}
}

func TestResolveDayNumberBeatsKeywords(t *testing.T) {
	r := ResolveDay(2, "Machine learning deep dive")

	assert.Equal(t, "Day 2: SQL Mastery & Database Skills", r.Title)
	assert.Equal(t, "Machine learning deep dive", r.Subject)
}

func TestResolveDayKeywordsForOutOfRangeDay(t *testing.T) {
	assert.Equal(t, "Day 2: SQL Mastery & Database Skills", ResolveDay(9, "Advanced SQL joins").Title)
	assert.Equal(t, "Day 5: Machine Learning & Advanced Skills", ResolveDay(0, "Machine learning").Title)
}

func TestResolveDayGeneric(t *testing.T) {
	r := ResolveDay(8, "Gardening")

	assert.Equal(t, "Day 8: Gardening - Complete Roadmap", r.Title)
	assert.Len(t, r.Sections, 3)
	assert.Nil(t, r.CommonQuestions)
}

func TestResolveDaySteps(t *testing.T) {
	r := ResolveDay(1, "")

	require.Len(t, r.Steps, 3)
	assert.Equal(t, Step{
		Title:       "Morning Session (9 AM - 12 PM)",
		Description: "Communication Fundamentals (2 hours); Core Concept Review (1 hour)",
	}, r.Steps[0])
}

func TestResolveDayMockInterviewQuestions(t *testing.T) {
	r := ResolveDay(6, "Full mock interview (technical + HR)")

	require.NotNil(t, r.CommonQuestions)
	assert.Len(t, r.CommonQuestions.Technical, 7)
	assert.Len(t, r.CommonQuestions.Behavioral, 7)
	assert.Contains(t, r.CommonQuestions.Behavioral, "Tell me about yourself")
}

func TestParseCatalogErrors(t *testing.T) {
	_, err := ParseCatalog([]byte("{"), []byte("{}"))
	assert.ErrorContains(t, err, "decode action roadmaps")

	actions := []byte(`{"actions":[{"label":"a","title":"A"}],"default":{"title":"Action Plan"}}`)
	_, err = ParseCatalog(actions, []byte(`{"days":[{"day":1}],"generic":{"titleFormat":"Day %d: %s"}}`))
	assert.ErrorContains(t, err, "want 7 days, got 1")

	_, err = ParseCatalog([]byte(`{"actions":[],"default":{"title":"x"}}`), []byte(`{}`))
	assert.ErrorContains(t, err, "table is empty")
}
