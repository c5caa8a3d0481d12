package assessment

// AssembleMock builds the fallback response used when the evaluation service
// is unreachable. Only readiness and the action tier depend on the request;
// the rest is fixed sample content.
func AssembleMock(req Request) Response {
	readiness := DeriveReadiness(req.SkillScores)
	return Response{
		Readiness:        readiness,
		RoleSuitability:  mockSuitability(),
		FeedbackAnalysis: mockFeedback(),
		PreparationPlan:  mockPlan(),
		ActionSummary: ActionSummary{
			Priority:       PriorityFor(readiness.Status),
			Recommendation: RecommendationFor(readiness.Status),
			ActionItems:    cloneStrings(mockActionItems),
		},
	}
}

func mockSuitability() RoleSuitability {
	return RoleSuitability{
		Recommended: []RecommendedRole{
			{Role: "Data Analyst", MatchScore: 85, Strengths: []string{"Strong SQL skills", "Excel proficiency", "Analytical thinking"}},
			{Role: "Business Intelligence Analyst", MatchScore: 78, Strengths: []string{"BI tool expertise", "Data visualization", "Report creation"}},
		},
		NotRecommended: []RejectedRole{
			{Role: "ML Engineer", Gaps: []string{"Machine Learning", "Python (Advanced)", "Deep Learning"}},
			{Role: "Data Scientist", Gaps: []string{"Statistics (Advanced)", "ML Algorithms"}},
		},
	}
}

func mockFeedback() FeedbackAnalysis {
	return FeedbackAnalysis{
		Strengths: []string{
			"Clear communication skills",
			"Problem-solving approach",
			"Technical knowledge demonstration",
			"Enthusiasm for learning",
		},
		AreasToImprove: []string{
			"Depth of technical explanations",
			"Real-world project examples",
			"Industry domain knowledge",
		},
	}
}

func mockPlan() []PreparationDay {
	return []PreparationDay{
		{Day: 1, Focus: "SQL Mastery", Activities: []string{"Advanced joins", "Window functions", "Query optimization"}},
		{Day: 2, Focus: "Python Skills", Activities: []string{"Pandas deep dive", "Data cleaning", "EDA techniques"}},
		{Day: 3, Focus: "Statistics Review", Activities: []string{"Hypothesis testing", "Probability", "Distributions"}},
		{Day: 4, Focus: "ML Fundamentals", Activities: []string{"Regression models", "Classification basics", "Model evaluation"}},
		{Day: 5, Focus: "BI & Visualization", Activities: []string{"Dashboard creation", "Storytelling with data", "Best practices"}},
		{Day: 6, Focus: "Project Work", Activities: []string{"End-to-end analysis", "Portfolio building", "Documentation"}},
		{Day: 7, Focus: "Interview Prep", Activities: []string{"Mock interviews", "Case studies", "Behavioral questions"}},
	}
}
