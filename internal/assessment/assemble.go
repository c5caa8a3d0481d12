package assessment

// Assemble is the authoritative evaluation: readiness with score-derived
// reasoning, role matching and gaps against roles, keyword feedback analysis
// and a plan built from the feedback's focus areas.
func Assemble(req Request, roles []RoleRequirement) Response {
	score := OverallScore(req.SkillScores)
	readiness := DeriveReadinessWith(req.SkillScores, explainReadiness(req.SkillScores, score))
	suitability := MatchRoles(req.SkillScores, roles)
	feedback := AnalyzeFeedback(req.Feedback)

	return Response{
		Readiness:        readiness,
		RoleSuitability:  suitability,
		FeedbackAnalysis: feedback,
		PreparationPlan:  BuildPlan(FocusAreas(feedback)),
		ActionSummary:    SummarizeActions(readiness, suitability),
		GapAnalysis:      ComputeGaps(req.SkillScores, roles),
		CandidateScores:  req.SkillScores.ByName(),
	}
}
