package evaluations

import "placement-backend/internal/assessment"

func sampleRequest() assessment.Request {
	return assessment.Request{
		SkillScores: assessment.SkillScores{Excel: 65, SQL: 70, Python: 55, Stats: 60, ML: 45, BI: 72},
		Feedback:    "Explains SQL well but needs more practice with ML models.",
	}
}
