package assessment

import "strings"

// Request is an evaluation submission: six scores plus interview feedback.
type Request struct {
	SkillScores
	Feedback string `json:"feedback"`
}

// Validate checks score ranges and the minimum feedback length.
func (r Request) Validate() error {
	var fields []FieldError
	if err := r.SkillScores.Validate(); err != nil {
		if verr, ok := err.(*ValidationError); ok {
			fields = append(fields, verr.Fields...)
		}
	}
	if len([]rune(strings.TrimSpace(r.Feedback))) < MinFeedbackLength {
		fields = append(fields, FieldError{Field: "feedback", Issue: "must be at least 20 characters"})
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// Response is the complete evaluation returned to the caller.
type Response struct {
	Readiness        Readiness        `json:"readiness"`
	RoleSuitability  RoleSuitability  `json:"roleSuitability"`
	FeedbackAnalysis FeedbackAnalysis `json:"feedbackAnalysis"`
	PreparationPlan  []PreparationDay `json:"preparationPlan"`
	ActionSummary    ActionSummary    `json:"actionSummary"`
	GapAnalysis      []RoleGap        `json:"gapAnalysis,omitempty"`
	CandidateScores  map[string]int   `json:"candidateScores,omitempty"`
}

// FeedbackAnalysis summarizes interview feedback.
type FeedbackAnalysis struct {
	Strengths      []string `json:"strengths"`
	AreasToImprove []string `json:"areasToImprove"`
}
