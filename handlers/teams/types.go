package teams

// Error messages constants
const (
	ErrTeamNotFound       = "No team found with ID: "
	ErrInvalidTeamID      = "team_id must be an integer"
	ErrFailedToGetTeams   = "Failed to get teams"
	ErrFailedToCreateTeam = "Failed to create team"
	ErrFailedToEvaluate   = "Failed to save evaluation"
	ErrFailedToQualify    = "Failed to update qualification"
)

// MemberPayload carries one candidate's identity token and snapshot fields
type MemberPayload struct {
	UID        string `json:"uid"`
	Name       string `json:"name"`
	RollNumber string `json:"rollnumber"`
	Branch     string `json:"branch"`
}

// CreateTeamRequest is the team formation request body
type CreateTeamRequest struct {
	TeamName         string          `json:"team_name"`
	Leader           MemberPayload   `json:"leader"`
	Members          []MemberPayload `json:"members"`
	TeamSize         int             `json:"team_size"`
	CategoryID       int             `json:"category_id"`
	CategoryName     string          `json:"category_name"`
	ProblemStatement string          `json:"problem_statement"`
	Department       string          `json:"department"`
}

// EvaluationRequest is one judge's rubric submission. Totals are computed
// server-side from the sub-criteria.
type EvaluationRequest struct {
	JudgeID      string                        `json:"judge_id" binding:"required"`
	RubricScores map[string]map[string]float64 `json:"rubric_scores"`
	Feedback     string                        `json:"feedback"`
}

// QualificationRequest sets the institute-level qualification flag
type QualificationRequest struct {
	QualifiedForInstitute bool `json:"qualified_for_institute"`
}
