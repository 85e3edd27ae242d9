package models

import "time"

// RubricCategories lists the five fixed evaluation dimensions a judge scores a
// team on. Every evaluation carries exactly these categories.
var RubricCategories = []string{
	"Design & Build Quality",
	"Working Model",
	"Technology & AI Integration",
	"Future Scope & Impact",
	"Query Addressing",
}

// Roles a participant can hold inside a team
const (
	RoleLeader = "leader"
	RoleMember = "member"
)

// TeamMember is a snapshot of a participant's details at team creation time.
// The authoritative participant record lives in the participants table; this
// copy exists for display only.
type TeamMember struct {
	UID        string `json:"uid"`
	Name       string `json:"name"`
	RollNumber string `json:"rollnumber"`
	Branch     string `json:"branch"`
	Role       string `json:"role"`
}

// CategoryScore holds a judge's sub-criteria scores for one rubric category
type CategoryScore struct {
	Subcriteria map[string]float64 `json:"subcriteria"`
	Total       float64            `json:"total"`
}

// Evaluation is a single judge's scoring of a team across all rubric categories
type Evaluation struct {
	JudgeID      string                   `json:"judge_id"`
	RubricScores map[string]CategoryScore `json:"rubric_scores"`
	TotalScore   float64                  `json:"total_score"`
	Feedback     string                   `json:"feedback"`
}

// Team represents a hackathon team. TeamID is the generated 4-digit public
// identifier; the leader/member snapshots and the evaluation collections are
// stored as JSON columns.
type Team struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	TeamID   int    `gorm:"uniqueIndex;not null;column:team_id" json:"team_id"`
	TeamName string `gorm:"type:varchar(255);not null;column:team_name" json:"team_name"`

	Leader   TeamMember   `gorm:"serializer:json" json:"leader"`
	Members  []TeamMember `gorm:"serializer:json" json:"members"`
	TeamSize int          `gorm:"column:team_size" json:"team_size"`

	CategoryID       int    `gorm:"column:category_id" json:"category_id"`
	CategoryName     string `gorm:"type:varchar(255);column:category_name" json:"category_name"`
	ProblemStatement string `gorm:"type:text;column:problem_statement" json:"problem_statement"`
	Department       string `gorm:"type:varchar(255)" json:"department"`

	QualifiedForInstitute bool `gorm:"default:false;column:qualified_for_institute" json:"qualified_for_institute"`

	DepartmentalScores     []Evaluation `gorm:"serializer:json;column:departmental_scores" json:"departmental_scores"`
	DepartmentalFinalScore float64      `gorm:"default:0;column:departmental_final_score" json:"departmental_final_score"`
	CollegeScores          []Evaluation `gorm:"serializer:json;column:college_scores" json:"college_scores"`
	CollegeFinalScore      float64      `gorm:"default:0;column:college_final_score" json:"college_final_score"`

	Status string `gorm:"type:varchar(50);default:active" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
