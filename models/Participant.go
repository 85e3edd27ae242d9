package models

import "time"

// Participant represents a registered hackathon participant. The record is keyed
// by the Firebase UID issued by the identity provider; team membership is a
// back-reference filled in by the team formation workflow.
type Participant struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	FirebaseUID string  `gorm:"type:varchar(128);uniqueIndex;not null;column:firebase_uid" json:"firebase_uid"`
	Name        string  `gorm:"type:varchar(100)" json:"name"`
	Email       string  `gorm:"type:varchar(255)" json:"email"`
	Phone       string  `gorm:"type:varchar(20)" json:"phone"`
	College     string  `gorm:"type:varchar(255)" json:"college"`
	Branch      string  `gorm:"type:varchar(100)" json:"branch"`
	Year        int     `json:"year"`
	RollNumber  string  `gorm:"type:varchar(50);column:rollnumber" json:"rollnumber"`
	IsKiet      bool    `gorm:"column:is_kiet" json:"is_kiet"`
	Course      string  `gorm:"type:varchar(100)" json:"course"`
	Status      string  `gorm:"type:varchar(50);default:registered" json:"status"`
	TeamID      *int    `gorm:"column:team_id" json:"team_id"`
	RoleInTeam  *string `gorm:"type:varchar(20);column:role_in_team" json:"role_in_team"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
