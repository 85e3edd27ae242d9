package services

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"api/database"
	"api/metrics"
	"api/models"

	"gorm.io/gorm"
)

const (
	teamIDMin = 1000
	teamIDMax = 9999 // exclusive

	// maxTeamIDAttempts bounds the random probing for a free team id so a
	// saturated id space fails instead of spinning forever.
	maxTeamIDAttempts = 32
)

// ErrInvalidRequest is returned when the formation request is missing the
// leader UID or the team name.
var ErrInvalidRequest = errors.New("leader UID and team_name are required")

// ErrTeamIDSpaceExhausted is returned when no unused team id could be found.
var ErrTeamIDSpaceExhausted = errors.New("no free team id available")

// ErrDuplicateMember is returned when the same UID appears twice in a
// formation request (including the leader listed again as a member).
var ErrDuplicateMember = errors.New("duplicate participant UID in request")

// errAssignmentRace signals that a participant gained a team between the
// precondition check and the batched assignment. Internal to the workflow.
var errAssignmentRace = errors.New("participant assignment conflict")

// UnregisteredParticipantsError reports every requested UID with no
// participant record.
type UnregisteredParticipantsError struct {
	UIDs []string
}

func (e *UnregisteredParticipantsError) Error() string {
	return fmt.Sprintf("these UIDs are not registered as participants: %s", strings.Join(e.UIDs, ", "))
}

// AssignmentConflict identifies a participant that already belongs to a team
type AssignmentConflict struct {
	Display string `json:"display"`
	TeamID  int    `json:"team_id"`
}

// AlreadyAssignedError reports every requested participant that already
// carries a team id, together with that team id.
type AlreadyAssignedError struct {
	Conflicts []AssignmentConflict
}

func (e *AlreadyAssignedError) Error() string {
	parts := make([]string, len(e.Conflicts))
	for i, c := range e.Conflicts {
		parts[i] = fmt.Sprintf("%s (Team %d)", c.Display, c.TeamID)
	}
	return "already assigned: " + strings.Join(parts, ", ")
}

// MemberInput carries the caller-supplied details of one team candidate
type MemberInput struct {
	UID        string
	Name       string
	RollNumber string
	Branch     string
}

// TeamFormationInput is the full team creation request handed to FormTeam
type TeamFormationInput struct {
	TeamName         string
	Leader           MemberInput
	Members          []MemberInput
	TeamSize         int
	CategoryID       int
	CategoryName     string
	ProblemStatement string
	Department       string
}

// FormTeam validates and executes a team formation request.
//
// Every candidate (leader first, then members in submitted order) must resolve
// to a registered participant with no existing team. The team insert and the
// participant assignments run in one transaction; the assignment is
// conditional on team_id still being unset, so two concurrent formations
// naming an overlapping participant cannot both commit. A confirmation email
// is sent after commit and never affects the outcome.
func FormTeam(input TeamFormationInput) (*models.Team, error) {
	if strings.TrimSpace(input.Leader.UID) == "" || strings.TrimSpace(input.TeamName) == "" {
		return nil, ErrInvalidRequest
	}

	candidates := append([]MemberInput{input.Leader}, input.Members...)
	uids := make([]string, len(candidates))
	seen := make(map[string]bool, len(candidates))
	for i, c := range candidates {
		if seen[c.UID] {
			return nil, ErrDuplicateMember
		}
		seen[c.UID] = true
		uids[i] = c.UID
	}

	participants, err := FindParticipantsByUIDs(uids)
	if err != nil {
		return nil, fmt.Errorf("failed to look up participants: %w", err)
	}

	if missing := MissingUIDs(uids, participants); len(missing) > 0 {
		return nil, &UnregisteredParticipantsError{UIDs: missing}
	}

	if conflicts := assignmentConflicts(participants); len(conflicts) > 0 {
		return nil, &AlreadyAssignedError{Conflicts: conflicts}
	}

	team := buildTeam(input)
	if err := createTeamWithAssignments(team, input); err != nil {
		return nil, err
	}
	metrics.TeamsFormed.Inc()

	recipients := make([]string, 0, len(participants))
	for _, p := range participants {
		if p.Email != "" {
			recipients = append(recipients, p.Email)
		}
	}
	go sendConfirmation(recipients, team.TeamName, team.TeamID)

	return team, nil
}

// createTeamWithAssignments persists the team and flips every candidate's
// team back-reference in one transaction. The whole transaction is retried
// with a fresh id when the unique index rejects a concurrently taken team id.
func createTeamWithAssignments(team *models.Team, input TeamFormationInput) error {
	defer metrics.TrackDatabaseOperation("create", "teams", time.Now())

	memberUIDs := make([]string, len(input.Members))
	for i, m := range input.Members {
		memberUIDs[i] = m.UID
	}

	for attempt := 0; attempt < maxTeamIDAttempts; attempt++ {
		teamID, err := generateUniqueTeamID(database.DB)
		if err != nil {
			return err
		}
		team.ID = 0
		team.TeamID = teamID

		err = database.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(team).Error; err != nil {
				return err
			}
			if err := assignRole(tx, []string{input.Leader.UID}, teamID, models.RoleLeader); err != nil {
				return err
			}
			return assignRole(tx, memberUIDs, teamID, models.RoleMember)
		})
		switch {
		case err == nil:
			return nil
		case errors.Is(err, gorm.ErrDuplicatedKey):
			// lost the id to a concurrent creation, probe again
			continue
		case errors.Is(err, errAssignmentRace):
			return raceConflictError(input)
		default:
			return fmt.Errorf("failed to create team: %w", err)
		}
	}
	return ErrTeamIDSpaceExhausted
}

// assignRole conditionally stamps the team id and role onto the given
// participants. Rows already carrying a team id are not touched; any shortfall
// in affected rows aborts the transaction.
func assignRole(tx *gorm.DB, uids []string, teamID int, role string) error {
	if len(uids) == 0 {
		return nil
	}
	res := tx.Model(&models.Participant{}).
		Where("firebase_uid IN ? AND team_id IS NULL", uids).
		Updates(map[string]interface{}{"team_id": teamID, "role_in_team": role})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected != int64(len(uids)) {
		return errAssignmentRace
	}
	return nil
}

// raceConflictError rebuilds the conflict detail after a concurrent formation
// claimed one of the candidates mid-flight.
func raceConflictError(input TeamFormationInput) error {
	uids := make([]string, 0, len(input.Members)+1)
	uids = append(uids, input.Leader.UID)
	for _, m := range input.Members {
		uids = append(uids, m.UID)
	}
	participants, err := FindParticipantsByUIDs(uids)
	if err != nil {
		return fmt.Errorf("failed to look up participants: %w", err)
	}
	if conflicts := assignmentConflicts(participants); len(conflicts) > 0 {
		return &AlreadyAssignedError{Conflicts: conflicts}
	}
	return errAssignmentRace
}

// assignmentConflicts lists every participant that already has a team,
// labelled by name or UID when the name is empty.
func assignmentConflicts(participants []models.Participant) []AssignmentConflict {
	var conflicts []AssignmentConflict
	for _, p := range participants {
		if p.TeamID == nil {
			continue
		}
		display := p.Name
		if display == "" {
			display = p.FirebaseUID
		}
		conflicts = append(conflicts, AssignmentConflict{Display: display, TeamID: *p.TeamID})
	}
	return conflicts
}

// buildTeam snapshots the request into a team record with default evaluation
// state. Roles are stamped here; classification fields are copied verbatim.
func buildTeam(input TeamFormationInput) *models.Team {
	members := make([]models.TeamMember, len(input.Members))
	for i, m := range input.Members {
		members[i] = models.TeamMember{
			UID:        m.UID,
			Name:       m.Name,
			RollNumber: m.RollNumber,
			Branch:     m.Branch,
			Role:       models.RoleMember,
		}
	}

	teamSize := input.TeamSize
	if teamSize == 0 {
		teamSize = len(input.Members) + 1
	}

	return &models.Team{
		TeamName: input.TeamName,
		Leader: models.TeamMember{
			UID:        input.Leader.UID,
			Name:       input.Leader.Name,
			RollNumber: input.Leader.RollNumber,
			Branch:     input.Leader.Branch,
			Role:       models.RoleLeader,
		},
		Members:            members,
		TeamSize:           teamSize,
		CategoryID:         input.CategoryID,
		CategoryName:       input.CategoryName,
		ProblemStatement:   input.ProblemStatement,
		Department:         input.Department,
		DepartmentalScores: []models.Evaluation{},
		CollegeScores:      []models.Evaluation{},
		Status:             "active",
	}
}

// generateUniqueTeamID probes random 4-digit ids against the teams table. The
// unique index on team_id remains the final arbiter under concurrency.
func generateUniqueTeamID(db *gorm.DB) (int, error) {
	for attempt := 0; attempt < maxTeamIDAttempts; attempt++ {
		teamID := teamIDMin + rand.Intn(teamIDMax-teamIDMin)
		var count int64
		if err := db.Model(&models.Team{}).Where("team_id = ?", teamID).Count(&count).Error; err != nil {
			return 0, fmt.Errorf("failed to check team id: %w", err)
		}
		if count == 0 {
			return teamID, nil
		}
	}
	return 0, ErrTeamIDSpaceExhausted
}

// sendConfirmation delivers the registration email after commit. Failures are
// logged only; the team already exists at this point.
func sendConfirmation(recipients []string, teamName string, teamID int) {
	if len(recipients) == 0 {
		return
	}
	if err := NewEmailService().SendTeamConfirmationEmail(recipients, teamName, teamID); err != nil {
		metrics.EmailsFailed.Inc()
		log.Printf("Team %d: confirmation email failed: %v", teamID, err)
		return
	}
	metrics.EmailsSent.Inc()
	log.Printf("Team %d: confirmation email sent to %s", teamID, strings.Join(recipients, ", "))
}

// GetTeamByTeamID returns the team with the given public team id
func GetTeamByTeamID(teamID int) (*models.Team, error) {
	var team models.Team
	if err := database.DB.Where("team_id = ?", teamID).First(&team).Error; err != nil {
		return nil, err
	}
	return &team, nil
}

// ListTeams returns all teams
func ListTeams() ([]models.Team, error) {
	var teams []models.Team
	if err := database.DB.Find(&teams).Error; err != nil {
		return nil, err
	}
	return teams, nil
}
