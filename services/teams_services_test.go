package services

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"api/database"
	"api/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB points database.DB at a fresh in-memory sqlite instance. A
// single connection is enforced so every query sees the same memory database.
func setupTestDB(t *testing.T) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&models.Participant{}, &models.Team{}); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	database.DB = db
}

func seedParticipant(t *testing.T, uid, name, email string) *models.Participant {
	t.Helper()
	p := &models.Participant{FirebaseUID: uid, Name: name, Email: email}
	if err := database.DB.Create(p).Error; err != nil {
		t.Fatalf("seed participant %s: %v", uid, err)
	}
	return p
}

func mustGetParticipant(t *testing.T, uid string) *models.Participant {
	t.Helper()
	p, err := GetParticipantByUID(uid)
	if err != nil {
		t.Fatalf("get participant %s: %v", uid, err)
	}
	return p
}

func teamCount(t *testing.T) int64 {
	t.Helper()
	var count int64
	if err := database.DB.Model(&models.Team{}).Count(&count).Error; err != nil {
		t.Fatalf("count teams: %v", err)
	}
	return count
}

func alphaInput() TeamFormationInput {
	return TeamFormationInput{
		TeamName: "Alpha",
		Leader:   MemberInput{UID: "U1", Name: "Asha", RollNumber: "2100290001", Branch: "CSE"},
		Members: []MemberInput{
			{UID: "U2", Name: "Bilal", RollNumber: "2100290002", Branch: "CSE"},
			{UID: "U3", Name: "Chitra", RollNumber: "2100290003", Branch: "ECE"},
		},
		CategoryName:     "AI/ML",
		ProblemStatement: "Smart attendance",
		Department:       "CSE",
	}
}

func TestFormTeamSuccess(t *testing.T) {
	setupTestDB(t)
	seedParticipant(t, "U1", "Asha", "asha@kiet.edu")
	seedParticipant(t, "U2", "Bilal", "bilal@kiet.edu")
	seedParticipant(t, "U3", "Chitra", "")

	team, err := FormTeam(alphaInput())
	if err != nil {
		t.Fatalf("form team: %v", err)
	}

	if team.TeamID < 1000 || team.TeamID >= 9999 {
		t.Fatalf("team id %d out of range", team.TeamID)
	}
	if team.Leader.Role != models.RoleLeader || team.Leader.UID != "U1" {
		t.Fatalf("unexpected leader snapshot: %+v", team.Leader)
	}
	if len(team.Members) != 2 || team.Members[0].UID != "U2" || team.Members[1].UID != "U3" {
		t.Fatalf("unexpected member snapshots: %+v", team.Members)
	}
	for _, m := range team.Members {
		if m.Role != models.RoleMember {
			t.Fatalf("member %s has role %q", m.UID, m.Role)
		}
	}
	if team.Status != "active" || team.QualifiedForInstitute {
		t.Fatalf("unexpected defaults: status=%q qualified=%v", team.Status, team.QualifiedForInstitute)
	}
	if team.TeamSize != 3 {
		t.Fatalf("expected team size 3, got %d", team.TeamSize)
	}

	// back-references on the live participant records
	for uid, role := range map[string]string{"U1": models.RoleLeader, "U2": models.RoleMember, "U3": models.RoleMember} {
		p := mustGetParticipant(t, uid)
		if p.TeamID == nil || *p.TeamID != team.TeamID {
			t.Fatalf("participant %s team id not set to %d: %+v", uid, team.TeamID, p.TeamID)
		}
		if p.RoleInTeam == nil || *p.RoleInTeam != role {
			t.Fatalf("participant %s role not %q", uid, role)
		}
	}

	stored, err := GetTeamByTeamID(team.TeamID)
	if err != nil {
		t.Fatalf("reload team: %v", err)
	}
	if stored.TeamName != "Alpha" || stored.CategoryName != "AI/ML" {
		t.Fatalf("unexpected stored team: %+v", stored)
	}
}

func TestFormTeamInvalidRequest(t *testing.T) {
	setupTestDB(t)

	input := alphaInput()
	input.Leader.UID = "  "
	if _, err := FormTeam(input); !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest for blank leader uid, got %v", err)
	}

	input = alphaInput()
	input.TeamName = ""
	if _, err := FormTeam(input); !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest for blank team name, got %v", err)
	}
}

func TestFormTeamRejectsDuplicateUIDs(t *testing.T) {
	setupTestDB(t)
	seedParticipant(t, "U1", "Asha", "")
	seedParticipant(t, "U2", "Bilal", "")

	input := alphaInput()
	input.Members = []MemberInput{{UID: "U2"}, {UID: "U1"}} // leader repeated as member
	if _, err := FormTeam(input); !errors.Is(err, ErrDuplicateMember) {
		t.Fatalf("expected ErrDuplicateMember, got %v", err)
	}
	if n := teamCount(t); n != 0 {
		t.Fatalf("expected no teams, got %d", n)
	}
}

func TestFormTeamUnregisteredParticipant(t *testing.T) {
	setupTestDB(t)
	seedParticipant(t, "U1", "Asha", "asha@kiet.edu")
	seedParticipant(t, "U3", "Chitra", "")

	input := alphaInput()
	input.Members = append(input.Members, MemberInput{UID: "U4"})

	_, err := FormTeam(input)
	var unregistered *UnregisteredParticipantsError
	if !errors.As(err, &unregistered) {
		t.Fatalf("expected UnregisteredParticipantsError, got %v", err)
	}
	if len(unregistered.UIDs) != 2 || unregistered.UIDs[0] != "U2" || unregistered.UIDs[1] != "U4" {
		t.Fatalf("unexpected missing uids: %v", unregistered.UIDs)
	}

	// no side effects
	if n := teamCount(t); n != 0 {
		t.Fatalf("expected no teams, got %d", n)
	}
	if p := mustGetParticipant(t, "U1"); p.TeamID != nil {
		t.Fatalf("U1 must remain unassigned, got team %d", *p.TeamID)
	}
}

func TestFormTeamAlreadyAssigned(t *testing.T) {
	setupTestDB(t)
	seedParticipant(t, "U1", "Asha", "asha@kiet.edu")
	assigned := seedParticipant(t, "U2", "Bilal", "bilal@kiet.edu")
	seedParticipant(t, "U3", "Chitra", "")

	existingTeam := 500
	role := models.RoleMember
	if err := database.DB.Model(assigned).Updates(map[string]interface{}{"team_id": existingTeam, "role_in_team": role}).Error; err != nil {
		t.Fatalf("pre-assign U2: %v", err)
	}

	_, err := FormTeam(alphaInput())
	var conflict *AlreadyAssignedError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected AlreadyAssignedError, got %v", err)
	}
	if len(conflict.Conflicts) != 1 || conflict.Conflicts[0].Display != "Bilal" || conflict.Conflicts[0].TeamID != existingTeam {
		t.Fatalf("unexpected conflicts: %+v", conflict.Conflicts)
	}
	if !strings.Contains(err.Error(), "Bilal (Team 500)") {
		t.Fatalf("error message should name the conflict, got %q", err.Error())
	}

	// no side effects
	if n := teamCount(t); n != 0 {
		t.Fatalf("expected no teams, got %d", n)
	}
	for _, uid := range []string{"U1", "U3"} {
		if p := mustGetParticipant(t, uid); p.TeamID != nil {
			t.Fatalf("%s must remain unassigned", uid)
		}
	}
}

func TestFormTeamConflictFallsBackToUID(t *testing.T) {
	setupTestDB(t)
	seedParticipant(t, "U1", "Asha", "")
	anonymous := seedParticipant(t, "U2", "", "")
	if err := database.DB.Model(anonymous).Update("team_id", 1234).Error; err != nil {
		t.Fatalf("pre-assign U2: %v", err)
	}

	input := alphaInput()
	input.Members = input.Members[:1] // only U2

	_, err := FormTeam(input)
	var conflict *AlreadyAssignedError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected AlreadyAssignedError, got %v", err)
	}
	if conflict.Conflicts[0].Display != "U2" {
		t.Fatalf("expected uid fallback display, got %q", conflict.Conflicts[0].Display)
	}
}

func TestTeamIDsUniqueAcrossFormations(t *testing.T) {
	setupTestDB(t)

	seen := make(map[int]bool)
	for i := 0; i < 40; i++ {
		leader := fmt.Sprintf("L%d", i)
		member := fmt.Sprintf("M%d", i)
		seedParticipant(t, leader, "", "")
		seedParticipant(t, member, "", "")

		team, err := FormTeam(TeamFormationInput{
			TeamName: fmt.Sprintf("Team %d", i),
			Leader:   MemberInput{UID: leader},
			Members:  []MemberInput{{UID: member}},
		})
		if err != nil {
			t.Fatalf("form team %d: %v", i, err)
		}
		if team.TeamID < 1000 || team.TeamID >= 9999 {
			t.Fatalf("team id %d out of range", team.TeamID)
		}
		if seen[team.TeamID] {
			t.Fatalf("team id %d assigned twice", team.TeamID)
		}
		seen[team.TeamID] = true
	}
}

func TestAssignRoleRejectsClaimedParticipant(t *testing.T) {
	setupTestDB(t)
	seedParticipant(t, "U1", "Asha", "")
	claimed := seedParticipant(t, "U2", "Bilal", "")
	if err := database.DB.Model(claimed).Update("team_id", 4321).Error; err != nil {
		t.Fatalf("pre-assign U2: %v", err)
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		return assignRole(tx, []string{"U1", "U2"}, 5678, models.RoleMember)
	})
	if !errors.Is(err, errAssignmentRace) {
		t.Fatalf("expected assignment race error, got %v", err)
	}

	// the rolled-back transaction must not have touched U1
	if p := mustGetParticipant(t, "U1"); p.TeamID != nil {
		t.Fatalf("U1 must remain unassigned after rollback")
	}
	if p := mustGetParticipant(t, "U2"); p.TeamID == nil || *p.TeamID != 4321 {
		t.Fatalf("U2 assignment must be untouched")
	}
}

func TestGenerateUniqueTeamIDAvoidsTakenIDs(t *testing.T) {
	setupTestDB(t)
	if err := database.DB.Create(&models.Team{TeamID: 4321, TeamName: "Taken"}).Error; err != nil {
		t.Fatalf("seed team: %v", err)
	}

	for i := 0; i < 25; i++ {
		id, err := generateUniqueTeamID(database.DB)
		if err != nil {
			t.Fatalf("generate id: %v", err)
		}
		if id == 4321 {
			t.Fatalf("generator returned a taken id")
		}
		if id < 1000 || id >= 9999 {
			t.Fatalf("id %d out of range", id)
		}
	}
}

func TestFormTeamWhenIDSpaceExhausted(t *testing.T) {
	setupTestDB(t)
	seedParticipant(t, "U1", "Asha", "")
	seedParticipant(t, "U2", "Bilal", "")

	// claim every assignable id so any candidate the generator picks is taken
	taken := make([]models.Team, 0, teamIDMax-teamIDMin)
	for id := teamIDMin; id < teamIDMax; id++ {
		taken = append(taken, models.Team{TeamID: id, TeamName: "Taken"})
	}
	if err := database.DB.CreateInBatches(&taken, 500).Error; err != nil {
		t.Fatalf("seed teams: %v", err)
	}

	if _, err := generateUniqueTeamID(database.DB); !errors.Is(err, ErrTeamIDSpaceExhausted) {
		t.Fatalf("expected ErrTeamIDSpaceExhausted, got %v", err)
	}

	input := alphaInput()
	input.Members = input.Members[:1]
	if _, err := FormTeam(input); !errors.Is(err, ErrTeamIDSpaceExhausted) {
		t.Fatalf("expected FormTeam to surface ErrTeamIDSpaceExhausted, got %v", err)
	}

	// the failed formation leaves no partial state behind
	if got := teamCount(t); got != int64(teamIDMax-teamIDMin) {
		t.Fatalf("expected %d teams, got %d", teamIDMax-teamIDMin, got)
	}
	for _, uid := range []string{"U1", "U2"} {
		if p := mustGetParticipant(t, uid); p.TeamID != nil {
			t.Fatalf("participant %s must stay unassigned, got team %d", uid, *p.TeamID)
		}
	}
}
