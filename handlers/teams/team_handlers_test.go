package teams

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"api/database"
	"api/models"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

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

	r := gin.New()
	RegisterRoutes(r.Group("/api/v1"))
	return r
}

func seedParticipant(t *testing.T, uid, name string) {
	t.Helper()
	if err := database.DB.Create(&models.Participant{FirebaseUID: uid, Name: name}).Error; err != nil {
		t.Fatalf("seed participant %s: %v", uid, err)
	}
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func alphaRequest() CreateTeamRequest {
	return CreateTeamRequest{
		TeamName: "Alpha",
		Leader:   MemberPayload{UID: "U1", Name: "Asha", RollNumber: "2100290001", Branch: "CSE"},
		Members: []MemberPayload{
			{UID: "U2", Name: "Bilal"},
			{UID: "U3", Name: "Chitra"},
		},
		CategoryName: "AI/ML",
	}
}

func TestCreateTeamEndpoint(t *testing.T) {
	r := setupRouter(t)
	seedParticipant(t, "U1", "Asha")
	seedParticipant(t, "U2", "Bilal")
	seedParticipant(t, "U3", "Chitra")

	w := doJSON(t, r, http.MethodPost, "/api/v1/teams", alphaRequest())
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var body struct {
		Success bool        `json:"success"`
		Data    models.Team `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !body.Success || body.Data.TeamID < 1000 || body.Data.TeamID >= 9999 {
		t.Fatalf("unexpected response: %s", w.Body.String())
	}

	// the new team is visible through the lookup endpoint
	w = doJSON(t, r, http.MethodGet, "/api/v1/teams?team_id="+strconv.Itoa(body.Data.TeamID), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestCreateTeamUnregisteredMember(t *testing.T) {
	r := setupRouter(t)
	seedParticipant(t, "U1", "Asha")
	seedParticipant(t, "U2", "Bilal")

	w := doJSON(t, r, http.MethodPost, "/api/v1/teams", alphaRequest())
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "U3") {
		t.Fatalf("error should name the missing uid: %s", w.Body.String())
	}
}

func TestCreateTeamAlreadyAssignedMember(t *testing.T) {
	r := setupRouter(t)
	seedParticipant(t, "U1", "Asha")
	seedParticipant(t, "U2", "Bilal")
	seedParticipant(t, "U3", "Chitra")
	if err := database.DB.Model(&models.Participant{}).Where("firebase_uid = ?", "U2").Update("team_id", 500).Error; err != nil {
		t.Fatalf("pre-assign U2: %v", err)
	}

	w := doJSON(t, r, http.MethodPost, "/api/v1/teams", alphaRequest())
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Bilal") || !strings.Contains(w.Body.String(), "500") {
		t.Fatalf("error should name the conflict and team: %s", w.Body.String())
	}
}

func TestCreateTeamMissingLeader(t *testing.T) {
	r := setupRouter(t)

	req := alphaRequest()
	req.Leader.UID = ""
	w := doJSON(t, r, http.MethodPost, "/api/v1/teams", req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestGetTeamsNotFound(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/v1/teams?team_id=1234", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}

	w = doJSON(t, r, http.MethodGet, "/api/v1/teams?team_id=abc", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for non-integer id, got %d", w.Code)
	}
}

func TestAddEvaluationEndpoint(t *testing.T) {
	r := setupRouter(t)
	if err := database.DB.Create(&models.Team{TeamID: 4321, TeamName: "Alpha"}).Error; err != nil {
		t.Fatalf("seed team: %v", err)
	}

	payload := EvaluationRequest{
		JudgeID: "J1",
		RubricScores: map[string]map[string]float64{
			"Working Model": {"demo": 9},
		},
	}

	w := doJSON(t, r, http.MethodPost, "/api/v1/teams/4321/evaluations?level=departmental", payload)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodPost, "/api/v1/teams/4321/evaluations?level=galactic", payload)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad level, got %d", w.Code)
	}

	w = doJSON(t, r, http.MethodPost, "/api/v1/teams/1111/evaluations?level=college", payload)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown team, got %d", w.Code)
	}
}

func TestQualifyTeamEndpoint(t *testing.T) {
	r := setupRouter(t)
	if err := database.DB.Create(&models.Team{TeamID: 4321, TeamName: "Alpha"}).Error; err != nil {
		t.Fatalf("seed team: %v", err)
	}

	w := doJSON(t, r, http.MethodPut, "/api/v1/teams/4321/qualify", QualificationRequest{QualifiedForInstitute: true})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var team models.Team
	if err := database.DB.Where("team_id = ?", 4321).First(&team).Error; err != nil {
		t.Fatalf("reload team: %v", err)
	}
	if !team.QualifiedForInstitute {
		t.Fatalf("qualification flag not persisted")
	}
}
