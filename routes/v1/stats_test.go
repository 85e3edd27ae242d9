package v1

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"api/database"
	"api/models"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestGetStats(t *testing.T) {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
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
	RegisterStatsRoutes(r.Group("/api/v1"))

	teamID := 1234
	for _, p := range []models.Participant{
		{FirebaseUID: "U1", TeamID: &teamID},
		{FirebaseUID: "U2"},
		{FirebaseUID: "U3"},
	} {
		if err := database.DB.Create(&p).Error; err != nil {
			t.Fatalf("seed participant: %v", err)
		}
	}
	if err := database.DB.Create(&models.Team{TeamID: teamID, TeamName: "Alpha"}).Error; err != nil {
		t.Fatalf("seed team: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/stats", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body struct {
		Data StatsResponse `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Data.TotalTeams != 1 || body.Data.TotalParticipants != 3 {
		t.Fatalf("unexpected stats: %+v", body.Data)
	}
}
