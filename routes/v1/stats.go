package v1

import (
	"net/http"

	"api/database"
	"api/models"
	"api/utils/response"

	"github.com/gin-gonic/gin"
)

// StatsResponse holds the event-wide registration counts
type StatsResponse struct {
	TotalTeams        int64 `json:"total_teams"`
	TotalParticipants int64 `json:"total_participants"`
}

// @Summary Get registration statistics
// @Description Get the total number of registered teams and participants
// @Tags Stats
// @Produce json
// @Success 200 {object} StatsResponse
// @Failure 500 {object} map[string]string
// @Router /stats [get]
func getStats(c *gin.Context) {
	var stats StatsResponse

	if err := database.DB.Model(&models.Team{}).Count(&stats.TotalTeams).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to get stats")
		return
	}
	if err := database.DB.Model(&models.Participant{}).Count(&stats.TotalParticipants).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to get stats")
		return
	}

	response.Success(c, http.StatusOK, stats)
}

// RegisterStatsRoutes registers the statistics route
func RegisterStatsRoutes(r *gin.RouterGroup) {
	r.GET("/stats", getStats)
}
