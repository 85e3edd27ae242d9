package teams

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to teams
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/teams", CreateTeam)
	r.GET("/teams", GetTeams)

	// Judging routes
	r.POST("/teams/:team_id/evaluations", AddEvaluation)
	r.PUT("/teams/:team_id/qualify", QualifyTeam)
}
