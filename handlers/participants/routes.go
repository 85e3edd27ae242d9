package participants

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to participants
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/participants", RegisterParticipant)
	r.GET("/participants", GetParticipants)
}
