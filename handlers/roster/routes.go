package roster

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the roster lookup routes
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/check-roll", CheckRoll)
}
