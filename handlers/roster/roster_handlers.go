package roster

import (
	"errors"
	"net/http"
	"sync"

	"api/services"
	"api/utils/response"

	"github.com/gin-gonic/gin"
)

var (
	rosterOnce    sync.Once
	rosterService *services.RosterService
)

func getRosterService() *services.RosterService {
	rosterOnce.Do(func() {
		rosterService = services.NewRosterService()
	})
	return rosterService
}

// CheckRollRequest is the roll number lookup request body
type CheckRollRequest struct {
	RollNumber string `json:"rollnumber" binding:"required"`
}

// CheckRoll resolves a roll number against the enrollment sheets
// @Summary Check a roll number
// @Description Resolve a roll number to the student's biographical data from the enrollment sheets
// @Tags Roster
// @Accept json
// @Produce json
// @Param request body CheckRollRequest true "Roll number"
// @Success 200 {object} services.Student
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /check-roll [post]
func CheckRoll(c *gin.Context) {
	var req CheckRollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Roll number is required")
		return
	}

	student, err := getRosterService().FindStudentByRollNumber(c.Request.Context(), req.RollNumber)
	if err != nil {
		if errors.Is(err, services.ErrStudentNotFound) {
			response.Error(c, http.StatusNotFound, "Student not found in enrollment sheets")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to check roll number")
		return
	}

	response.Success(c, http.StatusOK, student)
}
