package teams

import (
	"errors"
	"net/http"
	"strconv"

	"api/models"
	"api/services"
	"api/utils/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AddEvaluation appends a judge's evaluation to a team
// @Summary Submit a judge evaluation
// @Description Append one judge's rubric scores to the team's departmental or college evaluation collection
// @Tags Teams
// @Accept json
// @Produce json
// @Param team_id path int true "Team ID"
// @Param level query string true "Evaluation level" Enums(departmental, college)
// @Param evaluation body EvaluationRequest true "Judge evaluation"
// @Success 200 {object} models.Team
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /teams/{team_id}/evaluations [post]
func AddEvaluation(c *gin.Context) {
	teamID, err := strconv.Atoi(c.Param("team_id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidTeamID)
		return
	}

	var req EvaluationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request format: "+err.Error())
		return
	}

	rubricScores := make(map[string]models.CategoryScore, len(req.RubricScores))
	for category, subcriteria := range req.RubricScores {
		rubricScores[category] = models.CategoryScore{Subcriteria: subcriteria}
	}
	evaluation := models.Evaluation{
		JudgeID:      req.JudgeID,
		RubricScores: rubricScores,
		Feedback:     req.Feedback,
	}

	team, err := services.AddTeamEvaluation(teamID, c.Query("level"), evaluation)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidEvaluationLevel):
			response.Error(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, gorm.ErrRecordNotFound):
			response.Error(c, http.StatusNotFound, ErrTeamNotFound+c.Param("team_id"))
		default:
			response.Error(c, http.StatusInternalServerError, ErrFailedToEvaluate)
		}
		return
	}

	response.Success(c, http.StatusOK, team)
}

// QualifyTeam sets the institute-level qualification flag
// @Summary Update team qualification
// @Description Set or clear the qualified_for_institute flag on a team
// @Tags Teams
// @Accept json
// @Produce json
// @Param team_id path int true "Team ID"
// @Param qualification body QualificationRequest true "Qualification flag"
// @Success 200 {object} models.Team
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /teams/{team_id}/qualify [put]
func QualifyTeam(c *gin.Context) {
	teamID, err := strconv.Atoi(c.Param("team_id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidTeamID)
		return
	}

	var req QualificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request format: "+err.Error())
		return
	}

	team, err := services.SetTeamQualification(teamID, req.QualifiedForInstitute)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, ErrTeamNotFound+c.Param("team_id"))
			return
		}
		response.Error(c, http.StatusInternalServerError, ErrFailedToQualify)
		return
	}

	response.Success(c, http.StatusOK, team)
}
