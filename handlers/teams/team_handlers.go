package teams

import (
	"errors"
	"net/http"
	"strconv"

	"api/services"
	"api/utils/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreateTeam forms a team from registered participants
// @Summary Create a team
// @Description Form a team from a leader and members. Every UID must belong to a registered, unassigned participant; on success all of them are assigned to the new team and notified by email.
// @Tags Teams
// @Accept json
// @Produce json
// @Param team body CreateTeamRequest true "Team formation request"
// @Success 201 {object} models.Team
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /teams [post]
func CreateTeam(c *gin.Context) {
	var req CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request format: "+err.Error())
		return
	}

	team, err := services.FormTeam(formationInput(req))
	if err != nil {
		var unregistered *services.UnregisteredParticipantsError
		var assigned *services.AlreadyAssignedError
		switch {
		case errors.Is(err, services.ErrInvalidRequest), errors.Is(err, services.ErrDuplicateMember):
			response.Error(c, http.StatusBadRequest, err.Error())
		case errors.As(err, &unregistered):
			response.Error(c, http.StatusBadRequest, err.Error())
		case errors.As(err, &assigned):
			response.Error(c, http.StatusBadRequest, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, ErrFailedToCreateTeam)
		}
		return
	}

	response.Success(c, http.StatusCreated, team)
}

// GetTeams returns one team by team_id or the full collection
// @Summary Get teams
// @Description Get a single team by team_id query parameter, or all teams if omitted
// @Tags Teams
// @Produce json
// @Param team_id query int false "Team ID"
// @Success 200 {array} models.Team
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /teams [get]
func GetTeams(c *gin.Context) {
	rawID := c.Query("team_id")

	if rawID != "" {
		teamID, err := strconv.Atoi(rawID)
		if err != nil {
			response.Error(c, http.StatusBadRequest, ErrInvalidTeamID)
			return
		}
		team, err := services.GetTeamByTeamID(teamID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				response.Error(c, http.StatusNotFound, ErrTeamNotFound+rawID)
				return
			}
			response.Error(c, http.StatusInternalServerError, ErrFailedToGetTeams)
			return
		}
		response.Success(c, http.StatusOK, team)
		return
	}

	teams, err := services.ListTeams()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedToGetTeams)
		return
	}
	response.Success(c, http.StatusOK, teams)
}

// formationInput maps the request body onto the workflow input
func formationInput(req CreateTeamRequest) services.TeamFormationInput {
	members := make([]services.MemberInput, len(req.Members))
	for i, m := range req.Members {
		members[i] = services.MemberInput{UID: m.UID, Name: m.Name, RollNumber: m.RollNumber, Branch: m.Branch}
	}
	return services.TeamFormationInput{
		TeamName:         req.TeamName,
		Leader:           services.MemberInput{UID: req.Leader.UID, Name: req.Leader.Name, RollNumber: req.Leader.RollNumber, Branch: req.Leader.Branch},
		Members:          members,
		TeamSize:         req.TeamSize,
		CategoryID:       req.CategoryID,
		CategoryName:     req.CategoryName,
		ProblemStatement: req.ProblemStatement,
		Department:       req.Department,
	}
}
