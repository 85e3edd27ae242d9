package participants

import (
	"errors"
	"net/http"

	"api/models"
	"api/services"
	"api/utils/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterParticipant registers a new participant
// @Summary Register a participant
// @Description Create the participant record for an identity token. Idempotent: registering an existing UID returns the stored record unchanged.
// @Tags Participants
// @Accept json
// @Produce json
// @Param participant body models.Participant true "Participant fields"
// @Success 200 {object} models.Participant
// @Success 201 {object} models.Participant
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /participants [post]
func RegisterParticipant(c *gin.Context) {
	var participant models.Participant
	if err := c.ShouldBindJSON(&participant); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request format: "+err.Error())
		return
	}

	registered, created, err := services.RegisterParticipant(&participant)
	if err != nil {
		if errors.Is(err, services.ErrUIDRequired) {
			response.Error(c, http.StatusBadRequest, ErrUIDRequired)
			return
		}
		response.Error(c, http.StatusInternalServerError, ErrFailedToRegister)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	response.Success(c, status, registered)
}

// GetParticipants returns one participant by UID or the full collection
// @Summary Get participants
// @Description Get a single participant by uid query parameter, or all participants if omitted
// @Tags Participants
// @Produce json
// @Param uid query string false "Identity token"
// @Success 200 {array} models.Participant
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /participants [get]
func GetParticipants(c *gin.Context) {
	uid := c.Query("uid")

	if uid != "" {
		participant, err := services.GetParticipantByUID(uid)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				response.Error(c, http.StatusNotFound, ErrParticipantNotFound+uid)
				return
			}
			response.Error(c, http.StatusInternalServerError, ErrFailedToGetParticipants)
			return
		}
		response.Success(c, http.StatusOK, participant)
		return
	}

	participants, err := services.ListParticipants()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedToGetParticipants)
		return
	}
	response.Success(c, http.StatusOK, participants)
}
