package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"api/database"
	"api/metrics"
	"api/models"

	"gorm.io/gorm"
)

// ErrUIDRequired is returned when a registration carries no identity token
var ErrUIDRequired = errors.New("firebase_uid is required")

// RegisterParticipant creates the participant record for a first-time
// registration. Registration is idempotent: when the UID already exists the
// stored record is returned unchanged and no write happens. The returned bool
// reports whether a new record was created.
func RegisterParticipant(participant *models.Participant) (*models.Participant, bool, error) {
	if strings.TrimSpace(participant.FirebaseUID) == "" {
		return nil, false, ErrUIDRequired
	}
	defer metrics.TrackDatabaseOperation("create", "participants", time.Now())

	var existing models.Participant
	err := database.DB.Where("firebase_uid = ?", participant.FirebaseUID).First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("failed to look up participant: %w", err)
	}

	if err := database.DB.Create(participant).Error; err != nil {
		// concurrent registration with the same UID, return the winner's record
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			if err := database.DB.Where("firebase_uid = ?", participant.FirebaseUID).First(&existing).Error; err != nil {
				return nil, false, fmt.Errorf("failed to look up participant: %w", err)
			}
			return &existing, false, nil
		}
		return nil, false, fmt.Errorf("failed to create participant: %w", err)
	}
	return participant, true, nil
}

// GetParticipantByUID returns the participant with the given identity token
func GetParticipantByUID(uid string) (*models.Participant, error) {
	var participant models.Participant
	if err := database.DB.Where("firebase_uid = ?", uid).First(&participant).Error; err != nil {
		return nil, err
	}
	return &participant, nil
}

// ListParticipants returns all registered participants
func ListParticipants() ([]models.Participant, error) {
	var participants []models.Participant
	if err := database.DB.Find(&participants).Error; err != nil {
		return nil, err
	}
	return participants, nil
}

// FindParticipantsByUIDs returns the participants matching the given UIDs.
// UIDs with no record are silently absent; callers diff with MissingUIDs.
func FindParticipantsByUIDs(uids []string) ([]models.Participant, error) {
	defer metrics.TrackDatabaseOperation("select", "participants", time.Now())

	var participants []models.Participant
	if err := database.DB.Where("firebase_uid IN ?", uids).Find(&participants).Error; err != nil {
		return nil, err
	}
	return participants, nil
}

// MissingUIDs lists the requested UIDs that did not resolve to a participant,
// deduplicated, in request order.
func MissingUIDs(requested []string, found []models.Participant) []string {
	foundSet := make(map[string]bool, len(found))
	for _, p := range found {
		foundSet[p.FirebaseUID] = true
	}

	var missing []string
	seen := make(map[string]bool, len(requested))
	for _, uid := range requested {
		if !foundSet[uid] && !seen[uid] {
			missing = append(missing, uid)
			seen[uid] = true
		}
	}
	return missing
}
