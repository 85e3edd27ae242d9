package participants

// Error messages constants
const (
	ErrUIDRequired             = "firebase_uid is required"
	ErrParticipantNotFound     = "No participant found with UID: "
	ErrFailedToGetParticipants = "Failed to get participants"
	ErrFailedToRegister        = "Failed to register participant"
)
