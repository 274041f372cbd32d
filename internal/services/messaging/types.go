package messaging

// NightOutcome describes what the mafia achieved during the night
type NightOutcome string

const (
	// NightOutcomeNoAttempt means the mafia did not agree on a target
	NightOutcomeNoAttempt NightOutcome = "no_attempt"

	// NightOutcomeSaved means the doctor saved the mafia's target
	NightOutcomeSaved NightOutcome = "saved"

	// NightOutcomeKilled means the mafia's target died
	NightOutcomeKilled NightOutcome = "killed"
)

// Config holds configuration for the narration service
type Config struct {
	// Optional seed for testing
	Seed int64
}

// GetNightfallMessageInput contains parameters for getting a nightfall message
type GetNightfallMessageInput struct {
	// Round is the round that is starting
	Round int
}

// GetNightfallMessageOutput contains the result of getting a nightfall message
type GetNightfallMessageOutput struct {
	Title   string
	Message string
}

// GetDawnMessageInput contains parameters for getting a dawn message
type GetDawnMessageInput struct {
	// Round is the round whose night just ended
	Round int
}

// GetDawnMessageOutput contains the result of getting a dawn message
type GetDawnMessageOutput struct {
	Title   string
	Message string
}

// GetVillageMeetingMessageInput contains parameters for getting a village meeting message
type GetVillageMeetingMessageInput struct {
	Outcome NightOutcome
}

// GetVillageMeetingMessageOutput contains the result of getting a village meeting message
type GetVillageMeetingMessageOutput struct {
	Message string
}
