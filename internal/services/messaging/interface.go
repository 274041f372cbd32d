package messaging

import "context"

// Service is the interface for the narration service
type Service interface {
	// GetNightfallMessage returns the story line that opens a round
	GetNightfallMessage(ctx context.Context, input *GetNightfallMessageInput) (*GetNightfallMessageOutput, error)

	// GetDawnMessage returns the story line that opens the night summary
	GetDawnMessage(ctx context.Context, input *GetDawnMessageInput) (*GetDawnMessageOutput, error)

	// GetVillageMeetingMessage returns the story line that opens the day
	GetVillageMeetingMessage(ctx context.Context, input *GetVillageMeetingMessageInput) (*GetVillageMeetingMessageOutput, error)
}
