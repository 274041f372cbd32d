package result

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/mafia/internal/repositories/result Repository

import (
	"context"

	"github.com/KirkDiggler/mafia/internal/models"
)

// Repository defines the interface for finished game persistence
type Repository interface {
	// SaveResult persists the result of a finished game
	SaveResult(ctx context.Context, input *SaveResultInput) error

	// GetResult retrieves a result by ID
	GetResult(ctx context.Context, input *GetResultInput) (*models.GameResult, error)

	// ListResults retrieves the most recent results for a guild, newest first
	ListResults(ctx context.Context, input *ListResultsInput) (*ListResultsOutput, error)
}
