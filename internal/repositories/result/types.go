package result

import "github.com/KirkDiggler/mafia/internal/models"

type SaveResultInput struct {
	Result *models.GameResult
}

type GetResultInput struct {
	ResultID string
}

type ListResultsInput struct {
	GuildID string

	// Limit caps the number of results returned, zero means the default
	Limit int
}

type ListResultsOutput struct {
	Results []*models.GameResult
}
