package discord

import (
	"errors"
	"net/http"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/mafia/internal/services/game"
)

func TestTranslateError(t *testing.T) {
	assert.NoError(t, translateError(nil, game.ErrPermissionDenied))

	err := translateError(forbidden(), game.ErrPermissionDenied)
	assert.ErrorIs(t, err, game.ErrPermissionDenied)

	notFound := &discordgo.RESTError{Response: &http.Response{StatusCode: http.StatusNotFound}}
	err = translateError(notFound, game.ErrPermissionDenied)
	assert.False(t, errors.Is(err, game.ErrPermissionDenied))
	assert.Same(t, notFound, err)

	other := errors.New("connection reset")
	assert.Equal(t, other, translateError(other, game.ErrDirectMessagesBlocked))
}
