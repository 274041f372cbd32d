package discord

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/bwmarrin/discordgo"
)

// BotError is a custom error type for bot errors
type BotError string

// Error implements the error interface
func (e BotError) Error() string {
	return string(e)
}

const (
	ErrNilConfig       BotError = "config cannot be nil"
	ErrNilSession      BotError = "session cannot be nil"
	ErrNilRegistry     BotError = "registry cannot be nil"
	ErrNilSettingsRepo BotError = "settings repository cannot be nil"
)

// translateError wraps a 403 response from Discord in forbidden so the game
// can tell a refused permission from any other failure
func translateError(err error, forbidden error) error {
	if err == nil {
		return nil
	}

	var restErr *discordgo.RESTError
	if errors.As(err, &restErr) && restErr.Response != nil && restErr.Response.StatusCode == http.StatusForbidden {
		return fmt.Errorf("%w: %v", forbidden, err)
	}
	return err
}
