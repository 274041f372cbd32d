package models

const (
	// DefaultGuildPrefix is the command prefix used in a new guild
	DefaultGuildPrefix = "!"

	// DefaultBotPrefix is the prefix for bot management commands
	DefaultBotPrefix = "%%"
)

// GuildSettings holds the per guild configuration blob
type GuildSettings struct {
	// GuildID is the Discord guild these settings belong to
	GuildID string `json:"guild_id"`

	// Prefix is the command prefix recognised in the guild
	Prefix string `json:"prefix"`

	// ManageUsers are user IDs allowed to manage the bot in the guild
	ManageUsers []string `json:"manage_users"`

	// ManageRoles are role IDs allowed to manage the bot in the guild
	ManageRoles []string `json:"manage_roles"`

	// ActiveChannels are the channels games can be played in
	ActiveChannels []string `json:"active_channels"`

	// WinCommand is posted followed by the winners' mentions when a game is won
	WinCommand string `json:"win_command"`

	// Disabled stops games from being created in the guild
	Disabled bool `json:"disabled"`
}

// DefaultGuildSettings returns the settings for a guild seen for the first time
func DefaultGuildSettings(guildID string) *GuildSettings {
	return &GuildSettings{
		GuildID:        guildID,
		Prefix:         DefaultGuildPrefix,
		ManageUsers:    []string{},
		ManageRoles:    []string{},
		ActiveChannels: []string{},
	}
}

// IsActiveChannel returns true if games may be played in the channel
func (s *GuildSettings) IsActiveChannel(channelID string) bool {
	return containsString(s.ActiveChannels, channelID)
}

// IsManager returns true if the user or one of their roles may manage the bot
func (s *GuildSettings) IsManager(userID string, roleIDs []string) bool {
	if containsString(s.ManageUsers, userID) {
		return true
	}
	for _, roleID := range roleIDs {
		if containsString(s.ManageRoles, roleID) {
			return true
		}
	}
	return false
}

// BotSettings holds configuration that applies across every guild
type BotSettings struct {
	Prefix   string   `json:"prefix"`
	OwnerID  string   `json:"owner_id"`
	Managers []string `json:"managers"`
}

// IsManager returns true for the owner and listed managers
func (s *BotSettings) IsManager(userID string) bool {
	return userID == s.OwnerID || containsString(s.Managers, userID)
}

func containsString(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}

// AddString appends value to values if it is not already present
func AddString(values []string, value string) []string {
	if containsString(values, value) {
		return values
	}
	return append(values, value)
}

// RemoveString returns values without any occurrence of value
func RemoveString(values []string, value string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != value {
			out = append(out, v)
		}
	}
	return out
}
