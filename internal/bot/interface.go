// Package bot defines what commands may ask of the running bot, plus the
// shared interaction reply helpers. Commands depend on this package, never
// on the discord wiring directly.
package bot

import (
	"context"

	"yomiage/internal/settings"
	"yomiage/internal/subscription"
	"yomiage/internal/voice"
)

// VoiceState holds the minimal voice channel state for a user.
type VoiceState struct {
	ChannelID string
	UserID    string
}

// Speech is the surface commands use to drive read-aloud behavior.
type Speech interface {
	Settings() *settings.Settings
	Subscriptions() *subscription.Table
	Voice() *voice.Registry

	// Synthesize runs the engine with the global speaking rate applied.
	Synthesize(ctx context.Context, text, language string) (string, error)

	// FindUserVoiceState reports which voice channel a user currently
	// occupies in a guild, or an error when they are in none.
	FindUserVoiceState(guildID, userID string) (*VoiceState, error)

	// FirstVoiceChannel returns the guild's first voice channel, the last
	// resort of the listen target policy.
	FirstVoiceChannel(guildID string) (string, error)
}
