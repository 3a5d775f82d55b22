package discord

import (
	"context"
	"fmt"

	"yomiage/internal/bot"
	"yomiage/internal/command"
	"yomiage/internal/command/speech"
	"yomiage/internal/lang"
	"yomiage/internal/middleware"
	"yomiage/internal/settings"
	"yomiage/internal/subscription"
	"yomiage/internal/tts"
	"yomiage/internal/voice"

	"github.com/bwmarrin/discordgo"
)

// registerSpeechCommands registers the read-aloud command surface.
func (b *Bot) registerSpeechCommands() {
	commands := []command.DiscordCommand{
		&speech.HelloCommand{Bot: b},
		&speech.ListenCommand{Bot: b},
		&speech.StopCommand{Bot: b},
		&speech.SpeakCommand{Bot: b},
		&speech.SpeedCommand{Bot: b},
		&speech.VolumeCommand{Bot: b},
		&speech.SettingsCommand{Bot: b},
	}
	for _, code := range lang.Codes() {
		commands = append(commands, &speech.ReadAloudCommand{Language: code, Bot: b})
	}
	for _, c := range commands {
		command.RegisterCommand(c,
			middleware.WithGuildOnly(),
			middleware.WithCommandLogger(),
		)
	}
}

// Settings returns the global speech settings.
func (b *Bot) Settings() *settings.Settings { return b.settings }

// Subscriptions returns the channel subscription table.
func (b *Bot) Subscriptions() *subscription.Table { return b.subs }

// Voice returns the voice session registry.
func (b *Bot) Voice() *voice.Registry { return b.voice }

// Synthesize runs the engine with the global speaking rate applied.
func (b *Bot) Synthesize(ctx context.Context, text, language string) (string, error) {
	return b.engine.Synthesize(ctx, tts.Request{
		Text:     text,
		Language: language,
		Rate:     b.settings.Rate(),
	})
}

// FindUserVoiceState finds the voice state of a user
func (b *Bot) FindUserVoiceState(guildID, userID string) (*bot.VoiceState, error) {
	guild, err := b.dg.State.Guild(guildID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving guild: %w", err)
	}

	for _, vs := range guild.VoiceStates {
		if vs.UserID == userID {
			return &bot.VoiceState{
				ChannelID: vs.ChannelID,
				UserID:    vs.UserID,
			}, nil
		}
	}
	return nil, fmt.Errorf("user not in any voice channel")
}

// FirstVoiceChannel returns the guild's first voice channel, the last
// resort when nobody names a target and the invoker is not in voice.
func (b *Bot) FirstVoiceChannel(guildID string) (string, error) {
	guild, err := b.dg.State.Guild(guildID)
	if err != nil {
		return "", fmt.Errorf("error retrieving guild: %w", err)
	}
	for _, ch := range guild.Channels {
		if ch.Type == discordgo.ChannelTypeGuildVoice {
			return ch.ID, nil
		}
	}
	return "", fmt.Errorf("guild has no voice channels")
}
