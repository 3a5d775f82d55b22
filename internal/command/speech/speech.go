// Package speech implements the read-aloud command surface: rate/volume
// settings, channel subscriptions, one-shot speech, and per-language
// context menus.
package speech

import (
	"errors"

	"yomiage/internal/lang"

	"github.com/bwmarrin/discordgo"
)

const category = "🔊 Speech"

var errNoVoiceTarget = errors.New("no voice channel to join: pass one, join one, or create one")

// resolveVoiceTarget picks the voice channel a session should connect to.
// An explicit option always wins, then the invoker's current channel, then
// the guild's first voice channel as a documented last resort.
func resolveVoiceTarget(explicit, invoker, guildFirst string) (string, error) {
	switch {
	case explicit != "":
		return explicit, nil
	case invoker != "":
		return invoker, nil
	case guildFirst != "":
		return guildFirst, nil
	}
	return "", errNoVoiceTarget
}

// languageChoices builds the shared locale choice list for slash options.
func languageChoices() []*discordgo.ApplicationCommandOptionChoice {
	codes := lang.Codes()
	choices := make([]*discordgo.ApplicationCommandOptionChoice, len(codes))
	for i, code := range codes {
		choices[i] = &discordgo.ApplicationCommandOptionChoice{
			Name:  lang.Name(code),
			Value: code,
		}
	}
	return choices
}

func languageOption() *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "language",
		Description: "Speech language",
		Choices:     languageChoices(),
	}
}

func float64Ptr(v float64) *float64 { return &v }
