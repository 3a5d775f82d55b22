package discord

import (
	"testing"

	"github.com/bwmarrin/discordgo"
)

func TestHashCommandStable(t *testing.T) {
	def := &discordgo.ApplicationCommand{
		Name:        "speed",
		Description: "Set the speaking rate",
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionNumber,
				Name:        "rate",
				Description: "Speaking rate",
				Required:    true,
			},
		},
	}
	if hashCommand(def) != hashCommand(def) {
		t.Fatalf("hash not deterministic")
	}
}

func TestHashCommandDetectsOptionChanges(t *testing.T) {
	a := &discordgo.ApplicationCommand{
		Name: "speed",
		Options: []*discordgo.ApplicationCommandOption{
			{Type: discordgo.ApplicationCommandOptionNumber, Name: "rate", MaxValue: 4.0},
		},
	}
	b := &discordgo.ApplicationCommand{
		Name: "speed",
		Options: []*discordgo.ApplicationCommandOption{
			{Type: discordgo.ApplicationCommandOptionNumber, Name: "rate", MaxValue: 2.0},
		},
	}
	if hashCommand(a) == hashCommand(b) {
		t.Fatalf("hash ignored max value change")
	}
}

func TestHashCommandIgnoresRuntimeFields(t *testing.T) {
	a := &discordgo.ApplicationCommand{Name: "stop", Description: "Stop reading"}
	b := &discordgo.ApplicationCommand{Name: "stop", Description: "Stop reading", ID: "123", Version: "9"}
	if hashCommand(a) != hashCommand(b) {
		t.Fatalf("hash should ignore ID and version")
	}
}
