package speech

import (
	"fmt"

	"yomiage/internal/bot"
	"yomiage/internal/command"

	"github.com/bwmarrin/discordgo"
)

type SettingsCommand struct {
	Bot bot.Speech
}

func (c *SettingsCommand) Name() string        { return "settings" }
func (c *SettingsCommand) Description() string { return "Show current read-aloud settings" }
func (c *SettingsCommand) Category() string    { return category }

func (c *SettingsCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
	}
}

func (c *SettingsCommand) Run(ctx interface{}) error {
	context, ok := ctx.(*command.SlashInteractionContext)
	if !ok {
		return nil
	}
	s, e := context.Session, context.Event
	set := c.Bot.Settings()

	return bot.RespondEmbedEphemeral(s, e, &discordgo.MessageEmbed{
		Title: "Read-aloud settings",
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Speaking rate", Value: fmt.Sprintf("%.2fx", set.Rate()), Inline: true},
			{Name: "Volume", Value: fmt.Sprintf("%.2fx", set.Volume()), Inline: true},
		},
	})
}
