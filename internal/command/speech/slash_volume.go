package speech

import (
	"fmt"

	"yomiage/internal/bot"
	"yomiage/internal/command"
	"yomiage/internal/settings"

	"github.com/bwmarrin/discordgo"
)

type VolumeCommand struct {
	Bot bot.Speech
}

func (c *VolumeCommand) Name() string        { return "volume" }
func (c *VolumeCommand) Description() string { return "Set the playback volume for read-aloud" }
func (c *VolumeCommand) Category() string    { return category }

func (c *VolumeCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionNumber,
				Name:        "level",
				Description: "Volume (0.1 to 2.0, 1.0 is normal)",
				Required:    true,
				MinValue:    float64Ptr(settings.VolumeMin),
				MaxValue:    settings.VolumeMax,
			},
		},
	}
}

func (c *VolumeCommand) Run(ctx interface{}) error {
	context, ok := ctx.(*command.SlashInteractionContext)
	if !ok {
		return nil
	}
	s, e := context.Session, context.Event

	var level float64
	for _, opt := range e.ApplicationCommandData().Options {
		if opt.Name == "level" {
			level = opt.FloatValue()
		}
	}

	if err := c.Bot.Settings().SetVolume(level); err != nil {
		return bot.RespondEmbedEphemeral(s, e, &discordgo.MessageEmbed{
			Description: fmt.Sprintf("Volume must be between %.1f and %.1f.", settings.VolumeMin, settings.VolumeMax),
		})
	}

	// Apply live to whatever the invoking guild is currently playing.
	c.Bot.Voice().SetVolume(e.GuildID, level)

	return bot.RespondEmbedEphemeral(s, e, &discordgo.MessageEmbed{
		Description: fmt.Sprintf("Volume set to %.2fx.", level),
	})
}
