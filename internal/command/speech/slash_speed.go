package speech

import (
	"fmt"

	"yomiage/internal/bot"
	"yomiage/internal/command"
	"yomiage/internal/settings"

	"github.com/bwmarrin/discordgo"
)

type SpeedCommand struct {
	Bot bot.Speech
}

func (c *SpeedCommand) Name() string        { return "speed" }
func (c *SpeedCommand) Description() string { return "Set the speaking rate for read-aloud" }
func (c *SpeedCommand) Category() string    { return category }

func (c *SpeedCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionNumber,
				Name:        "rate",
				Description: "Speaking rate (0.25 to 4.0, 1.0 is normal)",
				Required:    true,
				MinValue:    float64Ptr(settings.RateMin),
				MaxValue:    settings.RateMax,
			},
		},
	}
}

func (c *SpeedCommand) Run(ctx interface{}) error {
	context, ok := ctx.(*command.SlashInteractionContext)
	if !ok {
		return nil
	}
	s, e := context.Session, context.Event

	var rate float64
	for _, opt := range e.ApplicationCommandData().Options {
		if opt.Name == "rate" {
			rate = opt.FloatValue()
		}
	}

	if err := c.Bot.Settings().SetRate(rate); err != nil {
		return bot.RespondEmbedEphemeral(s, e, &discordgo.MessageEmbed{
			Description: fmt.Sprintf("Speaking rate must be between %.2f and %.1f.", settings.RateMin, settings.RateMax),
		})
	}

	return bot.RespondEmbedEphemeral(s, e, &discordgo.MessageEmbed{
		Description: fmt.Sprintf("Speaking rate set to %.2fx.", rate),
	})
}
