package speech

import (
	"fmt"

	"yomiage/internal/bot"
	"yomiage/internal/command"

	"github.com/bwmarrin/discordgo"
)

type StopCommand struct {
	Bot bot.Speech
}

func (c *StopCommand) Name() string        { return "stop" }
func (c *StopCommand) Description() string { return "Stop reading a text channel aloud" }
func (c *StopCommand) Category() string    { return category }

func (c *StopCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:         discordgo.ApplicationCommandOptionChannel,
				Name:         "channel",
				Description:  "Text channel to stop reading",
				Required:     true,
				ChannelTypes: []discordgo.ChannelType{discordgo.ChannelTypeGuildText},
			},
		},
	}
}

func (c *StopCommand) Run(ctx interface{}) error {
	context, ok := ctx.(*command.SlashInteractionContext)
	if !ok {
		return nil
	}
	s, e := context.Session, context.Event
	guildID := e.GuildID

	var channel *discordgo.Channel
	for _, opt := range e.ApplicationCommandData().Options {
		if opt.Name == "channel" {
			channel = opt.ChannelValue(s)
		}
	}
	if channel == nil {
		return bot.RespondEmbedEphemeral(s, e, &discordgo.MessageEmbed{
			Description: "Select a channel to stop reading.",
		})
	}

	subs := c.Bot.Subscriptions()
	if !subs.IsSubscribed(channel.ID) {
		return bot.RespondEmbedEphemeral(s, e, &discordgo.MessageEmbed{
			Description: fmt.Sprintf("**%s** is not currently being read aloud.", channel.Name),
		})
	}

	subs.Unsubscribe(channel.ID)

	// Last subscription in the guild takes the voice session with it.
	if subs.GuildCount(guildID) == 0 {
		c.Bot.Voice().Teardown(guildID)
		return bot.RespondEmbed(s, e, &discordgo.MessageEmbed{
			Description: fmt.Sprintf("Stopped reading **%s** and left the voice channel.", channel.Name),
		})
	}

	return bot.RespondEmbed(s, e, &discordgo.MessageEmbed{
		Description: fmt.Sprintf("Stopped reading **%s**. Other channels are still being read, so I stayed in voice.", channel.Name),
	})
}
