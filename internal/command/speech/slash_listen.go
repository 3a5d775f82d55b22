package speech

import (
	"fmt"

	"yomiage/internal/bot"
	"yomiage/internal/command"
	"yomiage/internal/lang"

	"github.com/bwmarrin/discordgo"
)

type ListenCommand struct {
	Bot bot.Speech
}

func (c *ListenCommand) Name() string        { return "listen" }
func (c *ListenCommand) Description() string { return "Read a text channel's messages aloud" }
func (c *ListenCommand) Category() string    { return category }

func (c *ListenCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:         discordgo.ApplicationCommandOptionChannel,
				Name:         "channel",
				Description:  "Text channel to read aloud",
				Required:     true,
				ChannelTypes: []discordgo.ChannelType{discordgo.ChannelTypeGuildText},
			},
			{
				Type:         discordgo.ApplicationCommandOptionChannel,
				Name:         "voicechannel",
				Description:  "Voice channel to speak in (defaults to yours)",
				ChannelTypes: []discordgo.ChannelType{discordgo.ChannelTypeGuildVoice},
			},
			languageOption(),
		},
	}
}

func (c *ListenCommand) Run(ctx interface{}) error {
	context, ok := ctx.(*command.SlashInteractionContext)
	if !ok {
		return nil
	}
	s, e := context.Session, context.Event
	guildID := e.GuildID

	var channel *discordgo.Channel
	var explicitVoice, language string
	for _, opt := range e.ApplicationCommandData().Options {
		switch opt.Name {
		case "channel":
			channel = opt.ChannelValue(s)
		case "voicechannel":
			if vc := opt.ChannelValue(s); vc != nil {
				explicitVoice = vc.ID
			}
		case "language":
			language = opt.StringValue()
		}
	}
	if language == "" {
		language = lang.Default
	}

	if channel == nil {
		return bot.RespondEmbedEphemeral(s, e, &discordgo.MessageEmbed{
			Description: "Select a channel to read aloud.",
		})
	}
	if channel.Type != discordgo.ChannelTypeGuildText {
		return bot.RespondEmbedEphemeral(s, e, &discordgo.MessageEmbed{
			Description: "Select a text channel.",
		})
	}

	subs := c.Bot.Subscriptions()

	// Already enrolled: only the language changes, the session stays as is.
	if subs.IsSubscribed(channel.ID) {
		subs.Subscribe(channel.ID, guildID, language)
		return bot.RespondEmbedEphemeral(s, e, &discordgo.MessageEmbed{
			Description: fmt.Sprintf("Read-aloud language for **%s** is now %s.", channel.Name, lang.Name(language)),
		})
	}

	var invokerVoice string
	if e.Member != nil {
		if vs, err := c.Bot.FindUserVoiceState(guildID, e.Member.User.ID); err == nil {
			invokerVoice = vs.ChannelID
		}
	}
	guildFirst, _ := c.Bot.FirstVoiceChannel(guildID)

	target, err := resolveVoiceTarget(explicitVoice, invokerVoice, guildFirst)
	if err != nil {
		return bot.RespondEmbedEphemeral(s, e, &discordgo.MessageEmbed{
			Description: "No voice channel to speak in. Join one or pass `voicechannel`.",
		})
	}

	if _, err := c.Bot.Voice().Ensure(guildID, target); err != nil {
		return fmt.Errorf("failed to join voice channel: %w", err)
	}

	subs.Subscribe(channel.ID, guildID, language)

	return bot.RespondEmbed(s, e, &discordgo.MessageEmbed{
		Description: fmt.Sprintf("Reading **%s** aloud in %s.", channel.Name, lang.Name(language)),
	})
}
