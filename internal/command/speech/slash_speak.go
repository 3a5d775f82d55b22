package speech

import (
	"context"
	"fmt"
	"log"
	"strings"

	"yomiage/internal/bot"
	"yomiage/internal/command"
	"yomiage/internal/lang"
	"yomiage/internal/tts"
	"yomiage/internal/voice"

	"github.com/bwmarrin/discordgo"
)

type SpeakCommand struct {
	Bot bot.Speech
}

func (c *SpeakCommand) Name() string        { return "speak" }
func (c *SpeakCommand) Description() string { return "Speak a phrase in your voice channel" }
func (c *SpeakCommand) Category() string    { return category }

func (c *SpeakCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "message",
				Description: "What to say",
				Required:    true,
			},
			languageOption(),
		},
	}
}

func (c *SpeakCommand) Run(ctx interface{}) error {
	ictx, ok := ctx.(*command.SlashInteractionContext)
	if !ok {
		return nil
	}
	s, e := ictx.Session, ictx.Event
	guildID := e.GuildID

	var text, language string
	for _, opt := range e.ApplicationCommandData().Options {
		switch opt.Name {
		case "message":
			text = opt.StringValue()
		case "language":
			language = opt.StringValue()
		}
	}
	if language == "" {
		language = lang.Default
	}

	if strings.TrimSpace(text) == "" {
		return bot.RespondEphemeral(s, e, "Nothing to say.")
	}

	if e.Member == nil {
		return bot.RespondEphemeral(s, e, "This command only works in a server.")
	}
	vs, err := c.Bot.FindUserVoiceState(guildID, e.Member.User.ID)
	if err != nil {
		return bot.RespondEphemeral(s, e, "Join a voice channel first, then ask me to speak.")
	}

	// Synthesis is slow; acknowledge now and follow up with the result.
	if err := bot.RespondDeferred(s, e); err != nil {
		return err
	}

	path, err := c.Bot.Synthesize(context.Background(), text, language)
	if err != nil {
		log.Println("[ERR] Speech synthesis failed:", err)
		return bot.FollowUp(s, e, "Speech synthesis failed, try again later.", false)
	}

	if _, err := c.Bot.Voice().Ensure(guildID, vs.ChannelID); err != nil {
		tts.Discard(path)
		return bot.FollowUp(s, e, "Could not join your voice channel.", false)
	}

	if err := c.Bot.Voice().Play(guildID, path); err != nil {
		tts.Discard(path)
		if err == voice.ErrQueueBusy {
			return bot.FollowUp(s, e, "I have too much queued up right now, try again in a moment.", false)
		}
		return bot.FollowUp(s, e, "Playback failed.", false)
	}

	return bot.FollowUp(s, e, fmt.Sprintf("Speaking in %s: %s", lang.Name(language), text), false)
}
