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

// ReadAloudCommand is a message context menu that speaks the target message
// in one fixed language. One instance is registered per supported locale.
type ReadAloudCommand struct {
	Language string
	Bot      bot.Speech
}

func (c *ReadAloudCommand) Name() string {
	return fmt.Sprintf("Read aloud (%s)", lang.Name(c.Language))
}

func (c *ReadAloudCommand) Description() string { return "" }
func (c *ReadAloudCommand) Category() string    { return category }

func (c *ReadAloudCommand) ContextDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name: c.Name(),
		Type: discordgo.MessageApplicationCommand,
	}
}

func (c *ReadAloudCommand) Run(ctx interface{}) error {
	ictx, ok := ctx.(*command.MessageApplicationCommandContext)
	if !ok {
		return nil
	}
	s, e := ictx.Session, ictx.Event
	guildID := e.GuildID

	if ictx.Target == nil || strings.TrimSpace(ictx.Target.Content) == "" {
		return bot.RespondEphemeral(s, e, "That message has no text to read.")
	}
	text := ictx.Target.Content

	if e.Member == nil {
		return bot.RespondEphemeral(s, e, "This only works in a server.")
	}
	vs, err := c.Bot.FindUserVoiceState(guildID, e.Member.User.ID)
	if err != nil {
		return bot.RespondEphemeral(s, e, "Join a voice channel first, then ask me to read.")
	}

	if err := bot.RespondDeferredEphemeral(s, e); err != nil {
		return err
	}

	path, err := c.Bot.Synthesize(context.Background(), text, c.Language)
	if err != nil {
		log.Println("[ERR] Speech synthesis failed:", err)
		return bot.FollowUp(s, e, "Speech synthesis failed, try again later.", true)
	}

	if _, err := c.Bot.Voice().Ensure(guildID, vs.ChannelID); err != nil {
		tts.Discard(path)
		return bot.FollowUp(s, e, "Could not join your voice channel.", true)
	}

	if err := c.Bot.Voice().Play(guildID, path); err != nil {
		tts.Discard(path)
		if err == voice.ErrQueueBusy {
			return bot.FollowUp(s, e, "Too much queued up right now, try again in a moment.", true)
		}
		return bot.FollowUp(s, e, "Playback failed.", true)
	}

	return bot.FollowUp(s, e, fmt.Sprintf("Reading that message in %s.", lang.Name(c.Language)), true)
}
