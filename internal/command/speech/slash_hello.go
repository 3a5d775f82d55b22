package speech

import (
	"yomiage/internal/bot"
	"yomiage/internal/command"

	"github.com/bwmarrin/discordgo"
)

// HelloCommand is the liveness check: it just says hello.
type HelloCommand struct {
	Bot bot.Speech
}

func (c *HelloCommand) Name() string        { return "hello" }
func (c *HelloCommand) Description() string { return "Say hello" }
func (c *HelloCommand) Category() string    { return category }

func (c *HelloCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
	}
}

func (c *HelloCommand) Run(ctx interface{}) error {
	context, ok := ctx.(*command.SlashInteractionContext)
	if !ok {
		return nil
	}
	return bot.Respond(context.Session, context.Event, "Hello!")
}
