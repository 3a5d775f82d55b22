package discord

import (
	"context"
	"fmt"
	"log"

	"yomiage/internal/bot"
	"yomiage/internal/command"
	"yomiage/pkg/cmd"

	"github.com/bwmarrin/discordgo"
)

// onInteractionCreate dispatches slash and context menu invocations through
// the command registry.
func (b *Bot) onInteractionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	cmdName := i.ApplicationCommandData().Name
	c, ok := command.GetCommand(cmdName)
	if !ok {
		log.Printf("[WARN] Unknown command: %s\n", cmdName)
		return
	}

	switch i.ApplicationCommandData().CommandType {
	case discordgo.MessageApplicationCommand:
		data := i.ApplicationCommandData()
		var target *discordgo.Message
		if data.Resolved != nil {
			target = data.Resolved.Messages[data.TargetID]
		}
		ctx := &command.MessageApplicationCommandContext{
			Session: s,
			Event:   i,
			Storage: b.storage,
			Target:  target,
		}
		if err := c.Run(context.Background(), &cmd.Invocation{Data: ctx}); err != nil {
			log.Println("[ERR] Error running context menu command:", err)
			bot.RespondEmbedEphemeral(s, i, &discordgo.MessageEmbed{
				Description: fmt.Sprintf("Error running context menu command: %v", err),
			})
		}
	default:
		ctx := &command.SlashInteractionContext{
			Session: s,
			Event:   i,
			Storage: b.storage,
		}
		if err := c.Run(context.Background(), &cmd.Invocation{Data: ctx}); err != nil {
			log.Println("[ERR] Error running slash command:", err)
			bot.RespondEmbedEphemeral(s, i, &discordgo.MessageEmbed{
				Description: fmt.Sprintf("Error running slash command: %v", err),
			})
		}
	}
}
