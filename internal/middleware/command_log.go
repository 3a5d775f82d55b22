package middleware

import (
	"context"
	"log"

	"yomiage/internal/bot"
	"yomiage/internal/command"
	"yomiage/internal/storage"
	"yomiage/pkg/cmd"

	"github.com/bwmarrin/discordgo"
)

// WithCommandLogger records command usage in the guild's history after the
// command runs.
func WithCommandLogger() cmd.Middleware {
	return func(c cmd.Command) cmd.Command {
		return cmd.Wrap(c, func(ctx context.Context, inv *cmd.Invocation) error {
			err := c.Run(ctx, inv)

			switch v := inv.Data.(type) {
			case *command.SlashInteractionContext:
				logUsage(v.Session, v.Storage, v.Event, c.Name())
			case *command.MessageApplicationCommandContext:
				logUsage(v.Session, v.Storage, v.Event, c.Name())
			}
			return err
		})
	}
}

func logUsage(s *discordgo.Session, store *storage.Storage, e *discordgo.InteractionCreate, name string) {
	if store == nil {
		return
	}
	user := resolveUser(s, e)
	if err := bot.LogCommand(s, store, e.GuildID, e.ChannelID, user.ID, user.Username, name); err != nil {
		log.Printf("[WARN] Failed to log command /%s: %v", name, err)
	}
}

// resolveUser finds the invoking user whether the interaction came from a
// guild (Member) or a DM (User).
func resolveUser(s *discordgo.Session, e *discordgo.InteractionCreate) *discordgo.User {
	if e.Member != nil && e.Member.User != nil {
		return e.Member.User
	}
	if e.User != nil {
		if e.User.Username != "" {
			return e.User
		}
		if u, err := s.User(e.User.ID); err == nil {
			return u
		}
	}
	return &discordgo.User{ID: "unknown", Username: "Unknown"}
}
