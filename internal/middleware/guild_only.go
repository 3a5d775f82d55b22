package middleware

import (
	"context"

	"yomiage/internal/command"
	"yomiage/pkg/cmd"
)

// WithGuildOnly silently drops invocations that arrive outside a guild
// (DMs have no voice channels to speak into).
func WithGuildOnly() cmd.Middleware {
	return func(c cmd.Command) cmd.Command {
		return cmd.Wrap(c, func(ctx context.Context, inv *cmd.Invocation) error {
			switch v := inv.Data.(type) {
			case *command.SlashInteractionContext:
				if v.Event.GuildID == "" {
					return nil
				}
			case *command.MessageApplicationCommandContext:
				if v.Event.GuildID == "" {
					return nil
				}
			}
			return c.Run(ctx, inv)
		})
	}
}
