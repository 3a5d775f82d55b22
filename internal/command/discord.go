// Package command defines the Discord command contracts: the contexts the
// runtime hands to commands, the provider interfaces that describe how a
// command registers with Discord, and the adapter into the universal
// registry.
package command

import (
	"context"

	"yomiage/internal/storage"
	"yomiage/pkg/cmd"

	"github.com/bwmarrin/discordgo"
)

// Contexts — what the runtime passes when executing a command.

type SlashInteractionContext struct {
	Session *discordgo.Session
	Event   *discordgo.InteractionCreate
	Storage *storage.Storage
}

type MessageApplicationCommandContext struct {
	Session *discordgo.Session
	Event   *discordgo.InteractionCreate
	Storage *storage.Storage
	Target  *discordgo.Message
}

// Providers — how a command is registered with Discord.

type SlashProvider interface {
	SlashDefinition() *discordgo.ApplicationCommand
}

type ContextMenuProvider interface {
	ContextDefinition() *discordgo.ApplicationCommand
}

// DiscordCommand is what individual commands implement; Run receives one
// of the context types above.
type DiscordCommand interface {
	Name() string
	Description() string
	Category() string
	Run(ctx interface{}) error
}

// DiscordAdapter lifts a DiscordCommand into cmd.Command so it can live in
// the universal registry, delegating the provider interfaces to the inner
// command.
type DiscordAdapter struct {
	Cmd DiscordCommand
}

func (a *DiscordAdapter) Name() string        { return a.Cmd.Name() }
func (a *DiscordAdapter) Description() string { return a.Cmd.Description() }
func (a *DiscordAdapter) Category() string    { return a.Cmd.Category() }

func (a *DiscordAdapter) Run(ctx context.Context, inv *cmd.Invocation) error {
	return a.Cmd.Run(inv.Data)
}

func (a *DiscordAdapter) SlashDefinition() *discordgo.ApplicationCommand {
	if sp, ok := a.Cmd.(SlashProvider); ok {
		return sp.SlashDefinition()
	}
	return nil
}

func (a *DiscordAdapter) ContextDefinition() *discordgo.ApplicationCommand {
	if cp, ok := a.Cmd.(ContextMenuProvider); ok {
		return cp.ContextDefinition()
	}
	return nil
}

// RegisterCommand puts a Discord command into the universal registry with
// middlewares applied.
func RegisterCommand(discordCmd DiscordCommand, mws ...cmd.Middleware) {
	c := cmd.Apply(&DiscordAdapter{Cmd: discordCmd}, mws...)
	cmd.DefaultRegistry.Register(c)
}

// GetCommand looks a command up by name.
func GetCommand(name string) (cmd.Command, bool) {
	c := cmd.DefaultRegistry.Get(name)
	return c, c != nil
}

// AllCommands returns every registered command.
func AllCommands() []cmd.Command {
	return cmd.DefaultRegistry.GetAll()
}
