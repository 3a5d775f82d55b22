package discord

import (
	"context"
	"log"
	"sync"
	"time"

	"yomiage/internal/command"
	"yomiage/pkg/cmd"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/time/rate"
)

// registerCommands reconciles the guild's application commands with the
// registry, creating, updating, and deleting only what changed.
func (b *Bot) registerCommands(guildID string) error {
	appID := b.dg.State.User.ID
	if appID == "" {
		user, err := b.dg.User("@me")
		if err != nil {
			return err
		}
		appID = user.ID
	}

	existing, _ := b.dg.ApplicationCommands(appID, guildID)
	localHashes := loadGuildCommandHashes(guildID)

	var wanted []*discordgo.ApplicationCommand
	wantedHashes := make(map[string]string)
	for _, c := range command.AllCommands() {
		if def := normalizeDefinition(c); def != nil {
			wanted = append(wanted, def)
			wantedHashes[def.Name] = hashCommand(def)
		}
	}

	// Delete obsolete
	for _, old := range existing {
		if _, ok := wantedHashes[old.Name]; !ok {
			log.Printf("[INFO] [%s] Deleting obsolete command: %s", guildID, old.Name)
			if err := b.dg.ApplicationCommandDelete(appID, guildID, old.ID); err != nil {
				log.Printf("[ERR] [%s] Failed to delete %s: %v", guildID, old.Name, err)
			}
			delete(localHashes, old.Name)
		}
	}

	// Create or update changed commands
	var changed []*discordgo.ApplicationCommand
	for _, def := range wanted {
		if localHashes[def.Name] != wantedHashes[def.Name] {
			changed = append(changed, def)
		}
	}

	if len(changed) > 0 {
		log.Printf("[INFO] [%s] %d commands changed — updating with rate limit...", guildID, len(changed))
		registerCommandsWithRateLimit(b, appID, guildID, changed)
		for _, def := range changed {
			localHashes[def.Name] = wantedHashes[def.Name]
		}
	}

	saveGuildCommandHashes(guildID, localHashes)
	return nil
}

// normalizeDefinition extracts a registerable definition from a (possibly
// middleware-wrapped) command.
func normalizeDefinition(c cmd.Command) *discordgo.ApplicationCommand {
	root := cmd.Root(c)
	if slash, ok := root.(command.SlashProvider); ok {
		if def := slash.SlashDefinition(); def != nil {
			if def.Type == 0 {
				def.Type = discordgo.ChatApplicationCommand
			}
			return def
		}
	}
	if menu, ok := root.(command.ContextMenuProvider); ok {
		if def := menu.ContextDefinition(); def != nil {
			if def.Type == 0 {
				def.Type = discordgo.MessageApplicationCommand
			}
			return def
		}
	}
	return nil
}

// registerCommandsWithRateLimit creates commands while respecting
// Discord's burst allowance.
func registerCommandsWithRateLimit(b *Bot, appID, guildID string, defs []*discordgo.ApplicationCommand) {
	limiter := rate.NewLimiter(rate.Every(time.Second/40), 1)

	var wg sync.WaitGroup
	for _, job := range defs {
		wg.Add(1)

		go func(def *discordgo.ApplicationCommand) {
			defer wg.Done()
			if err := limiter.Wait(context.Background()); err != nil {
				return
			}

			_, err := b.dg.ApplicationCommandCreate(appID, guildID, def)
			if err != nil {
				log.Printf("[ERR] Can't create command %s: %v", def.Name, err)
			} else {
				log.Printf("[DONE] Command created: %s", def.Name)
			}
		}(job)
	}

	wg.Wait()
}
