// Package discord wires the read-aloud machinery to a Discord gateway
// session: event handlers, command registration, and the voice lifecycle.
package discord

import (
	"context"
	"fmt"
	"log"
	"slices"
	"strings"

	"yomiage/internal/config"
	"yomiage/internal/settings"
	"yomiage/internal/storage"
	"yomiage/internal/subscription"
	"yomiage/internal/tts"
	"yomiage/internal/voice"

	"github.com/bwmarrin/discordgo"
)

// Bot is the Discord read-aloud bot.
type Bot struct {
	dg       *discordgo.Session
	cfg      *config.Config
	storage  *storage.Storage
	settings *settings.Settings
	subs     *subscription.Table
	voice    *voice.Registry
	engine   tts.Engine
}

// NewBot assembles a bot around an already-constructed synthesis engine.
func NewBot(cfg *config.Config, store *storage.Storage, engine tts.Engine) *Bot {
	b := &Bot{
		cfg:      cfg,
		storage:  store,
		settings: settings.New(),
		subs:     subscription.NewTable(),
		engine:   engine,
	}
	return b
}

// Run opens the gateway session and blocks until ctx is cancelled.
func (b *Bot) Run(ctx context.Context) error {
	dg, err := discordgo.New("Bot " + b.cfg.DiscordToken)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	b.dg = dg
	b.voice = voice.NewRegistry(voice.NewDiscordJoiner(dg), voice.FFmpegStreamer{}, b.settings)
	b.registerSpeechCommands()

	b.configureIntents()
	dg.AddHandler(b.onReady)
	dg.AddHandler(b.onMessageCreate)
	dg.AddHandler(b.onInteractionCreate)
	dg.AddHandler(b.onGuildCreate)
	dg.AddHandler(b.onVoiceStateUpdate)

	if err := dg.Open(); err != nil {
		return fmt.Errorf("failed to open Discord session: %w", err)
	}
	defer dg.Close()

	go func() {
		for evt := range VoiceEvents() {
			switch evt.Type {
			case VoiceEventDisconnected:
				b.handleVoiceDisconnect(evt)
			}
		}
	}()

	<-ctx.Done()
	log.Println("[INFO] ❎ Shutdown signal received. Cleaning up...")
	b.teardownAll()
	return nil
}

// configureIntents configures the Discord intents
func (b *Bot) configureIntents() {
	b.dg.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsGuildVoiceStates |
		discordgo.IntentMessageContent
}

// onReady is called when the bot is ready
func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	botInfo, err := s.User("@me")
	if err != nil {
		log.Println("[WARN] Error retrieving bot user:", err)
		return
	}

	// Leave any blacklisted guilds on startup
	for _, g := range r.Guilds {
		if b.isGuildBlacklisted(g.ID) {
			log.Printf("[INFO] Leaving blacklisted guild: %s (%s)", g.ID, g.Name)
			if err := s.GuildLeave(g.ID); err != nil {
				log.Printf("[ERR] Failed to leave guild %s: %v", g.ID, err)
			}
			continue
		}

		if b.cfg.InitSlashCommands {
			if err := b.registerCommands(g.ID); err != nil {
				log.Println("[ERR] Error registering slash commands for guild", g.ID, ":", err)
			}
		} else {
			log.Println("[INFO] Registering slash commands skipped")
		}
	}

	log.Printf("[INFO] ✅ Discord bot %v is running.", botInfo.Username)
}

// onGuildCreate is called when the bot joins a guild
func (b *Bot) onGuildCreate(s *discordgo.Session, g *discordgo.GuildCreate) {
	log.Printf("[INFO] Bot added to guild: %s (%s)", g.Guild.ID, g.Guild.Name)

	if b.isGuildBlacklisted(g.Guild.ID) {
		log.Printf("[INFO] Leaving blacklisted guild: %s (%s)", g.Guild.ID, g.Guild.Name)
		if err := s.GuildLeave(g.Guild.ID); err != nil {
			log.Printf("[ERR] Failed to leave guild %s: %v", g.Guild.ID, err)
		}
		return
	}

	if err := b.registerCommands(g.Guild.ID); err != nil {
		log.Printf("[ERR] Failed to register commands for new guild %s: %v", g.Guild.ID, err)
	}
}

// onMessageCreate reads subscribed channels aloud.
func (b *Bot) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}
	if !b.subs.IsSubscribed(m.ChannelID) {
		return
	}
	if strings.TrimSpace(m.Content) == "" {
		return
	}

	language := b.subs.LanguageOf(m.ChannelID)
	path, err := b.Synthesize(context.Background(), m.Content, language)
	if err != nil {
		log.Printf("[ERR] Synthesis failed for channel %s: %v", m.ChannelID, err)
		return
	}

	// Reconnect if the session was dropped since the subscription was made.
	if !b.voice.Has(m.GuildID) {
		vs, err := b.FindUserVoiceState(m.GuildID, m.Author.ID)
		if err != nil {
			log.Printf("[WARN] No voice session and author %s not in voice, skipping message", m.Author.ID)
			tts.Discard(path)
			return
		}
		if _, err := b.voice.Ensure(m.GuildID, vs.ChannelID); err != nil {
			log.Printf("[ERR] Failed to rejoin voice in guild %s: %v", m.GuildID, err)
			tts.Discard(path)
			return
		}
	}

	if err := b.voice.Play(m.GuildID, path); err != nil {
		log.Printf("[WARN] Dropped utterance in guild %s: %v", m.GuildID, err)
		tts.Discard(path)
	}
}

// onVoiceStateUpdate watches for the gateway dropping our own voice
// connection (kicked, channel deleted) so registry state can be reconciled.
func (b *Bot) onVoiceStateUpdate(s *discordgo.Session, v *discordgo.VoiceStateUpdate) {
	if s.State.User == nil || v.UserID != s.State.User.ID {
		return
	}
	if v.ChannelID != "" {
		return
	}
	PublishVoiceEvent(VoiceEvent{Type: VoiceEventDisconnected, GuildID: v.GuildID})
}

// handleVoiceDisconnect purges the guild's stale session. Subscriptions
// survive; only a stop command removes them, and the next message in a
// subscribed channel reconnects at the author's voice channel.
func (b *Bot) handleVoiceDisconnect(evt VoiceEvent) {
	b.voice.HandleDisconnect(evt.GuildID)
}

func (b *Bot) teardownAll() {
	for _, guildID := range b.voice.Guilds() {
		b.voice.Teardown(guildID)
	}
}

func (b *Bot) isGuildBlacklisted(guildID string) bool {
	return slices.Contains(b.cfg.GuildBlacklist, guildID)
}
