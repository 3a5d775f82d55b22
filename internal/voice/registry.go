package voice

import (
	"fmt"
	"log"
	"sync"

	"yomiage/internal/settings"
)

// Registry tracks voice sessions by guild. It is constructed once and
// injected into the bot rather than living as package state.
type Registry struct {
	mu       sync.Mutex
	joiner   Joiner
	streamer Streamer
	settings *settings.Settings
	sessions map[string]*Session
}

func NewRegistry(joiner Joiner, streamer Streamer, set *settings.Settings) *Registry {
	return &Registry{
		joiner:   joiner,
		streamer: streamer,
		settings: set,
		sessions: make(map[string]*Session),
	}
}

// Ensure returns the guild's session, establishing a connection to
// channelID when none exists. Idempotent per guild: a live session is
// reused as-is even if it sits in a different channel, so only one
// connection per guild ever exists.
func (r *Registry) Ensure(guildID, channelID string) (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.sessions[guildID]; ok {
		return s, nil
	}

	conn, err := r.joiner.Join(guildID, channelID)
	if err != nil {
		return nil, fmt.Errorf("failed to join voice channel %s: %w", channelID, err)
	}

	s := newSession(guildID, conn, r.streamer, r.settings.Volume())
	r.sessions[guildID] = s
	log.Printf("[INFO] Voice session opened: guild %s, channel %s", guildID, channelID)
	return s, nil
}

// Guilds lists every guild with a live session, for shutdown sweeps.
func (r *Registry) Guilds() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := make([]string, 0, len(r.sessions))
	for id := range r.sessions {
		ids = append(ids, id)
	}
	return ids
}

// Has reports whether a guild currently holds a session.
func (r *Registry) Has(guildID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.sessions[guildID]
	return ok
}

// Play queues an artifact on the guild's session. Requires an existing
// session; callers Ensure one first when appropriate.
func (r *Registry) Play(guildID, artifactPath string) error {
	r.mu.Lock()
	s, ok := r.sessions[guildID]
	r.mu.Unlock()
	if !ok {
		return ErrNoSession
	}
	return s.enqueue(artifactPath)
}

// SetVolume applies a volume to the guild's session, live. A guild without
// a session is a no-op; the global default was already updated by the
// caller.
func (r *Registry) SetVolume(guildID string, v float64) {
	r.mu.Lock()
	s, ok := r.sessions[guildID]
	r.mu.Unlock()
	if ok {
		s.SetVolume(v)
	}
}

// Teardown stops playback, disconnects, and purges the guild's session.
// Connection and worker go together, never one without the other. Safe to
// call when no session exists.
func (r *Registry) Teardown(guildID string) {
	r.mu.Lock()
	s, ok := r.sessions[guildID]
	if ok {
		delete(r.sessions, guildID)
	}
	r.mu.Unlock()

	if ok {
		s.close()
		log.Printf("[INFO] Voice session closed: guild %s", guildID)
	}
}

// HandleDisconnect reconciles registry state after the platform dropped
// the connection (bot kicked, channel emptied). The stale session entry is
// purged exactly as Teardown would.
func (r *Registry) HandleDisconnect(guildID string) {
	if r.Has(guildID) {
		log.Printf("[INFO] Voice connection dropped externally: guild %s", guildID)
		r.Teardown(guildID)
	}
}
