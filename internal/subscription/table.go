// Package subscription tracks which text channels are enrolled for
// automatic read-aloud and in what language. The table is independent of
// voice session lifecycle; the bot coordinates the two.
package subscription

import (
	"sync"

	"yomiage/internal/lang"
)

type entry struct {
	guildID  string
	language string
}

// Table is a per-text-channel registry, safe for concurrent use.
type Table struct {
	mu      sync.RWMutex
	entries map[string]entry
}

func NewTable() *Table {
	return &Table{entries: make(map[string]entry)}
}

// Subscribe enrolls a channel, or updates its language in place when it is
// already enrolled. The return value reports whether the channel was
// already subscribed.
func (t *Table) Subscribe(channelID, guildID, language string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, existed := t.entries[channelID]
	t.entries[channelID] = entry{guildID: guildID, language: language}
	return existed
}

// Unsubscribe removes a channel and reports whether it was subscribed.
func (t *Table) Unsubscribe(channelID string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, existed := t.entries[channelID]
	delete(t.entries, channelID)
	return existed
}

func (t *Table) IsSubscribed(channelID string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.entries[channelID]
	return ok
}

// LanguageOf returns the channel's read-aloud language, or the default
// locale when the channel is not subscribed.
func (t *Table) LanguageOf(channelID string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if e, ok := t.entries[channelID]; ok {
		return e.language
	}
	return lang.Default
}

// GuildCount returns how many channels of a guild are subscribed. The bot
// tears the guild's voice session down when this drops to zero.
func (t *Table) GuildCount(guildID string) int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	n := 0
	for _, e := range t.entries {
		if e.guildID == guildID {
			n++
		}
	}
	return n
}
