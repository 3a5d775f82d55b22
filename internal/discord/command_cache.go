package discord

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Registered-command hashes are cached on disk per guild so restarts only
// touch the Discord API for definitions that actually changed.

func guildCachePath(guildID string) string {
	return filepath.Join("data", "commands", guildID+".json")
}

// loadGuildCommandHashes returns the cached name→hash map for a guild; a
// missing or unreadable cache just means everything looks changed.
func loadGuildCommandHashes(guildID string) map[string]string {
	hashes := make(map[string]string)
	raw, err := os.ReadFile(guildCachePath(guildID))
	if err == nil {
		_ = json.Unmarshal(raw, &hashes)
	}
	return hashes
}

// saveGuildCommandHashes persists the guild's hash map; failures are not
// fatal, the next start re-registers.
func saveGuildCommandHashes(guildID string, hashes map[string]string) {
	path := guildCachePath(guildID)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return
	}
	raw, err := json.MarshalIndent(hashes, "", "  ")
	if err != nil {
		return
	}
	_ = os.WriteFile(path, raw, 0o644)
}
