// Package tts turns text into playable audio artifacts.
package tts

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"yomiage/internal/lang"
	"yomiage/internal/settings"
)

var (
	ErrEmptyText           = errors.New("nothing to read: text is empty")
	ErrUnsupportedLanguage = errors.New("unsupported speech language")
)

// Request describes one utterance to synthesize.
type Request struct {
	Text     string
	Language string
	Rate     float64
}

// Engine synthesizes a request into an encoded audio file and returns its
// path. The file belongs to the caller; playback removes it when done.
type Engine interface {
	Synthesize(ctx context.Context, req Request) (string, error)
	Close() error
}

// Validate rejects requests before any network round trip.
func (r Request) Validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return ErrEmptyText
	}
	if !lang.IsSupported(r.Language) {
		return fmt.Errorf("%w: %s", ErrUnsupportedLanguage, r.Language)
	}
	if r.Rate < settings.RateMin || r.Rate > settings.RateMax {
		return settings.ErrRateOutOfRange
	}
	return nil
}

// Discard removes an artifact that will never be played. Artifacts are
// deleted by playback on the happy path; any caller that synthesized one
// and then bails must discard it or the temp dir fills up.
func Discard(path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		log.Printf("[WARN] Failed to remove artifact %s: %v", path, err)
	}
}

// artifactName builds a unique per-utterance file name so concurrent
// syntheses never clobber each other's output.
func artifactName(dir string, seq uint64) string {
	return filepath.Join(dir, fmt.Sprintf("yomiage-%d.mp3", seq))
}
