// Package settings holds the process-wide speech defaults: speaking rate
// and playback volume. One instance is created at startup and handed to the
// bot; commands mutate it, synthesis and playback read it.
package settings

import (
	"errors"
	"sync"
)

const (
	RateMin = 0.25
	RateMax = 4.0

	VolumeMin = 0.1
	VolumeMax = 2.0

	DefaultRate   = 1.0
	DefaultVolume = 1.0
)

var (
	ErrRateOutOfRange   = errors.New("speaking rate must be between 0.25 and 4.0")
	ErrVolumeOutOfRange = errors.New("volume must be between 0.1 and 2.0")
)

// Settings is safe for concurrent use; discordgo runs handlers on separate
// goroutines, so reads and writes can arrive in parallel.
type Settings struct {
	mu     sync.RWMutex
	rate   float64
	volume float64
}

func New() *Settings {
	return &Settings{
		rate:   DefaultRate,
		volume: DefaultVolume,
	}
}

// Rate returns the current speaking rate.
func (s *Settings) Rate() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rate
}

// Volume returns the current playback volume.
func (s *Settings) Volume() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.volume
}

// SetRate updates the speaking rate. Out-of-range values are rejected and
// leave the current rate untouched.
func (s *Settings) SetRate(v float64) error {
	if v < RateMin || v > RateMax {
		return ErrRateOutOfRange
	}
	s.mu.Lock()
	s.rate = v
	s.mu.Unlock()
	return nil
}

// SetVolume updates the playback volume. Out-of-range values are rejected
// and leave the current volume untouched.
func (s *Settings) SetVolume(v float64) error {
	if v < VolumeMin || v > VolumeMax {
		return ErrVolumeOutOfRange
	}
	s.mu.Lock()
	s.volume = v
	s.mu.Unlock()
	return nil
}
