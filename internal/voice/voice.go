// Package voice owns the per-guild voice sessions: one connection and one
// playback worker per guild, created on demand and purged on stop or
// platform disconnect. Connections and streaming are behind small
// interfaces so the registry can be exercised with fakes.
package voice

import "errors"

var (
	// ErrNoSession is returned by Play when the guild has no live session.
	// Callers are responsible for Ensure-ing one first.
	ErrNoSession = errors.New("no voice session for this guild")

	// ErrQueueBusy is returned when a guild's utterance queue is full; the
	// utterance is dropped rather than stacked up.
	ErrQueueBusy = errors.New("too many pending utterances for this guild")
)

// Conn is the slice of a platform voice connection the registry needs.
type Conn interface {
	ChannelID() string
	Speaking(bool) error
	OpusSend() chan<- []byte
	Disconnect() error
}

// Joiner establishes a voice connection to a channel. There may be at most
// one connection per guild; the registry preserves that invariant.
type Joiner interface {
	Join(guildID, channelID string) (Conn, error)
}

// JoinerFunc adapts a function to the Joiner interface.
type JoinerFunc func(guildID, channelID string) (Conn, error)

func (f JoinerFunc) Join(guildID, channelID string) (Conn, error) {
	return f(guildID, channelID)
}

// Streamer plays one audio artifact over a connection, applying the gain
// live, until the artifact ends or stop closes.
type Streamer interface {
	Stream(conn Conn, path string, gain *Gain, stop <-chan struct{}) error
}
