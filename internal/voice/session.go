package voice

import (
	"log"
	"os"
	"sync"
)

// queueSize bounds pending utterances per guild; one is in flight at a
// time and the rest wait here. Beyond that they are dropped.
const queueSize = 8

type utterance struct {
	path string
}

// Session pairs a guild's voice connection with its playback worker and
// current volume. The connection and worker live and die together.
type Session struct {
	guildID  string
	conn     Conn
	gain     *Gain
	streamer Streamer

	queue    chan utterance
	stop     chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

func newSession(guildID string, conn Conn, streamer Streamer, volume float64) *Session {
	s := &Session{
		guildID:  guildID,
		conn:     conn,
		gain:     NewGain(volume),
		streamer: streamer,
		queue:    make(chan utterance, queueSize),
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	go s.run()
	return s
}

// run drains the utterance queue one at a time until the session stops.
func (s *Session) run() {
	defer close(s.done)
	for {
		select {
		case <-s.stop:
			return
		case u := <-s.queue:
			if err := s.streamer.Stream(s.conn, u.path, s.gain, s.stop); err != nil {
				log.Printf("[ERR] Playback failed in guild %s: %v", s.guildID, err)
			}
			removeArtifact(u.path)
		}
	}
}

// enqueue adds an utterance without blocking; a full queue drops it.
func (s *Session) enqueue(path string) error {
	select {
	case s.queue <- utterance{path: path}:
		return nil
	default:
		return ErrQueueBusy
	}
}

// close stops the worker, discards whatever was still queued, and
// disconnects. Safe to call more than once.
func (s *Session) close() {
	s.stopOnce.Do(func() {
		close(s.stop)
	})
	<-s.done
	for {
		select {
		case u := <-s.queue:
			removeArtifact(u.path)
		default:
			if err := s.conn.Disconnect(); err != nil {
				log.Printf("[WARN] Voice disconnect for guild %s: %v", s.guildID, err)
			}
			return
		}
	}
}

// removeArtifact deletes a played or abandoned audio file.
func removeArtifact(path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		log.Printf("[WARN] Failed to remove artifact %s: %v", path, err)
	}
}

// SetVolume updates the stored volume; an in-flight stream picks the new
// gain up on its next frame.
func (s *Session) SetVolume(v float64) {
	s.gain.Set(v)
}

// Volume returns the session's current volume.
func (s *Session) Volume() float64 {
	return s.gain.Value()
}
