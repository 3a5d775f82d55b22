package voice

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"yomiage/internal/settings"
)

type fakeConn struct {
	mu           sync.Mutex
	channelID    string
	disconnected bool
	speaking     []bool
}

func (c *fakeConn) ChannelID() string { return c.channelID }
func (c *fakeConn) Speaking(b bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.speaking = append(c.speaking, b)
	return nil
}
func (c *fakeConn) OpusSend() chan<- []byte { return make(chan []byte, 1) }
func (c *fakeConn) Disconnect() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.disconnected = true
	return nil
}

func (c *fakeConn) isDisconnected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.disconnected
}

type fakeJoiner struct {
	mu    sync.Mutex
	joins int
	conns []*fakeConn
	err   error
}

func (j *fakeJoiner) Join(guildID, channelID string) (Conn, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.err != nil {
		return nil, j.err
	}
	j.joins++
	c := &fakeConn{channelID: channelID}
	j.conns = append(j.conns, c)
	return c, nil
}

func (j *fakeJoiner) joinCount() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.joins
}

// fakeStreamer records played paths; when hold is set it blocks until
// release closes or stop fires.
type fakeStreamer struct {
	mu      sync.Mutex
	played  []string
	started chan struct{}
	hold    bool
	release chan struct{}
}

func (f *fakeStreamer) Stream(conn Conn, path string, gain *Gain, stop <-chan struct{}) error {
	f.mu.Lock()
	f.played = append(f.played, path)
	f.mu.Unlock()
	if f.started != nil {
		f.started <- struct{}{}
	}
	if f.hold {
		select {
		case <-f.release:
		case <-stop:
		}
	}
	return nil
}

func (f *fakeStreamer) playedPaths() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.played))
	copy(out, f.played)
	return out
}

func newTestRegistry(j Joiner, st Streamer) *Registry {
	return NewRegistry(j, st, settings.New())
}

func TestEnsureIdempotent(t *testing.T) {
	j := &fakeJoiner{}
	r := newTestRegistry(j, &fakeStreamer{})
	defer r.Teardown("g1")

	s1, err := r.Ensure("g1", "vc1")
	if err != nil {
		t.Fatalf("Ensure: %v", err)
	}
	s2, err := r.Ensure("g1", "vc2")
	if err != nil {
		t.Fatalf("second Ensure: %v", err)
	}
	if s1 != s2 {
		t.Errorf("Ensure created a second session for the same guild")
	}
	if j.joinCount() != 1 {
		t.Errorf("join count = %d, want 1", j.joinCount())
	}
}

func TestEnsureJoinError(t *testing.T) {
	wantErr := errors.New("no permission")
	r := newTestRegistry(&fakeJoiner{err: wantErr}, &fakeStreamer{})

	if _, err := r.Ensure("g1", "vc1"); !errors.Is(err, wantErr) {
		t.Fatalf("Ensure error = %v, want wrapped %v", err, wantErr)
	}
	if r.Has("g1") {
		t.Errorf("failed Ensure must not register a session")
	}
}

func TestPlayRequiresSession(t *testing.T) {
	r := newTestRegistry(&fakeJoiner{}, &fakeStreamer{})
	if err := r.Play("g1", "a.mp3"); !errors.Is(err, ErrNoSession) {
		t.Fatalf("Play without session = %v, want ErrNoSession", err)
	}
}

func TestPlayStreamsArtifact(t *testing.T) {
	st := &fakeStreamer{started: make(chan struct{}, 1)}
	r := newTestRegistry(&fakeJoiner{}, st)
	defer r.Teardown("g1")

	if _, err := r.Ensure("g1", "vc1"); err != nil {
		t.Fatalf("Ensure: %v", err)
	}
	if err := r.Play("g1", "a.mp3"); err != nil {
		t.Fatalf("Play: %v", err)
	}

	select {
	case <-st.started:
	case <-time.After(2 * time.Second):
		t.Fatalf("streamer never started")
	}
	if got := st.playedPaths(); len(got) != 1 || got[0] != "a.mp3" {
		t.Errorf("played = %v, want [a.mp3]", got)
	}
}

func TestPlayQueueBusy(t *testing.T) {
	st := &fakeStreamer{started: make(chan struct{}, 1), hold: true, release: make(chan struct{})}
	r := newTestRegistry(&fakeJoiner{}, st)
	defer r.Teardown("g1")

	if _, err := r.Ensure("g1", "vc1"); err != nil {
		t.Fatalf("Ensure: %v", err)
	}

	// First utterance goes in flight and blocks the worker.
	if err := r.Play("g1", "inflight.mp3"); err != nil {
		t.Fatalf("Play: %v", err)
	}
	select {
	case <-st.started:
	case <-time.After(2 * time.Second):
		t.Fatalf("streamer never started")
	}

	// Fill the queue behind it.
	for i := 0; i < queueSize; i++ {
		if err := r.Play("g1", "queued.mp3"); err != nil {
			t.Fatalf("Play %d: %v", i, err)
		}
	}
	if err := r.Play("g1", "overflow.mp3"); !errors.Is(err, ErrQueueBusy) {
		t.Fatalf("overflow Play = %v, want ErrQueueBusy", err)
	}
}

func TestSetVolumeLive(t *testing.T) {
	r := newTestRegistry(&fakeJoiner{}, &fakeStreamer{})
	defer r.Teardown("g1")

	s, err := r.Ensure("g1", "vc1")
	if err != nil {
		t.Fatalf("Ensure: %v", err)
	}
	if s.Volume() != settings.DefaultVolume {
		t.Errorf("initial volume = %v, want default %v", s.Volume(), settings.DefaultVolume)
	}

	r.SetVolume("g1", 1.5)
	if s.Volume() != 1.5 {
		t.Errorf("volume after SetVolume = %v, want 1.5", s.Volume())
	}

	// No session, no panic.
	r.SetVolume("g2", 0.5)
}

func TestTeardown(t *testing.T) {
	j := &fakeJoiner{}
	r := newTestRegistry(j, &fakeStreamer{})

	if _, err := r.Ensure("g1", "vc1"); err != nil {
		t.Fatalf("Ensure: %v", err)
	}
	r.Teardown("g1")

	if r.Has("g1") {
		t.Errorf("session still registered after Teardown")
	}
	if !j.conns[0].isDisconnected() {
		t.Errorf("connection not disconnected on Teardown")
	}
	if err := r.Play("g1", "a.mp3"); !errors.Is(err, ErrNoSession) {
		t.Errorf("Play after Teardown = %v, want ErrNoSession", err)
	}

	// No-op on a guild without a session.
	r.Teardown("g1")
	r.Teardown("never-seen")
}

func TestTeardownInterruptsPlayback(t *testing.T) {
	st := &fakeStreamer{started: make(chan struct{}, 1), hold: true, release: make(chan struct{})}
	j := &fakeJoiner{}
	r := newTestRegistry(j, st)

	if _, err := r.Ensure("g1", "vc1"); err != nil {
		t.Fatalf("Ensure: %v", err)
	}
	if err := r.Play("g1", "a.mp3"); err != nil {
		t.Fatalf("Play: %v", err)
	}
	<-st.started

	done := make(chan struct{})
	go func() {
		r.Teardown("g1")
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("Teardown did not interrupt a blocked stream")
	}
}

func TestTeardownRemovesQueuedArtifacts(t *testing.T) {
	st := &fakeStreamer{started: make(chan struct{}, 1), hold: true, release: make(chan struct{})}
	r := newTestRegistry(&fakeJoiner{}, st)

	dir := t.TempDir()
	makeArtifact := func(name string) string {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte("mp3"), 0o644); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}
		return path
	}

	if _, err := r.Ensure("g1", "vc1"); err != nil {
		t.Fatalf("Ensure: %v", err)
	}
	inflight := makeArtifact("inflight.mp3")
	queued1 := makeArtifact("queued1.mp3")
	queued2 := makeArtifact("queued2.mp3")

	if err := r.Play("g1", inflight); err != nil {
		t.Fatalf("Play: %v", err)
	}
	<-st.started
	for _, path := range []string{queued1, queued2} {
		if err := r.Play("g1", path); err != nil {
			t.Fatalf("Play %s: %v", path, err)
		}
	}

	r.Teardown("g1")

	for _, path := range []string{inflight, queued1, queued2} {
		if _, err := os.Stat(path); !os.IsNotExist(err) {
			t.Errorf("artifact %s survived teardown", path)
		}
	}
}

func TestHandleDisconnectPurgesSession(t *testing.T) {
	j := &fakeJoiner{}
	r := newTestRegistry(j, &fakeStreamer{})

	if _, err := r.Ensure("g1", "vc1"); err != nil {
		t.Fatalf("Ensure: %v", err)
	}
	r.HandleDisconnect("g1")

	if r.Has("g1") {
		t.Errorf("session survived external disconnect")
	}
	if err := r.Play("g1", "a.mp3"); !errors.Is(err, ErrNoSession) {
		t.Errorf("Play after disconnect = %v, want ErrNoSession", err)
	}

	// A fresh Ensure builds a new connection afterwards.
	if _, err := r.Ensure("g1", "vc1"); err != nil {
		t.Fatalf("re-Ensure: %v", err)
	}
	defer r.Teardown("g1")
	if j.joinCount() != 2 {
		t.Errorf("join count = %d, want 2", j.joinCount())
	}

	// Unknown guilds are ignored.
	r.HandleDisconnect("g9")
}
