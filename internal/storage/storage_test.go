package storage

import (
	"path/filepath"
	"testing"
)

func TestCommandHistoryRoundTrip(t *testing.T) {
	s, err := New(filepath.Join(t.TempDir(), "store.json"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer s.Close()

	if err := s.SetCommand("g1", "c1", "general", "Guild", "u1", "alice", "listen"); err != nil {
		t.Fatalf("SetCommand: %v", err)
	}
	hist, err := s.GetCommandsHistory("g1")
	if err != nil {
		t.Fatalf("GetCommandsHistory: %v", err)
	}
	if len(hist) != 1 || hist[0].Command != "listen" || hist[0].Username != "alice" {
		t.Fatalf("history = %+v", hist)
	}
}

func TestCommandHistoryCap(t *testing.T) {
	s, err := New(filepath.Join(t.TempDir(), "store.json"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer s.Close()

	for i := 0; i < commandHistoryLimit+5; i++ {
		if err := s.SetCommand("g1", "c1", "general", "Guild", "u1", "alice", "speak"); err != nil {
			t.Fatalf("SetCommand %d: %v", i, err)
		}
	}
	hist, err := s.GetCommandsHistory("g1")
	if err != nil {
		t.Fatalf("GetCommandsHistory: %v", err)
	}
	if len(hist) != commandHistoryLimit {
		t.Fatalf("history length = %d, want %d", len(hist), commandHistoryLimit)
	}
}
