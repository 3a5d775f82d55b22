package tts

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"yomiage/internal/settings"
)

func TestRequestValidate(t *testing.T) {
	valid := Request{Text: "hello", Language: "en-US", Rate: 1.0}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}

	cases := []struct {
		name string
		req  Request
		want error
	}{
		{"empty text", Request{Text: "", Language: "en-US", Rate: 1.0}, ErrEmptyText},
		{"blank text", Request{Text: "  \t\n", Language: "en-US", Rate: 1.0}, ErrEmptyText},
		{"bad language", Request{Text: "hi", Language: "fr-FR", Rate: 1.0}, ErrUnsupportedLanguage},
		{"rate too low", Request{Text: "hi", Language: "ja-JP", Rate: 0.1}, settings.ErrRateOutOfRange},
		{"rate too high", Request{Text: "hi", Language: "ja-JP", Rate: 5.0}, settings.ErrRateOutOfRange},
	}
	for _, tc := range cases {
		err := tc.req.Validate()
		if !errors.Is(err, tc.want) {
			t.Errorf("%s: got %v, want %v", tc.name, err, tc.want)
		}
	}
}

func TestDiscardRemovesArtifact(t *testing.T) {
	path := filepath.Join(t.TempDir(), "yomiage-1.mp3")
	if err := os.WriteFile(path, []byte("mp3"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	Discard(path)
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("artifact survived Discard")
	}

	// Already-gone artifacts are not an error.
	Discard(path)
}

func TestArtifactNameUnique(t *testing.T) {
	a := artifactName("/tmp", 1)
	b := artifactName("/tmp", 2)
	if a == b {
		t.Fatalf("artifact names must differ per sequence: %s", a)
	}
}
