package tts

import (
	"context"
	"fmt"
	"log"
	"os"
	"sync/atomic"

	texttospeech "cloud.google.com/go/texttospeech/apiv1"
	texttospeechpb "cloud.google.com/go/texttospeech/apiv1/texttospeechpb"
	"google.golang.org/api/option"
)

// GoogleEngine synthesizes speech through Google Cloud Text-to-Speech and
// writes the MP3 result to a temp artifact.
type GoogleEngine struct {
	client *texttospeech.Client
	dir    string
	seq    atomic.Uint64
}

// NewGoogle creates a Google Cloud TTS engine. credentialsFile may be empty,
// in which case the SDK's default credential resolution applies
// (GOOGLE_APPLICATION_CREDENTIALS, metadata server, etc.).
func NewGoogle(ctx context.Context, credentialsFile string) (*GoogleEngine, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	client, err := texttospeech.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Google TTS client: %w", err)
	}

	return &GoogleEngine{
		client: client,
		dir:    os.TempDir(),
	}, nil
}

// Synthesize sends the request to the cloud service and writes the audio
// bytes to a fresh artifact file. On error no artifact path is returned and
// nothing can be assumed about partial writes.
func (g *GoogleEngine) Synthesize(ctx context.Context, req Request) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	resp, err := g.client.SynthesizeSpeech(ctx, &texttospeechpb.SynthesizeSpeechRequest{
		Input: &texttospeechpb.SynthesisInput{
			InputSource: &texttospeechpb.SynthesisInput_Text{Text: req.Text},
		},
		Voice: &texttospeechpb.VoiceSelectionParams{
			LanguageCode: req.Language,
			SsmlGender:   texttospeechpb.SsmlVoiceGender_NEUTRAL,
		},
		AudioConfig: &texttospeechpb.AudioConfig{
			AudioEncoding: texttospeechpb.AudioEncoding_MP3,
			SpeakingRate:  req.Rate,
		},
	})
	if err != nil {
		return "", fmt.Errorf("speech synthesis failed: %w", err)
	}
	if len(resp.AudioContent) == 0 {
		return "", fmt.Errorf("speech synthesis returned no audio")
	}

	path := artifactName(g.dir, g.seq.Add(1))
	if err := os.WriteFile(path, resp.AudioContent, 0o644); err != nil {
		return "", fmt.Errorf("failed to write audio artifact: %w", err)
	}

	log.Printf("[INFO] Synthesized %d bytes (%s, rate %.2f) -> %s", len(resp.AudioContent), req.Language, req.Rate, path)
	return path, nil
}

func (g *GoogleEngine) Close() error {
	if g.client != nil {
		return g.client.Close()
	}
	return nil
}
