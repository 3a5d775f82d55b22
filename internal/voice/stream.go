package voice

import (
	"encoding/binary"
	"fmt"
	"io"
	"os/exec"

	"layeh.com/gopus"
)

const (
	channels   = 2
	sampleRate = 48000
	frameSize  = 960 // 20ms at 48kHz
)

// FFmpegStreamer decodes an audio artifact with an ffmpeg subprocess and
// sends opus-encoded frames over the connection.
type FFmpegStreamer struct{}

func (FFmpegStreamer) Stream(conn Conn, path string, gain *Gain, stop <-chan struct{}) error {
	pcm, cleanup, err := ffmpegDecode(path)
	if err != nil {
		return err
	}
	defer cleanup()
	defer pcm.Close()

	encoder, err := gopus.NewEncoder(sampleRate, channels, gopus.Audio)
	if err != nil {
		return fmt.Errorf("encoder error: %w", err)
	}

	if err := conn.Speaking(true); err != nil {
		return fmt.Errorf("failed to set speaking: %w", err)
	}
	defer conn.Speaking(false)

	pcmBuf := make([]byte, frameSize*channels*2)
	intBuf := make([]int16, frameSize*channels)

	for {
		select {
		case <-stop:
			return nil
		default:
		}

		_, err := io.ReadFull(pcm, pcmBuf)
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read error: %w", err)
		}

		for i := range intBuf {
			intBuf[i] = int16(binary.LittleEndian.Uint16(pcmBuf[i*2 : i*2+2]))
		}
		gain.apply(intBuf)

		opus, err := encoder.Encode(intBuf, frameSize, len(pcmBuf))
		if err != nil {
			return fmt.Errorf("encode error: %w", err)
		}

		select {
		case <-stop:
			return nil
		case conn.OpusSend() <- opus:
		}
	}
}

// ffmpegDecode converts the artifact to raw s16le 48kHz stereo PCM on
// stdout.
func ffmpegDecode(path string) (io.ReadCloser, func(), error) {
	cmd := exec.Command("ffmpeg",
		"-i", path,
		"-f", "s16le",
		"-ar", fmt.Sprintf("%d", sampleRate),
		"-ac", fmt.Sprintf("%d", channels),
		"-loglevel", "warning",
		"pipe:1",
	)

	reader, err := cmd.StdoutPipe()
	if err != nil {
		return nil, nil, fmt.Errorf("stdout pipe error: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return nil, nil, fmt.Errorf("command start error: %w", err)
	}

	cleanup := func() {
		cmd.Process.Kill()
		cmd.Wait()
	}

	return reader, cleanup, nil
}
