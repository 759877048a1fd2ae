package listen

import (
	"context"
	"io"
	"time"

	log "log/slog"

	"github.com/ayushh0406/ai-agent/pkg/audioconv"
	"github.com/ayushh0406/ai-agent/pkg/stt"
)

// ReplaySource transcribes pre-recorded audio files in order, one
// command per file, then reports EOF. Useful for driving the assistant
// without a microphone.
type ReplaySource struct {
	transcriber *stt.Transcriber
	language    string
	files       []string
}

func NewReplaySource(tr *stt.Transcriber, language string, files []string) *ReplaySource {
	return &ReplaySource{transcriber: tr, language: language, files: files}
}

func (r *ReplaySource) Listen(ctx context.Context) (string, error) {
	if len(r.files) == 0 {
		return "", io.EOF
	}

	path := r.files[0]
	r.files = r.files[1:]

	pcm, err := audioconv.DecodeFile(path)
	if err != nil {
		log.Warn("could not decode replay file", "path", path, "err", err)
		return "", ErrUnintelligible
	}

	tctx, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	res, err := r.transcriber.Transcribe(tctx, pcm, stt.Options{Language: r.language})
	if err != nil {
		return "", err
	}
	if res.Text == "" {
		return "", ErrUnintelligible
	}

	log.Info("replayed", "path", path, "text", res.Text)
	return res.Text, nil
}
