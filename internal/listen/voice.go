package listen

import (
	"context"
	"errors"
	"time"

	log "log/slog"

	"github.com/ayushh0406/ai-agent/internal/audio"
	"github.com/ayushh0406/ai-agent/internal/notify"
	"github.com/ayushh0406/ai-agent/pkg/stt"
)

// VoiceSource records from the default microphone and transcribes with
// whisper. Other playback streams are ducked while recording.
type VoiceSource struct {
	recorder    *audio.Recorder
	transcriber *stt.Transcriber
	ducker      *audio.Ducker
	chime       *notify.Chime

	language string
	timeout  time.Duration
}

func NewVoiceSource(rec *audio.Recorder, tr *stt.Transcriber, language string, timeout time.Duration) *VoiceSource {
	return &VoiceSource{
		recorder:    rec,
		transcriber: tr,
		ducker:      audio.NewDucker(20),
		language:    language,
		timeout:     timeout,
	}
}

// WithChime plays the given chime right before recording starts.
func (v *VoiceSource) WithChime(c *notify.Chime) *VoiceSource {
	v.chime = c
	return v
}

func (v *VoiceSource) Listen(ctx context.Context) (string, error) {
	v.ducker.Duck()
	defer v.ducker.Restore()

	if v.chime != nil {
		if err := v.chime.Play(); err != nil {
			log.Debug("chime failed", "err", err)
		}
	}

	pcm, err := v.recorder.RecordCommand(v.timeout)
	if err != nil {
		if errors.Is(err, audio.ErrTimeout) {
			return "", ErrTimeout
		}
		return "", err
	}

	log.Debug("recorded utterance", "samples", len(pcm))

	tctx, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	res, err := v.transcriber.Transcribe(tctx, pcm, stt.Options{Language: v.language})
	if err != nil {
		return "", err
	}
	if res.Text == "" {
		return "", ErrUnintelligible
	}

	log.Debug("transcribed", "text", res.Text, "language", res.Language)
	return res.Text, nil
}
