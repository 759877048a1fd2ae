package audio

import (
	"errors"
	"math"
	"time"

	"github.com/gordonklaus/portaudio"
)

// ErrTimeout means nobody spoke before the listening window closed.
var ErrTimeout = errors.New("no speech detected before timeout")

const (
	sampleRate       = 16000
	frameSize        = 320 // 20ms
	frameDuration    = 20 * time.Millisecond
	silenceThreshRMS = 0.015
	silenceDuration  = 600 * time.Millisecond
	maxUtterance     = 12 * time.Second
)

type Recorder struct{}

func NewRecorder() *Recorder { return &Recorder{} }

func (r *Recorder) Init() error {
	return portaudio.Initialize()
}

func (r *Recorder) Close() {
	portaudio.Terminate()
}

// RecordCommand waits up to wait for speech to start, then records until
// trailing silence or the utterance cap. Returns ErrTimeout when the
// window closes without speech.
func (r *Recorder) RecordCommand(wait time.Duration) ([]float32, error) {
	buf := make([]float32, frameSize)
	out := make([]float32, 0, sampleRate*3)

	stream, err := portaudio.OpenDefaultStream(1, 0, sampleRate, len(buf), buf)
	if err != nil {
		return nil, err
	}
	defer stream.Close()

	if err := stream.Start(); err != nil {
		return nil, err
	}
	defer stream.Stop()

	var (
		speaking bool
		silent   time.Duration
		spoken   time.Duration
		waited   time.Duration
	)

	for {
		if err := stream.Read(); err != nil {
			return nil, err
		}

		if frameRMS(buf) > silenceThreshRMS {
			speaking = true
			silent = 0
			out = append(out, buf...)
		} else if speaking {
			silent += frameDuration
			if silent >= silenceDuration {
				break
			}
			out = append(out, buf...)
		}

		if !speaking {
			waited += frameDuration
			if waited >= wait {
				return nil, ErrTimeout
			}
			continue
		}

		spoken += frameDuration
		if spoken >= maxUtterance {
			break
		}
	}

	return out, nil
}

func frameRMS(f []float32) float64 {
	var s float64
	for _, x := range f {
		s += float64(x * x)
	}
	return math.Sqrt(s / float64(len(f)))
}
