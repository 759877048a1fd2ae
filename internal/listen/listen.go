// Package listen abstracts where commands come from: the microphone, a
// terminal, or pre-recorded audio files.
package listen

import (
	"context"
	"errors"
)

// ErrTimeout means the listening window closed without input; the loop
// reports it and goes back to idle.
var ErrTimeout = errors.New("listening timed out")

// ErrUnintelligible means audio was captured but nothing recognizable
// came out of it.
var ErrUnintelligible = errors.New("could not understand the audio")

// Source yields one raw command per call. io.EOF means the source is
// exhausted and the session should shut down.
type Source interface {
	Listen(ctx context.Context) (string, error)
}
