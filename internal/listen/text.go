package listen

import (
	"bufio"
	"context"
	"fmt"
	"io"
)

// TextSource reads commands line by line, normally from stdin. EOF ends
// the session gracefully.
type TextSource struct {
	scanner *bufio.Scanner
	out     io.Writer
	prompt  string
}

func NewTextSource(in io.Reader, out io.Writer, prompt string) *TextSource {
	return &TextSource{
		scanner: bufio.NewScanner(in),
		out:     out,
		prompt:  prompt,
	}
}

func (t *TextSource) Listen(ctx context.Context) (string, error) {
	if t.prompt != "" {
		fmt.Fprint(t.out, t.prompt)
	}

	if !t.scanner.Scan() {
		if err := t.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return t.scanner.Text(), nil
}
