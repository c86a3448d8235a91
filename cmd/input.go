package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

const stdinSource = "<stdin>"

// InputError reports a failure to read the Gherkin source.
type InputError struct {
	Source string
	Err    error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("reading %s: %v", e.Source, e.Err)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// readInput buffers the whole of target, or stdin when target is empty.
// It returns the content and the name to report it under.
func readInput(stdin io.Reader, target string) (string, string, error) {
	if target == "" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", stdinSource, &InputError{Source: stdinSource, Err: err}
		}
		slog.Debug("read input", "source", stdinSource, "bytes", len(data))
		return string(data), stdinSource, nil
	}

	data, err := os.ReadFile(target)
	if err != nil {
		return "", target, &InputError{Source: target, Err: err}
	}
	slog.Debug("read input", "source", target, "bytes", len(data))
	return string(data), target, nil
}
