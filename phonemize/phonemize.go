// Package phonemize adapts external phonemization engines to the
// normalize.Phonemizer interface.
//
// Espeak runs the espeak-ng command-line program once per call. espeak-ng
// keeps global state between utterances, so calls on one Espeak value are
// serialized with a mutex; use several values to run in parallel.
package phonemize

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"sync"
	"time"
)

const (
	// DefaultBinary is the espeak-ng executable looked up in PATH.
	DefaultBinary = "espeak-ng"

	// DefaultVoice is the espeak-ng voice for Haitian Creole.
	DefaultVoice = "ht"

	// DefaultTimeout bounds a single phonemization call.
	DefaultTimeout = 10 * time.Second

	// waitDelay bounds how long output pipes are drained after the engine is killed.
	waitDelay = 500 * time.Millisecond
)

// ErrEmptyOutput is returned when the engine exits successfully but prints nothing.
var ErrEmptyOutput = errors.New("phonemize: engine returned no phonemes")

// Options configures an Espeak backend. Zero fields take the defaults above.
type Options struct {
	Binary  string
	Voice   string
	Timeout time.Duration
}

// Espeak phonemizes text by invoking espeak-ng with IPA output.
type Espeak struct {
	mu      sync.Mutex
	binary  string
	voice   string
	timeout time.Duration
}

// NewEspeak returns an Espeak backend configured by opt.
func NewEspeak(opt Options) *Espeak {
	e := &Espeak{
		binary:  opt.Binary,
		voice:   opt.Voice,
		timeout: opt.Timeout,
	}
	if e.binary == "" {
		e.binary = DefaultBinary
	}
	if e.voice == "" {
		e.voice = DefaultVoice
	}
	if e.timeout <= 0 {
		e.timeout = DefaultTimeout
	}
	return e
}

// Args returns the command-line arguments passed to espeak-ng. The text
// itself is written to the process's stdin.
func (e *Espeak) Args() []string {
	return []string{"-q", "--ipa", "-v", e.voice, "--stdin"}
}

// Phonemize returns the IPA transcription of text. Output lines are joined
// with single spaces.
func (e *Espeak) Phonemize(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, e.binary, e.Args()...)
	cmd.Stdin = strings.NewReader(text)
	cmd.WaitDelay = waitDelay
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", fmt.Errorf("phonemize: %s: %w", e.binary, ctxErr)
		}
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", fmt.Errorf("phonemize: %s: %w: %s", e.binary, err, msg)
		}
		return "", fmt.Errorf("phonemize: %s: %w", e.binary, err)
	}

	out := strings.Join(strings.Fields(stdout.String()), " ")
	if out == "" {
		return "", ErrEmptyOutput
	}
	return out, nil
}
