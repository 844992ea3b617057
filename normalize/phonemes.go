package normalize

import (
	"context"
	"fmt"
)

// Phonemizer converts cleaned Haitian Creole text into phonemes.
// Implementations backed by a non-reentrant engine must serialize calls
// themselves.
type Phonemizer interface {
	Phonemize(ctx context.Context, text string) (string, error)
}

// Phonemes cleans s with the Haitian Creole stages (without IPA rules),
// phonemizes the result with p and collapses whitespace in the output.
func Phonemes(ctx context.Context, p Phonemizer, s string) (string, error) {
	if s == "" {
		return "", nil
	}
	if len(s) > maxInputBytes {
		return "", fmt.Errorf("normalize: input of %d bytes exceeds %d", len(s), maxInputBytes)
	}

	phonemes, err := p.Phonemize(ctx, prepare(s))
	if err != nil {
		return "", fmt.Errorf("normalize: phonemize: %w", err)
	}
	return CollapseWhitespace(phonemes), nil
}
