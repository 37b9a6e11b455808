package narration

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// Synthesizer converts narration text into an audio byte stream.
// A failed synthesis is non-fatal to the calling flow: callers fall back
// to offering the narration text itself instead of audio.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string, voice string, rateDelta string) ([]byte, error)
}

// DefaultVoice is used when no voice is requested.
const DefaultVoice = "alloy"

// DefaultRate is the neutral speech-rate delta.
const DefaultRate = "+0%"

// Voices returns the closed set of voice identifiers offered to users.
func Voices() []string {
	return []string{"alloy", "echo", "fable", "onyx", "nova", "shimmer"}
}

// Speed multiplier bounds accepted by the synthesis endpoint.
const (
	minSpeed = 0.25
	maxSpeed = 4.0
)

// ParseRateDelta converts a percentage speech-rate adjustment such as
// "+0%", "+25%" or "-50%" into the endpoint's speed multiplier. The
// empty string means the neutral rate. Results are clamped to the
// endpoint's accepted range.
func ParseRateDelta(rate string) (float64, error) {
	if rate == "" {
		return 1.0, nil
	}
	trimmed, ok := strings.CutSuffix(rate, "%")
	if !ok {
		return 0, fmt.Errorf("invalid rate %q: missing %% suffix", rate)
	}
	percent, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid rate %q: %w", rate, err)
	}
	speed := 1.0 + percent/100
	if speed < minSpeed {
		speed = minSpeed
	}
	if speed > maxSpeed {
		speed = maxSpeed
	}
	return speed, nil
}
