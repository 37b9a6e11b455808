package narration

import (
	"context"
	"fmt"
	"io"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// SpeechClient synthesizes narration audio through a hosted
// voice-synthesis endpoint speaking the OpenAI audio API.
type SpeechClient struct {
	model  string
	client *openai.Client
}

// NewSpeechClientParams contains configuration for creating a SpeechClient.
// Model falls back to "tts-1" when empty. An empty APIKey leaves the
// client unconfigured; Synthesize then fails and callers degrade to the
// text-script fallback.
type NewSpeechClientParams struct {
	BaseURL string
	APIKey  string
	Model   string
}

// NewSpeechClient creates a client for the voice-synthesis endpoint.
func NewSpeechClient(params NewSpeechClientParams) *SpeechClient {
	model := params.Model
	if model == "" {
		model = "tts-1"
	}
	return &SpeechClient{
		model:  model,
		client: newSpeechAPIClient(params.BaseURL, params.APIKey),
	}
}

func newSpeechAPIClient(baseURL string, apiKey string) *openai.Client {
	if apiKey == "" {
		return nil
	}
	options := []option.RequestOption{
		option.WithAPIKey(apiKey),
	}
	if baseURL != "" {
		options = append(options, option.WithBaseURL(baseURL))
	}

	client := openai.NewClient(options...)

	return &client
}

// Synthesize converts text into MP3 bytes using the given voice and
// percentage rate delta. The call runs to completion or fails; there is
// no partial result. On failure callers fall back to the text script.
func (c *SpeechClient) Synthesize(ctx context.Context, text string, voice string, rateDelta string) ([]byte, error) {
	if c.client == nil {
		return nil, fmt.Errorf("speech client not configured")
	}
	if text == "" {
		return nil, fmt.Errorf("no narration text")
	}
	if voice == "" {
		voice = DefaultVoice
	}

	speed, err := ParseRateDelta(rateDelta)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Audio.Speech.New(ctx, openai.AudioSpeechNewParams{
		Model:          openai.SpeechModel(c.model),
		Input:          text,
		Voice:          openai.AudioSpeechNewParamsVoice(voice),
		ResponseFormat: openai.AudioSpeechNewParamsResponseFormatMP3,
		Speed:          openai.Float(speed),
	})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return audio, nil
}
