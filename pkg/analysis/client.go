package analysis

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image"
	"io"
	"net/http"

	"github.com/dentiscan/backend/internal/util"
	"github.com/dentiscan/backend/pkg/imaging"
)

const (
	// DefaultBaseURL is the hosted chat-completion endpoint family.
	DefaultBaseURL = "https://openrouter.ai/api/v1"
	// DefaultModel is the vision model used for assessments.
	DefaultModel = "google/gemini-flash-1.5"

	maxTokens   = 2000
	temperature = 0.3
)

// Client issues vision analysis requests against a hosted chat-completion
// endpoint. One request per call, no retries; every failure is terminal
// for that request and carried back inside the Result.
type Client struct {
	baseURL string
	apiKey  string
	model   string
	http    *http.Client
}

// NewClientParams contains configuration for creating a Client.
// BaseURL and Model fall back to the OpenRouter defaults when empty.
type NewClientParams struct {
	BaseURL string
	APIKey  string
	Model   string
}

// NewClient creates a client for the hosted analysis endpoint.
func NewClient(params NewClientParams) *Client {
	baseURL := params.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	model := params.Model
	if model == "" {
		model = DefaultModel
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  params.APIKey,
		model:   model,
		http:    &http.Client{},
	}
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string        `json:"role"`
	Content []contentPart `json:"content"`
}

type contentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *imageURL `json:"image_url,omitempty"`
}

type imageURL struct {
	URL string `json:"url"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Analyze encodes img as an inline JPEG attachment, sends one synchronous
// chat-completion request and parses the assessment out of the reply.
// language selects the reply language for human-readable fields;
// unsupported codes behave like the default.
func (c *Client) Analyze(ctx context.Context, img image.Image, language string) Result {
	if c.apiKey == "" {
		return Result{Err: &Failure{Message: "missing API credential"}}
	}

	encoded, err := imaging.EncodeJPEG(img)
	if err != nil {
		return Result{Err: &Failure{Message: fmt.Sprintf("failed to encode image: %v", err)}}
	}

	body := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{
				Role: "user",
				Content: []contentPart{
					{Type: "text", Text: buildInstruction(language)},
					{Type: "image_url", ImageURL: &imageURL{URL: imaging.DataURL(encoded)}},
				},
			},
		},
		MaxTokens:   maxTokens,
		Temperature: temperature,
	}

	content, failure := c.complete(ctx, c.http, body)
	if failure != nil {
		return Result{Err: failure}
	}
	return ParseReply(content)
}

// complete posts one chat-completion request and extracts the first
// message's text content. Transport errors and non-2xx statuses come
// back as a Failure with the detail the caller needs to surface.
func (c *Client) complete(ctx context.Context, client *http.Client, body chatRequest) (string, *Failure) {
	data, err := json.Marshal(body)
	if err != nil {
		return "", &Failure{Message: fmt.Sprintf("failed to marshal request: %v", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(data))
	if err != nil {
		return "", &Failure{Message: fmt.Sprintf("failed to create request: %v", err)}
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return "", &Failure{Message: fmt.Sprintf("request failed: %v", err)}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &Failure{Message: fmt.Sprintf("failed to read response: %v", err)}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &Failure{Message: fmt.Sprintf(
			"API request failed with status %d: %s",
			resp.StatusCode, excerpt(string(respBody)),
		)}
	}

	var reply chatResponse
	if err := json.Unmarshal(respBody, &reply); err != nil {
		return "", &Failure{Message: fmt.Sprintf("failed to decode response: %v", err)}
	}
	if len(reply.Choices) == 0 {
		return "", &Failure{Message: "no choices in response"}
	}
	return reply.Choices[0].Message.Content, nil
}

const excerptLimit = 512

func excerpt(body string) string {
	if len(body) > excerptLimit {
		body = body[:excerptLimit] + "..."
	}
	return util.SanitizeText(body)
}
