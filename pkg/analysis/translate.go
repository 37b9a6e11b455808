package analysis

import (
	"context"
	"net/http"
	"time"
)

// translateTimeout bounds the low-stakes translation helper. The main
// analysis call carries no such override.
const translateTimeout = 15 * time.Second

// Translate asks the completion endpoint to rewrite text in the given
// supported language. It is a best-effort helper: on any failure, or when
// the language is the default or unsupported, the input comes back
// unchanged and no error is surfaced.
func (c *Client) Translate(ctx context.Context, text string, language string) string {
	name, ok := languageNames[language]
	if !ok || language == DefaultLanguage || text == "" {
		return text
	}

	body := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{
				Role: "user",
				Content: []contentPart{
					{
						Type: "text",
						Text: "Translate the following text to " + name + ". Reply with the translation only, no commentary:\n\n" + text,
					},
				},
			},
		},
		MaxTokens:   maxTokens,
		Temperature: temperature,
	}

	client := &http.Client{Timeout: translateTimeout}
	translated, failure := c.complete(ctx, client, body)
	if failure != nil || translated == "" {
		return text
	}
	return translated
}
