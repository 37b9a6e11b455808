package analysis

import (
	"encoding/json"
	"strings"

	"github.com/kaptinlin/jsonrepair"

	"github.com/dentiscan/backend/internal/util"
)

// ExtractObject returns the substring spanning the first '{' to the last
// '}' of text, inclusive. Models frequently wrap their JSON reply in
// prose, so everything outside that span is discarded. ok is false when
// no such span exists.
func ExtractObject(text string) (string, bool) {
	start := strings.Index(text, "{")
	if start == -1 {
		return "", false
	}
	end := strings.LastIndex(text, "}")
	if end == -1 || end < start {
		return "", false
	}
	return text[start : end+1], true
}

// ParseReply extracts and decodes the JSON object embedded in a model
// reply. Decoding is best-effort: a strict unmarshal first, then a
// repair pass for the malformed JSON models sometimes emit. When no
// object span exists or the span cannot be decoded, the failure keeps
// the original reply text so the caller can show what the model said.
func ParseReply(content string) Result {
	content = util.SanitizeText(content)
	span, ok := ExtractObject(content)
	if !ok {
		return Result{Err: &Failure{
			Message:     "no JSON object found in model reply",
			RawResponse: content,
		}}
	}

	fields := make(map[string]any)
	if err := json.Unmarshal([]byte(span), &fields); err == nil {
		return Result{Fields: fields}
	}

	repaired, err := jsonrepair.JSONRepair(span)
	if err == nil {
		fields = make(map[string]any)
		if err := json.Unmarshal([]byte(repaired), &fields); err == nil {
			return Result{Fields: fields}
		}
	}

	return Result{Err: &Failure{
		Message:     "failed to parse JSON from model reply",
		RawResponse: content,
	}}
}
