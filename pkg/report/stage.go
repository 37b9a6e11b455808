package report

import (
	"strconv"
	"strings"
)

// StageUnknown is reported for any cavity_stage string outside the
// documented "Stage N" form. The field is model-authored free text, so
// guessing a digit out of arbitrary phrasing would silently mislabel
// the assessment.
const StageUnknown = -1

// StageNumber extracts the numeric stage from a cavity_stage value.
// Only the exact two-token "Stage N" form with N in 0..4 is accepted
// (a trailing qualifier such as "Stage 2 (moderate)" still resolves
// from its second token); everything else is StageUnknown.
func StageNumber(stage string) int {
	tokens := strings.Fields(stage)
	if len(tokens) < 2 || tokens[0] != "Stage" {
		return StageUnknown
	}
	n, err := strconv.Atoi(tokens[1][:1])
	if err != nil || n < 0 || n > 4 {
		return StageUnknown
	}
	if len(tokens[1]) > 1 {
		rest := tokens[1][1:]
		if rest != "." && rest != "," && rest != ":" {
			return StageUnknown
		}
	}
	return n
}

// Stage describes one entry of the cavity-stage guide shown to users.
type Stage struct {
	Name        string `json:"name"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Stages returns the five-entry cavity-stage guide.
func Stages() []Stage {
	return []Stage{
		{Name: "Stage 0", Title: "No Cavity", Description: "Healthy tooth or very early demineralization"},
		{Name: "Stage 1", Title: "Early Enamel Decay", Description: "White spots or early enamel damage"},
		{Name: "Stage 2", Title: "Dentin Decay", Description: "Cavity has reached the dentin layer"},
		{Name: "Stage 3", Title: "Pulp Involvement", Description: "Infection has reached the tooth's pulp"},
		{Name: "Stage 4", Title: "Abscess/Severe", Description: "Advanced infection, possible abscess"},
	}
}
