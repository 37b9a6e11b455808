package analysis

import "fmt"

// InstructionPrompt describes the assessment and the exact JSON shape the
// model is asked to reply with. Field names and value domains are stated
// informally here; nothing enforces them on the reply, which is why every
// consumer of Result reads fields defensively.
const InstructionPrompt = `You are an expert dental AI assistant. Analyze this tooth/dental image and provide a comprehensive analysis in JSON format with the following structure:

{
    "cavity_stage": "Stage 0-4 (0=No cavity, 1=Early enamel decay, 2=Dentin decay, 3=Pulp involvement, 4=Abscess/severe infection)",
    "cavity_present": true/false,
    "affected_teeth": ["list of affected tooth numbers if identifiable"],
    "severity_level": "None/Mild/Moderate/Severe/Critical",
    "visible_issues": ["list all visible dental issues"],
    "possible_causes": ["detailed list of possible causes for the observed condition"],
    "immediate_concerns": ["urgent issues requiring immediate attention"],
    "recommended_treatments": ["list of recommended treatments"],
    "prevention_tips": ["specific prevention advice"],
    "emergency_level": "None/Low/Medium/High/Critical",
    "estimated_timeline": "how long this condition likely took to develop",
    "prognosis": "likely outcome with and without treatment",
    "home_care_instructions": ["immediate home care steps"],
    "when_to_see_dentist": "timeline for dental visit",
    "additional_notes": "any other relevant observations"
}

Analyze the image carefully and provide detailed, accurate information. If you cannot clearly see dental issues, indicate uncertainty appropriately.`

// DefaultLanguage is the locale used when no supported language is requested.
const DefaultLanguage = "en"

// languageNames is the closed set of supported reply languages. Codes
// outside this map get default behavior: no localization directive.
var languageNames = map[string]string{
	"en": "English",
	"de": "German",
	"es": "Spanish",
	"fr": "French",
	"hi": "Hindi",
}

// Languages returns the supported language codes and their English names.
func Languages() map[string]string {
	names := make(map[string]string, len(languageNames))
	for code, name := range languageNames {
		names[code] = name
	}
	return names
}

// LanguageName resolves a supported code to its English name. Unsupported
// codes resolve to the default language's name.
func LanguageName(code string) string {
	if name, ok := languageNames[code]; ok {
		return name
	}
	return languageNames[DefaultLanguage]
}

// buildInstruction appends the localization directive for non-default
// supported languages. The JSON field names stay English regardless.
func buildInstruction(language string) string {
	name, ok := languageNames[language]
	if !ok || language == DefaultLanguage {
		return InstructionPrompt
	}
	return InstructionPrompt + fmt.Sprintf(
		"\n\nIMPORTANT: Write the value of every human-readable field in %s. Keep the JSON field names exactly as given, in English.",
		name,
	)
}
