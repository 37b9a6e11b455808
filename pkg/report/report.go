package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/dentiscan/backend/pkg/analysis"
)

// Narration and text-report rendering over a parsed analysis result.
// Both renderers are pure string construction; every field access goes
// through the result's defensive accessors so absent or oddly-typed
// fields fall back to the documented placeholder.

// narrationErrorText is returned for failed analyses.
const narrationErrorText = "An error occurred during the dental analysis. Please try again with a different image."

// disclaimer closes every report.
const disclaimer = "This AI analysis is for educational purposes only and should not replace professional dental consultation. Always consult with a qualified dentist for proper diagnosis and treatment."

const (
	narrationIssueLimit     = 3
	narrationTreatmentLimit = 2
	narrationHomeCareLimit  = 2
)

// Placeholders used when a list or closing field is absent from the result.
const (
	placeholderNoneIdentified = "None identified"
	placeholderNotSpecified   = "Not specified"
	placeholderConsultDentist = "Consult dentist"
	placeholderNotProvided    = "Not provided"
	defaultDentistTimeline    = "As soon as possible"
)

// Narration renders the speech-ready summary. Clause order is fixed; a
// clause is included only when its source field is present, with the
// emergency escalation reserved for High and Critical levels.
func Narration(result analysis.Result) string {
	if result.Failed() {
		return narrationErrorText
	}

	stage := result.String("cavity_stage", "Unknown")
	severity := result.String("severity_level", "Unknown")
	emergency := result.String("emergency_level", "None")

	var sb strings.Builder
	fmt.Fprintf(&sb, "Dental Analysis Summary. Cavity stage: %s. Severity level: %s.", stage, severity)

	if emergency == "High" || emergency == "Critical" {
		fmt.Fprintf(&sb, " Emergency level: %s. Immediate dental attention is recommended.", emergency)
	}

	if issues := capped(result.StringList("visible_issues"), narrationIssueLimit); len(issues) > 0 {
		fmt.Fprintf(&sb, " Visible issues include: %s.", strings.Join(issues, ", "))
	}

	if treatments := capped(result.StringList("recommended_treatments"), narrationTreatmentLimit); len(treatments) > 0 {
		fmt.Fprintf(&sb, " Recommended treatments: %s.", strings.Join(treatments, ", "))
	}

	if homeCare := capped(result.StringList("home_care_instructions"), narrationHomeCareLimit); len(homeCare) > 0 {
		fmt.Fprintf(&sb, " Home care instructions: %s.", strings.Join(homeCare, ", "))
	}

	fmt.Fprintf(&sb, " When to see dentist: %s.", result.String("when_to_see_dentist", defaultDentistTimeline))

	return sb.String()
}

// Report renders the long-form plain-text document. generatedAt stamps
// the header so rendering stays deterministic for a given input.
func Report(result analysis.Result, generatedAt time.Time) string {
	if result.Failed() {
		return narrationErrorText
	}

	var sb strings.Builder
	sb.WriteString("DENTAL ANALYSIS REPORT\n")
	fmt.Fprintf(&sb, "Generated: %s\n\n", generatedAt.Format("2006-01-02 15:04:05"))

	fmt.Fprintf(&sb, "Cavity Stage: %s\n", result.String("cavity_stage", "Unknown"))
	fmt.Fprintf(&sb, "Severity: %s\n", result.String("severity_level", "Unknown"))
	fmt.Fprintf(&sb, "Emergency Level: %s\n", result.String("emergency_level", "None"))

	writeListSection(&sb, "Visible Issues", result.StringList("visible_issues"), placeholderNoneIdentified)
	writeListSection(&sb, "Possible Causes", result.StringList("possible_causes"), placeholderNotSpecified)
	writeListSection(&sb, "Recommended Treatments", result.StringList("recommended_treatments"), placeholderConsultDentist)
	writeListSection(&sb, "Immediate Concerns", result.StringList("immediate_concerns"), placeholderNoneIdentified)
	writeListSection(&sb, "Prevention Tips", result.StringList("prevention_tips"), placeholderNotSpecified)
	writeListSection(&sb, "Home Care Instructions", result.StringList("home_care_instructions"), placeholderConsultDentist)

	sb.WriteString("\n")
	fmt.Fprintf(&sb, "Estimated Timeline: %s\n", result.String("estimated_timeline", placeholderNotSpecified))
	fmt.Fprintf(&sb, "Prognosis: %s\n", result.String("prognosis", placeholderNotProvided))
	fmt.Fprintf(&sb, "Cavity Present: %s\n", yesNo(result.Bool("cavity_present", false)))
	fmt.Fprintf(&sb, "When to See Dentist: %s\n", result.String("when_to_see_dentist", defaultDentistTimeline))
	if notes := result.String("additional_notes", ""); notes != "" {
		fmt.Fprintf(&sb, "Additional Notes: %s\n", notes)
	}

	sb.WriteString("\nDISCLAIMER\n")
	sb.WriteString(disclaimer)
	sb.WriteString("\n")

	return sb.String()
}

func writeListSection(sb *strings.Builder, title string, entries []string, placeholder string) {
	sb.WriteString("\n")
	sb.WriteString(title)
	sb.WriteString(":\n")
	if len(entries) == 0 {
		fmt.Fprintf(sb, "%s\n", placeholder)
		return
	}
	for _, entry := range entries {
		fmt.Fprintf(sb, "- %s\n", entry)
	}
}

func capped(entries []string, limit int) []string {
	if len(entries) > limit {
		return entries[:limit]
	}
	return entries
}

func yesNo(value bool) string {
	if value {
		return "Yes"
	}
	return "No"
}
