package locale

// Lookup resolves a UI string for a locale and key. The HTTP layer
// consumes this as an injected capability; the analysis core never
// touches UI strings.
type Lookup func(locale string, key string) string

// tables holds the literal UI strings per supported locale. Missing
// locales and keys fall back to English, then to the key itself.
var tables = map[string]map[string]string{
	"en": {
		"title":            "Dental Analysis Portal",
		"upload_prompt":    "Upload a clear image of the tooth or dental area you want analyzed",
		"analyze_button":   "Analyze Image",
		"results_header":   "Analysis Results",
		"audio_header":     "Audio Options",
		"analysis_failed":  "Analysis Failed",
		"audio_fallback":   "Audio generation failed, but you can still download the text summary",
		"missing_key":      "Please provide an API key to get started",
		"disclaimer":       "This AI analysis is for educational purposes only and should not replace professional dental consultation. Always consult with a qualified dentist for proper diagnosis and treatment.",
	},
	"de": {
		"title":            "Portal für Zahnanalyse",
		"upload_prompt":    "Laden Sie ein klares Bild des Zahns oder Zahnbereichs hoch, der analysiert werden soll",
		"analyze_button":   "Bild analysieren",
		"results_header":   "Analyseergebnisse",
		"audio_header":     "Audio-Optionen",
		"analysis_failed":  "Analyse fehlgeschlagen",
		"audio_fallback":   "Die Audioerzeugung ist fehlgeschlagen, aber Sie können die Textzusammenfassung herunterladen",
		"missing_key":      "Bitte geben Sie einen API-Schlüssel ein, um zu beginnen",
		"disclaimer":       "Diese KI-Analyse dient nur zu Bildungszwecken und ersetzt keine professionelle zahnärztliche Beratung. Wenden Sie sich für Diagnose und Behandlung immer an einen qualifizierten Zahnarzt.",
	},
	"es": {
		"title":            "Portal de Análisis Dental",
		"upload_prompt":    "Sube una imagen clara del diente o la zona dental que quieras analizar",
		"analyze_button":   "Analizar imagen",
		"results_header":   "Resultados del análisis",
		"audio_header":     "Opciones de audio",
		"analysis_failed":  "Análisis fallido",
		"audio_fallback":   "La generación de audio falló, pero aún puedes descargar el resumen de texto",
		"missing_key":      "Introduce una clave de API para empezar",
		"disclaimer":       "Este análisis de IA es solo para fines educativos y no debe reemplazar la consulta dental profesional. Consulta siempre a un dentista calificado para un diagnóstico y tratamiento adecuados.",
	},
	"fr": {
		"title":            "Portail d'analyse dentaire",
		"upload_prompt":    "Téléchargez une image nette de la dent ou de la zone dentaire à analyser",
		"analyze_button":   "Analyser l'image",
		"results_header":   "Résultats de l'analyse",
		"audio_header":     "Options audio",
		"analysis_failed":  "Échec de l'analyse",
		"audio_fallback":   "La génération audio a échoué, mais vous pouvez toujours télécharger le résumé texte",
		"missing_key":      "Veuillez fournir une clé API pour commencer",
		"disclaimer":       "Cette analyse par IA est fournie à des fins éducatives uniquement et ne remplace pas une consultation dentaire professionnelle. Consultez toujours un dentiste qualifié pour un diagnostic et un traitement appropriés.",
	},
	"hi": {
		"title":            "दंत विश्लेषण पोर्टल",
		"upload_prompt":    "जिस दांत या दंत क्षेत्र का विश्लेषण करना है उसकी स्पष्ट छवि अपलोड करें",
		"analyze_button":   "छवि का विश्लेषण करें",
		"results_header":   "विश्लेषण परिणाम",
		"audio_header":     "ऑडियो विकल्प",
		"analysis_failed":  "विश्लेषण विफल",
		"audio_fallback":   "ऑडियो बनाना विफल रहा, लेकिन आप टेक्स्ट सारांश डाउनलोड कर सकते हैं",
		"missing_key":      "शुरू करने के लिए कृपया एक API कुंजी प्रदान करें",
		"disclaimer":       "यह AI विश्लेषण केवल शैक्षिक उद्देश्यों के लिए है और पेशेवर दंत परामर्श का विकल्प नहीं है। उचित निदान और उपचार के लिए हमेशा योग्य दंत चिकित्सक से परामर्श करें।",
	},
}

// Supported returns the locale codes with a UI string table.
func Supported() []string {
	return []string{"en", "de", "es", "fr", "hi"}
}

// NewLookup returns the string lookup over the built-in tables.
func NewLookup() Lookup {
	return func(locale string, key string) string {
		if table, ok := tables[locale]; ok {
			if value, ok := table[key]; ok {
				return value
			}
		}
		if value, ok := tables["en"][key]; ok {
			return value
		}
		return key
	}
}
