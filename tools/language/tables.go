package language

// UsageContext selects the register of cultural guidance.
type UsageContext = string

const (
	TravelContext   UsageContext = "travel"
	BusinessContext UsageContext = "business"
	CasualContext   UsageContext = "casual"
)

// Formality grades the register of a text.
type Formality = string

const (
	FormalRegister   Formality = "formal"
	InformalRegister Formality = "informal"
	NeutralRegister  Formality = "neutral"
)

// Difficulty grades how hard a phrase is to pronounce.
type Difficulty = string

const (
	HighDifficulty   Difficulty = "high"
	MediumDifficulty Difficulty = "medium"
	LowDifficulty    Difficulty = "low"
)

// contextTips is keyed by usage context, then target language.
var contextTips = map[UsageContext]map[string]string{
	TravelContext: {
		"en": "Keep phrases short and add 'please' when asking strangers for help.",
		"es": "Use 'usted' with staff and strangers; 'por favor' and 'gracias' go a long way.",
		"fr": "Open with 'Bonjour' before any request; skipping the greeting reads as rude.",
		"de": "Address strangers with 'Sie'; a direct question without small talk is normal.",
	},
	BusinessContext: {
		"en": "Stay on first names only after being invited to; keep emails concise.",
		"es": "Titles matter in first meetings; let the senior side set the pace.",
		"fr": "Use 'vous' throughout and full titles in writing until told otherwise.",
		"de": "Use surnames with 'Herr'/'Frau' and expect punctuality to be taken literally.",
	},
	CasualContext: {
		"en": "Contractions and slang are fine; formality can come across as distant.",
		"es": "'Tú' is expected among peers; diminutives signal warmth, not condescension.",
		"fr": "'Tu' is fine among friends, but wait for the other side to switch first.",
		"de": "'Du' among friends; offering the switch from 'Sie' is a small ritual.",
	},
}

var formalKeywords = []string{"please", "thank you", "would you", "could you", "may i"}

var informalKeywords = []string{"hey", "what's up", "cool", "awesome", "yeah"}

// emergencyPhrases is keyed by target language. English is the fallback.
var emergencyPhrases = map[string]map[string]string{
	"en": {
		"help":      "Help!",
		"police":    "Call the police!",
		"doctor":    "I need a doctor.",
		"emergency": "This is an emergency.",
	},
	"es": {
		"help":      "¡Ayuda!",
		"police":    "¡Llame a la policía!",
		"doctor":    "Necesito un médico.",
		"emergency": "Es una emergencia.",
	},
	"fr": {
		"help":      "Au secours !",
		"police":    "Appelez la police !",
		"doctor":    "J'ai besoin d'un médecin.",
		"emergency": "C'est une urgence.",
	},
}

// culturalNotes is keyed by target language.
var culturalNotes = map[string]string{
	"ja": "Bowing accompanies greetings and thanks; avoid prolonged direct eye contact with strangers.",
	"ko": "Age shapes speech levels; accept items with both hands as a sign of respect.",
	"ar": "Greetings are unhurried; use the right hand for giving and receiving.",
	"zh": "Decline offers once before accepting; present business cards with both hands.",
}
