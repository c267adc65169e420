package profanity

// Per-language profanity tables. Keys are ISO 639 codes; words are stored
// lowercase in the script they are written in.
var profanityWords = map[string][]string{
	// English
	"en": {
		"fuck", "shit", "damn", "bitch", "ass", "bastard", "crap", "piss",
		"dick", "cock", "pussy", "whore", "slut", "fag", "nigger", "retard",
		"motherfucker", "asshole", "bullshit", "goddamn", "hell", "cunt",
	},

	// Hindi (Devanagari script)
	"hi": {
		"बकवास", "गधा", "कुत्ता", "साला", "हरामी", "चूतिया", "मादरचोद",
		"भोसड़ी", "रंडी", "लौड़ा", "गांड", "चूत", "बहनचोद",
	},

	// Tamil
	"ta": {
		"முட்டாள்", "நாய்", "பன்னி", "ஓழ்", "தேவிடியா", "கூதி", "சூத்து",
		"லூசு", "போடா", "போடி", "ஓம்மல்",
	},

	// Telugu
	"te": {
		"దెంగు", "బూతు", "కుక్క", "గాడిద", "పిచ్చి", "లంజ", "బొంద",
		"తల్లి", "పూకు", "సొల్లు",
	},

	// Kannada
	"kn": {
		"ಬೂತು", "ನಾಯಿ", "ಕತ್ತೆ", "ಹುಚ್ಚ", "ಲೂಸು", "ಗುಂಡ", "ತುಣ್ಣಿ",
		"ಕಾಮುಕ", "ಬೇವರ್ಸಿ",
	},

	// Malayalam
	"ml": {
		"മൈര്", "പൂറ്", "കുണ്ണ", "തായോളി", "പട്ടി", "ചാണകം", "തേവിടിച്ചി",
		"പൂര്", "മോന്ത", "ഊമ്പ്",
	},

	// Bengali
	"bn": {
		"শালা", "মাগি", "চোদা", "বাল", "গাধা", "হারামি", "কুত্তা",
		"বেশ্যা", "ভোদা", "লাউড়া",
	},

	// Gujarati
	"gu": {
		"ગધેડો", "કૂતરો", "ચૂતિયા", "હરામી", "રાંડ", "લોડો", "ગાંડ",
		"બકવાસ", "પાગલ",
	},

	// Marathi
	"mr": {
		"झवाडा", "रांड", "गांड", "लवडा", "भोसडी", "चूत", "मादरचोद",
		"कुत्रा", "गधव", "हरामी",
	},

	// Khasi (basic - to be expanded)
	"kha": {
		"khlaw", "sniaw", "pyllait", "bnai",
	},
}
