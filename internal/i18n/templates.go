package i18n

import (
	"fmt"
	"strings"
)

// Key names a response template.
type Key string

const (
	KeyGreeting          Key = "greeting"
	KeySchemeList        Key = "schemeList"
	KeyCategorySchemes   Key = "categorySchemes"
	KeySchemeNotFound    Key = "schemeNotFound"
	KeyEligibilityStart  Key = "eligibilityStart"
	KeyEligibilityResult Key = "eligibilityResult"
	KeyNoEligibleSchemes Key = "noEligibleSchemes"
	KeySelectSchemeFirst Key = "selectSchemeFirst"
	KeyHelp              Key = "help"
	KeyNotUnderstood     Key = "notUnderstood"
	KeyLanguageChanged   Key = "languageChanged"
	KeyGoodbye           Key = "goodbye"
	KeyAskAge            Key = "askAge"
	KeyAskIncome         Key = "askIncome"
	KeyAskOccupation     Key = "askOccupation"
	KeyAskBPL            Key = "askBPL"
	KeyAskLand           Key = "askLand"
)

// Params are substituted into {name} placeholders.
type Params map[string]interface{}

var responses = map[Key]map[string]string{
	KeyGreeting: {
		English: "Hello and welcome to HIMAYA, your local guide for government schemes in Uttarakhand. I can help you find schemes you're eligible for. Say 'schemes' to browse, or 'eligibility' to check what you qualify for.",
		Hindi:   "नमस्ते! हिमाया में आपका स्वागत है, उत्तराखंड की सरकारी योजनाओं के लिए आपका स्थानीय मार्गदर्शक। मैं आपको पात्र योजनाएं खोजने में मदद कर सकता हूं। योजनाएं देखने के लिए 'योजनाएं' बोलें, या पात्रता जांचने के लिए 'पात्रता' बोलें।",
	},
	KeySchemeList: {
		English: "I found {count} schemes. Here are the top ones:",
		Hindi:   "मुझे {count} योजनाएं मिलीं। यहां शीर्ष योजनाएं हैं:",
	},
	KeyCategorySchemes: {
		English: "Here are {count} schemes in {category}:",
		Hindi:   "{category} में {count} योजनाएं हैं:",
	},
	KeySchemeNotFound: {
		English: "I couldn't find that scheme. Would you like me to list all available schemes?",
		Hindi:   "मुझे वह योजना नहीं मिली। क्या आप चाहते हैं कि मैं सभी उपलब्ध योजनाएं दिखाऊं?",
	},
	KeyEligibilityStart: {
		English: "I'll help you check your eligibility. Please tell me your age.",
		Hindi:   "मैं आपकी पात्रता जांचने में मदद करूंगा। कृपया अपनी उम्र बताएं।",
	},
	KeyEligibilityResult: {
		English: "Based on your profile, you are eligible for {count} schemes:",
		Hindi:   "आपकी जानकारी के आधार पर, आप {count} योजनाओं के लिए पात्र हैं:",
	},
	KeyNoEligibleSchemes: {
		English: "Based on the information provided, I couldn't find matching schemes. Would you like to browse all schemes?",
		Hindi:   "दी गई जानकारी के आधार पर, मुझे मिलती-जुलती योजनाएं नहीं मिलीं। क्या आप सभी योजनाएं देखना चाहेंगे?",
	},
	KeySelectSchemeFirst: {
		English: "Please select a scheme first. Say 'schemes' to see the list.",
		Hindi:   "कृपया पहले कोई योजना चुनें। सूची देखने के लिए 'योजनाएं' बोलें।",
	},
	KeyHelp: {
		English: "I can help you with:\n1. Browse government schemes - say 'schemes'\n2. Check your eligibility - say 'eligibility'\n3. Get scheme details - say the scheme name\n4. Filter by category - say 'farmer schemes' or 'health schemes'\n\nWhat would you like to do?",
		Hindi:   "मैं आपकी इन चीजों में मदद कर सकता हूं:\n1. सरकारी योजनाएं देखें - 'योजनाएं' बोलें\n2. पात्रता जांचें - 'पात्रता' बोलें\n3. योजना विवरण - योजना का नाम बोलें\n4. श्रेणी के अनुसार - 'किसान योजनाएं' या 'स्वास्थ्य योजनाएं' बोलें\n\nआप क्या करना चाहेंगे?",
	},
	KeyNotUnderstood: {
		English: "I didn't quite understand that. You can say 'help' for options, or 'schemes' to browse available schemes.",
		Hindi:   "मैं समझ नहीं पाया। आप मदद के लिए 'मदद' बोल सकते हैं, या योजनाएं देखने के लिए 'योजनाएं' बोलें।",
	},
	KeyLanguageChanged: {
		English: "Language changed to English. How can I help you?",
		Hindi:   "भाषा हिंदी में बदल दी गई है। मैं आपकी कैसे मदद कर सकता हूं?",
	},
	KeyGoodbye: {
		English: "Thank you for using HIMAYA. Hope to see you back in the mountains! Goodbye!",
		Hindi:   "हिमाया का उपयोग करने के लिए धन्यवाद। पहाड़ों में फिर मिलेंगे! अलविदा!",
	},
	KeyAskAge: {
		English: "What is your age?",
		Hindi:   "आपकी उम्र क्या है?",
	},
	KeyAskIncome: {
		English: "What is your annual income in rupees?",
		Hindi:   "आपकी वार्षिक आय कितनी है (रुपयों में)?",
	},
	KeyAskOccupation: {
		English: "What is your occupation? For example: farmer, self-employed, student, employed",
		Hindi:   "आपका पेशा क्या है? उदाहरण: किसान, स्व-रोजगार, छात्र, नौकरी",
	},
	KeyAskBPL: {
		English: "Do you have a BPL (Below Poverty Line) card? Say yes or no.",
		Hindi:   "क्या आपके पास BPL (गरीबी रेखा से नीचे) कार्ड है? हां या नहीं बोलें।",
	},
	KeyAskLand: {
		English: "Do you own agricultural land? If yes, how many acres?",
		Hindi:   "क्या आपके पास कृषि भूमि है? यदि हां, तो कितने एकड़?",
	},
}

// Response renders template key in lang, falling back to English and then
// to the empty string. Placeholders without a matching param stay literal.
func Response(key Key, lang string, params Params) string {
	return Interpolate(Localized(responses[key], lang), params)
}

// Interpolate replaces every {name} occurrence with its param value.
func Interpolate(text string, params Params) string {
	if len(params) == 0 || text == "" {
		return text
	}
	pairs := make([]string, 0, len(params)*2)
	for name, value := range params {
		pairs = append(pairs, "{"+name+"}", fmt.Sprint(value))
	}
	return strings.NewReplacer(pairs...).Replace(text)
}

// AskKey returns the slot-filling prompt for a profile field, if any.
func AskKey(field string) (Key, bool) {
	switch field {
	case "age":
		return KeyAskAge, true
	case "income":
		return KeyAskIncome, true
	case "occupation":
		return KeyAskOccupation, true
	case "bpl":
		return KeyAskBPL, true
	case "hasLand":
		return KeyAskLand, true
	default:
		return "", false
	}
}
