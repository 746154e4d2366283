package i18n

import "fmt"

// SpokenDetails is the subset of a scheme read aloud on a detail turn.
type SpokenDetails struct {
	Name               string
	ShortDescription   string
	BenefitDescription string
	Helpline           string
}

// FormatSchemeDetails renders d as sentences for voice output.
func FormatSchemeDetails(d SpokenDetails, lang string) string {
	if lang == Hindi {
		return fmt.Sprintf("%s। %s। इस योजना में %s का लाभ मिलता है। अधिक जानकारी के लिए %s पर कॉल करें।",
			d.Name, d.ShortDescription, d.BenefitDescription, d.Helpline)
	}
	return fmt.Sprintf("%s. %s. This scheme provides %s. For more information, call %s.",
		d.Name, d.ShortDescription, d.BenefitDescription, d.Helpline)
}

// Prompt is an IVR prompt set.
type Prompt struct {
	Main        string   `json:"main"`
	Instruction string   `json:"instruction,omitempty"`
	Options     []string `json:"options,omitempty"`
}

var prompts = map[string]map[string]Prompt{
	"welcome": {
		English: {Main: "Welcome to HIMAYA", Instruction: "Press 1 for English, 2 for Hindi"},
		Hindi:   {Main: "हिमाया में आपका स्वागत है", Instruction: "English के लिए 1, हिंदी के लिए 2 दबाएं"},
	},
	"mainMenu": {
		English: {
			Main: "Main Menu",
			Options: []string{
				"Press 1 to browse schemes",
				"Press 2 to check eligibility",
				"Press 3 for help",
				"Press 4 to change language",
			},
		},
		Hindi: {
			Main: "मुख्य मेनू",
			Options: []string{
				"योजनाएं देखने के लिए 1 दबाएं",
				"पात्रता जांचने के लिए 2 दबाएं",
				"मदद के लिए 3 दबाएं",
				"भाषा बदलने के लिए 4 दबाएं",
			},
		},
	},
}

// Prompts returns the prompt set for an IVR context. ok is false for an
// unknown context.
func Prompts(context, lang string) (Prompt, bool) {
	set, ok := prompts[context]
	if !ok {
		return Prompt{}, false
	}
	return Localized(set, lang), true
}
