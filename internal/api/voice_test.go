package api

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLanguages(t *testing.T) {
	h := createTestServer(t, testOptions{}).Router()

	rec, body := do(t, h, http.MethodGet, "/api/voice/languages", "")

	require.Equal(t, http.StatusOK, rec.Code)
	data := body["data"].([]interface{})
	require.Len(t, data, 2)
	assert.Equal(t, "en", data[0].(map[string]interface{})["code"])
	assert.Equal(t, "hi-IN", data[1].(map[string]interface{})["voice"])
}

func TestProcessVoice(t *testing.T) {
	h := createTestServer(t, testOptions{}).Router()

	rec, body := do(t, h, http.MethodPost, "/api/voice/process", `{"text": "what schemes are available"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "what schemes are available", body["input"])
	assert.Equal(t, "en", body["language"])
	assert.NotEmpty(t, body["sessionId"])

	resp := body["response"].(map[string]interface{})
	assert.Equal(t, "LIST_SCHEMES", resp["intent"])
	assert.Equal(t, true, resp["followUp"])
	assert.True(t, strings.HasPrefix(resp["text"].(string), "I found 12 schemes."))
	assert.Len(t, resp["data"], 5)
	assert.Equal(t, []interface{}{"SCHEME_DETAILS", "CHECK_ELIGIBILITY"}, resp["actions"])
}

func TestProcessVoice_ContextAndSession(t *testing.T) {
	h := createTestServer(t, testOptions{}).Router()

	rec, body := do(t, h, http.MethodPost, "/api/voice/process",
		`{"text": "how to apply", "language": "hi", "sessionId": "s-1", "context": {"currentScheme": "pm-kisan"}}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "s-1", body["sessionId"])
	assert.Equal(t, "hi", body["language"])

	resp := body["response"].(map[string]interface{})
	assert.Equal(t, "HOW_TO_APPLY", resp["intent"])
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "155261", data["helpline"])
}

func TestProcessVoice_NullOptionalFields(t *testing.T) {
	h := createTestServer(t, testOptions{}).Router()

	rec, body := do(t, h, http.MethodPost, "/api/voice/process",
		`{"text": "hello", "language": null, "sessionId": null, "context": null}`)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "en", body["language"])
	assert.NotEmpty(t, body["sessionId"])

	resp := body["response"].(map[string]interface{})
	assert.Equal(t, "GREETING", resp["intent"])
}

func TestProcessVoice_Rejections(t *testing.T) {
	h := createTestServer(t, testOptions{}).Router()

	for _, payload := range []string{"", `{}`, `{"text": "   "}`} {
		rec, body := do(t, h, http.MethodPost, "/api/voice/process", payload)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Text input required", body["error"])
		assert.Equal(t, "Send transcribed text from speech-to-text", body["hint"])
	}

	rec, body := do(t, h, http.MethodPost, "/api/voice/process", `{"text": 42}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", body["code"])
}

func TestTTS(t *testing.T) {
	h := createTestServer(t, testOptions{}).Router()

	rec, body := do(t, h, http.MethodPost, "/api/voice/tts", `{"text": "नमस्ते", "language": "hi"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	tts := body["tts"].(map[string]interface{})
	assert.Equal(t, "नमस्ते", tts["text"])
	assert.Equal(t, "hi", tts["language"])
	assert.Equal(t, "hi-IN", tts["voice"])
	assert.Equal(t, 0.9, tts["rate"])
	assert.Equal(t, 1.0, tts["pitch"])

	rec, body = do(t, h, http.MethodPost, "/api/voice/tts", `{"language": "hi"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Text required", body["error"])
}

func TestIVRCallback(t *testing.T) {
	h := createTestServer(t, testOptions{}).Router()

	tests := []struct {
		name       string
		body       string
		wantLang   string
		wantVoice  string
		wantHangup bool
		wantText   string
	}{
		{
			name:      "speech",
			body:      `{"callId": "c1", "speechResult": "help", "language": "en"}`,
			wantLang:  "en-IN",
			wantVoice: "Polly.Raveena",
		},
		{
			name:      "speech wins over digits",
			body:      `{"callId": "c1", "speechResult": "help", "digits": "*"}`,
			wantLang:  "en-IN",
			wantVoice: "Polly.Raveena",
		},
		{
			name:       "transfer key hangs up",
			body:       `{"callId": "c2", "digits": "*", "language": "hi"}`,
			wantLang:   "hi-IN",
			wantVoice:  "Polly.Aditi",
			wantHangup: true,
			wantText:   "हिमाया का उपयोग करने के लिए धन्यवाद। पहाड़ों में फिर मिलेंगे! अलविदा!",
		},
		{
			name:       "null speech falls through to digits",
			body:       `{"callId": "c5", "event": null, "speechResult": null, "digits": "*", "language": "hi"}`,
			wantLang:   "hi-IN",
			wantVoice:  "Polly.Aditi",
			wantHangup: true,
			wantText:   "हिमाया का उपयोग करने के लिए धन्यवाद। पहाड़ों में फिर मिलेंगे! अलविदा!",
		},
		{
			name:      "language key speaks the new language",
			body:      `{"callId": "c3", "digits": "4", "language": "en"}`,
			wantLang:  "hi-IN",
			wantVoice: "Polly.Aditi",
			wantText:  "भाषा हिंदी में बदल दी गई है। मैं आपकी कैसे मदद कर सकता हूं?",
		},
		{
			name:      "main menu key",
			body:      `{"callId": "c4", "digits": "#"}`,
			wantLang:  "en-IN",
			wantVoice: "Polly.Raveena",
			wantText:  "Main Menu\nPress 1 to browse schemes\nPress 2 to check eligibility\nPress 3 for help\nPress 4 to change language",
		},
		{
			name:      "no input",
			body:      `{"callId": "c5"}`,
			wantLang:  "en-IN",
			wantVoice: "Polly.Raveena",
			wantText:  "I didn't quite understand that. You can say 'help' for options, or 'schemes' to browse available schemes.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, body := do(t, h, http.MethodPost, "/api/voice/ivr/callback", tt.body)
			require.Equal(t, http.StatusOK, rec.Code)
			assert.NotEmpty(t, body["callId"])

			resp := body["response"].(map[string]interface{})
			say := resp["say"].(map[string]interface{})
			assert.Equal(t, tt.wantLang, say["language"])
			assert.Equal(t, tt.wantVoice, say["voice"])
			if tt.wantText != "" {
				assert.Equal(t, tt.wantText, say["text"])
			}

			assert.Equal(t, tt.wantHangup, resp["hangup"])
			if tt.wantHangup {
				assert.Nil(t, resp["gather"])
				return
			}
			gather := resp["gather"].(map[string]interface{})
			assert.Equal(t, []interface{}{"speech", "dtmf"}, gather["input"])
			assert.Equal(t, float64(5), gather["timeout"])
			assert.Equal(t, "auto", gather["speechTimeout"])
			assert.Equal(t, "/api/voice/ivr/callback", gather["action"])
		})
	}
}

func TestPrompts(t *testing.T) {
	h := createTestServer(t, testOptions{}).Router()

	rec, body := do(t, h, http.MethodGet, "/api/voice/prompts/mainMenu?lang=hi", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "mainMenu", body["context"])
	assert.Equal(t, "hi", body["language"])
	prompts := body["prompts"].(map[string]interface{})
	assert.Equal(t, "मुख्य मेनू", prompts["main"])
	assert.Len(t, prompts["options"], 4)

	rec, body = do(t, h, http.MethodGet, "/api/voice/prompts/welcome", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Welcome to HIMAYA", body["prompts"].(map[string]interface{})["main"])

	rec, _ = do(t, h, http.MethodGet, "/api/voice/prompts/checkout", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
