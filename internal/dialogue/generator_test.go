package dialogue

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"himaya-assistant/internal/catalog"
	"himaya-assistant/internal/common/logger"
	"himaya-assistant/internal/common/observability"
	"himaya-assistant/internal/eligibility"
	"himaya-assistant/internal/i18n"
	"himaya-assistant/internal/intent"
)

// ==========================
// Test Helpers
// ==========================

func createTestGenerator(t *testing.T) *Generator {
	t.Helper()
	c, err := catalog.LoadEmbedded()
	require.NoError(t, err)
	return NewGenerator(c, logger.NewTestLogger(t), observability.NewNoop())
}

// ==========================
// Process
// ==========================

func TestProcess_ListSchemes(t *testing.T) {
	g := createTestGenerator(t)

	resp := g.Process(context.Background(), "what schemes are available", i18n.English, nil)

	assert.Equal(t, intent.ListSchemes, resp.Intent)
	assert.True(t, resp.FollowUp)
	assert.Equal(t, []string{"SCHEME_DETAILS", "CHECK_ELIGIBILITY"}, resp.Actions)
	assert.True(t, strings.HasPrefix(resp.Text, "I found 12 schemes. Here are the top ones:\n1. "))

	data, ok := resp.Data.([]catalog.View)
	require.True(t, ok)
	assert.Len(t, data, 5)
	assert.Equal(t, 6, len(strings.Split(resp.Text, "\n")))
}

func TestProcess_ListSchemesFilteredByCategory(t *testing.T) {
	g := createTestGenerator(t)

	resp := g.Respond(intent.ListSchemes, intent.Entities{Category: catalog.CategoryAgriculture}, i18n.English, nil)

	data := resp.Data.([]catalog.View)
	require.Len(t, data, 2)
	assert.True(t, strings.HasPrefix(resp.Text, "I found 2 schemes."))
	for _, v := range data {
		assert.Equal(t, catalog.CategoryAgriculture, v.Category)
	}
}

func TestProcess_ChangeLanguage(t *testing.T) {
	g := createTestGenerator(t)

	resp := g.Process(context.Background(), "change language", i18n.English, Context{})

	assert.Equal(t, intent.LanguageChange, resp.Intent)
	assert.Equal(t, i18n.Hindi, resp.Language)
	assert.Equal(t, i18n.Response(i18n.KeyLanguageChanged, i18n.Hindi, nil), resp.Text)
	assert.Equal(t, []string{"MAIN_MENU"}, resp.Actions)

	back := g.Process(context.Background(), "change language", i18n.Hindi, nil)
	assert.Equal(t, i18n.English, back.Language)
}

func TestProcess_SchemeDetails(t *testing.T) {
	g := createTestGenerator(t)

	resp := g.Process(context.Background(), "details about ayushman", i18n.English, nil)

	assert.Equal(t, intent.SchemeDetails, resp.Intent)
	assert.Equal(t,
		"Ayushman Bharat PM-JAY. Free hospital treatment up to ₹5 lakh per family. This scheme provides Health cover of ₹5 lakh per family per year. For more information, call 14555.",
		resp.Text)
	v, ok := resp.Data.(catalog.View)
	require.True(t, ok)
	assert.Equal(t, "ayushman", v.ID)
	assert.NotEmpty(t, v.HowToApply)
	assert.Equal(t, []string{"HOW_TO_APPLY", "CHECK_ELIGIBILITY", "LIST_SCHEMES"}, resp.Actions)
}

func TestProcess_SearchWithoutKnownSchemeFallsBack(t *testing.T) {
	g := createTestGenerator(t)

	resp := g.Process(context.Background(), "tell me about space travel", i18n.Hindi, nil)

	assert.Equal(t, intent.SearchScheme, resp.Intent)
	assert.Equal(t, i18n.Response(i18n.KeySchemeNotFound, i18n.Hindi, nil), resp.Text)
	assert.Equal(t, []string{"LIST_SCHEMES"}, resp.Actions)
	assert.Nil(t, resp.Data)
}

func TestProcess_UnknownInput(t *testing.T) {
	g := createTestGenerator(t)

	resp := g.Process(context.Background(), "the river is cold", i18n.English, nil)

	assert.Equal(t, intent.Unknown, resp.Intent)
	assert.True(t, resp.FollowUp)
	assert.Equal(t, []string{"HELP", "LIST_SCHEMES"}, resp.Actions)
	assert.Equal(t, i18n.Response(i18n.KeyNotUnderstood, i18n.English, nil), resp.Text)
}

// ==========================
// Respond per intent
// ==========================

func TestRespond(t *testing.T) {
	g := createTestGenerator(t)

	tests := []struct {
		name       string
		intent     intent.Intent
		entities   intent.Entities
		lang       string
		conv       Context
		wantIntent intent.Intent
		wantText   string
		wantNext   string
		wantFollow bool
		actions    []string
	}{
		{
			name:       "greeting",
			intent:     intent.Greeting,
			lang:       i18n.Hindi,
			wantIntent: intent.Greeting,
			wantText:   i18n.Response(i18n.KeyGreeting, i18n.Hindi, nil),
			wantFollow: true,
			actions:    []string{"LIST_SCHEMES", "CHECK_ELIGIBILITY", "HELP"},
		},
		{
			name:       "check eligibility opens the interview",
			intent:     intent.CheckEligibility,
			lang:       i18n.English,
			wantIntent: intent.CheckEligibility,
			wantText:   "I'll help you check your eligibility. Please tell me your age.",
			wantNext:   "age",
			wantFollow: true,
			actions:    []string{ActionCollectAge},
		},
		{
			name:       "how to apply without a current scheme",
			intent:     intent.HowToApply,
			lang:       i18n.English,
			wantIntent: intent.HowToApply,
			wantText:   i18n.Response(i18n.KeySelectSchemeFirst, i18n.English, nil),
			wantFollow: true,
			actions:    []string{"LIST_SCHEMES"},
		},
		{
			name:       "how to apply with an unknown current scheme",
			intent:     intent.HowToApply,
			lang:       i18n.English,
			conv:       Context{ContextCurrentScheme: "nope"},
			wantIntent: intent.HowToApply,
			wantText:   i18n.Response(i18n.KeySelectSchemeFirst, i18n.English, nil),
			wantFollow: true,
			actions:    []string{"LIST_SCHEMES"},
		},
		{
			name:       "help",
			intent:     intent.Help,
			lang:       i18n.English,
			wantIntent: intent.Help,
			wantText:   i18n.Response(i18n.KeyHelp, i18n.English, nil),
			wantFollow: true,
			actions:    []string{"LIST_SCHEMES", "CHECK_ELIGIBILITY"},
		},
		{
			name:       "transfer ends the call",
			intent:     intent.Transfer,
			lang:       i18n.English,
			wantIntent: intent.Transfer,
			wantText:   i18n.Response(i18n.KeyGoodbye, i18n.English, nil),
			wantFollow: false,
			actions:    []string{},
		},
		{
			name:       "main menu reads the keypad options",
			intent:     intent.MainMenu,
			lang:       i18n.English,
			wantIntent: intent.MainMenu,
			wantText:   "Main Menu\nPress 1 to browse schemes\nPress 2 to check eligibility\nPress 3 for help\nPress 4 to change language",
			wantFollow: true,
			actions:    []string{"LIST_SCHEMES", "CHECK_ELIGIBILITY", "HELP", "LANGUAGE_CHANGE"},
		},
		{
			name:       "unsupported language falls back to english",
			intent:     intent.Help,
			lang:       "ta",
			wantIntent: intent.Help,
			wantText:   i18n.Response(i18n.KeyHelp, i18n.English, nil),
			wantFollow: true,
			actions:    []string{"LIST_SCHEMES", "CHECK_ELIGIBILITY"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := g.Respond(tt.intent, tt.entities, tt.lang, tt.conv)
			assert.Equal(t, tt.wantIntent, resp.Intent)
			assert.Equal(t, tt.wantText, resp.Text)
			assert.Equal(t, tt.wantNext, resp.NextStep)
			assert.Equal(t, tt.wantFollow, resp.FollowUp)
			assert.Equal(t, tt.actions, resp.Actions)
		})
	}
}

func TestRespond_HowToApplyWithCurrentScheme(t *testing.T) {
	g := createTestGenerator(t)

	resp := g.Respond(intent.HowToApply, intent.Entities{}, i18n.English, Context{ContextCurrentScheme: "pm-kisan"})

	assert.Contains(t, resp.Text, "Common Service Centre")
	info, ok := resp.Data.(ApplyInfo)
	require.True(t, ok)
	assert.Equal(t, "155261", info.Helpline)
	assert.Contains(t, info.Documents, "Aadhaar card")
	assert.Equal(t, []string{"LIST_SCHEMES", "CHECK_ELIGIBILITY"}, resp.Actions)
}

func TestRespond_CategorySchemes(t *testing.T) {
	g := createTestGenerator(t)

	resp := g.Respond(intent.CategorySchemes, intent.Entities{}, i18n.Hindi, nil)
	assert.True(t, strings.HasPrefix(resp.Text, "कृषि में 2 योजनाएं हैं:\n1. "), resp.Text)

	resp = g.Respond(intent.CategorySchemes, intent.Entities{Category: catalog.CategoryEducation}, i18n.English, nil)
	data := resp.Data.([]catalog.View)
	assert.Len(t, data, 2)
	assert.True(t, strings.HasPrefix(resp.Text, "Here are 2 schemes in Education:"), resp.Text)
	assert.Equal(t, []string{"SCHEME_DETAILS"}, resp.Actions)
}

// ==========================
// Keypad
// ==========================

func TestProcessDTMF(t *testing.T) {
	g := createTestGenerator(t)

	resp := g.ProcessDTMF(context.Background(), "1", i18n.English, Context{ContextCallID: "call-1"})
	assert.Equal(t, intent.ListSchemes, resp.Intent)

	resp = g.ProcessDTMF(context.Background(), "4", i18n.Hindi, nil)
	assert.Equal(t, i18n.English, resp.Language)

	resp = g.ProcessDTMF(context.Background(), "9", i18n.English, nil)
	assert.Equal(t, intent.Unknown, resp.Intent)
}

// ==========================
// Eligibility summary
// ==========================

func TestSummarizeEligibility(t *testing.T) {
	results := []eligibility.Result{
		{View: catalog.View{ID: "a", Name: "Scheme A"}, EligibilityStatus: eligibility.StatusEligible, MissingInfo: []string{}},
		{View: catalog.View{ID: "b", Name: "Scheme B"}, EligibilityStatus: eligibility.StatusEligible, MissingInfo: []string{"income"}},
		{View: catalog.View{ID: "c", Name: "Scheme C"}, EligibilityStatus: eligibility.StatusEligible, MissingInfo: []string{}},
	}

	got := SummarizeEligibility(results, i18n.English, 2)
	assert.Equal(t,
		"Based on your profile, you are eligible for 3 schemes:\n1. Scheme A\n2. Scheme B\nWhat is your annual income in rupees?",
		got)

	assert.Equal(t, i18n.Response(i18n.KeyNoEligibleSchemes, i18n.Hindi, nil), SummarizeEligibility(nil, i18n.Hindi, 3))
}
