// Package dialogue turns a classified utterance into the next assistant
// response. Generation is stateless: multi-turn flows are driven by the
// caller re-sending its Context.
package dialogue

import (
	"context"
	"fmt"
	"strings"
	"time"

	"himaya-assistant/internal/catalog"
	"himaya-assistant/internal/common/logger"
	"himaya-assistant/internal/common/metrics"
	"himaya-assistant/internal/common/observability"
	"himaya-assistant/internal/i18n"
	"himaya-assistant/internal/intent"
)

// listLimit caps spoken scheme lists.
const listLimit = 5

const (
	SourceText = "text"
	SourceDTMF = "dtmf"
)

type Generator struct {
	catalog *catalog.Catalog
	logger  logger.Logger
	obs     *observability.Observability
}

func NewGenerator(c *catalog.Catalog, log logger.Logger, obs *observability.Observability) *Generator {
	return &Generator{
		catalog: c,
		logger:  log.WithFields(map[string]interface{}{"component": "dialogue"}),
		obs:     obs,
	}
}

// Process classifies text, extracts its entities and responds.
func (g *Generator) Process(ctx context.Context, text, lang string, conv Context) Response {
	start := time.Now()

	in := intent.Classify(text)
	entities := intent.Extract(text, in)
	resp := g.Respond(in, entities, lang, conv)

	g.record(ctx, SourceText, in, lang, start)
	g.logger.Debug("turn processed", map[string]interface{}{
		"intent":     in,
		"response":   resp.Intent,
		"language":   lang,
		"schemeName": entities.SchemeName,
		"category":   entities.Category,
		"callId":     conv.String(ContextCallID),
	})
	return resp
}

// ProcessDTMF responds to a keypad entry without going through the text
// classifier.
func (g *Generator) ProcessDTMF(ctx context.Context, digits, lang string, conv Context) Response {
	start := time.Now()

	in := intent.FromDTMF(digits)
	resp := g.Respond(in, intent.Entities{}, lang, conv)

	g.record(ctx, SourceDTMF, in, lang, start)
	g.logger.Debug("keypad turn processed", map[string]interface{}{
		"digits":   digits,
		"intent":   in,
		"language": lang,
		"callId":   conv.String(ContextCallID),
	})
	return resp
}

func (g *Generator) record(ctx context.Context, source string, in intent.Intent, lang string, start time.Time) {
	metrics.IntentsClassified.WithLabelValues(string(in), source).Inc()
	g.obs.RecordTurn(ctx, string(in), lang, time.Since(start))
}

// Respond builds the response for an already classified turn.
func (g *Generator) Respond(in intent.Intent, e intent.Entities, lang string, conv Context) Response {
	switch in {
	case intent.Greeting:
		return Response{
			Intent:   in,
			Text:     i18n.Response(i18n.KeyGreeting, lang, nil),
			FollowUp: true,
			Actions:  actions(intent.ListSchemes, intent.CheckEligibility, intent.Help),
		}

	case intent.ListSchemes:
		schemes := g.catalog.List(lang, e.Category)
		top := schemes[:min(listLimit, len(schemes))]

		lines := make([]string, 0, len(top))
		for i, s := range top {
			lines = append(lines, fmt.Sprintf("%d. %s - %s", i+1, s.Name, s.ShortDescription))
		}

		return Response{
			Intent:   in,
			Text:     i18n.Response(i18n.KeySchemeList, lang, i18n.Params{"count": len(schemes)}) + "\n" + strings.Join(lines, "\n"),
			Data:     top,
			FollowUp: true,
			Actions:  actions(intent.SchemeDetails, intent.CheckEligibility),
		}

	case intent.SchemeDetails, intent.SearchScheme:
		if e.SchemeName != "" {
			if v, ok := g.catalog.ByID(e.SchemeName, lang); ok {
				return Response{
					Intent:   intent.SchemeDetails,
					Text:     i18n.FormatSchemeDetails(v.Spoken(), lang),
					Data:     v,
					FollowUp: true,
					Actions:  actions(intent.HowToApply, intent.CheckEligibility, intent.ListSchemes),
				}
			}
		}
		return Response{
			Intent:   intent.SearchScheme,
			Text:     i18n.Response(i18n.KeySchemeNotFound, lang, nil),
			FollowUp: true,
			Actions:  actions(intent.ListSchemes),
		}

	case intent.CheckEligibility:
		// Only opens the interview; evaluation runs through the explicit
		// eligibility endpoints.
		return Response{
			Intent:   in,
			Text:     i18n.Response(i18n.KeyEligibilityStart, lang, nil),
			FollowUp: true,
			Actions:  []string{ActionCollectAge},
			NextStep: "age",
		}

	case intent.CategorySchemes:
		category := i18n.Resolve(e.Category, catalog.CategoryAgriculture)
		schemes := g.catalog.ByCategory(category, lang)

		lines := make([]string, 0, len(schemes))
		for i, s := range schemes {
			lines = append(lines, fmt.Sprintf("%d. %s", i+1, s.Name))
		}

		return Response{
			Intent: in,
			Text: i18n.Response(i18n.KeyCategorySchemes, lang, i18n.Params{
				"category": catalog.CategoryName(category, lang),
				"count":    len(schemes),
			}) + "\n" + strings.Join(lines, "\n"),
			Data:     schemes,
			FollowUp: true,
			Actions:  actions(intent.SchemeDetails),
		}

	case intent.HowToApply:
		if id := conv.String(ContextCurrentScheme); id != "" {
			if v, ok := g.catalog.ByID(id, lang); ok {
				return Response{
					Intent:   in,
					Text:     v.HowToApply,
					Data:     ApplyInfo{Documents: v.Documents, Helpline: v.Helpline},
					FollowUp: true,
					Actions:  actions(intent.ListSchemes, intent.CheckEligibility),
				}
			}
		}
		return Response{
			Intent:   in,
			Text:     i18n.Response(i18n.KeySelectSchemeFirst, lang, nil),
			FollowUp: true,
			Actions:  actions(intent.ListSchemes),
		}

	case intent.Help:
		return Response{
			Intent:   in,
			Text:     i18n.Response(i18n.KeyHelp, lang, nil),
			FollowUp: true,
			Actions:  actions(intent.ListSchemes, intent.CheckEligibility),
		}

	case intent.LanguageChange:
		next := i18n.Toggle(lang)
		return Response{
			Intent:   in,
			Text:     i18n.Response(i18n.KeyLanguageChanged, next, nil),
			Language: next,
			FollowUp: true,
			Actions:  actions(intent.MainMenu),
		}

	case intent.MainMenu, intent.Repeat:
		p, _ := i18n.Prompts("mainMenu", lang)
		return Response{
			Intent:   in,
			Text:     strings.Join(append([]string{p.Main}, p.Options...), "\n"),
			FollowUp: true,
			Actions:  actions(intent.ListSchemes, intent.CheckEligibility, intent.Help, intent.LanguageChange),
		}

	case intent.Transfer:
		return Response{
			Intent:   in,
			Text:     i18n.Response(i18n.KeyGoodbye, lang, nil),
			FollowUp: false,
			Actions:  []string{},
		}

	default:
		return Response{
			Intent:   intent.Unknown,
			Text:     i18n.Response(i18n.KeyNotUnderstood, lang, nil),
			FollowUp: true,
			Actions:  actions(intent.Help, intent.ListSchemes),
		}
	}
}
