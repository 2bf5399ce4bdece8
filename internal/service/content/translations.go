// internal/service/content/translations.go
package content

import (
	"sort"
	"strings"

	"farepass-service/internal/domain/content"
)

// ContentKind selects which TranslationBody fields a locale must fill to be
// considered complete.
type ContentKind int

const (
	KindFAQ ContentKind = iota // question + answer
	KindPage                   // title + content
)

type TranslationAction string

const (
	ActionUpsert TranslationAction = "upsert"
	ActionDelete TranslationAction = "delete"
)

// TranslationOp is one step of a translation save.
type TranslationOp struct {
	Locale string
	Action TranslationAction
	Body   content.TranslationBody
}

// PlanTranslationSave decides, per locale, whether a translation row is
// written or removed. The default locale is always written, even when empty,
// so the primary language never loses its row. Every other locale is written
// only when complete; an incomplete locale deletes any row it may have had,
// so half-empty translations never persist.
//
// Ops come back with the default locale first and the rest sorted by code,
// which keeps save order deterministic.
func PlanTranslationSave(kind ContentKind, translations map[string]content.TranslationBody) []TranslationOp {
	ops := make([]TranslationOp, 0, len(translations)+1)

	body, ok := translations[content.DefaultLocale]
	if !ok {
		body = content.TranslationBody{}
	}
	ops = append(ops, TranslationOp{
		Locale: content.DefaultLocale,
		Action: ActionUpsert,
		Body:   body,
	})

	locales := make([]string, 0, len(translations))
	for locale := range translations {
		if locale == content.DefaultLocale {
			continue
		}
		locales = append(locales, locale)
	}
	sort.Strings(locales)

	for _, locale := range locales {
		body := translations[locale]
		op := TranslationOp{Locale: locale, Body: body}
		if isComplete(kind, body) {
			op.Action = ActionUpsert
		} else {
			op.Action = ActionDelete
		}
		ops = append(ops, op)
	}

	return ops
}

func isComplete(kind ContentKind, body content.TranslationBody) bool {
	switch kind {
	case KindFAQ:
		return strings.TrimSpace(body.Question) != "" && strings.TrimSpace(body.Answer) != ""
	default:
		return strings.TrimSpace(body.Title) != "" && strings.TrimSpace(body.Content) != ""
	}
}

// EnsureStepsPlaceholder guarantees at least one entry so step-list editors
// never collapse to an empty form.
func EnsureStepsPlaceholder(steps []string) []string {
	if len(steps) == 0 {
		return []string{""}
	}
	return steps
}
