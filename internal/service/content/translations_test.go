package content

import (
	"reflect"
	"testing"

	"farepass-service/internal/domain/content"
)

func TestPlanTranslationSaveDefaultLocaleAlwaysWritten(t *testing.T) {
	t.Run("default locale present", func(t *testing.T) {
		ops := PlanTranslationSave(KindFAQ, map[string]content.TranslationBody{
			"en": {Question: "What is a dummy ticket?", Answer: "A verifiable reservation."},
		})
		if len(ops) != 1 {
			t.Fatalf("expected 1 op, got %d", len(ops))
		}
		if ops[0].Locale != "en" || ops[0].Action != ActionUpsert {
			t.Errorf("expected en upsert, got %s %s", ops[0].Locale, ops[0].Action)
		}
	})

	t.Run("default locale absent still written", func(t *testing.T) {
		ops := PlanTranslationSave(KindFAQ, map[string]content.TranslationBody{})
		if len(ops) != 1 {
			t.Fatalf("expected 1 op, got %d", len(ops))
		}
		if ops[0].Locale != "en" || ops[0].Action != ActionUpsert {
			t.Errorf("expected en upsert, got %s %s", ops[0].Locale, ops[0].Action)
		}
	})
}

func TestPlanTranslationSaveIncompleteLocaleDeleted(t *testing.T) {
	// Filled default locale plus an empty other locale: the default is
	// written, the empty locale is deleted, not written.
	ops := PlanTranslationSave(KindFAQ, map[string]content.TranslationBody{
		"en": {Question: "How fast is delivery?", Answer: "Within the hour."},
		"ar": {},
	})

	if len(ops) != 2 {
		t.Fatalf("expected 2 ops, got %d", len(ops))
	}
	if ops[0].Locale != "en" || ops[0].Action != ActionUpsert {
		t.Errorf("expected en upsert first, got %s %s", ops[0].Locale, ops[0].Action)
	}
	if ops[1].Locale != "ar" || ops[1].Action != ActionDelete {
		t.Errorf("expected ar delete, got %s %s", ops[1].Locale, ops[1].Action)
	}
}

func TestPlanTranslationSaveHalfFilledLocaleDeleted(t *testing.T) {
	tests := []struct {
		name string
		kind ContentKind
		body content.TranslationBody
		want TranslationAction
	}{
		{"faq question only", KindFAQ, content.TranslationBody{Question: "q"}, ActionDelete},
		{"faq answer only", KindFAQ, content.TranslationBody{Answer: "a"}, ActionDelete},
		{"faq whitespace answer", KindFAQ, content.TranslationBody{Question: "q", Answer: "   "}, ActionDelete},
		{"faq complete", KindFAQ, content.TranslationBody{Question: "q", Answer: "a"}, ActionUpsert},
		{"page title only", KindPage, content.TranslationBody{Title: "t"}, ActionDelete},
		{"page complete", KindPage, content.TranslationBody{Title: "t", Content: "c"}, ActionUpsert},
		{"page complete without steps", KindPage, content.TranslationBody{Title: "t", Content: "c", Steps: nil}, ActionUpsert},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ops := PlanTranslationSave(tt.kind, map[string]content.TranslationBody{
				"en": {Question: "q", Answer: "a", Title: "t", Content: "c"},
				"fr": tt.body,
			})
			if len(ops) != 2 {
				t.Fatalf("expected 2 ops, got %d", len(ops))
			}
			if ops[1].Action != tt.want {
				t.Errorf("fr: expected %s, got %s", tt.want, ops[1].Action)
			}
		})
	}
}

func TestPlanTranslationSaveDeterministicOrder(t *testing.T) {
	ops := PlanTranslationSave(KindPage, map[string]content.TranslationBody{
		"sw": {Title: "t", Content: "c"},
		"fr": {Title: "t", Content: "c"},
		"en": {Title: "t", Content: "c"},
		"ar": {},
	})

	got := make([]string, len(ops))
	for i, op := range ops {
		got[i] = op.Locale
	}
	want := []string{"en", "ar", "fr", "sw"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected order %v, got %v", want, got)
	}
}

func TestEnsureStepsPlaceholder(t *testing.T) {
	if got := EnsureStepsPlaceholder(nil); len(got) != 1 || got[0] != "" {
		t.Errorf("expected single empty placeholder, got %v", got)
	}
	steps := []string{"Pick a route", "Pay"}
	if got := EnsureStepsPlaceholder(steps); !reflect.DeepEqual(got, steps) {
		t.Errorf("expected steps unchanged, got %v", got)
	}
}
