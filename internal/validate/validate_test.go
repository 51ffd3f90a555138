package validate

import (
	"strings"
	"testing"
)

func floatPtr(v float64) *float64 { return &v }

func TestRequired(t *testing.T) {
	rule := Rule{Required: true}
	if err := rule.Check("Name", "   ", false); err == nil {
		t.Fatalf("blank required field must fail")
	}
	if err := rule.Check("Name", "Rose", false); err != nil {
		t.Fatalf("expected pass, got %v", err)
	}
}

func TestOptionalBlankPassesEveryRule(t *testing.T) {
	rule := Rule{MinLen: 5, Pattern: "^[a-z]+$", Positive: true}
	if err := rule.Check("Caption", "", true); err != nil {
		t.Fatalf("optional blank must pass, got %v", err)
	}
}

func TestMinLenAlwaysRejectsShortValues(t *testing.T) {
	rule := Rule{MinLen: 3}
	for _, value := range []string{"a", "ab", " ab "} {
		if err := rule.Check("Title", value, false); err == nil {
			t.Fatalf("value %q shorter than min must yield an error", value)
		}
	}
	if err := rule.Check("Title", "abc", false); err != nil {
		t.Fatalf("value meeting all rules must pass, got %v", err)
	}
}

func TestMaxLen(t *testing.T) {
	rule := Rule{MaxLen: 4}
	if err := rule.Check("Title", "hello", false); err == nil {
		t.Fatalf("value over max must fail")
	}
	if err := rule.Check("Title", "hell", false); err != nil {
		t.Fatalf("expected pass, got %v", err)
	}
}

func TestLengthCountsRunes(t *testing.T) {
	rule := Rule{MinLen: 2, MaxLen: 3}
	if err := rule.Check("Name", "日本", false); err != nil {
		t.Fatalf("two runes must satisfy min_len 2, got %v", err)
	}
}

func TestPattern(t *testing.T) {
	rule := Rule{Pattern: `^[A-Za-z ]+$`}
	if err := rule.Check("Name", "Snake Plant", false); err != nil {
		t.Fatalf("expected pass, got %v", err)
	}
	if err := rule.Check("Name", "Plant #7", false); err == nil {
		t.Fatalf("character-set violation must fail")
	}
}

func TestNumericRules(t *testing.T) {
	rule := Rule{Positive: true, Min: floatPtr(1), Max: floatPtr(100)}
	if err := rule.Check("Price", "abc", true); err == nil {
		t.Fatalf("non-numeric value must fail")
	}
	if err := rule.Check("Price", "0", true); err == nil {
		t.Fatalf("zero must fail a positivity rule")
	}
	if err := rule.Check("Price", "250", true); err == nil {
		t.Fatalf("value over max must fail")
	}
	if err := rule.Check("Price", "10.99", true); err != nil {
		t.Fatalf("expected pass, got %v", err)
	}
}

func TestRangeRulesIgnoredForTextFields(t *testing.T) {
	rule := Rule{Positive: true}
	if err := rule.Check("Name", "not a number", false); err != nil {
		t.Fatalf("numeric rules must not apply to text fields, got %v", err)
	}
}

func TestErrorMessagesNameTheField(t *testing.T) {
	rule := Rule{Required: true}
	err := rule.Check("Dish", "", false)
	if err == nil || !strings.Contains(err.Error(), "Dish") {
		t.Fatalf("error must name the field label, got %v", err)
	}
}

func TestRuleValidate(t *testing.T) {
	if err := (Rule{MinLen: 5, MaxLen: 2}).Validate(); err == nil {
		t.Fatalf("min over max must be rejected")
	}
	if err := (Rule{Pattern: "("}).Validate(); err == nil {
		t.Fatalf("malformed pattern must be rejected")
	}
	if err := (Rule{Min: floatPtr(10), Max: floatPtr(1)}).Validate(); err == nil {
		t.Fatalf("min over max bound must be rejected")
	}
	if err := (Rule{Required: true, MinLen: 2, MaxLen: 10}).Validate(); err != nil {
		t.Fatalf("well-formed rule must validate, got %v", err)
	}
}
