package http

import (
	"errors"
	"strings"
	"testing"
)

func TestHex32Validation(t *testing.T) {
	type P struct {
		OwnerID string `json:"owner_id" validate:"hex32"`
	}
	cv := NewValidator()

	if err := cv.Validate(P{OwnerID: strings.Repeat("a", 32)}); err != nil {
		t.Fatalf("expected valid hex32, got err: %v", err)
	}

	for _, s := range []string{
		"",                                  // empty
		strings.Repeat("A", 32),             // uppercase
		"deadbeef",                          // too short
		strings.Repeat("g", 32),             // non-hex char
		"3f9a6a1b3d544fbe8b3a6b3e8d6b2c8",   // 31 chars
		"3f9a6a1b3d544fbe8b3a6b3e8d6b2c88x", // 33 with extra
	} {
		err := cv.Validate(P{OwnerID: s})
		if err == nil {
			t.Fatalf("expected error for %q", s)
		}
		if fe := ToFieldErrors(err); !containsFieldMsg(fe, "owner_id", "32-char lowercase hex") {
			t.Fatalf("expected hex32 message for %q, got: %+v", s, fe)
		}
	}
}

func TestCurrencyValidation(t *testing.T) {
	type P struct {
		CurrencyCode string `json:"currency_code" validate:"required,iso4217"`
	}
	cv := NewValidator()

	for _, c := range []string{"IDR", "USD", "EUR", "JPY"} {
		if err := cv.Validate(P{CurrencyCode: c}); err != nil {
			t.Fatalf("expected %s valid, got %v", c, err)
		}
	}
	for _, c := range []string{"idr", "ZZZ", "US", "RUPIAH"} {
		err := cv.Validate(P{CurrencyCode: c})
		if err == nil {
			t.Fatalf("expected error for %q", c)
		}
		if fe := ToFieldErrors(err); !containsFieldMsg(fe, "currency_code", "ISO 4217") {
			t.Fatalf("expected iso4217 message for %q, got %+v", c, fe)
		}
	}
	if fe := ToFieldErrors(cv.Validate(P{})); !containsFieldMsg(fe, "currency_code", "is required") {
		t.Fatalf("expected required message, got %+v", fe)
	}
}

func TestDateValidation(t *testing.T) {
	type P struct {
		ReceivedAt string `json:"received_at" validate:"omitempty,datetime=2006-01-02"`
	}
	cv := NewValidator()

	for _, d := range []string{"", "2024-02-29", "2025-12-31"} {
		if err := cv.Validate(P{ReceivedAt: d}); err != nil {
			t.Fatalf("expected %q valid, got %v", d, err)
		}
	}
	for _, d := range []string{"2023-02-29", "2024-1-5", "2024-01-05T00:00:00Z"} {
		err := cv.Validate(P{ReceivedAt: d})
		if err == nil {
			t.Fatalf("expected error for %q", d)
		}
		if fe := ToFieldErrors(err); !containsFieldMsg(fe, "received_at", "YYYY-MM-DD") {
			t.Fatalf("expected date message for %q, got %+v", d, fe)
		}
	}
}

func TestRequiredAndBoundsMapping(t *testing.T) {
	type P struct {
		Name   string `json:"name" validate:"required"`
		Amount int64  `json:"amount" validate:"gt=0"`
		Terms  int    `json:"terms" validate:"gte=1,lte=360"`
		Other  int    `validate:"oneof=1 2"`
	}
	cv := NewValidator()

	err := cv.Validate(P{Name: "", Amount: 0, Terms: 361, Other: 3})
	if err == nil {
		t.Fatalf("expected validation errors")
	}
	fe := ToFieldErrors(err)

	if !containsFieldMsg(fe, "name", "is required") {
		t.Fatalf("missing 'is required' for name: %+v", fe)
	}
	if !containsFieldMsg(fe, "amount", "greater than 0") {
		t.Fatalf("missing gt message for amount: %+v", fe)
	}
	if !containsFieldMsg(fe, "terms", "less than or equal to 360") {
		t.Fatalf("missing lte message for terms: %+v", fe)
	}
	// no json tag: falls back to the Go field name and the generic message
	if !containsFieldMsg(fe, "Other", "oneof validation failed") {
		t.Fatalf("missing fallback message: %+v", fe)
	}
}

func TestToFieldErrors_NonValidation(t *testing.T) {
	fe := ToFieldErrors(errors.New("boom"))
	if len(fe) != 1 {
		t.Fatalf("expected 1 field error, got %d", len(fe))
	}
	if fe[0].Field != "_" || fe[0].Message != "boom" {
		t.Fatalf("unexpected mapping: %+v", fe[0])
	}
}
