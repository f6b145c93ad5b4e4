package http

import (
	"strings"
	"testing"
)

func containsFieldMsg(list []FieldError, field, substr string) bool {
	for _, e := range list {
		if e.Field == field && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}

type dec2Probe struct {
	Value string `validate:"required,dec2"`
}

type hex32Probe struct {
	ID string `validate:"required,hex32"`
}

func TestDec2Validator(t *testing.T) {
	cv := NewValidator()
	cases := []struct {
		in string
		ok bool
	}{
		{"25000", true},
		{"25000.0", true},
		{"25000.00", true},
		{"0.10", true},
		{"-4.25", false}, // money and rates are never negative
		{"-25000.00", false},
		{"25000.001", false},
		{"2,500", false},
		{"abc", false},
		{"25.", false},
	}
	for _, tc := range cases {
		err := cv.Validate(&dec2Probe{Value: tc.in})
		if tc.ok && err != nil {
			t.Errorf("%q: unexpected error %v", tc.in, err)
		}
		if !tc.ok && err == nil {
			t.Errorf("%q: expected validation failure", tc.in)
		}
	}
}

func TestHex32Validator(t *testing.T) {
	cv := NewValidator()
	if err := cv.Validate(&hex32Probe{ID: "0123456789abcdef0123456789abcdef"}); err != nil {
		t.Fatalf("valid id rejected: %v", err)
	}
	for _, bad := range []string{"short", "0123456789ABCDEF0123456789ABCDEF", "0123456789abcdef0123456789abcdeg"} {
		if err := cv.Validate(&hex32Probe{ID: bad}); err == nil {
			t.Errorf("%q: expected validation failure", bad)
		}
	}
}

func TestToFieldErrors_Messages(t *testing.T) {
	cv := NewValidator()
	err := cv.Validate(&dec2Probe{Value: "1.234"})
	if err == nil {
		t.Fatal("expected error")
	}
	details := ToFieldErrors(err)
	if !containsFieldMsg(details, "Value", "decimal") {
		t.Fatalf("unexpected details: %+v", details)
	}
}
