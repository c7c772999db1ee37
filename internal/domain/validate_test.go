package domain

import (
	"errors"
	"testing"
)

func TestValidateName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{name: "latin letters", input: "Cafe Luna", valid: true},
		{name: "cyrillic letters", input: "Кафе Луна", valid: true},
		{name: "mixed scripts", input: "Cafe Луна", valid: true},
		{name: "apostrophe", input: "O'Brien's", valid: true},
		{name: "multiple spaces", input: "La  Casa  Verde", valid: true},
		{name: "empty", input: "", valid: false},
		{name: "digits", input: "Cafe 24", valid: false},
		{name: "punctuation", input: "Cafe, Luna", valid: false},
		{name: "hyphen", input: "Co-Work", valid: false},
		{name: "emoji", input: "Cafe 🌙", valid: false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := ValidateName(tt.input)
			if tt.valid && err != nil {
				t.Errorf("ValidateName(%q) = %v, want nil", tt.input, err)
			}
			if !tt.valid {
				if err == nil {
					t.Fatalf("ValidateName(%q) = nil, want error", tt.input)
				}
				if !errors.Is(err, ErrValidation) {
					t.Errorf("error should unwrap to ErrValidation, got %v", err)
				}
			}
		})
	}
}

func TestValidateCategory(t *testing.T) {
	t.Parallel()

	for _, c := range Categories() {
		got, err := ValidateCategory(string(c))
		if err != nil {
			t.Errorf("ValidateCategory(%q) = %v, want nil", c, err)
		}
		if got != c {
			t.Errorf("ValidateCategory(%q) = %q, want %q", c, got, c)
		}
	}

	for _, bad := range []string{"", "Bakery", "places to eat", "Adventure"} {
		if _, err := ValidateCategory(bad); err == nil {
			t.Errorf("ValidateCategory(%q) = nil, want error", bad)
		}
	}
}

func TestValidateMapLink(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{name: "valid short link", input: "https://maps.app.goo.gl/AbC123xyz", valid: true},
		{name: "http scheme", input: "http://maps.app.goo.gl/AbC123", valid: false},
		{name: "long form url", input: "https://www.google.com/maps/place/x", valid: false},
		{name: "trailing slash", input: "https://maps.app.goo.gl/AbC123/", valid: false},
		{name: "empty id", input: "https://maps.app.goo.gl/", valid: false},
		{name: "empty", input: "", valid: false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := ValidateMapLink(tt.input)
			if (err == nil) != tt.valid {
				t.Errorf("ValidateMapLink(%q) = %v, want valid=%v", tt.input, err, tt.valid)
			}
		})
	}
}

func TestValidatePhotos(t *testing.T) {
	t.Parallel()

	if err := ValidatePhotos(nil); err == nil {
		t.Error("empty list should be invalid")
	}
	if err := ValidatePhotos([]string{"https://files.example/a.png", "  "}); err == nil {
		t.Error("blank element should be invalid")
	}
	if err := ValidatePhotos([]string{"https://files.example/a.png"}); err != nil {
		t.Errorf("valid list rejected: %v", err)
	}
}

func TestNormalizePhone(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "bare 8 digits", input: "88887777", want: "+50688887777"},
		{name: "8 digits with separators", input: "8888-77-77", want: "+50688887777"},
		{name: "11 digits with country code", input: "50688887777", want: "+50688887777"},
		{name: "formatted international", input: "+506 8888 7777", want: "+50688887777"},
		{name: "other length passes through", input: "12345", want: "12345"},
		{name: "11 digits wrong prefix passes through", input: "12345678901", want: "12345678901"},
		{name: "letters stripped", input: "tel: 88887777", want: "+50688887777"},
		{name: "empty", input: "", want: ""},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := NormalizePhone(tt.input); got != tt.want {
				t.Errorf("NormalizePhone(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// Normalization stabilizes after one pass for 8-digit and correctly prefixed
// 11-digit inputs.
func TestNormalizePhone_Stabilizes(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"88887777", "50688887777", "+50688887777"} {
		once := NormalizePhone(input)
		twice := NormalizePhone(once)
		if once != twice {
			t.Errorf("NormalizePhone not stable for %q: first %q, second %q", input, once, twice)
		}
	}
}
