package schemas

import (
	"errors"
	"testing"
)

func TestValidateProfileJSON_Valid(t *testing.T) {
	payloads := []string{
		`{}`,
		`{"name": "Amar", "skills": "Go, React"}`,
		`{"github_stats": {"show": true, "hidden_stats": ["issues"]}}`,
		`{"profile_picture_style": {"shape": "circular", "has_border": true, "border_color": "#112233"}}`,
		`{"projects": [{"name": "x", "url": "https://example.com"}]}`,
		`{"education": {"university": "MIT", "degree": "BS", "graduation_year": "2020"}}`,
	}

	for _, payload := range payloads {
		if err := ValidateProfileJSON([]byte(payload)); err != nil {
			t.Errorf("payload %s rejected: %v", payload, err)
		}
	}
}

func TestValidateProfileJSON_Invalid(t *testing.T) {
	payloads := []string{
		`{"name": 42}`,
		`{"github_stats": {"show": "yes"}}`,
		`{"profile_picture_style": {"shape": "hexagonal"}}`,
		`{"projects": [{"url": "https://example.com"}]}`,
		`{"unknown_field": true}`,
	}

	for _, payload := range payloads {
		err := ValidateProfileJSON([]byte(payload))
		if err == nil {
			t.Errorf("payload %s accepted", payload)
			continue
		}
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("payload %s: expected *ValidationError, got %T", payload, err)
			continue
		}
		if len(verr.Errors) == 0 {
			t.Errorf("payload %s: validation error without field details", payload)
		}
	}
}

func TestValidationError_Message(t *testing.T) {
	err := ValidateProfileJSON([]byte(`{"name": 42}`))
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if msg := verr.Error(); msg == "" {
		t.Error("empty error message")
	}
}
