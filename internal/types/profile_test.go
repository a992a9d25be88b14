package types

import (
	"reflect"
	"testing"
)

func TestSkillTokens(t *testing.T) {
	tests := []struct {
		name   string
		skills string
		want   []string
	}{
		{"simple list", "React, Node.js", []string{"React", "Node.js"}},
		{"extra whitespace", "  Go ,  Rust  ", []string{"Go", "Rust"}},
		{"empty", "", nil},
		{"only commas", ", ,", nil},
		{"duplicates kept literally", "Go, Go", []string{"Go", "Go"}},
		{"internal periods preserved", "Node.js, Vue.js", []string{"Node.js", "Vue.js"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Profile{Skills: tt.skills}
			if got := p.SkillTokens(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SkillTokens() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGenerationStyleNormalize(t *testing.T) {
	tests := []struct {
		in   GenerationStyle
		want GenerationStyle
	}{
		{StyleCreative, StyleCreative},
		{StyleBalanced, StyleBalanced},
		{StylePrecise, StylePrecise},
		{"Creative", StyleCreative},
		{"PRECISE", StylePrecise},
		{"", StyleBalanced},
		{"whimsical", StyleBalanced},
	}
	for _, tt := range tests {
		if got := tt.in.Normalize(); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestHasEducation(t *testing.T) {
	p := &Profile{}
	if p.HasEducation() {
		t.Error("nil education reported present")
	}
	p.Education = &Education{University: "  "}
	if p.HasEducation() {
		t.Error("whitespace university reported present")
	}
	p.Education.University = "MIT"
	if !p.HasEducation() {
		t.Error("non-empty university reported absent")
	}
}

func TestURLWarnings(t *testing.T) {
	// Empty URL fields are always valid.
	p := &Profile{Name: "a"}
	if w := p.URLWarnings(); len(w) != 0 {
		t.Errorf("empty profile produced warnings: %v", w)
	}

	p = &Profile{
		Website:      "https://example.com",
		PortfolioURL: "http://example.org/portfolio",
	}
	if w := p.URLWarnings(); len(w) != 0 {
		t.Errorf("valid URLs produced warnings: %v", w)
	}

	p = &Profile{
		Website: "ftp://example.com",
		BlogURL: "not a url",
		Projects: []Project{
			{Name: "x", URL: "javascript:alert(1)"},
		},
	}
	w := p.URLWarnings()
	if len(w) != 3 {
		t.Errorf("expected 3 warnings, got %v", w)
	}
}
