// Package types provides type definitions for structured data used throughout the readme-studio system.
package types

import (
	"errors"
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"
)

// GenerationStyle selects the tone instructions injected into the prompt.
type GenerationStyle string

// Generation style constants
const (
	StyleCreative GenerationStyle = "creative"
	StyleBalanced GenerationStyle = "balanced"
	StylePrecise  GenerationStyle = "precise"
)

// Normalize maps unknown or empty styles to StyleBalanced.
func (s GenerationStyle) Normalize() GenerationStyle {
	switch GenerationStyle(strings.ToLower(string(s))) {
	case StyleCreative:
		return StyleCreative
	case StylePrecise:
		return StylePrecise
	default:
		return StyleBalanced
	}
}

// ShadowIntensity is the preset strength chosen for a profile picture shadow.
type ShadowIntensity string

// Shadow intensity tiers
const (
	ShadowSubtle ShadowIntensity = "subtle"
	ShadowMedium ShadowIntensity = "medium"
	ShadowStrong ShadowIntensity = "strong"
)

// PictureShape is the profile picture crop shape.
type PictureShape string

// Picture shapes
const (
	ShapeCircular PictureShape = "circular"
	ShapeRounded  PictureShape = "rounded"
)

// ProfilePictureStyle describes how the embedded profile picture should be styled.
// BorderColor and ShadowIntensity are only meaningful when the matching
// Has* toggle is true.
type ProfilePictureStyle struct {
	Shape           PictureShape    `json:"shape,omitempty"`
	HasBorder       bool            `json:"has_border,omitempty"`
	BorderColor     string          `json:"border_color,omitempty"`
	HasShadow       bool            `json:"has_shadow,omitempty"`
	ShadowIntensity ShadowIntensity `json:"shadow_intensity,omitempty"`
}

// Education holds the optional education section fields. The section is
// emitted only when University is non-empty.
type Education struct {
	University     string `json:"university,omitempty"`
	Degree         string `json:"degree,omitempty"`
	GraduationYear string `json:"graduation_year,omitempty"`
}

// Project is one entry in the ordered project list.
type Project struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	URL         string `json:"url,omitempty" validate:"omitempty,httpurl"`
	Image       string `json:"image,omitempty"`
}

// GithubStatsOptions configures the external stats widgets embedded in the
// generated README.
type GithubStatsOptions struct {
	Show              bool     `json:"show"`
	Theme             string   `json:"theme,omitempty"`
	HiddenStats       []string `json:"hidden_stats,omitempty"`
	TopLangsLayout    string   `json:"top_langs_layout,omitempty"`
	BorderRadius      string   `json:"border_radius,omitempty"`
	HideBorder        bool     `json:"hide_border,omitempty"`
	DisableAnimations bool     `json:"disable_animations,omitempty"`
}

// Profile is the single record driving a generation cycle. Every field is
// optional; an empty string means "omit this section".
type Profile struct {
	Name             string `json:"name,omitempty"`
	Bio              string `json:"bio,omitempty"`
	Skills           string `json:"skills,omitempty"` // comma-separated
	GithubUsername   string `json:"github_username,omitempty"`
	LinkedinUsername string `json:"linkedin_username,omitempty"`
	TwitterUsername  string `json:"twitter_username,omitempty"`
	Website          string `json:"website,omitempty" validate:"omitempty,httpurl"`
	PortfolioURL     string `json:"portfolio_url,omitempty" validate:"omitempty,httpurl"`
	BlogURL          string `json:"blog_url,omitempty" validate:"omitempty,httpurl"`

	ProfilePicture      string               `json:"profile_picture,omitempty"` // base64 data URL
	ProfilePictureStyle *ProfilePictureStyle `json:"profile_picture_style,omitempty"`

	Education *Education `json:"education,omitempty"`
	Projects  []Project  `json:"projects,omitempty" validate:"omitempty,dive"`

	GithubStats GithubStatsOptions `json:"github_stats"`

	GenerationStyle GenerationStyle `json:"generation_style,omitempty"`
}

// SkillTokens splits the comma-separated skills field into trimmed tokens.
// Tokens are taken literally apart from whitespace trimming; "Node.js" stays
// a single token.
func (p *Profile) SkillTokens() []string {
	if strings.TrimSpace(p.Skills) == "" {
		return nil
	}
	parts := strings.Split(p.Skills, ",")
	tokens := make([]string, 0, len(parts))
	for _, part := range parts {
		if t := strings.TrimSpace(part); t != "" {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

// HasEducation reports whether the education section should be emitted.
func (p *Profile) HasEducation() bool {
	return p.Education != nil && strings.TrimSpace(p.Education.University) != ""
}

// HasProjects reports whether the projects section should be emitted.
func (p *Profile) HasProjects() bool {
	return len(p.Projects) > 0
}

// validate is shared across Validate calls; validator instances cache
// struct metadata, so building one per call would re-parse tags each time.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// URL fields accept only http/https; empty is always valid via omitempty.
	_ = v.RegisterValidation("httpurl", func(fl validator.FieldLevel) bool {
		u, err := url.Parse(fl.Field().String())
		if err != nil {
			return false
		}
		return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
	})
	return v
}

// Validate checks URL-shaped fields against the http/https scheme rule.
// Invalid URLs are a warning condition for callers, not a hard failure;
// generation proceeds regardless.
func (p *Profile) Validate() error {
	return validate.Struct(p)
}

// URLWarnings returns one human-readable warning per invalid URL field.
// An empty slice means every URL-shaped field is empty or well-formed.
func (p *Profile) URLWarnings() []string {
	var warnings []string
	err := p.Validate()
	if err == nil {
		return warnings
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		warnings = append(warnings, err.Error())
		return warnings
	}
	for _, fe := range verrs {
		warnings = append(warnings, fe.Field()+" is not a valid http(s) URL")
	}
	return warnings
}
