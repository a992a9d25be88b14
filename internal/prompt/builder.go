// Package prompt builds the natural-language instruction text sent to the
// generation model. All rules about what the generated README must contain
// live here; the model produces the actual markdown.
package prompt

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/amarzeus/readme-studio/internal/prompts"
	"github.com/amarzeus/readme-studio/internal/statscard"
	"github.com/amarzeus/readme-studio/internal/types"
)

const promptFile = "readme.json"

// Build assembles the full instruction text for a profile. It is a pure
// function: the same profile always yields the same prompt, and it cannot
// fail; empty fields simply gate their sections off.
func Build(profile *types.Profile) string {
	var sb strings.Builder

	sb.WriteString(prompts.Format(prompts.MustGet(promptFile, "preamble"), map[string]string{
		"ProfileJSON": profileJSON(profile),
	}))

	sb.WriteString("\n**INSTRUCTIONS:**\n\n")

	n := 0
	rule := func(text string) {
		n++
		sb.WriteString(fmt.Sprintf("%d.  %s\n", n, text))
	}

	rule(toneDirective(profile.GenerationStyle))

	if profile.ProfilePicture != "" {
		rule(prompts.Format(prompts.MustGet(promptFile, "rule_picture"), map[string]string{
			"PictureSrc":   profile.ProfilePicture,
			"PictureStyle": StyleDeclarator(profile.ProfilePictureStyle),
		}))
	}

	rule(prompts.Format(prompts.MustGet(promptFile, "rule_header"), map[string]string{
		"Name": profile.Name,
	}))

	rule(prompts.MustGet(promptFile, "rule_about"))

	rule(prompts.Format(prompts.MustGet(promptFile, "rule_skills"), map[string]string{
		"SkillList": skillList(profile),
	}))

	if profile.HasProjects() {
		rule(prompts.Format(prompts.MustGet(promptFile, "rule_projects"), map[string]string{
			"ProjectList": projectList(profile.Projects),
		}))
	}

	if profile.HasEducation() {
		rule(prompts.Format(prompts.MustGet(promptFile, "rule_education"), map[string]string{
			"University":      profile.Education.University,
			"EducationDetail": educationDetail(profile.Education),
		}))
	}

	rule(prompts.Format(prompts.MustGet(promptFile, "rule_connect"), map[string]string{
		"ConnectList": connectList(profile),
	}))

	if profile.GithubStats.Show {
		rule(prompts.Format(prompts.MustGet(promptFile, "rule_stats"), map[string]string{
			"StatsURL":    statscard.StatsURL(profile.GithubUsername, profile.GithubStats),
			"StreakURL":   statscard.StreakURL(profile.GithubUsername, profile.GithubStats),
			"TopLangsURL": statscard.TopLangsURL(profile.GithubUsername, profile.GithubStats),
		}))
	}

	rule(prompts.MustGet(promptFile, "rule_output"))

	return sb.String()
}

// toneDirective resolves the generation style to one of exactly three fixed
// directives. Unknown styles fall back to balanced.
func toneDirective(style types.GenerationStyle) string {
	switch style.Normalize() {
	case types.StyleCreative:
		return prompts.MustGet(promptFile, "tone_creative")
	case types.StylePrecise:
		return prompts.MustGet(promptFile, "tone_precise")
	default:
		return prompts.MustGet(promptFile, "tone_balanced")
	}
}

// profileJSON serializes the profile as indented JSON for the model's
// reference. Marshalling a Profile cannot fail, but the fallback keeps the
// builder total.
func profileJSON(profile *types.Profile) string {
	data, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(data)
}

func skillList(profile *types.Profile) string {
	tokens := profile.SkillTokens()
	if len(tokens) == 0 {
		return "(none listed; omit the badges, keep the section header)"
	}
	quoted := make([]string, len(tokens))
	for i, t := range tokens {
		quoted[i] = "'" + t + "'"
	}
	return strings.Join(quoted, ", ")
}

func projectList(projects []types.Project) string {
	var sb strings.Builder
	for _, p := range projects {
		sb.WriteString("    *   ")
		sb.WriteString(p.Name)
		if p.URL != "" {
			sb.WriteString(" - link: " + p.URL)
		}
		if p.Image != "" {
			sb.WriteString(" - image: " + p.Image)
		}
		if p.Description != "" {
			sb.WriteString(" - description: " + p.Description)
		}
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

func educationDetail(edu *types.Education) string {
	var sb strings.Builder
	if edu.Degree != "" {
		sb.WriteString(", " + edu.Degree)
	}
	if edu.GraduationYear != "" {
		sb.WriteString(" (class of " + edu.GraduationYear + ")")
	}
	return sb.String()
}

// connectList lists only the social fields that are non-empty.
func connectList(profile *types.Profile) string {
	var lines []string
	add := func(label, url string) {
		lines = append(lines, fmt.Sprintf("    *   [%s](%s)", label, url))
	}

	if profile.GithubUsername != "" {
		add("GitHub", "https://github.com/"+profile.GithubUsername)
	}
	if profile.LinkedinUsername != "" {
		add("LinkedIn", "https://linkedin.com/in/"+profile.LinkedinUsername)
	}
	if profile.TwitterUsername != "" {
		add("Twitter", "https://twitter.com/"+profile.TwitterUsername)
	}
	if profile.Website != "" {
		add("Website", profile.Website)
	}
	if profile.PortfolioURL != "" {
		add("Portfolio", profile.PortfolioURL)
	}
	if profile.BlogURL != "" {
		add("Blog", profile.BlogURL)
	}

	if len(lines) == 0 {
		return "    *   (no social links provided; omit this section entirely)"
	}
	return strings.Join(lines, "\n")
}
