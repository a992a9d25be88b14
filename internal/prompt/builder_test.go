package prompt

import (
	"strings"
	"testing"

	"github.com/amarzeus/readme-studio/internal/types"
)

func baseProfile() *types.Profile {
	return &types.Profile{
		Name:             "Amar Kumar",
		Bio:              "A passionate full-stack developer from India.",
		Skills:           "React, TypeScript, Node.js",
		GithubUsername:   "amarzeus",
		LinkedinUsername: "amar-kumar-profile",
		TwitterUsername:  "amar_zeus",
		Website:          "https://portfolio.example.com",
	}
}

func TestBuild_StatsGating(t *testing.T) {
	p := baseProfile()
	p.GithubStats.Show = false

	got := Build(p)
	for _, host := range []string{"github-readme-stats.vercel.app", "github-readme-streak-stats"} {
		if strings.Contains(got, host) {
			t.Errorf("prompt references %s although stats are disabled", host)
		}
	}

	p.GithubStats.Show = true
	got = Build(p)
	for _, want := range []string{
		"https://github-readme-stats.vercel.app/api?",
		"https://github-readme-streak-stats.herokuapp.com/?",
		"https://github-readme-stats.vercel.app/api/top-langs/?",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("prompt missing widget URL %q", want)
		}
	}
}

func TestBuild_EducationGating(t *testing.T) {
	p := baseProfile()

	if got := Build(p); strings.Contains(got, "Education") {
		t.Error("education rule emitted without a university")
	}

	p.Education = &types.Education{University: "   "}
	if got := Build(p); strings.Contains(got, "Education") {
		t.Error("education rule emitted for whitespace-only university")
	}

	p.Education = &types.Education{University: "IIT Delhi", Degree: "B.Tech", GraduationYear: "2020"}
	got := Build(p)
	if !strings.Contains(got, "IIT Delhi") {
		t.Error("education rule missing university name")
	}
	if !strings.Contains(got, "B.Tech") || !strings.Contains(got, "2020") {
		t.Error("education rule missing degree or graduation year")
	}
}

func TestBuild_SkillTokens(t *testing.T) {
	p := baseProfile()
	p.Skills = "React, Node.js"

	got := Build(p)
	if !strings.Contains(got, "'React'") {
		t.Error("prompt missing React badge subject")
	}
	// Node.js must survive as one literal token, not split on its period.
	if !strings.Contains(got, "'Node.js'") {
		t.Error("prompt missing literal Node.js badge subject")
	}
	if strings.Contains(got, "'Node'") && !strings.Contains(got, "'Node.js'") {
		t.Error("Node.js was split on its internal period")
	}
}

func TestBuild_ProjectsGating(t *testing.T) {
	p := baseProfile()

	if got := Build(p); strings.Contains(got, "Projects") {
		t.Error("projects rule emitted for empty project list")
	}

	p.Projects = []types.Project{
		{Name: "readme-studio", URL: "https://github.com/amarzeus/readme-studio", Description: "README generator"},
	}
	got := Build(p)
	if !strings.Contains(got, "readme-studio") || !strings.Contains(got, "README generator") {
		t.Error("projects rule missing project fields")
	}
}

func TestBuild_PictureGating(t *testing.T) {
	p := baseProfile()

	if got := Build(p); strings.Contains(got, "Profile Picture") {
		t.Error("picture rule emitted without a picture")
	}

	p.ProfilePicture = "data:image/png;base64,AAAA"
	p.ProfilePictureStyle = &types.ProfilePictureStyle{Shape: types.ShapeCircular}
	got := Build(p)
	if !strings.Contains(got, `src="data:image/png;base64,AAAA"`) {
		t.Error("picture rule missing image source")
	}
	if !strings.Contains(got, "border-radius: 50%;") {
		t.Error("picture rule missing the style declarator")
	}
}

func TestBuild_ConnectListsOnlyNonEmpty(t *testing.T) {
	p := baseProfile()
	p.TwitterUsername = ""
	p.PortfolioURL = ""
	p.BlogURL = ""

	got := Build(p)
	if strings.Contains(got, "twitter.com") {
		t.Error("connect rule lists an empty twitter username")
	}
	if !strings.Contains(got, "https://linkedin.com/in/amar-kumar-profile") {
		t.Error("connect rule missing linkedin link")
	}
	if !strings.Contains(got, "https://github.com/amarzeus") {
		t.Error("connect rule missing github link")
	}
}

func TestBuild_ToneDirectives(t *testing.T) {
	tests := []struct {
		name  string
		style types.GenerationStyle
		want  string
	}{
		{"creative", types.StyleCreative, "generously"},
		{"balanced", types.StyleBalanced, "in moderation"},
		{"precise", types.StylePrecise, "Avoid emojis"},
		{"unset defaults to balanced", "", "in moderation"},
		{"unrecognized defaults to balanced", "whimsical", "in moderation"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := baseProfile()
			p.GenerationStyle = tt.style
			if got := Build(p); !strings.Contains(got, tt.want) {
				t.Errorf("prompt for style %q missing tone marker %q", tt.style, tt.want)
			}
		})
	}
}

func TestBuild_Deterministic(t *testing.T) {
	p := baseProfile()
	p.GithubStats.Show = true
	if Build(p) != Build(p) {
		t.Error("Build is not deterministic for identical profiles")
	}
}

func TestBuild_ClosingConstraint(t *testing.T) {
	got := Build(baseProfile())
	if !strings.Contains(got, "Do not wrap it in markdown code fences") {
		t.Error("prompt missing the no-code-fence constraint")
	}
	if !strings.Contains(got, "single block of valid Markdown") {
		t.Error("prompt missing the plain-markdown constraint")
	}
}
