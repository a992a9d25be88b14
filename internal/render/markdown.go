// Package render converts the model's raw markdown into an HTML fragment
// for inline preview. It is not a markdown parser: a fixed, ordered list of
// pattern substitution stages covers exactly the constructs the generated
// READMEs use. Rendering is pure and never fails; text that matches no rule
// degrades to a plain paragraph.
package render

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/amarzeus/readme-studio/internal/statscard"
)

// Inline styles applied by each stage. The preview renders the fragment
// directly, so styling travels with the markup.
const (
	h1Style = "font-size: 2em; font-weight: 700; margin: 0.67em 0; padding-bottom: 0.3em; border-bottom: 1px solid #30363d;"
	h2Style = "font-size: 1.5em; font-weight: 600; margin: 1em 0 0.5em; padding-bottom: 0.3em; border-bottom: 1px solid #30363d;"
	h3Style = "font-size: 1.25em; font-weight: 600; margin: 1em 0 0.5em;"

	blockImgStyle  = "width: 100%; margin: 0.75em 0;"
	inlineImgStyle = "height: 28px; margin: 0 4px 4px 0; display: inline-block;"

	paragraphStyle = "margin: 0.5em 0; line-height: 1.6;"
)

// platformIcons maps known link texts (lowercased) to the glyph prefixed to
// the rendered anchor. Unknown link texts render without an icon.
var platformIcons = map[string]string{
	"linkedin":  "💼",
	"twitter":   "🐦",
	"github":    "🐙",
	"website":   "🌐",
	"portfolio": "💻",
	"blog":      "✍️",
}

// stage is one ordered substitution step of the pipeline.
type stage struct {
	name  string
	apply func(string) string
}

var (
	h1Re    = regexp.MustCompile(`(?m)^# (.+)$`)
	h2Re    = regexp.MustCompile(`(?m)^## (.+)$`)
	h3Re    = regexp.MustCompile(`(?m)^### (.+)$`)
	imageRe = regexp.MustCompile(`!\[([^\]]*)\]\(([^)\s]+)\)`)
	linkRe  = regexp.MustCompile(`\[([^\]]+)\]\(([^)\s]+)\)`)
	boldRe  = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	paraRe  = regexp.MustCompile(`\n\s*\n`)
)

// stages lists the substitution steps in application order. Images run
// before links so the link pattern never consumes image syntax; everything
// else follows the markdown-to-HTML order headings, inline spans,
// paragraphs.
var stages = []stage{
	{"h1", func(s string) string {
		return h1Re.ReplaceAllString(s, `<h1 style="`+h1Style+`">$1</h1>`)
	}},
	{"h2", func(s string) string {
		return h2Re.ReplaceAllString(s, `<h2 style="`+h2Style+`">$1</h2>`)
	}},
	{"h3", func(s string) string {
		return h3Re.ReplaceAllString(s, `<h3 style="`+h3Style+`">$1</h3>`)
	}},
	{"images", renderImages},
	{"links", renderLinks},
	{"bold", func(s string) string {
		return boldRe.ReplaceAllString(s, `<strong>$1</strong>`)
	}},
	{"paragraphs", renderParagraphs},
}

// Render transforms raw markdown-like text into a preview HTML fragment.
// Identical input always yields identical output.
func Render(text string) (html string) {
	// The stages themselves cannot panic on any string, but the renderer's
	// contract is that it never raises: fall back to one paragraph.
	defer func() {
		if r := recover(); r != nil {
			html = wrapParagraph(text)
		}
	}()

	out := text
	for _, st := range stages {
		out = st.apply(out)
	}
	return out
}

// renderImages substitutes markdown image syntax. Images pointing at the
// stats widget services render at full block width; all other images (skill
// badges) render inline at fixed height.
func renderImages(s string) string {
	return imageRe.ReplaceAllStringFunc(s, func(match string) string {
		parts := imageRe.FindStringSubmatch(match)
		alt, src := parts[1], parts[2]
		style := inlineImgStyle
		if statscard.IsWidgetURL(src) {
			style = blockImgStyle
		}
		return fmt.Sprintf(`<img src=%q alt=%q style=%q />`, src, alt, style)
	})
}

// renderLinks substitutes markdown links with anchors opening in a new
// context. Known platform names get a fixed icon glyph prefix.
func renderLinks(s string) string {
	return linkRe.ReplaceAllStringFunc(s, func(match string) string {
		parts := linkRe.FindStringSubmatch(match)
		text, href := parts[1], parts[2]
		label := text
		if icon, ok := platformIcons[strings.ToLower(strings.TrimSpace(text))]; ok {
			label = icon + " " + text
		}
		return fmt.Sprintf(`<a href=%q target="_blank" rel="noopener noreferrer">%s</a>`, href, label)
	})
}

// renderParagraphs splits on blank-line boundaries and wraps any segment
// that earlier stages did not already turn into a block element.
func renderParagraphs(s string) string {
	segments := paraRe.Split(s, -1)
	var blocks []string
	for _, seg := range segments {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		if hasBlockPrefix(seg) {
			blocks = append(blocks, seg)
			continue
		}
		blocks = append(blocks, wrapParagraph(seg))
	}
	return strings.Join(blocks, "\n")
}

func hasBlockPrefix(seg string) bool {
	for _, prefix := range []string{"<h1", "<h2", "<h3", "<p"} {
		if strings.HasPrefix(seg, prefix) {
			return true
		}
	}
	return false
}

func wrapParagraph(seg string) string {
	inner := strings.ReplaceAll(strings.TrimSpace(seg), "\n", "<br/>")
	return `<p style="` + paragraphStyle + `">` + inner + `</p>`
}
