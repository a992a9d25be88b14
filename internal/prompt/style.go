package prompt

import (
	"regexp"
	"strings"

	"github.com/amarzeus/readme-studio/internal/types"
)

// DefaultBorderColor is substituted when the configured border color is not
// a strict 6-digit hex value. The invalid value is never emitted.
const DefaultBorderColor = "#58A6FF"

var hexColorRe = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// shadow presets, one per intensity tier
var shadowClauses = map[types.ShadowIntensity]string{
	types.ShadowSubtle: "box-shadow: 0 4px 8px rgba(0,0,0,0.2);",
	types.ShadowMedium: "box-shadow: 0 6px 12px rgba(0,0,0,0.35);",
	types.ShadowStrong: "box-shadow: 0 10px 20px rgba(0,0,0,0.5);",
}

// StyleDeclarator builds the inline CSS declaration list for the profile
// picture image tag. Clause order is fixed: radius, border, shadow,
// object-fit.
func StyleDeclarator(style *types.ProfilePictureStyle) string {
	if style == nil {
		return ""
	}

	var clauses []string

	if style.Shape == types.ShapeCircular {
		clauses = append(clauses, "border-radius: 50%;")
	} else {
		clauses = append(clauses, "border-radius: 15px;")
	}

	if style.HasBorder {
		color := style.BorderColor
		if !hexColorRe.MatchString(color) {
			color = DefaultBorderColor
		}
		clauses = append(clauses, "border: 3px solid "+color+";")
	}

	if style.HasShadow {
		if clause, ok := shadowClauses[style.ShadowIntensity]; ok {
			clauses = append(clauses, clause)
		} else {
			clauses = append(clauses, shadowClauses[types.ShadowMedium])
		}
	}

	clauses = append(clauses, "object-fit: cover;")

	return strings.Join(clauses, " ")
}
