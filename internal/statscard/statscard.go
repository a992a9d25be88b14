// Package statscard builds the external GitHub stats widget URLs embedded in
// generated READMEs. Optional parameters are only emitted when set, so the
// query string never contains empty values.
package statscard

import (
	"net/url"
	"strings"

	"github.com/amarzeus/readme-studio/internal/types"
)

// Widget endpoints
const (
	// StatsHost is the host serving the stats and top-languages cards.
	// The renderer uses it to decide block-level vs inline image styling.
	StatsHost = "github-readme-stats.vercel.app"

	// StreakHost is the host serving the contribution streak card.
	StreakHost = "github-readme-streak-stats.herokuapp.com"

	statsBase    = "https://github-readme-stats.vercel.app/api"
	topLangsBase = "https://github-readme-stats.vercel.app/api/top-langs/"
	streakBase   = "https://github-readme-streak-stats.herokuapp.com/"
)

// IsWidgetURL reports whether a URL points at one of the stats widget
// services. The preview renderer styles these as block-level images.
func IsWidgetURL(raw string) bool {
	return strings.Contains(raw, StatsHost) || strings.Contains(raw, StreakHost)
}

const defaultTheme = "radical"

// theme falls back to the default when unset so the widgets never render
// with the service's plain default palette.
func theme(opts types.GithubStatsOptions) string {
	if opts.Theme != "" {
		return opts.Theme
	}
	return defaultTheme
}

func appendCommon(q url.Values, opts types.GithubStatsOptions) {
	if len(opts.HiddenStats) > 0 {
		q.Set("hide", strings.Join(opts.HiddenStats, ","))
	}
	if opts.BorderRadius != "" {
		q.Set("border_radius", opts.BorderRadius)
	}
	if opts.HideBorder {
		q.Set("hide_border", "true")
	}
}

// StatsURL returns the primary stats card URL for a username.
func StatsURL(username string, opts types.GithubStatsOptions) string {
	q := url.Values{}
	q.Set("username", username)
	q.Set("show_icons", "true")
	q.Set("theme", theme(opts))
	q.Set("rank_icon", "github")
	appendCommon(q, opts)
	if opts.DisableAnimations {
		q.Set("disable_animations", "true")
	}
	return statsBase + "?" + q.Encode()
}

// StreakURL returns the contribution streak widget URL. The streak service
// does not support disable_animations, so that flag is never forwarded.
func StreakURL(username string, opts types.GithubStatsOptions) string {
	q := url.Values{}
	q.Set("user", username)
	q.Set("theme", theme(opts))
	appendCommon(q, opts)
	return streakBase + "?" + q.Encode()
}

// TopLangsURL returns the top-languages card URL.
func TopLangsURL(username string, opts types.GithubStatsOptions) string {
	q := url.Values{}
	q.Set("username", username)
	layout := opts.TopLangsLayout
	if layout == "" {
		layout = "compact"
	}
	q.Set("layout", layout)
	q.Set("theme", theme(opts))
	appendCommon(q, opts)
	if opts.DisableAnimations {
		q.Set("disable_animations", "true")
	}
	return topLangsBase + "?" + q.Encode()
}
