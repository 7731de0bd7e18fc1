package constants

import "time"

const (
	// InstaWPAPIBase is the base URL of the InstaWP v2 API
	InstaWPAPIBase = "https://app.instawp.io/api/v2"

	// MagicLoginEndpoint is the auto-login page; the site query parameter carries the login hash
	MagicLoginEndpoint = "https://app.instawp.io/wordpress-auto-login"

	// CommentMarker identifies comments written by this action
	CommentMarker = "<!-- INSTAWP-COMMENT -->"

	// MaxSiteNameLength is the longest site name the InstaWP API accepts
	MaxSiteNameLength = 30

	// CommentsPerPage is the page size used when looking up an existing comment
	CommentsPerPage = 100
)

const (
	// DefaultTimeoutSeconds is used when timeout-seconds is not provided
	DefaultTimeoutSeconds = 120

	// DefaultPollInterval is the delay between two task status checks
	DefaultPollInterval = 2000 * time.Millisecond
)
