package services

import (
	"fmt"
	"net/url"

	"github.com/celestiaorg/instawp-action/internal/constants"
)

// SiteName derives the InstaWP site name from the repository and commit,
// cut to the longest name the API accepts
func SiteName(owner, repo, sha string) string {
	name := []rune(fmt.Sprintf("%s-%s-%s", owner, repo, sha))
	if len(name) > constants.MaxSiteNameLength {
		name = name[:constants.MaxSiteNameLength]
	}
	return string(name)
}

// MagicLoginURL returns the auto-login link for a site's login hash
func MagicLoginURL(hash string) string {
	u, err := url.Parse(constants.MagicLoginEndpoint)
	if err != nil {
		// MagicLoginEndpoint is a constant
		panic(err)
	}
	q := u.Query()
	q.Set("site", hash)
	u.RawQuery = q.Encode()
	return u.String()
}

// CommentBody renders the pull request comment for a deployed site
func CommentBody(siteURL, magicLoginURL string) string {
	return fmt.Sprintf("%s\nWordPress Instance Deployed.\n\nURL: [%s](%s)\nMagic Login: [%s](%s)",
		constants.CommentMarker, siteURL, siteURL, magicLoginURL, magicLoginURL)
}
