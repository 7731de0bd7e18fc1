package services

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"github.com/celestiaorg/instawp-action/internal/constants"
)

func TestSiteName(t *testing.T) {
	tests := []struct {
		name  string
		owner string
		repo  string
		sha   string
		want  string
	}{
		{name: "short", owner: "acme", repo: "site", sha: "abc", want: "acme-site-abc"},
		{name: "truncated", owner: "acme", repo: "site", sha: "abcdef1234567890abcdef", want: "acme-site-abcdef1234567890abcd"},
		{name: "exactly max", owner: "a", repo: "b", sha: "01234567890123456789012345", want: "a-b-01234567890123456789012345"},
		{name: "multibyte kept whole", owner: "ünïcödé", repo: "répö", sha: "0123456789abcdef0123456789", want: "ünïcödé-répö-0123456789abcdef0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SiteName(tt.owner, tt.repo, tt.sha)
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, utf8.RuneCountInString(got), constants.MaxSiteNameLength)
			assert.True(t, utf8.ValidString(got))
		})
	}
}

func TestMagicLoginURL(t *testing.T) {
	assert.Equal(t, "https://app.instawp.io/wordpress-auto-login?site=xyz123", MagicLoginURL("xyz123"))
	assert.Equal(t, "https://app.instawp.io/wordpress-auto-login?site=a%2Bb%26c", MagicLoginURL("a+b&c"))
}

func TestCommentBody(t *testing.T) {
	body := CommentBody("https://acme.instawp.xyz", "https://app.instawp.io/wordpress-auto-login?site=xyz123")

	want := "<!-- INSTAWP-COMMENT -->\n" +
		"WordPress Instance Deployed.\n\n" +
		"URL: [https://acme.instawp.xyz](https://acme.instawp.xyz)\n" +
		"Magic Login: [https://app.instawp.io/wordpress-auto-login?site=xyz123](https://app.instawp.io/wordpress-auto-login?site=xyz123)"
	assert.Equal(t, want, body)
}
