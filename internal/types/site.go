// Package types holds the payloads exchanged with the InstaWP API and the
// values passed between the action's services.
package types

// CreateSiteGitRequest is the body of POST /sites/git
// Example: {"template_slug":"my-template","site_name":"acme-site-abcdef1234567890","pr_num":12,"repo_id":"42"}
type CreateSiteGitRequest struct {
	// Slug of the template to clone
	TemplateSlug string `json:"template_slug"`

	// Site name derived from the repository and commit, at most 30 characters
	SiteName string `json:"site_name"`

	// Pull request number the site belongs to, 0 when the run has no pull request
	PRNum int `json:"pr_num"`

	// InstaWP identifier of the git repository attached to the template
	RepoID string `json:"repo_id"`

	// Optional URL of an artifact that replaces the repository contents
	OverrideURL string `json:"override_url,omitempty"`
}

// CreateSiteGitResponse is the envelope returned by POST /sites/git
type CreateSiteGitResponse struct {
	Status  bool      `json:"status"`
	Message string    `json:"message"`
	Data    *SiteData `json:"data"`
}

// SiteData describes a site that is being created
// Example: {"task_id":"t-1","wp_url":"https://acme.instawp.xyz","s_hash":"xyz123","status":0}
type SiteData struct {
	// Message returned alongside the creation
	Message string `json:"message"`

	// Identifier of the provisioning task to poll
	TaskID string `json:"task_id"`

	// Numeric status code of the creation request
	Status int `json:"status"`

	// Public URL of the WordPress site
	WPURL string `json:"wp_url"`

	WPUsername string `json:"wp_username"`
	WPPassword string `json:"wp_password"`

	// InstaWP site ID
	ID int `json:"id"`

	// Login hash used to build the magic login link
	SHash string `json:"s_hash"`

	Token *string `json:"token"`
}
