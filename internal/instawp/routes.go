package instawp

import (
	"fmt"
	"net/url"
)

// API paths relative to the base URL
const (
	sitesGitPath   = "/sites/git"
	taskStatusPath = "/tasks/%s/status"
)

// CreateSiteGitURL returns the path of the create-site-from-git endpoint
func CreateSiteGitURL() string {
	return sitesGitPath
}

// TaskStatusURL returns the path of the task status endpoint for taskID
func TaskStatusURL(taskID string) string {
	return fmt.Sprintf(taskStatusPath, url.PathEscape(taskID))
}
