// Package constants provides centralized definitions of constants used throughout the application
package constants

// Action input names. The runner exposes each one as INPUT_<NAME> in the
// step environment.
const (
	// InputGitHubToken is the token used to read and write pull request comments
	InputGitHubToken = "github-token"

	// InputInstaWPToken is the InstaWP API token
	InputInstaWPToken = "instawp-token"

	// InputInstaWPAction selects what the step does (e.g. create-site-template-git)
	InputInstaWPAction = "instawp-action"

	// InputTemplateSlug is the slug of the InstaWP template to clone
	InputTemplateSlug = "instawp-template-slug"

	// InputRepoID is the InstaWP identifier of the git repository attached to the template
	InputRepoID = "repo-id"

	// InputArtifactURL optionally overrides the source the site is built from
	InputArtifactURL = "instawp-artifact-zip-url"

	// InputTimeoutSeconds bounds how long to wait for provisioning to finish
	InputTimeoutSeconds = "timeout-seconds"
)

// Environment variable names
const (
	// EnvLogLevel overrides the log level (trace, debug, info, warn, error)
	EnvLogLevel = "LOG_LEVEL"

	// EnvRunnerDebug is set to 1 by the runner when step debug logging is enabled
	EnvRunnerDebug = "RUNNER_DEBUG"

	// EnvInstaWPAPIURL overrides the InstaWP API base URL
	EnvInstaWPAPIURL = "INSTAWP_API_URL"

	// EnvInstaWPToken is the token task-status uses outside a workflow
	EnvInstaWPToken = "INSTAWP_TOKEN"
)

// Output names published for downstream steps
const (
	OutputInstaWPURL    = "instawp_url"
	OutputMagicLoginURL = "instawp_magic_login_url"
)
