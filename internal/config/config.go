// Package config resolves the action's inputs into a Config
package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/celestiaorg/instawp-action/internal/constants"
	"github.com/celestiaorg/instawp-action/internal/logger"
	"github.com/celestiaorg/instawp-action/internal/types"
)

// InputFunc returns the value of a named input, or "" when it is unset
type InputFunc func(name string) string

// Config holds everything a run needs
type Config struct {
	// GitHubToken authenticates pull request comment calls
	GitHubToken string

	// InstaWPToken authenticates InstaWP API calls
	InstaWPToken string

	// Action is the requested action, validated by the deploy service
	Action string

	TemplateSlug string
	RepoID       string

	// ArtifactURL optionally overrides the site source, empty when unset
	ArtifactURL string

	// Timeout bounds how long provisioning is awaited
	Timeout time.Duration

	// APIBaseURL overrides the InstaWP API base, empty means the default
	APIBaseURL string
}

// Load builds a Config from inputs. It does not validate; call Validate.
func Load(input InputFunc) *Config {
	get := func(name string) string {
		return strings.TrimSpace(input(name))
	}

	return &Config{
		GitHubToken:  get(constants.InputGitHubToken),
		InstaWPToken: get(constants.InputInstaWPToken),
		Action:       get(constants.InputInstaWPAction),
		TemplateSlug: get(constants.InputTemplateSlug),
		RepoID:       get(constants.InputRepoID),
		ArtifactURL:  get(constants.InputArtifactURL),
		Timeout:      ParseTimeout(get(constants.InputTimeoutSeconds)),
	}
}

// ParseTimeout converts a timeout-seconds value. Empty, non-numeric and
// non-positive values fall back to the default.
func ParseTimeout(s string) time.Duration {
	def := constants.DefaultTimeoutSeconds * time.Second
	if s == "" {
		return def
	}

	seconds, err := strconv.Atoi(s)
	if err != nil || seconds <= 0 {
		logger.Warnf("Invalid %s '%s', defaulting to %d", constants.InputTimeoutSeconds, s, constants.DefaultTimeoutSeconds)
		return def
	}
	return time.Duration(seconds) * time.Second
}

// Validate checks the inputs every action needs
func (c *Config) Validate() error {
	if c.Action == "" {
		return fmt.Errorf("%s is required", constants.InputInstaWPAction)
	}
	// An unknown action is reported with the allow-list before anything else
	if _, err := types.ParseAction(c.Action); err != nil {
		return err
	}
	if c.InstaWPToken == "" {
		return fmt.Errorf("%s is required", constants.InputInstaWPToken)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	return nil
}

// Secrets returns the values that must never be printed
func (c *Config) Secrets() []string {
	var secrets []string
	for _, s := range []string{c.GitHubToken, c.InstaWPToken} {
		if s != "" {
			secrets = append(secrets, s)
		}
	}
	return secrets
}
