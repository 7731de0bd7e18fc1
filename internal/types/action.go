package types

import (
	"fmt"
	"strings"
)

// Action is a value of the instawp-action input
type Action string

const (
	// ActionCreateSiteTemplateGit creates a site from a git-backed template
	ActionCreateSiteTemplateGit Action = "create-site-template-git"
	// ActionCreateSiteTemplate creates a site from a plain template
	ActionCreateSiteTemplate Action = "create-site-template"
	// ActionDestroySite deletes a previously created site
	ActionDestroySite Action = "destroy-site"
)

// SupportedActions lists every action the input accepts, in display order
var SupportedActions = []Action{
	ActionCreateSiteTemplateGit,
	ActionCreateSiteTemplate,
	ActionDestroySite,
}

// ParseAction checks s against SupportedActions
func ParseAction(s string) (Action, error) {
	for _, a := range SupportedActions {
		if string(a) == s {
			return a, nil
		}
	}
	return "", &InvalidActionError{Action: s}
}

func (a Action) String() string {
	return string(a)
}

func supportedActionsList() string {
	names := make([]string, len(SupportedActions))
	for i, a := range SupportedActions {
		names[i] = string(a)
	}
	return strings.Join(names, ", ")
}

// InvalidActionError is returned for an action outside SupportedActions
type InvalidActionError struct {
	Action string
}

// Error implements the error interface for InvalidActionError
func (e *InvalidActionError) Error() string {
	return fmt.Sprintf("Invalid action: %s. Must be one of: %s", e.Action, supportedActionsList())
}
