package types

// Comment is an issue comment as the reconciler sees it
type Comment struct {
	ID   int64
	Body string
}

// WorkflowContext carries the repository coordinates of the current run
type WorkflowContext struct {
	Owner string
	Repo  string
	SHA   string

	// PullRequestNumber is 0 when the run is not tied to a pull request
	PullRequestNumber int

	// APIURL is the GitHub REST API root, e.g. https://api.github.com
	APIURL string
}
