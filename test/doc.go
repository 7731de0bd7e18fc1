// Package test provides infrastructure for integration testing the deploy flow.
//
// It runs fake versions of the two HTTP APIs the action talks to, each a
// fiber app served through httptest:
//
//   - InstaWPServer: the sites and task status endpoints of the InstaWP API,
//     with scriptable create responses and task status sequences
//
//   - GitHubServer: the issue comment endpoints of the GitHub REST API,
//     backed by an in-memory comment list per pull request
//
// Suite wires real clients against both servers and builds the deploy
// service the same way the CLI does.
//
// Example Usage:
//
//	func TestExample(t *testing.T) {
//	    s := test.NewSuite(t)
//	    defer s.Cleanup()
//
//	    s.InstaWP.SetStatuses("progress", "completed")
//	    result, err := s.Deploy(s.Context())
//	}
package test
