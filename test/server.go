package test

import (
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"github.com/celestiaorg/instawp-action/internal/types"
)

// Fake site values returned by InstaWPServer by default
const (
	TestTaskID  = "task-123"
	TestSiteURL = "https://acme-site.instawp.xyz"
	TestSHash   = "xyz123"
)

// InstaWPServer is a fake InstaWP API
type InstaWPServer struct {
	App    *fiber.App
	Server *httptest.Server

	mu             sync.Mutex
	createStatus   int
	createBody     interface{}
	statuses       []types.TaskStatus
	createRequests []types.CreateSiteGitRequest
	statusRequests []string
	authHeaders    []string
}

// NewInstaWPServer starts a fake InstaWP API that creates a site and
// reports it completed on the first status check
func NewInstaWPServer() *InstaWPServer {
	s := &InstaWPServer{
		createStatus: http.StatusOK,
		createBody: types.CreateSiteGitResponse{
			Status:  true,
			Message: "Site creation started",
			Data: &types.SiteData{
				TaskID: TestTaskID,
				WPURL:  TestSiteURL,
				SHash:  TestSHash,
			},
		},
		statuses: []types.TaskStatus{types.TaskStatusCompleted},
	}

	s.App = fiber.New(fiber.Config{DisableStartupMessage: true, Immutable: true})
	s.App.Post("/sites/git", s.handleCreateSiteGit)
	s.App.Get("/tasks/:id/status", s.handleTaskStatus)

	s.Server = httptest.NewServer(adaptor.FiberApp(s.App))
	return s
}

// URL returns the API base URL
func (s *InstaWPServer) URL() string {
	return s.Server.URL
}

// Close stops the server
func (s *InstaWPServer) Close() {
	s.Server.Close()
}

// SetCreateResponse replaces the reply to POST /sites/git. A string body is
// written verbatim, anything else is encoded as JSON.
func (s *InstaWPServer) SetCreateResponse(status int, body interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.createStatus = status
	s.createBody = body
}

// SetStatuses sets the task statuses reported by successive status checks;
// the last one repeats
func (s *InstaWPServer) SetStatuses(statuses ...types.TaskStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.statuses = statuses
}

// CreateRequests returns the decoded create requests received so far
func (s *InstaWPServer) CreateRequests() []types.CreateSiteGitRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]types.CreateSiteGitRequest(nil), s.createRequests...)
}

// StatusRequests returns the task IDs of status checks received so far
func (s *InstaWPServer) StatusRequests() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.statusRequests...)
}

// AuthHeaders returns the Authorization header of every request
func (s *InstaWPServer) AuthHeaders() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.authHeaders...)
}

// RequestCount returns the number of requests of any kind
func (s *InstaWPServer) RequestCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.authHeaders)
}

func (s *InstaWPServer) handleCreateSiteGit(c *fiber.Ctx) error {
	var req types.CreateSiteGitRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": false, "message": err.Error()})
	}

	s.mu.Lock()
	s.authHeaders = append(s.authHeaders, c.Get(fiber.HeaderAuthorization))
	s.createRequests = append(s.createRequests, req)
	status, body := s.createStatus, s.createBody
	s.mu.Unlock()

	if raw, ok := body.(string); ok {
		return c.Status(status).SendString(raw)
	}
	return c.Status(status).JSON(body)
}

func (s *InstaWPServer) handleTaskStatus(c *fiber.Ctx) error {
	s.mu.Lock()
	s.authHeaders = append(s.authHeaders, c.Get(fiber.HeaderAuthorization))
	s.statusRequests = append(s.statusRequests, c.Params("id"))
	i := len(s.statusRequests) - 1
	if i >= len(s.statuses) {
		i = len(s.statuses) - 1
	}
	status := s.statuses[i]
	s.mu.Unlock()

	return c.JSON(types.TaskStatusResponse{
		Status: true,
		Data: &types.TaskData{
			ID:           1,
			Type:         "create_site",
			ResourceType: "site",
			Status:       status,
		},
	})
}
