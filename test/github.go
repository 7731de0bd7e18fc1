package test

import (
	"net/http/httptest"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
)

// GitHubComment is the JSON shape of an issue comment
type GitHubComment struct {
	ID   int64  `json:"id"`
	Body string `json:"body"`
}

// GitHubServer is a fake of the GitHub issue comment endpoints
type GitHubServer struct {
	App    *fiber.App
	Server *httptest.Server

	mu       sync.Mutex
	nextID   int64
	comments map[int][]GitHubComment
	owners   map[int64]int
	creates  int
	updates  int
	perPage  []string
}

// NewGitHubServer starts a fake GitHub API with no comments
func NewGitHubServer() *GitHubServer {
	s := &GitHubServer{
		nextID:   1000,
		comments: map[int][]GitHubComment{},
		owners:   map[int64]int{},
	}

	s.App = fiber.New(fiber.Config{DisableStartupMessage: true, Immutable: true})
	s.App.Get("/repos/:owner/:repo/issues/:number/comments", s.handleList)
	s.App.Post("/repos/:owner/:repo/issues/:number/comments", s.handleCreate)
	s.App.Patch("/repos/:owner/:repo/issues/comments/:id", s.handleUpdate)

	s.Server = httptest.NewServer(adaptor.FiberApp(s.App))
	return s
}

// URL returns the API root
func (s *GitHubServer) URL() string {
	return s.Server.URL
}

// Close stops the server
func (s *GitHubServer) Close() {
	s.Server.Close()
}

// AddComment seeds a comment on a pull request and returns its ID
func (s *GitHubServer) AddComment(number int, body string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.add(number, body)
}

// Comments returns the comments on a pull request in creation order
func (s *GitHubServer) Comments(number int) []GitHubComment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]GitHubComment(nil), s.comments[number]...)
}

// Creates returns how many comments were created through the API
func (s *GitHubServer) Creates() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.creates
}

// Updates returns how many comments were edited through the API
func (s *GitHubServer) Updates() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updates
}

// PerPage returns the per_page query value of each list request
func (s *GitHubServer) PerPage() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.perPage...)
}

func (s *GitHubServer) add(number int, body string) int64 {
	s.nextID++
	s.comments[number] = append(s.comments[number], GitHubComment{ID: s.nextID, Body: body})
	s.owners[s.nextID] = number
	return s.nextID
}

func (s *GitHubServer) handleList(c *fiber.Ctx) error {
	number, err := c.ParamsInt("number")
	if err != nil {
		return fiber.ErrBadRequest
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.perPage = append(s.perPage, c.Query("per_page"))
	comments := append([]GitHubComment{}, s.comments[number]...)
	return c.JSON(comments)
}

func (s *GitHubServer) handleCreate(c *fiber.Ctx) error {
	number, err := c.ParamsInt("number")
	if err != nil {
		return fiber.ErrBadRequest
	}
	var in GitHubComment
	if err := c.BodyParser(&in); err != nil {
		return fiber.ErrBadRequest
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.creates++
	id := s.add(number, in.Body)
	return c.Status(fiber.StatusCreated).JSON(GitHubComment{ID: id, Body: in.Body})
}

func (s *GitHubServer) handleUpdate(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.ErrBadRequest
	}
	var in GitHubComment
	if err := c.BodyParser(&in); err != nil {
		return fiber.ErrBadRequest
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	number, ok := s.owners[int64(id)]
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Not Found"})
	}
	s.updates++
	for i := range s.comments[number] {
		if s.comments[number][i].ID == int64(id) {
			s.comments[number][i].Body = in.Body
		}
	}
	return c.JSON(GitHubComment{ID: int64(id), Body: in.Body})
}
