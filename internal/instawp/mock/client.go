// Package mock provides a function-field mock of the InstaWP client
package mock

import (
	"context"
	"errors"
	"sync"

	"github.com/celestiaorg/instawp-action/internal/instawp"
	"github.com/celestiaorg/instawp-action/internal/types"
)

var _ instawp.Client = &MockClient{}

// MockClient implements the instawp.Client interface for testing
type MockClient struct {
	// Function fields that can be set to mock behavior
	CreateSiteGitFn func(ctx context.Context, req types.CreateSiteGitRequest) (*types.CreateSiteGitResponse, error)
	GetTaskStatusFn func(ctx context.Context, taskID string) (*types.TaskStatusResponse, error)

	mu sync.Mutex

	// Call tracking for verification
	CreateSiteGitCalls []types.CreateSiteGitRequest
	GetTaskStatusCalls []string
}

// CreateSiteGit implements instawp.Client
func (m *MockClient) CreateSiteGit(ctx context.Context, req types.CreateSiteGitRequest) (*types.CreateSiteGitResponse, error) {
	m.mu.Lock()
	m.CreateSiteGitCalls = append(m.CreateSiteGitCalls, req)
	m.mu.Unlock()

	if m.CreateSiteGitFn != nil {
		return m.CreateSiteGitFn(ctx, req)
	}
	return nil, errors.New("CreateSiteGit not mocked")
}

// GetTaskStatus implements instawp.Client
func (m *MockClient) GetTaskStatus(ctx context.Context, taskID string) (*types.TaskStatusResponse, error) {
	m.mu.Lock()
	m.GetTaskStatusCalls = append(m.GetTaskStatusCalls, taskID)
	m.mu.Unlock()

	if m.GetTaskStatusFn != nil {
		return m.GetTaskStatusFn(ctx, taskID)
	}
	return nil, errors.New("GetTaskStatus not mocked")
}

// StatusCalls returns how many times GetTaskStatus was called
func (m *MockClient) StatusCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.GetTaskStatusCalls)
}

// TotalCalls returns the number of API calls made through the mock
func (m *MockClient) TotalCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.CreateSiteGitCalls) + len(m.GetTaskStatusCalls)
}

// StatusSequence returns a GetTaskStatusFn that reports each status in order
// and then repeats the last one
func StatusSequence(statuses ...types.TaskStatus) func(context.Context, string) (*types.TaskStatusResponse, error) {
	var mu sync.Mutex
	i := 0
	return func(_ context.Context, _ string) (*types.TaskStatusResponse, error) {
		mu.Lock()
		defer mu.Unlock()
		s := statuses[i]
		if i < len(statuses)-1 {
			i++
		}
		return &types.TaskStatusResponse{
			Status: true,
			Data:   &types.TaskData{Status: s},
		}, nil
	}
}
