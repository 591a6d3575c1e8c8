package provider

import (
	"context"
	"sync"

	"kube-drover.io/drover/internal/domain"
)

// MockRunner implements PlaybookRunner for testing without Ansible or SSH
// targets.
type MockRunner struct {
	mu        sync.Mutex
	runs      []RunRequest
	cancelled []int

	// RunFunc, when set, decides the outcome of each run.
	RunFunc func(ctx context.Context, req RunRequest) (map[string][]byte, error)
}

// NewMockRunner creates a new MockRunner.
func NewMockRunner() *MockRunner {
	return &MockRunner{}
}

func (m *MockRunner) Run(ctx context.Context, req RunRequest) (map[string][]byte, error) {
	m.mu.Lock()
	m.runs = append(m.runs, req)
	m.mu.Unlock()
	if m.RunFunc != nil {
		return m.RunFunc(ctx, req)
	}
	if req.OnOutput != nil {
		req.OnOutput("PLAY RECAP *** ok=1 failed=0")
	}
	return map[string][]byte{}, nil
}

func (m *MockRunner) Cancel(jobID int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cancelled = append(m.cancelled, jobID)
	return true
}

// Runs returns a copy of the recorded run requests.
func (m *MockRunner) Runs() []RunRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]RunRequest, len(m.runs))
	copy(out, m.runs)
	return out
}

// Cancelled returns the job IDs Cancel was called with.
func (m *MockRunner) Cancelled() []int {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]int, len(m.cancelled))
	copy(out, m.cancelled)
	return out
}

// MockInspector implements ClusterInspector with canned results.
type MockInspector struct {
	Snap    *domain.ClusterSnapshot
	SnapErr error
	Etcd    bool
	EtcdErr error
}

func (m *MockInspector) Snapshot(_ context.Context, _ []byte) (*domain.ClusterSnapshot, error) {
	if m.SnapErr != nil {
		return nil, m.SnapErr
	}
	return m.Snap, nil
}

func (m *MockInspector) EtcdHealthy(_ context.Context, _ []byte) (bool, error) {
	if m.EtcdErr != nil {
		return false, m.EtcdErr
	}
	return m.Etcd, nil
}
