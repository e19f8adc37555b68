// Package memory provides in-process implementations of domain stores.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/cleitonmarx/symbiont-mcp-agent/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
)

type workflowEntry struct {
	wf        domain.Workflow
	expiresAt time.Time
}

// WorkflowStore keeps workflows in a map. Entries expire ttl after their last save.
type WorkflowStore struct {
	clock domain.CurrentTimeProvider
	ttl   time.Duration

	mu      sync.Mutex
	entries map[string]workflowEntry
}

var _ domain.WorkflowStore = (*WorkflowStore)(nil)

// NewWorkflowStore creates a WorkflowStore. A ttl of zero keeps entries forever.
func NewWorkflowStore(clock domain.CurrentTimeProvider, ttl time.Duration) *WorkflowStore {
	return &WorkflowStore{
		clock:   clock,
		ttl:     ttl,
		entries: map[string]workflowEntry{},
	}
}

// GetWorkflow implements domain.WorkflowStore.
func (s *WorkflowStore) GetWorkflow(_ context.Context, conversationID string) (domain.Workflow, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[conversationID]
	if !ok {
		return domain.Workflow{}, false, nil
	}
	if s.expired(e) {
		delete(s.entries, conversationID)
		return domain.Workflow{}, false, nil
	}
	wf := e.wf
	wf.Collected = e.wf.Collected.Clone()
	return wf, true, nil
}

// SaveWorkflow implements domain.WorkflowStore.
func (s *WorkflowStore) SaveWorkflow(_ context.Context, wf domain.Workflow) error {
	if wf.ConversationID == "" {
		return domain.NewValidationErr("workflow conversation id cannot be empty")
	}

	wf.Collected = wf.Collected.Clone()
	e := workflowEntry{wf: wf}
	if s.ttl > 0 {
		e.expiresAt = s.clock.Now().Add(s.ttl)
	}

	s.mu.Lock()
	s.entries[wf.ConversationID] = e
	s.mu.Unlock()
	return nil
}

// DeleteWorkflow implements domain.WorkflowStore.
func (s *WorkflowStore) DeleteWorkflow(_ context.Context, conversationID string) error {
	s.mu.Lock()
	delete(s.entries, conversationID)
	s.mu.Unlock()
	return nil
}

func (s *WorkflowStore) expired(e workflowEntry) bool {
	return !e.expiresAt.IsZero() && !s.clock.Now().Before(e.expiresAt)
}

// InitWorkflowStore registers the in-memory domain.WorkflowStore when WORKFLOW_STORE is "memory".
type InitWorkflowStore struct {
	Clock domain.CurrentTimeProvider `resolve:""`
	Kind  string                     `config:"WORKFLOW_STORE" default:"memory"`
	TTL   time.Duration              `config:"WORKFLOW_SESSION_TTL" default:"30m"`
}

// Initialize registers the store.
func (i InitWorkflowStore) Initialize(ctx context.Context) (context.Context, error) {
	if err := domain.CheckWorkflowStoreKind(i.Kind); err != nil {
		return ctx, err
	}
	if i.Kind != "memory" {
		return ctx, nil
	}
	depend.Register[domain.WorkflowStore](NewWorkflowStore(i.Clock, i.TTL))
	return ctx, nil
}
