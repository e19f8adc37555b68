package usecases

import (
	"context"
	"sync"

	"github.com/cleitonmarx/symbiont/depend"
)

// ConversationLocks serializes turns of the same conversation. Entries are dropped
// once nobody holds or waits for them.
type ConversationLocks struct {
	mu    sync.Mutex
	locks map[string]*conversationLock
}

type conversationLock struct {
	mu   sync.Mutex
	refs int
}

// NewConversationLocks creates an empty ConversationLocks.
func NewConversationLocks() *ConversationLocks {
	return &ConversationLocks{locks: map[string]*conversationLock{}}
}

// Lock blocks until the conversation is free and returns the release function.
func (cl *ConversationLocks) Lock(conversationID string) func() {
	cl.mu.Lock()
	l, ok := cl.locks[conversationID]
	if !ok {
		l = &conversationLock{}
		cl.locks[conversationID] = l
	}
	l.refs++
	cl.mu.Unlock()

	l.mu.Lock()

	return func() {
		l.mu.Unlock()

		cl.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(cl.locks, conversationID)
		}
		cl.mu.Unlock()
	}
}

// size returns the number of tracked conversations.
func (cl *ConversationLocks) size() int {
	cl.mu.Lock()
	defer cl.mu.Unlock()
	return len(cl.locks)
}

// InitConversationLocks registers the shared ConversationLocks.
type InitConversationLocks struct{}

// Initialize registers ConversationLocks in the dependency container.
func (i InitConversationLocks) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register(NewConversationLocks())
	return ctx, nil
}
