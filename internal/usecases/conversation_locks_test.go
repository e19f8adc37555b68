package usecases

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
)

func TestConversationLocks_SerializesSameConversation(t *testing.T) {
	locks := NewConversationLocks()

	var (
		mu      sync.Mutex
		active  int
		maxSeen int
		wg      sync.WaitGroup
	)
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := locks.Lock("conv-1")
			defer unlock()

			mu.Lock()
			active++
			maxSeen = max(maxSeen, active)
			mu.Unlock()

			time.Sleep(time.Millisecond)

			mu.Lock()
			active--
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, maxSeen)
	assert.Equal(t, 0, locks.size())
}

func TestConversationLocks_IndependentConversations(t *testing.T) {
	locks := NewConversationLocks()

	unlockA := locks.Lock("conv-a")
	done := make(chan struct{})
	go func() {
		unlockB := locks.Lock("conv-b")
		unlockB()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("conversation b was blocked by conversation a")
	}
	assert.Equal(t, 1, locks.size())
	unlockA()
	assert.Equal(t, 0, locks.size())
}

func TestInitConversationLocks_Initialize(t *testing.T) {
	_, err := InitConversationLocks{}.Initialize(context.Background())
	assert.NoError(t, err)

	r, err := depend.Resolve[*ConversationLocks]()
	assert.NoError(t, err)
	assert.NotNil(t, r)
}
