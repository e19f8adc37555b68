package redis

import (
	"context"
	"io"
	"log"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont-mcp-agent/internal/domain"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unreachableClient(t *testing.T) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestWorkflowKey(t *testing.T) {
	assert.Equal(t, "mcpagent:workflow:conv-1", workflowKey("conv-1"))
}

func TestWorkflowStore_Unreachable(t *testing.T) {
	store := NewWorkflowStore(unreachableClient(t), time.Minute)
	ctx := context.Background()

	_, found, err := store.GetWorkflow(ctx, "conv-1")
	assert.Error(t, err)
	assert.False(t, found)

	err = store.SaveWorkflow(ctx, domain.Workflow{ConversationID: "conv-1", State: domain.WorkflowState_Collecting})
	assert.ErrorContains(t, err, "save workflow")

	err = store.DeleteWorkflow(ctx, "conv-1")
	assert.ErrorContains(t, err, "delete workflow")
}

func TestWorkflowStore_SaveWorkflow_Validation(t *testing.T) {
	store := NewWorkflowStore(unreachableClient(t), time.Minute)

	err := store.SaveWorkflow(context.Background(), domain.Workflow{})

	var ve *domain.ValidationErr
	assert.ErrorAs(t, err, &ve)
}

func TestInitWorkflowStore_Initialize(t *testing.T) {
	tests := map[string]struct {
		init      *InitWorkflowStore
		expectErr bool
	}{
		"skipped-for-memory-store": {
			init: &InitWorkflowStore{Kind: "memory"},
		},
		"unknown-kind": {
			init:      &InitWorkflowStore{Kind: "postgres"},
			expectErr: true,
		},
		"redis-unreachable": {
			init:      &InitWorkflowStore{Kind: "redis", Addr: "127.0.0.1:1", TTL: time.Minute},
			expectErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			tt.init.Logger = log.New(io.Discard, "", 0)
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			_, err := tt.init.Initialize(ctx)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Nil(t, tt.init.client)
			tt.init.Close()
		})
	}
}
