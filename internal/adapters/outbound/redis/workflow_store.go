// Package redis provides Redis-backed implementations of domain stores.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/cleitonmarx/symbiont-mcp-agent/internal/domain"
	"github.com/cleitonmarx/symbiont-mcp-agent/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const keyPrefix = "mcpagent:workflow:"

// WorkflowStore keeps one JSON encoded workflow per conversation key.
// Every save refreshes the key's TTL.
type WorkflowStore struct {
	client redis.Cmdable
	ttl    time.Duration
}

var _ domain.WorkflowStore = WorkflowStore{}

// NewWorkflowStore creates a WorkflowStore. A ttl of zero keeps keys forever.
func NewWorkflowStore(client redis.Cmdable, ttl time.Duration) WorkflowStore {
	return WorkflowStore{client: client, ttl: ttl}
}

func workflowKey(conversationID string) string {
	return keyPrefix + conversationID
}

// GetWorkflow implements domain.WorkflowStore.
func (s WorkflowStore) GetWorkflow(ctx context.Context, conversationID string) (domain.Workflow, bool, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("conversation.id", conversationID),
	))
	defer span.End()

	data, err := s.client.Get(spanCtx, workflowKey(conversationID)).Bytes()
	if errors.Is(err, redis.Nil) {
		telemetry.RecordErrorAndStatus(span, nil)
		return domain.Workflow{}, false, nil
	}
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Workflow{}, false, fmt.Errorf("get workflow: %w", err)
	}

	var wf domain.Workflow
	if err := json.Unmarshal(data, &wf); err != nil {
		telemetry.RecordErrorAndStatus(span, err)
		return domain.Workflow{}, false, fmt.Errorf("decode workflow: %w", err)
	}
	return wf, true, nil
}

// SaveWorkflow implements domain.WorkflowStore.
func (s WorkflowStore) SaveWorkflow(ctx context.Context, wf domain.Workflow) error {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("conversation.id", wf.ConversationID),
		attribute.String("workflow.state", string(wf.State)),
	))
	defer span.End()

	if wf.ConversationID == "" {
		err := domain.NewValidationErr("workflow conversation id cannot be empty")
		telemetry.RecordErrorAndStatus(span, err)
		return err
	}

	data, err := json.Marshal(wf)
	if telemetry.RecordErrorAndStatus(span, err) {
		return fmt.Errorf("encode workflow: %w", err)
	}

	err = s.client.Set(spanCtx, workflowKey(wf.ConversationID), data, s.ttl).Err()
	if telemetry.RecordErrorAndStatus(span, err) {
		return fmt.Errorf("save workflow: %w", err)
	}
	return nil
}

// DeleteWorkflow implements domain.WorkflowStore.
func (s WorkflowStore) DeleteWorkflow(ctx context.Context, conversationID string) error {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("conversation.id", conversationID),
	))
	defer span.End()

	err := s.client.Del(spanCtx, workflowKey(conversationID)).Err()
	if telemetry.RecordErrorAndStatus(span, err) {
		return fmt.Errorf("delete workflow: %w", err)
	}
	return nil
}

// InitWorkflowStore registers the Redis domain.WorkflowStore when WORKFLOW_STORE is "redis".
type InitWorkflowStore struct {
	Logger *log.Logger   `resolve:""`
	Kind   string        `config:"WORKFLOW_STORE" default:"memory"`
	Addr   string        `config:"REDIS_ADDR" default:"localhost:6379"`
	DB     int           `config:"REDIS_DB" default:"0"`
	TTL    time.Duration `config:"WORKFLOW_SESSION_TTL" default:"30m"`
	client *redis.Client
}

// Initialize connects to Redis and registers the store.
func (i *InitWorkflowStore) Initialize(ctx context.Context) (context.Context, error) {
	if err := domain.CheckWorkflowStoreKind(i.Kind); err != nil {
		return ctx, err
	}
	if i.Kind != "redis" {
		return ctx, nil
	}

	i.client = redis.NewClient(&redis.Options{Addr: i.Addr, DB: i.DB})
	if err := i.client.Ping(ctx).Err(); err != nil {
		_ = i.client.Close()
		i.client = nil
		return ctx, fmt.Errorf("connect to redis at %s: %w", i.Addr, err)
	}

	i.Logger.Printf("WorkflowStore: using redis at %s", i.Addr)
	depend.Register[domain.WorkflowStore](NewWorkflowStore(i.client, i.TTL))
	return ctx, nil
}

// Close closes the Redis client.
func (i *InitWorkflowStore) Close() {
	if i.client == nil {
		return
	}
	if err := i.client.Close(); err != nil {
		i.Logger.Printf("WorkflowStore: failed to close redis client: %v", err)
	}
}
