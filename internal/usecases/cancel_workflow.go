package usecases

import (
	"context"
	"fmt"

	"github.com/cleitonmarx/symbiont-mcp-agent/internal/domain"
	"github.com/cleitonmarx/symbiont-mcp-agent/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// CancelWorkflow defines the interface for the external cancel signal of a workflow.
type CancelWorkflow interface {
	Execute(ctx context.Context, conversationID string) (domain.WorkflowResponse, error)
}

// CancelWorkflowImpl is the implementation of the CancelWorkflow use case.
type CancelWorkflowImpl struct {
	store    domain.WorkflowStore
	workflow SlotFillingWorkflow
	locks    *ConversationLocks
}

// NewCancelWorkflowImpl creates a new instance of CancelWorkflowImpl.
func NewCancelWorkflowImpl(store domain.WorkflowStore, workflow SlotFillingWorkflow, locks *ConversationLocks) *CancelWorkflowImpl {
	return &CancelWorkflowImpl{store: store, workflow: workflow, locks: locks}
}

// Execute cancels the active workflow of the conversation and forgets it.
func (uc *CancelWorkflowImpl) Execute(ctx context.Context, conversationID string) (domain.WorkflowResponse, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("conversation.id", conversationID),
	))
	defer span.End()

	unlock := uc.locks.Lock(conversationID)
	defer unlock()

	wf, found, err := uc.store.GetWorkflow(spanCtx, conversationID)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.WorkflowResponse{}, err
	}
	if !found {
		err := fmt.Errorf("%w: conversation %q", domain.ErrWorkflowNotFound, conversationID)
		telemetry.RecordErrorAndStatus(span, err)
		return domain.WorkflowResponse{}, err
	}

	_, resp := uc.workflow.Cancel(spanCtx, wf)
	if err := uc.store.DeleteWorkflow(spanCtx, conversationID); telemetry.RecordErrorAndStatus(span, err) {
		return domain.WorkflowResponse{}, err
	}
	return resp, nil
}

// InitCancelWorkflow is the initializer for the CancelWorkflow use case.
type InitCancelWorkflow struct {
	Store    domain.WorkflowStore `resolve:""`
	Workflow SlotFillingWorkflow  `resolve:""`
	Locks    *ConversationLocks   `resolve:""`
}

// Initialize registers the CancelWorkflow use case in the dependency container.
func (i InitCancelWorkflow) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[CancelWorkflow](NewCancelWorkflowImpl(i.Store, i.Workflow, i.Locks))
	return ctx, nil
}
