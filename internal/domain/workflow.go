package domain

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// WorkflowState is the lifecycle state of a slot-filling workflow.
type WorkflowState string

const (
	WorkflowState_Collecting WorkflowState = "COLLECTING"
	WorkflowState_Completed  WorkflowState = "COMPLETED"
	WorkflowState_Cancelled  WorkflowState = "CANCELLED"
)

// IsTerminal reports whether no further transition is possible.
func (s WorkflowState) IsTerminal() bool {
	return s == WorkflowState_Completed || s == WorkflowState_Cancelled
}

// Workflow gathers the arguments of one tool call over several conversation turns.
type Workflow struct {
	ID             uuid.UUID           `json:"id"`
	ConversationID string              `json:"conversation_id"`
	ToolName       string              `json:"tool_name"`
	ProviderID     string              `json:"provider_id"`
	State          WorkflowState       `json:"state"`
	Collected      CollectedParameters `json:"collected"`
	// Summary is the confirmation produced on completion, echoed on later input.
	Summary   string    `json:"summary,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewWorkflow starts a workflow for the given tool in the COLLECTING state.
func NewWorkflow(conversationID string, tool ToolDescriptor, seed map[string]any, now time.Time) Workflow {
	return Workflow{
		ID:             uuid.New(),
		ConversationID: conversationID,
		ToolName:       tool.Name,
		ProviderID:     tool.ProviderID,
		State:          WorkflowState_Collecting,
		Collected:      CollectedParameters{}.Merge(seed, tool),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// Complete moves a collecting workflow to COMPLETED. Terminal workflows are left untouched.
func (w *Workflow) Complete(summary string, now time.Time) bool {
	if w.State != WorkflowState_Collecting {
		return false
	}
	w.State = WorkflowState_Completed
	w.Summary = summary
	w.UpdatedAt = now
	return true
}

// Cancel moves a collecting workflow to CANCELLED. Terminal workflows are left untouched.
func (w *Workflow) Cancel(summary string, now time.Time) bool {
	if w.State != WorkflowState_Collecting {
		return false
	}
	w.State = WorkflowState_Cancelled
	w.Summary = summary
	w.UpdatedAt = now
	return true
}

// TerminalResponse is the response repeated for any input once the workflow is terminal.
// Both terminal states report completion; only COMPLETED carries a result.
func (w Workflow) TerminalResponse() WorkflowResponse {
	resp := WorkflowResponse{
		Prompt:      w.Summary,
		IsCompleted: w.State.IsTerminal(),
		State:       w.State,
	}
	if w.State == WorkflowState_Completed {
		resp.Result = w.Collected.Clone()
	}
	return resp
}

// WorkflowResponse is the outcome of feeding one utterance into a workflow.
type WorkflowResponse struct {
	Prompt      string              `json:"prompt,omitempty"`
	IsCompleted bool                `json:"isCompleted"`
	Result      CollectedParameters `json:"result"`
	Missing     []string            `json:"missingParameters,omitempty"`
	State       WorkflowState       `json:"state"`
}

// WorkflowStore persists one workflow per conversation.
type WorkflowStore interface {
	// GetWorkflow returns the workflow of the conversation and whether one exists.
	GetWorkflow(ctx context.Context, conversationID string) (Workflow, bool, error)

	// SaveWorkflow creates or replaces the workflow of its conversation.
	SaveWorkflow(ctx context.Context, wf Workflow) error

	// DeleteWorkflow removes the workflow of the conversation, if any.
	DeleteWorkflow(ctx context.Context, conversationID string) error
}

// CheckWorkflowStoreKind rejects WORKFLOW_STORE values that no store implements.
func CheckWorkflowStoreKind(kind string) error {
	switch kind {
	case "memory", "redis":
		return nil
	}
	return NewConfigErr("WORKFLOW_STORE", fmt.Sprintf("unknown workflow store %q, expected memory or redis", kind))
}
