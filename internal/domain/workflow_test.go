package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewWorkflow(t *testing.T) {
	now := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)
	wf := NewWorkflow("conv-1", meetingTool(), map[string]any{"attendees": "张三"}, now)

	assert.Equal(t, WorkflowState_Collecting, wf.State)
	assert.Equal(t, "book_meeting", wf.ToolName)
	assert.Equal(t, "calendar", wf.ProviderID)
	assert.Equal(t, CollectedParameters{"attendees": []any{"张三"}}, wf.Collected)
	assert.Equal(t, now, wf.CreatedAt)
}

func TestWorkflow_Transitions(t *testing.T) {
	now := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)
	later := now.Add(time.Minute)

	tests := map[string]struct {
		start         WorkflowState
		transition    func(*Workflow) bool
		expectedOk    bool
		expectedState WorkflowState
	}{
		"collecting-to-completed": {
			start:         WorkflowState_Collecting,
			transition:    func(w *Workflow) bool { return w.Complete("done", later) },
			expectedOk:    true,
			expectedState: WorkflowState_Completed,
		},
		"collecting-to-cancelled": {
			start:         WorkflowState_Collecting,
			transition:    func(w *Workflow) bool { return w.Cancel("cancelled", later) },
			expectedOk:    true,
			expectedState: WorkflowState_Cancelled,
		},
		"completed-is-sticky": {
			start:         WorkflowState_Completed,
			transition:    func(w *Workflow) bool { return w.Cancel("cancelled", later) },
			expectedOk:    false,
			expectedState: WorkflowState_Completed,
		},
		"cancelled-is-sticky": {
			start:         WorkflowState_Cancelled,
			transition:    func(w *Workflow) bool { return w.Complete("done", later) },
			expectedOk:    false,
			expectedState: WorkflowState_Cancelled,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			wf := Workflow{State: tt.start, UpdatedAt: now}
			ok := tt.transition(&wf)
			assert.Equal(t, tt.expectedOk, ok)
			assert.Equal(t, tt.expectedState, wf.State)
			assert.True(t, wf.State.IsTerminal())
			if !tt.expectedOk {
				assert.Equal(t, now, wf.UpdatedAt)
			}
		})
	}
}

func TestWorkflow_TerminalResponse(t *testing.T) {
	completed := Workflow{
		State:     WorkflowState_Completed,
		Summary:   "ok",
		Collected: CollectedParameters{"a": 5.0},
	}
	resp := completed.TerminalResponse()
	assert.True(t, resp.IsCompleted)
	assert.Equal(t, "ok", resp.Prompt)
	assert.Equal(t, CollectedParameters{"a": 5.0}, resp.Result)

	cancelled := Workflow{State: WorkflowState_Cancelled, Summary: "bye"}
	resp = cancelled.TerminalResponse()
	assert.True(t, resp.IsCompleted)
	assert.Nil(t, resp.Result)
	assert.Equal(t, WorkflowState_Cancelled, resp.State)
}

func TestCheckWorkflowStoreKind(t *testing.T) {
	tests := map[string]struct {
		kind      string
		expectErr bool
	}{
		"memory":  {kind: "memory"},
		"redis":   {kind: "redis"},
		"unknown": {kind: "postgres", expectErr: true},
		"empty":   {kind: "", expectErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			err := CheckWorkflowStoreKind(tt.kind)
			if !tt.expectErr {
				assert.NoError(t, err)
				return
			}
			var configErr *ConfigErr
			assert.ErrorAs(t, err, &configErr)
			assert.ErrorIs(t, err, ErrConfig)
		})
	}
}
