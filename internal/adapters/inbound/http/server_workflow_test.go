package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cleitonmarx/symbiont-mcp-agent/internal/adapters/inbound/http/gen"
	"github.com/cleitonmarx/symbiont-mcp-agent/internal/common"
	"github.com/cleitonmarx/symbiont-mcp-agent/internal/domain"
	"github.com/cleitonmarx/symbiont-mcp-agent/internal/usecases"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAgentServer_CancelWorkflow(t *testing.T) {
	tests := map[string]struct {
		setupUsecases  func(*usecases.MockCancelWorkflow)
		expectedStatus int
		expectedResp   *gen.WorkflowResp
		expectedCode   gen.ErrorCode
	}{
		"cancelled": {
			setupUsecases: func(m *usecases.MockCancelWorkflow) {
				m.EXPECT().
					Execute(mock.Anything, "conv-1").
					Return(domain.WorkflowResponse{Prompt: "已取消 book_meeting 的参数收集。", IsCompleted: true, State: domain.WorkflowState_Cancelled}, nil).
					Once()
			},
			expectedStatus: http.StatusOK,
			expectedResp: &gen.WorkflowResp{
				Prompt:      common.Ptr("已取消 book_meeting 的参数收集。"),
				IsCompleted: true,
				State:       gen.WorkflowStateCancelled,
			},
		},
		"no-active-workflow": {
			setupUsecases: func(m *usecases.MockCancelWorkflow) {
				m.EXPECT().
					Execute(mock.Anything, "conv-1").
					Return(domain.WorkflowResponse{}, fmt.Errorf("%w: conversation %q", domain.ErrWorkflowNotFound, "conv-1")).
					Once()
			},
			expectedStatus: http.StatusNotFound,
			expectedCode:   gen.NOTFOUND,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			cancelWorkflow := usecases.NewMockCancelWorkflow(t)
			tt.setupUsecases(cancelWorkflow)

			server := AgentServer{CancelWorkflowUseCase: cancelWorkflow}

			req := httptest.NewRequest(http.MethodDelete, "/api/v1/conversations/conv-1/workflow", nil)
			w := httptest.NewRecorder()
			server.Handler().ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedResp != nil {
				var resp gen.WorkflowResp
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, *tt.expectedResp, resp)
			}
			if tt.expectedCode != "" {
				var resp gen.ErrorResp
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedCode, resp.Error.Code)
			}
		})
	}
}
