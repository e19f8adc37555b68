package usecases

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/cleitonmarx/symbiont-mcp-agent/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/jsonschema-go/jsonschema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type processMessageMocks struct {
	catalog    *domain.MockToolCatalog
	classifier *domain.MockIntentClassifier
	chat       *domain.MockChatResponder
	workflow   *MockSlotFillingWorkflow
	store      *domain.MockWorkflowStore
}

func TestProcessMessageImpl_Execute(t *testing.T) {
	tools := []domain.ToolDescriptor{calculatorTool(), meetingTool()}

	active := collectingWorkflow(domain.CollectedParameters{"attendees": []any{"张三"}})

	done := active
	done.Collected = domain.CollectedParameters{"attendees": []any{"张三"}, "date": "2026-10-19", "time": "15:00"}
	done.Complete("好的，信息已收集完整", fixedNow)
	doneResp := done.TerminalResponse()

	invalid := active
	invalid.Collected = domain.CollectedParameters{"attendees": "张三", "date": "2026-10-19", "time": "15:00"}
	invalid.Complete("", fixedNow)

	cancelled := active
	cancelled.Cancel("已取消 book_meeting 的参数收集。", fixedNow)

	tests := map[string]struct {
		message         string
		setExpectations func(m processMessageMocks)
		expected        domain.AgentResponse
		expectedPrefix  string
		expectedErr     error
	}{
		"empty-message": {
			message:     "   ",
			expectedErr: &domain.ValidationErr{},
		},
		"store-error": {
			message: "你好",
			setExpectations: func(m processMessageMocks) {
				m.store.EXPECT().GetWorkflow(mock.Anything, "conv-1").Return(domain.Workflow{}, false, errors.New("redis down")).Once()
			},
			expectedErr: errors.New("failed to load workflow: redis down"),
		},
		"conversation-reply": {
			message: "你好",
			setExpectations: func(m processMessageMocks) {
				m.store.EXPECT().GetWorkflow(mock.Anything, "conv-1").Return(domain.Workflow{}, false, nil).Once()
				m.catalog.EXPECT().ListTools("").Return(tools).Once()
				m.classifier.EXPECT().Classify(mock.Anything, "你好", tools).
					Return(domain.IntentResult{Kind: domain.IntentKind_Conversation}, nil).Once()
				m.chat.EXPECT().Reply(mock.Anything, "你好").Return("你好！", nil).Once()
			},
			expected: domain.AgentResponse{
				ConversationID: "conv-1",
				Type:           domain.AgentResponseType_Conversation,
				Content:        "你好！",
			},
		},
		"classified-tool-missing-from-catalog": {
			message: "send_email to bob",
			setExpectations: func(m processMessageMocks) {
				m.store.EXPECT().GetWorkflow(mock.Anything, "conv-1").Return(domain.Workflow{}, false, nil).Once()
				m.catalog.EXPECT().ListTools("").Return(tools).Once()
				m.classifier.EXPECT().Classify(mock.Anything, mock.Anything, mock.Anything).
					Return(domain.IntentResult{Kind: domain.IntentKind_Tool, ToolName: "send_email"}, nil).Once()
				m.catalog.EXPECT().Lookup("send_email").Return(domain.ToolDescriptor{}, false).Once()
				m.chat.EXPECT().Reply(mock.Anything, "send_email to bob").Return("我理解您想进行对话。send_email to bob", nil).Once()
			},
			expected: domain.AgentResponse{
				ConversationID: "conv-1",
				Type:           domain.AgentResponseType_Conversation,
				Content:        "我理解您想进行对话。send_email to bob",
			},
		},
		"tool-intent-starts-workflow": {
			message: "预约会议，和张三一起",
			setExpectations: func(m processMessageMocks) {
				m.store.EXPECT().GetWorkflow(mock.Anything, "conv-1").Return(domain.Workflow{}, false, nil).Once()
				m.catalog.EXPECT().ListTools("").Return(tools).Once()
				m.classifier.EXPECT().Classify(mock.Anything, mock.Anything, mock.Anything).
					Return(domain.IntentResult{
						Kind:       domain.IntentKind_Tool,
						ToolName:   "book_meeting",
						Parameters: map[string]any{"attendees": []any{"张三"}},
					}, nil).Once()
				m.catalog.EXPECT().Lookup("book_meeting").Return(meetingTool(), true).Once()
				m.workflow.EXPECT().
					ProcessInput(mock.Anything, mock.MatchedBy(func(wf domain.Workflow) bool {
						return wf.ConversationID == "conv-1" &&
							wf.ProviderID == "calendar" &&
							wf.State == domain.WorkflowState_Collecting &&
							assert.ObjectsAreEqual([]any{"张三"}, wf.Collected["attendees"])
					}), "预约会议，和张三一起").
					RunAndReturn(func(_ context.Context, wf domain.Workflow, _ string) (domain.Workflow, domain.WorkflowResponse) {
						return wf, domain.WorkflowResponse{
							Prompt:  "会议安排在哪一天？",
							Result:  wf.Collected.Clone(),
							Missing: []string{"date", "time"},
							State:   wf.State,
						}
					}).Once()
				m.store.EXPECT().SaveWorkflow(mock.Anything, mock.Anything).Return(nil).Once()
			},
			expected: domain.AgentResponse{
				ConversationID: "conv-1",
				Type:           domain.AgentResponseType_ParameterRequest,
				Content:        "会议安排在哪一天？",
				ToolName:       "book_meeting",
				Parameters:     domain.CollectedParameters{"attendees": []any{"张三"}},
				Missing:        []string{"date", "time"},
			},
		},
		"active-workflow-completes-and-executes": {
			message: "明天下午3点",
			setExpectations: func(m processMessageMocks) {
				m.store.EXPECT().GetWorkflow(mock.Anything, "conv-1").Return(active, true, nil).Once()
				m.workflow.EXPECT().ProcessInput(mock.Anything, active, "明天下午3点").Return(done, doneResp).Once()
				m.store.EXPECT().DeleteWorkflow(mock.Anything, "conv-1").Return(nil).Once()
				m.catalog.EXPECT().LookupOn("calendar", "book_meeting").Return(meetingTool(), true).Once()
				m.catalog.EXPECT().ExecuteOn(mock.Anything, "calendar", "book_meeting", map[string]any(doneResp.Result)).
					Return(domain.ToolResult{Content: []domain.ToolContent{{Type: "text", Text: "booked"}}}, nil).Once()
			},
			expected: domain.AgentResponse{
				ConversationID: "conv-1",
				Type:           domain.AgentResponseType_ToolExecution,
				Content:        "好的，信息已收集完整\n\n工具执行成功：booked",
				ToolName:       "book_meeting",
				Parameters:     doneResp.Result,
				Result:         &domain.ToolResult{Content: []domain.ToolContent{{Type: "text", Text: "booked"}}},
			},
		},
		"execution-failure-is-conversational": {
			message: "明天下午3点",
			setExpectations: func(m processMessageMocks) {
				m.store.EXPECT().GetWorkflow(mock.Anything, "conv-1").Return(active, true, nil).Once()
				m.workflow.EXPECT().ProcessInput(mock.Anything, active, mock.Anything).Return(done, doneResp).Once()
				m.store.EXPECT().DeleteWorkflow(mock.Anything, "conv-1").Return(nil).Once()
				m.catalog.EXPECT().LookupOn("calendar", "book_meeting").Return(meetingTool(), true).Once()
				m.catalog.EXPECT().ExecuteOn(mock.Anything, "calendar", "book_meeting", mock.Anything).
					Return(domain.ToolResult{}, errors.New("boom")).Once()
			},
			expected: domain.AgentResponse{
				ConversationID: "conv-1",
				Type:           domain.AgentResponseType_Conversation,
				Content:        "执行工具时出错：boom",
				ToolName:       "book_meeting",
				Parameters:     doneResp.Result,
			},
		},
		"tool-reported-error-is-conversational": {
			message: "明天下午3点",
			setExpectations: func(m processMessageMocks) {
				m.store.EXPECT().GetWorkflow(mock.Anything, "conv-1").Return(active, true, nil).Once()
				m.workflow.EXPECT().ProcessInput(mock.Anything, active, mock.Anything).Return(done, doneResp).Once()
				m.store.EXPECT().DeleteWorkflow(mock.Anything, "conv-1").Return(nil).Once()
				m.catalog.EXPECT().LookupOn("calendar", "book_meeting").Return(meetingTool(), true).Once()
				m.catalog.EXPECT().ExecuteOn(mock.Anything, "calendar", "book_meeting", mock.Anything).
					Return(domain.ToolResult{IsError: true, Content: []domain.ToolContent{{Type: "text", Text: "room taken"}}}, nil).Once()
			},
			expected: domain.AgentResponse{
				ConversationID: "conv-1",
				Type:           domain.AgentResponseType_Conversation,
				Content:        "执行工具时出错：room taken",
				ToolName:       "book_meeting",
				Parameters:     doneResp.Result,
				Result:         &domain.ToolResult{IsError: true, Content: []domain.ToolContent{{Type: "text", Text: "room taken"}}},
			},
		},
		"invalid-arguments-are-not-executed": {
			message: "明天下午3点",
			setExpectations: func(m processMessageMocks) {
				m.store.EXPECT().GetWorkflow(mock.Anything, "conv-1").Return(active, true, nil).Once()
				m.workflow.EXPECT().ProcessInput(mock.Anything, active, mock.Anything).Return(invalid, invalid.TerminalResponse()).Once()
				m.catalog.EXPECT().LookupOn("calendar", "book_meeting").Return(meetingTool(), true).Once()
				m.store.EXPECT().
					SaveWorkflow(mock.Anything, mock.MatchedBy(func(wf domain.Workflow) bool {
						return wf.ID == active.ID &&
							wf.State == domain.WorkflowState_Collecting &&
							assert.ObjectsAreEqual(invalid.Collected, wf.Collected)
					})).
					Return(nil).Once()
			},
			expectedPrefix: "执行工具时出错：invalid arguments for tool \"book_meeting\"",
		},
		"cancel-keyword-cancels-active-workflow": {
			message: "取消",
			setExpectations: func(m processMessageMocks) {
				m.store.EXPECT().GetWorkflow(mock.Anything, "conv-1").Return(active, true, nil).Once()
				m.workflow.EXPECT().Cancel(mock.Anything, active).Return(cancelled, cancelled.TerminalResponse()).Once()
				m.store.EXPECT().DeleteWorkflow(mock.Anything, "conv-1").Return(nil).Once()
			},
			expected: domain.AgentResponse{
				ConversationID: "conv-1",
				Type:           domain.AgentResponseType_Cancelled,
				Content:        "已取消 book_meeting 的参数收集。",
				ToolName:       "book_meeting",
			},
		},
		"stored-terminal-workflow-is-discarded": {
			message: "你好",
			setExpectations: func(m processMessageMocks) {
				m.store.EXPECT().GetWorkflow(mock.Anything, "conv-1").Return(done, true, nil).Once()
				m.store.EXPECT().DeleteWorkflow(mock.Anything, "conv-1").Return(nil).Once()
				m.catalog.EXPECT().ListTools("").Return(nil).Once()
				m.classifier.EXPECT().Classify(mock.Anything, "你好", []domain.ToolDescriptor(nil)).
					Return(domain.IntentResult{Kind: domain.IntentKind_Conversation}, nil).Once()
				m.chat.EXPECT().Reply(mock.Anything, "你好").Return("你好！", nil).Once()
			},
			expected: domain.AgentResponse{
				ConversationID: "conv-1",
				Type:           domain.AgentResponseType_Conversation,
				Content:        "你好！",
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			m := processMessageMocks{
				catalog:    domain.NewMockToolCatalog(t),
				classifier: domain.NewMockIntentClassifier(t),
				chat:       domain.NewMockChatResponder(t),
				workflow:   NewMockSlotFillingWorkflow(t),
				store:      domain.NewMockWorkflowStore(t),
			}
			if tt.setExpectations != nil {
				tt.setExpectations(m)
			}
			uc := NewProcessMessageImpl(m.catalog, m.classifier, m.chat, m.workflow, m.store, NewConversationLocks(), fixedClock(t), discardLogger())

			got, err := uc.Execute(context.Background(), "conv-1", tt.message)
			switch {
			case tt.expectedErr != nil:
				var ve *domain.ValidationErr
				if errors.As(tt.expectedErr, &ve) {
					assert.ErrorAs(t, err, &ve)
				} else {
					assert.EqualError(t, err, tt.expectedErr.Error())
				}
			case tt.expectedPrefix != "":
				require.NoError(t, err)
				assert.Equal(t, domain.AgentResponseType_Conversation, got.Type)
				assert.True(t, strings.HasPrefix(got.Content, tt.expectedPrefix), got.Content)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}

func TestProcessMessageImpl_Execute_UndeclaredExtractedKeyIsIgnored(t *testing.T) {
	tool := meetingTool()
	tool.Schema.AdditionalProperties = &jsonschema.Schema{Not: &jsonschema.Schema{}}

	gateway := domain.NewMockCompletionGateway(t)
	gateway.EXPECT().
		Complete(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, req domain.CompletionRequest) (domain.CompletionResponse, error) {
			if !req.JSONResponse {
				return domain.CompletionResponse{}, domain.ErrCompletionTransport
			}
			return domain.CompletionResponse{
				Content: `{"parameters":{"date":"2026-10-19","time":"15:00","location":"A101"},"missingParameters":[]}`,
			}, nil
		})

	active := collectingWorkflow(domain.CollectedParameters{"attendees": []any{"张三"}})
	expectedArgs := map[string]any{"attendees": []any{"张三"}, "date": "2026-10-19", "time": "15:00"}

	catalog := domain.NewMockToolCatalog(t)
	catalog.EXPECT().LookupOn("calendar", "book_meeting").Return(tool, true)
	catalog.EXPECT().ExecuteOn(mock.Anything, "calendar", "book_meeting", expectedArgs).
		Return(domain.ToolResult{Content: []domain.ToolContent{{Type: "text", Text: "booked"}}}, nil).Once()

	store := domain.NewMockWorkflowStore(t)
	store.EXPECT().GetWorkflow(mock.Anything, "conv-1").Return(active, true, nil).Once()
	store.EXPECT().DeleteWorkflow(mock.Anything, "conv-1").Return(nil).Once()

	clock := fixedClock(t)
	sf := NewSlotFillingWorkflowImpl(
		catalog,
		NewParameterExtractorImpl(gateway, clock, discardLogger()),
		NewPromptGeneratorImpl(gateway, discardLogger()),
		clock,
		discardLogger(),
	)
	uc := NewProcessMessageImpl(catalog, domain.NewMockIntentClassifier(t), domain.NewMockChatResponder(t), sf, store, NewConversationLocks(), clock, discardLogger())

	got, err := uc.Execute(context.Background(), "conv-1", "明天下午3点在A101")
	require.NoError(t, err)
	assert.Equal(t, domain.AgentResponseType_ToolExecution, got.Type)
	assert.Equal(t, domain.CollectedParameters(expectedArgs), got.Parameters)
	assert.Contains(t, got.Content, "工具执行成功：booked")
}

func TestProcessMessageImpl_Execute_NewConversationID(t *testing.T) {
	store := domain.NewMockWorkflowStore(t)
	store.EXPECT().GetWorkflow(mock.Anything, mock.Anything).Return(domain.Workflow{}, false, nil).Once()
	catalog := domain.NewMockToolCatalog(t)
	catalog.EXPECT().ListTools("").Return(nil).Once()
	classifier := domain.NewMockIntentClassifier(t)
	classifier.EXPECT().Classify(mock.Anything, mock.Anything, mock.Anything).
		Return(domain.IntentResult{Kind: domain.IntentKind_Conversation}, nil).Once()
	chat := domain.NewMockChatResponder(t)
	chat.EXPECT().Reply(mock.Anything, "hello").Return("hi", nil).Once()

	uc := NewProcessMessageImpl(catalog, classifier, chat, NewMockSlotFillingWorkflow(t), store, NewConversationLocks(), fixedClock(t), discardLogger())

	got, err := uc.Execute(context.Background(), "", "hello")
	require.NoError(t, err)
	assert.Len(t, got.ConversationID, 36)
}

func TestIsCancelRequest(t *testing.T) {
	tests := map[string]struct {
		message  string
		expected bool
	}{
		"chinese":         {message: "取消", expected: true},
		"english-upper":   {message: "Cancel!", expected: true},
		"with-full-stop":  {message: "取消。", expected: true},
		"inside-sentence": {message: "不要取消会议", expected: false},
		"other":           {message: "明天", expected: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expected, isCancelRequest(tt.message))
		})
	}
}

func TestInitProcessMessage_Initialize(t *testing.T) {
	i := InitProcessMessage{}

	_, err := i.Initialize(context.Background())
	assert.NoError(t, err)

	r, err := depend.Resolve[ProcessMessage]()
	assert.NoError(t, err)
	assert.NotNil(t, r)
}
