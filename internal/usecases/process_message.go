package usecases

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/cleitonmarx/symbiont-mcp-agent/internal/domain"
	"github.com/cleitonmarx/symbiont-mcp-agent/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	toolSucceededFormat = "工具执行成功：%s"
	toolFailedFormat    = "执行工具时出错：%s"
)

var cancelKeywords = []string{"取消", "cancel"}

// ProcessMessage defines the interface for answering one user message of a conversation.
type ProcessMessage interface {
	Execute(ctx context.Context, conversationID, message string) (domain.AgentResponse, error)
}

// ProcessMessageImpl routes a message to the active workflow of the conversation or
// classifies it and either replies conversationally or starts a new workflow.
type ProcessMessageImpl struct {
	catalog      domain.ToolCatalog
	classifier   domain.IntentClassifier
	chat         domain.ChatResponder
	workflow     SlotFillingWorkflow
	store        domain.WorkflowStore
	locks        *ConversationLocks
	timeProvider domain.CurrentTimeProvider
	logger       *log.Logger
}

// NewProcessMessageImpl creates a new ProcessMessageImpl instance.
func NewProcessMessageImpl(
	catalog domain.ToolCatalog,
	classifier domain.IntentClassifier,
	chat domain.ChatResponder,
	workflow SlotFillingWorkflow,
	store domain.WorkflowStore,
	locks *ConversationLocks,
	timeProvider domain.CurrentTimeProvider,
	logger *log.Logger,
) *ProcessMessageImpl {
	return &ProcessMessageImpl{
		catalog:      catalog,
		classifier:   classifier,
		chat:         chat,
		workflow:     workflow,
		store:        store,
		locks:        locks,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Execute answers one message. An empty conversation id starts a new conversation.
func (uc *ProcessMessageImpl) Execute(ctx context.Context, conversationID, message string) (domain.AgentResponse, error) {
	if conversationID == "" {
		conversationID = uuid.NewString()
	}
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("conversation.id", conversationID),
	))
	defer span.End()

	message = strings.TrimSpace(message)
	if message == "" {
		err := domain.NewValidationErr("message cannot be empty")
		telemetry.RecordErrorAndStatus(span, err)
		return domain.AgentResponse{}, err
	}

	unlock := uc.locks.Lock(conversationID)
	defer unlock()

	resp, err := uc.process(spanCtx, conversationID, message)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.AgentResponse{}, err
	}
	resp.ConversationID = conversationID
	span.SetAttributes(attribute.String("response.type", string(resp.Type)))
	return resp, nil
}

func (uc *ProcessMessageImpl) process(ctx context.Context, conversationID, message string) (domain.AgentResponse, error) {
	wf, found, err := uc.store.GetWorkflow(ctx, conversationID)
	if err != nil {
		return domain.AgentResponse{}, fmt.Errorf("failed to load workflow: %w", err)
	}

	if found && wf.State.IsTerminal() {
		if err := uc.store.DeleteWorkflow(ctx, conversationID); err != nil {
			return domain.AgentResponse{}, err
		}
		found = false
	}

	if found {
		if isCancelRequest(message) {
			return uc.cancel(ctx, wf)
		}
		return uc.advance(ctx, wf, message)
	}

	intent, err := uc.classifier.Classify(ctx, message, uc.catalog.ListTools(""))
	if err != nil {
		uc.logger.Printf("ProcessMessage: intent classification failed: %v", err)
		intent = domain.IntentResult{Kind: domain.IntentKind_Conversation}
	}

	if intent.Kind == domain.IntentKind_Tool {
		if tool, ok := uc.catalog.Lookup(intent.ToolName); ok {
			wf := domain.NewWorkflow(conversationID, tool, intent.Parameters, uc.timeProvider.Now())
			RecordWorkflowTransition(ctx, string(wf.State))
			return uc.advance(ctx, wf, message)
		}
		uc.logger.Printf("ProcessMessage: classified tool %q is not in the catalog", intent.ToolName)
	}

	reply, err := uc.chat.Reply(ctx, message)
	if err != nil {
		return domain.AgentResponse{}, err
	}
	return domain.AgentResponse{
		Type:    domain.AgentResponseType_Conversation,
		Content: reply,
	}, nil
}

// advance runs one workflow turn and executes the tool once the workflow completes.
func (uc *ProcessMessageImpl) advance(ctx context.Context, current domain.Workflow, message string) (domain.AgentResponse, error) {
	wf, resp := uc.workflow.ProcessInput(ctx, current, message)

	if resp.State != domain.WorkflowState_Completed {
		if err := uc.store.SaveWorkflow(ctx, wf); err != nil {
			return domain.AgentResponse{}, err
		}
		return domain.AgentResponse{
			Type:       domain.AgentResponseType_ParameterRequest,
			Content:    resp.Prompt,
			ToolName:   wf.ToolName,
			Parameters: resp.Result,
			Missing:    resp.Missing,
		}, nil
	}

	tool, ok := uc.catalog.LookupOn(wf.ProviderID, wf.ToolName)
	if !ok {
		if err := uc.store.DeleteWorkflow(ctx, wf.ConversationID); err != nil {
			return domain.AgentResponse{}, err
		}
		return uc.failed(wf, resp, fmt.Errorf("%w: %q", domain.ErrToolNotFound, wf.ToolName)), nil
	}

	// Arguments the provider would reject keep the workflow collecting so they can be corrected.
	if err := tool.ValidateArguments(resp.Result); err != nil {
		current.Collected = wf.Collected.Clone()
		current.UpdatedAt = wf.UpdatedAt
		if err := uc.store.SaveWorkflow(ctx, current); err != nil {
			return domain.AgentResponse{}, err
		}
		return uc.failed(wf, resp, err), nil
	}

	if err := uc.store.DeleteWorkflow(ctx, wf.ConversationID); err != nil {
		return domain.AgentResponse{}, err
	}
	return uc.execute(ctx, wf, resp), nil
}

// execute runs the tool on the provider that owns it. Failures become a conversational answer.
func (uc *ProcessMessageImpl) execute(ctx context.Context, wf domain.Workflow, resp domain.WorkflowResponse) domain.AgentResponse {
	result, err := uc.catalog.ExecuteOn(ctx, wf.ProviderID, wf.ToolName, resp.Result)
	if err != nil {
		return uc.failed(wf, resp, err)
	}
	if result.IsError {
		out := uc.failed(wf, resp, errors.New(result.Text()))
		out.Result = &result
		return out
	}

	content := fmt.Sprintf(toolSucceededFormat, result.Text())
	if resp.Prompt != "" {
		content = resp.Prompt + "\n\n" + content
	}
	return domain.AgentResponse{
		Type:       domain.AgentResponseType_ToolExecution,
		Content:    content,
		ToolName:   wf.ToolName,
		Parameters: resp.Result,
		Result:     &result,
	}
}

func (uc *ProcessMessageImpl) failed(wf domain.Workflow, resp domain.WorkflowResponse, err error) domain.AgentResponse {
	uc.logger.Printf("ProcessMessage: executing %q failed: %v", wf.ToolName, err)
	return domain.AgentResponse{
		Type:       domain.AgentResponseType_Conversation,
		Content:    fmt.Sprintf(toolFailedFormat, err.Error()),
		ToolName:   wf.ToolName,
		Parameters: resp.Result,
	}
}

func (uc *ProcessMessageImpl) cancel(ctx context.Context, wf domain.Workflow) (domain.AgentResponse, error) {
	wf, resp := uc.workflow.Cancel(ctx, wf)
	if err := uc.store.DeleteWorkflow(ctx, wf.ConversationID); err != nil {
		return domain.AgentResponse{}, err
	}
	return domain.AgentResponse{
		Type:     domain.AgentResponseType_Cancelled,
		Content:  resp.Prompt,
		ToolName: wf.ToolName,
	}, nil
}

// isCancelRequest reports whether the whole message is a cancel keyword.
func isCancelRequest(message string) bool {
	m := strings.ToLower(strings.Trim(message, " \t\r\n。.!！"))
	for _, k := range cancelKeywords {
		if m == k {
			return true
		}
	}
	return false
}

// InitProcessMessage is the initializer for the ProcessMessage usecase.
type InitProcessMessage struct {
	Catalog      domain.ToolCatalog         `resolve:""`
	Classifier   domain.IntentClassifier    `resolve:""`
	Chat         domain.ChatResponder       `resolve:""`
	Workflow     SlotFillingWorkflow        `resolve:""`
	Store        domain.WorkflowStore       `resolve:""`
	Locks        *ConversationLocks         `resolve:""`
	TimeProvider domain.CurrentTimeProvider `resolve:""`
	Logger       *log.Logger                `resolve:""`
}

// Initialize registers the ProcessMessage usecase in the dependency container.
func (i InitProcessMessage) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[ProcessMessage](NewProcessMessageImpl(
		i.Catalog, i.Classifier, i.Chat, i.Workflow, i.Store, i.Locks, i.TimeProvider, i.Logger,
	))
	return ctx, nil
}
