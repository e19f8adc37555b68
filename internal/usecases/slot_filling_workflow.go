package usecases

import (
	"context"
	"fmt"
	"log"

	"github.com/cleitonmarx/symbiont-mcp-agent/internal/domain"
	"github.com/cleitonmarx/symbiont-mcp-agent/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	apologyPromptFormat    = "我在尝试理解您的信息时遇到了点问题。我们能继续吗？请告诉我关于%s的细节。"
	collectedPrefixFormat  = "好的，我已经记录了：\n%s\n\n"
	completedSummaryFormat = "好的，%s 所需的信息已收集完整：\n%s"
	cancelledSummaryFormat = "已取消 %s 的参数收集。"
)

// SlotFillingWorkflow drives one workflow turn by turn until every required parameter is known.
type SlotFillingWorkflow interface {
	// ProcessInput feeds one utterance into the workflow and returns its new snapshot.
	ProcessInput(ctx context.Context, wf domain.Workflow, utterance string) (domain.Workflow, domain.WorkflowResponse)

	// Cancel moves a collecting workflow to CANCELLED.
	Cancel(ctx context.Context, wf domain.Workflow) (domain.Workflow, domain.WorkflowResponse)
}

// SlotFillingWorkflowImpl is the implementation of the SlotFillingWorkflow use case.
type SlotFillingWorkflowImpl struct {
	catalog      domain.ToolCatalog
	extractor    domain.ParameterExtractor
	prompts      domain.PromptGenerator
	timeProvider domain.CurrentTimeProvider
	logger       *log.Logger
}

var _ SlotFillingWorkflow = SlotFillingWorkflowImpl{}

// NewSlotFillingWorkflowImpl creates a new SlotFillingWorkflowImpl.
func NewSlotFillingWorkflowImpl(
	catalog domain.ToolCatalog,
	extractor domain.ParameterExtractor,
	prompts domain.PromptGenerator,
	timeProvider domain.CurrentTimeProvider,
	logger *log.Logger,
) SlotFillingWorkflowImpl {
	return SlotFillingWorkflowImpl{
		catalog:      catalog,
		extractor:    extractor,
		prompts:      prompts,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// ProcessInput implements SlotFillingWorkflow. Terminal workflows answer with their final
// response without any extraction. A failed extraction keeps the workflow as it was.
func (sf SlotFillingWorkflowImpl) ProcessInput(ctx context.Context, wf domain.Workflow, utterance string) (domain.Workflow, domain.WorkflowResponse) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("workflow.id", wf.ID.String()),
		attribute.String("workflow.state", string(wf.State)),
		attribute.String("tool.name", wf.ToolName),
	))
	defer span.End()

	if wf.State.IsTerminal() {
		return wf, wf.TerminalResponse()
	}

	tool, ok := sf.catalog.LookupOn(wf.ProviderID, wf.ToolName)
	if !ok {
		tool = domain.ToolDescriptor{Name: wf.ToolName, ProviderID: wf.ProviderID}
	}
	missing := wf.Collected.MissingRequired(tool)

	result, err := sf.extractor.Extract(spanCtx, domain.ExtractionRequest{
		Utterance: utterance,
		Tool:      tool,
		Collected: wf.Collected,
		Missing:   missing,
	})
	if err != nil {
		telemetry.RecordErrorAndStatus(span, err)
		sf.logger.Printf("SlotFillingWorkflow: extraction failed for %q: %v", wf.ToolName, err)
		return wf, domain.WorkflowResponse{
			Prompt:  fmt.Sprintf(apologyPromptFormat, wf.ToolName),
			Result:  wf.Collected.Clone(),
			Missing: missing,
			State:   wf.State,
		}
	}

	now := sf.timeProvider.Now()
	wf.Collected = result.Parameters.NormalizeDates(tool, now)
	wf.UpdatedAt = now

	missing = wf.Collected.MissingRequired(tool)
	span.SetAttributes(attribute.StringSlice("parameters.missing", missing))

	if len(missing) == 0 {
		wf.Complete(fmt.Sprintf(completedSummaryFormat, wf.ToolName, wf.Collected.Describe(tool)), now)
		RecordWorkflowTransition(spanCtx, string(wf.State))
		return wf, wf.TerminalResponse()
	}

	prompt, err := sf.prompts.GeneratePrompt(spanCtx, domain.PromptRequest{
		Tool:      tool,
		Collected: wf.Collected,
		Missing:   missing,
	})
	if err != nil {
		sf.logger.Printf("SlotFillingWorkflow: prompt generation failed for %q: %v", wf.ToolName, err)
		prompt = staticPrompt(missing)
	}
	if described := wf.Collected.Describe(tool); described != "" {
		prompt = fmt.Sprintf(collectedPrefixFormat, described) + prompt
	}

	RecordWorkflowTransition(spanCtx, string(wf.State))
	return wf, domain.WorkflowResponse{
		Prompt:  prompt,
		Result:  wf.Collected.Clone(),
		Missing: missing,
		State:   wf.State,
	}
}

// Cancel implements SlotFillingWorkflow. Terminal workflows are returned unchanged.
func (sf SlotFillingWorkflowImpl) Cancel(ctx context.Context, wf domain.Workflow) (domain.Workflow, domain.WorkflowResponse) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("workflow.id", wf.ID.String()),
	))
	defer span.End()

	if wf.Cancel(fmt.Sprintf(cancelledSummaryFormat, wf.ToolName), sf.timeProvider.Now()) {
		RecordWorkflowTransition(spanCtx, string(wf.State))
	}
	return wf, wf.TerminalResponse()
}

// InitSlotFillingWorkflow registers the SlotFillingWorkflow use case.
type InitSlotFillingWorkflow struct {
	Catalog      domain.ToolCatalog         `resolve:""`
	Extractor    domain.ParameterExtractor  `resolve:""`
	Prompts      domain.PromptGenerator     `resolve:""`
	TimeProvider domain.CurrentTimeProvider `resolve:""`
	Logger       *log.Logger                `resolve:""`
}

// Initialize registers SlotFillingWorkflowImpl in the dependency container.
func (i InitSlotFillingWorkflow) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[SlotFillingWorkflow](NewSlotFillingWorkflowImpl(i.Catalog, i.Extractor, i.Prompts, i.TimeProvider, i.Logger))
	return ctx, nil
}
