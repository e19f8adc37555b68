package http

import (
	"errors"

	"github.com/cleitonmarx/symbiont-mcp-agent/internal/adapters/inbound/http/gen"
	"github.com/cleitonmarx/symbiont-mcp-agent/internal/common"
	"github.com/cleitonmarx/symbiont-mcp-agent/internal/domain"
)

func toError(err error) gen.ErrorResp {
	errResp := gen.ErrorResp{}

	var (
		validationErr *domain.ValidationErr
		notFoundErr   *domain.NotFoundErr
	)
	switch {
	case errors.As(err, &validationErr):
		errResp.Error.Code = gen.BADREQUEST
		errResp.Error.Message = validationErr.Error()
	case errors.As(err, &notFoundErr),
		errors.Is(err, domain.ErrToolNotFound),
		errors.Is(err, domain.ErrWorkflowNotFound):
		errResp.Error.Code = gen.NOTFOUND
		errResp.Error.Message = err.Error()
	case errors.Is(err, domain.ErrProviderUnavailable):
		errResp.Error.Code = gen.PROVIDERUNAVAILABLE
		errResp.Error.Message = err.Error()
	case errors.Is(err, domain.ErrInvocation):
		errResp.Error.Code = gen.TOOLINVOCATIONFAILED
		errResp.Error.Message = err.Error()
	default:
		errResp.Error.Code = gen.INTERNALERROR
		errResp.Error.Message = "internal server error"
	}
	return errResp
}

func toChatResp(r domain.AgentResponse) gen.ChatResp {
	resp := gen.ChatResp{
		ConversationId: r.ConversationID,
		Type:           gen.AgentResponseType(r.Type),
		Content:        r.Content,
	}
	if r.ToolName != "" {
		resp.ToolName = common.Ptr(r.ToolName)
	}
	if len(r.Parameters) > 0 {
		resp.Parameters = common.Ptr(map[string]any(r.Parameters))
	}
	if len(r.Missing) > 0 {
		resp.MissingParameters = common.Ptr(r.Missing)
	}
	if r.Result != nil {
		resp.Result = common.Ptr(toToolResult(*r.Result))
	}
	return resp
}

func toTool(t domain.ToolDescriptor) gen.Tool {
	tool := gen.Tool{
		Name:        t.Name,
		Description: t.Description,
		ProviderId:  t.ProviderID,
	}
	if t.Schema != nil {
		tool.InputSchema = t.Schema
	}
	return tool
}

func toToolResult(r domain.ToolResult) gen.ToolResult {
	content := make([]gen.ToolContent, len(r.Content))
	for i, c := range r.Content {
		content[i] = gen.ToolContent{Type: c.Type}
		if c.Text != "" {
			content[i].Text = common.Ptr(c.Text)
		}
		if c.MIMEType != "" {
			content[i].MimeType = common.Ptr(c.MIMEType)
		}
		if len(c.Data) > 0 {
			content[i].Data = common.Ptr(c.Data)
		}
	}
	return gen.ToolResult{
		Content:           content,
		StructuredContent: r.Structured,
		IsError:           r.IsError,
	}
}

func toWorkflowResp(r domain.WorkflowResponse) gen.WorkflowResp {
	resp := gen.WorkflowResp{
		IsCompleted: r.IsCompleted,
		State:       gen.WorkflowState(r.State),
	}
	if r.Prompt != "" {
		resp.Prompt = common.Ptr(r.Prompt)
	}
	if r.Result != nil {
		resp.Result = common.Ptr(map[string]any(r.Result))
	}
	if len(r.Missing) > 0 {
		resp.MissingParameters = common.Ptr(r.Missing)
	}
	return resp
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
