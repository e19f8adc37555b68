package domain

// AgentResponseType tells how the agent answered one user message.
type AgentResponseType string

const (
	AgentResponseType_Conversation     AgentResponseType = "conversation"
	AgentResponseType_ParameterRequest AgentResponseType = "parameter_request"
	AgentResponseType_ToolExecution    AgentResponseType = "tool_execution"
	AgentResponseType_Cancelled        AgentResponseType = "cancelled"
)

// AgentResponse is the agent's answer to one user message.
type AgentResponse struct {
	ConversationID string              `json:"conversationId"`
	Type           AgentResponseType   `json:"type"`
	Content        string              `json:"content"`
	ToolName       string              `json:"toolName,omitempty"`
	Parameters     CollectedParameters `json:"parameters,omitempty"`
	Missing        []string            `json:"missingParameters,omitempty"`
	Result         *ToolResult         `json:"result,omitempty"`
}
