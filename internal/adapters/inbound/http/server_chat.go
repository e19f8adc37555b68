package http

import (
	"encoding/json"
	"net/http"

	"github.com/cleitonmarx/symbiont-mcp-agent/internal/adapters/inbound/http/gen"
)

// Send one message to the agent
// (POST /api/v1/chat)
func (api AgentServer) Chat(w http.ResponseWriter, r *http.Request) {
	var req gen.ChatJSONRequestBody
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid request body")
		return
	}

	conversationID := ""
	if req.ConversationId != nil {
		conversationID = *req.ConversationId
	}

	resp, err := api.ProcessMessageUseCase.Execute(r.Context(), conversationID, req.Message)
	if err != nil {
		api.Logger.Printf("AgentServer: error processing message: %v", err)
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, toChatResp(resp))
}
