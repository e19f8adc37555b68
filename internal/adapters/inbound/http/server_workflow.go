package http

import (
	"net/http"
)

// Cancel the active workflow of a conversation
// (DELETE /api/v1/conversations/{conversationId}/workflow)
func (api AgentServer) CancelWorkflow(w http.ResponseWriter, r *http.Request, conversationId string) {
	resp, err := api.CancelWorkflowUseCase.Execute(r.Context(), conversationId)
	if err != nil {
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, toWorkflowResp(resp))
}
