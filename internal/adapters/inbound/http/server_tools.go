package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/cleitonmarx/symbiont-mcp-agent/internal/adapters/inbound/http/gen"
)

// List the aggregated tool catalog
// (GET /api/v1/tools)
func (api AgentServer) ListTools(w http.ResponseWriter, r *http.Request, params gen.ListToolsParams) {
	tools := api.ListToolsUseCase.Query(r.Context(), deref(params.Provider))

	resp := gen.ToolListResp{Tools: make([]gen.Tool, len(tools))}
	for i, t := range tools {
		resp.Tools[i] = toTool(t)
	}

	respondJSON(w, http.StatusOK, resp)
}

// Call a tool with complete arguments
// (POST /api/v1/tools/{name}/execute)
func (api AgentServer) ExecuteTool(w http.ResponseWriter, r *http.Request, name string, params gen.ExecuteToolParams) {
	var req gen.ExecuteToolJSONRequestBody
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		badRequest(w, "invalid request body")
		return
	}

	result, err := api.ExecuteToolUseCase.Execute(r.Context(), deref(params.Provider), name, req.Arguments)
	if err != nil {
		api.Logger.Printf("AgentServer: error executing tool %q: %v", name, err)
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, toToolResult(result))
}
