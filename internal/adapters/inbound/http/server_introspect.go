package http

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/cleitonmarx/symbiont-mcp-agent/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
)

var (
	//go:embed templates/introspect.gohtml
	templateFS embed.FS
	tmpl       = template.Must(template.ParseFS(templateFS, "templates/introspect.gohtml"))
)

type introspectPage struct {
	Title string
	Graph string
	Tools []domain.ToolDescriptor
}

// Introspect renders the dependency graph of the running agent next to its tool catalog.
// (GET /introspect)
func (api AgentServer) Introspect(w http.ResponseWriter, r *http.Request) {
	mermaidGraph, err := depend.ResolveNamed[string]("introspection-graph-mermaid")
	if err != nil {
		http.Error(w, "Failed to resolve dependency graph", http.StatusInternalServerError)
		return
	}

	page := introspectPage{
		Title: "MCP Agent Introspection Graph",
		Graph: mermaidGraph,
	}
	if api.ListToolsUseCase != nil {
		page.Tools = api.ListToolsUseCase.Query(r.Context(), "")
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.Execute(w, page); err != nil {
		http.Error(w, "Failed to render introspection page", http.StatusInternalServerError)
	}
}
