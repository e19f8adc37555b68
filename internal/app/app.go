package app

import (
	"github.com/cleitonmarx/symbiont"
	"github.com/cleitonmarx/symbiont-mcp-agent/internal/adapters/inbound/http"
	"github.com/cleitonmarx/symbiont-mcp-agent/internal/adapters/inbound/workers"
	"github.com/cleitonmarx/symbiont-mcp-agent/internal/adapters/outbound/config"
	"github.com/cleitonmarx/symbiont-mcp-agent/internal/adapters/outbound/log"
	"github.com/cleitonmarx/symbiont-mcp-agent/internal/adapters/outbound/mcp"
	"github.com/cleitonmarx/symbiont-mcp-agent/internal/adapters/outbound/memory"
	"github.com/cleitonmarx/symbiont-mcp-agent/internal/adapters/outbound/modelrunner"
	"github.com/cleitonmarx/symbiont-mcp-agent/internal/adapters/outbound/redis"
	"github.com/cleitonmarx/symbiont-mcp-agent/internal/adapters/outbound/time"
	"github.com/cleitonmarx/symbiont-mcp-agent/internal/aggregator"
	"github.com/cleitonmarx/symbiont-mcp-agent/internal/telemetry"
	"github.com/cleitonmarx/symbiont-mcp-agent/internal/usecases"
)

// NewAgentApp creates and returns a new instance of the MCP agent application.
func NewAgentApp(initializers ...symbiont.Initializer) *symbiont.App {
	return symbiont.NewApp().
		Initialize(initializers...).
		Initialize(
			&log.InitLogger{},
			&telemetry.InitOpenTelemetry{},
			&telemetry.InitHttpClient{},
			&config.InitVaultProvider{},
			&time.InitCurrentTimeProvider{},
			&config.InitProviderConfigSource{},
			&mcp.InitProviderConnector{},
			&aggregator.InitToolAggregator{},
			&memory.InitWorkflowStore{},
			&redis.InitWorkflowStore{},
			&modelrunner.InitCompletionGateway{},

			&usecases.InitConversationLocks{},
			&usecases.InitIntentClassifier{},
			&usecases.InitParameterExtractor{},
			&usecases.InitPromptGenerator{},
			&usecases.InitChatResponder{},
			&usecases.InitSlotFillingWorkflow{},

			&usecases.InitProcessMessage{},
			&usecases.InitListTools{},
			&usecases.InitExecuteTool{},
			&usecases.InitCancelWorkflow{},
			&usecases.InitRefreshToolCatalog{},
		).
		Host(
			&http.AgentServer{},
			&workers.CatalogRefresher{},
		).
		Introspect(&MermaidGraphIntrospector{})
}
