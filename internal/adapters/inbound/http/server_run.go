package http

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/cleitonmarx/symbiont-mcp-agent/internal/adapters/inbound/http/gen"
	"github.com/cleitonmarx/symbiont-mcp-agent/internal/telemetry"
	"github.com/cleitonmarx/symbiont-mcp-agent/internal/usecases"
	"github.com/rs/cors"
)

//go:generate go tool oapi-codegen -config gen/config.yaml openapi.yaml

var _ gen.ServerInterface = (*AgentServer)(nil)

// AgentServer is the REST API of the agent.
type AgentServer struct {
	Port                  int                     `config:"HTTP_PORT" default:"8080"`
	Logger                *log.Logger             `resolve:""`
	ProcessMessageUseCase usecases.ProcessMessage `resolve:""`
	ListToolsUseCase      usecases.ListTools      `resolve:""`
	ExecuteToolUseCase    usecases.ExecuteTool    `resolve:""`
	CancelWorkflowUseCase usecases.CancelWorkflow `resolve:""`
}

// Handler builds the routed, instrumented handler of the API.
func (api AgentServer) Handler() http.Handler {
	mux := http.NewServeMux()

	// Register introspection endpoint for debugging and testing purposes
	mux.HandleFunc("GET /introspect", api.Introspect)

	// Create the OpenAPI handler with telemetry middleware
	h := gen.HandlerWithOptions(api, gen.StdHTTPServerOptions{
		BaseRouter: mux,
		Middlewares: []gen.MiddlewareFunc{
			telemetry.Middleware("mcpagent-api"),
		},
		ErrorHandlerFunc: func(w http.ResponseWriter, _ *http.Request, err error) {
			badRequest(w, err.Error())
		},
	})

	// Apply CORS at the top-level so preflight requests hit it, too.
	return cors.AllowAll().Handler(h)
}

// Run starts the HTTP server for the AgentServer.
func (api AgentServer) Run(ctx context.Context) error {
	s := &http.Server{
		Handler:           api.Handler(),
		Addr:              fmt.Sprintf(":%d", api.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		api.Logger.Printf("AgentServer: Listening on port %d", api.Port)
		errCh <- s.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := s.Shutdown(shutdownCtx)
		if err != nil {
			api.Logger.Printf("AgentServer: error during shutdown: %v", err)
		} else {
			api.Logger.Println("AgentServer: stopped")
		}
		return err
	case err := <-errCh:
		return err
	}
}

// IsReady checks if the AgentServer is ready by performing a health check.
func (api AgentServer) IsReady(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("http://:%d/healthz", api.Port), nil)
	if err != nil {
		return err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return nil
}

// Healthz reports liveness.
// (GET /healthz)
func (api AgentServer) Healthz(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, gen.HealthResp{Status: "ok"})
}
