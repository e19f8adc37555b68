package workers

import (
	"context"
	"log"
	"time"

	"github.com/cleitonmarx/symbiont-mcp-agent/internal/usecases"
)

// CatalogRefresher is a runnable that periodically re-discovers the tools of every provider.
// A non-positive interval disables the refresh and the runnable just waits for shutdown.
type CatalogRefresher struct {
	RefreshCatalog      usecases.RefreshToolCatalog `resolve:""`
	Logger              *log.Logger                 `resolve:""`
	Interval            time.Duration               `config:"CATALOG_REFRESH_INTERVAL" default:"0s"`
	workerExecutionChan chan struct{}
}

// Run starts the periodic catalog refresh.
func (cr CatalogRefresher) Run(ctx context.Context) error {
	if cr.Interval <= 0 {
		cr.Logger.Println("CatalogRefresher: disabled")
		<-ctx.Done()
		return nil
	}

	cr.Logger.Printf("CatalogRefresher: running every %s...", cr.Interval)
	ticker := time.NewTicker(cr.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := cr.RefreshCatalog.Execute(ctx); err != nil {
				cr.Logger.Printf("CatalogRefresher: error refreshing catalog: %v", err)
			}
			if cr.workerExecutionChan != nil {
				cr.workerExecutionChan <- struct{}{}
			}
		case <-ctx.Done():
			cr.Logger.Println("CatalogRefresher: stopping...")
			return nil
		}
	}
}
