package aggregator

import (
	"github.com/cleitonmarx/symbiont-mcp-agent/internal/domain"
)

// catalog is an immutable snapshot of the merged tool namespace.
// It is rebuilt on every (re)discovery and swapped in atomically.
type catalog struct {
	tools      []domain.ToolDescriptor
	byName     map[string]domain.ToolDescriptor
	byProvider map[string][]domain.ToolDescriptor
	collisions map[string][]string
}

func emptyCatalog() *catalog {
	return &catalog{
		byName:     map[string]domain.ToolDescriptor{},
		byProvider: map[string][]domain.ToolDescriptor{},
		collisions: map[string][]string{},
	}
}

// providerTools is the discovery output of one connected provider.
type providerTools struct {
	providerID string
	tools      []domain.ToolDescriptor
}

// buildCatalog merges provider catalogs in configuration order. When two providers
// advertise the same name the later one owns the unqualified name; the earlier
// owners are recorded as collisions and stay reachable through their provider id.
func buildCatalog(sources []providerTools) *catalog {
	c := emptyCatalog()
	var order []string
	for _, src := range sources {
		c.byProvider[src.providerID] = src.tools
		for _, tool := range src.tools {
			if prev, ok := c.byName[tool.Name]; ok {
				if prev.ProviderID != tool.ProviderID {
					c.collisions[tool.Name] = append(c.collisions[tool.Name], prev.ProviderID)
				}
			} else {
				order = append(order, tool.Name)
			}
			c.byName[tool.Name] = tool
		}
	}

	c.tools = make([]domain.ToolDescriptor, 0, len(order))
	for _, name := range order {
		c.tools = append(c.tools, c.byName[name])
	}
	return c
}

func (c *catalog) lookupOn(providerID, name string) (domain.ToolDescriptor, bool) {
	for _, tool := range c.byProvider[providerID] {
		if tool.Name == name {
			return tool, true
		}
	}
	return domain.ToolDescriptor{}, false
}
