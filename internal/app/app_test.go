package app

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewAgentApp_Initializers(t *testing.T) {
	app := NewAgentApp()
	require.NotNil(t, app, "NewAgentApp should not return nil")
}
