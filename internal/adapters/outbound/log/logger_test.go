package log

import (
	"context"
	"log"
	"testing"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLogger_Initialize(t *testing.T) {
	init := InitLogger{Prefix: "[test] "}

	_, err := init.Initialize(context.Background())
	require.NoError(t, err)

	logger, err := depend.Resolve[*log.Logger]()
	require.NoError(t, err)
	assert.Equal(t, "[test] ", logger.Prefix())
	assert.Equal(t, log.LstdFlags|log.Lmsgprefix, logger.Flags())
}
