package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProviderErr(t *testing.T) {
	tests := map[string]struct {
		err         *ProviderErr
		expectedMsg string
		expectedIs  error
	}{
		"connect-without-tool": {
			err:         NewProviderErr("weather", "", ErrConnect),
			expectedMsg: `provider "weather": provider connection failed`,
			expectedIs:  ErrConnect,
		},
		"unavailable-with-tool": {
			err:         NewProviderErr("weather", "forecast", ErrProviderUnavailable),
			expectedMsg: `provider "weather" tool "forecast": provider unavailable`,
			expectedIs:  ErrProviderUnavailable,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expectedMsg, tt.err.Error())
			wrapped := fmt.Errorf("outer: %w", tt.err)
			assert.ErrorIs(t, wrapped, tt.expectedIs)

			var pe *ProviderErr
			assert.True(t, errors.As(wrapped, &pe))
			assert.Equal(t, "weather", pe.ProviderID)
		})
	}
}

func TestInvocationErr(t *testing.T) {
	err := &InvocationErr{ProviderID: "math", ToolName: "divide", Payload: "division by zero"}
	assert.ErrorIs(t, err, ErrInvocation)
	assert.Contains(t, err.Error(), "division by zero")
	assert.Contains(t, err.Error(), `"divide"`)
}

func TestConfigErr(t *testing.T) {
	err := NewConfigErr("providers.yml", "missing id")
	assert.ErrorIs(t, err, ErrConfig)
	assert.Equal(t, "invalid provider configuration: providers.yml: missing id", err.Error())
}
