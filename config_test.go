package armjit

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/armjit/armjit/internal/jit"
)

func TestConfig(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name     string
		with     func(Config) Config
		expected Config
	}{
		{
			name:     "WithCodeCacheSize",
			with:     func(c Config) Config { return c.WithCodeCacheSize(1 << 20) },
			expected: &config{codeCacheSize: 1 << 20},
		},
		{
			name:     "WithCodeCacheSize zero",
			with:     func(c Config) Config { return c.WithCodeCacheSize(0) },
			expected: &config{codeCacheSize: jit.DefaultCodeCacheSize},
		},
		{
			name:     "WithLogger",
			with:     func(c Config) Config { return c.WithLogger(logger) },
			expected: &config{logger: logger},
		},
		{
			name:     "WithLogger nil",
			with:     func(c Config) Config { return c.WithLogger(logger).WithLogger(nil) },
			expected: &config{},
		},
	}

	for _, tt := range tests {
		tc := tt

		t.Run(tc.name, func(t *testing.T) {
			input := &config{}
			rc := tc.with(input)
			require.Equal(t, tc.expected, rc)
			// The source wasn't modified
			require.Equal(t, &config{}, input)
		})
	}

	t.Run("WithSupervisorCall", func(t *testing.T) {
		input := &config{}
		rc := input.WithSupervisorCall(func(CPU, uint32) error { return nil }).(*config)
		require.NotNil(t, rc.supervisorCall)
		require.Nil(t, input.supervisorCall)
	})
}

func TestNewConfig(t *testing.T) {
	require.Equal(t, engineKindJIT, NewConfigJIT().(*config).engineKind)
	require.Equal(t, engineKindInterpreter, NewConfigInterpreter().(*config).engineKind)
	require.Equal(t, jit.DefaultCodeCacheSize, NewConfigInterpreter().(*config).codeCacheSize)
	// The defaults are not shared.
	require.NotSame(t, NewConfigJIT(), NewConfigJIT())
}
