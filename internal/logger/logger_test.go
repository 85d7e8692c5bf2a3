package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_ReturnsUsableLogger(t *testing.T) {
	l := NewLogger("test-role")
	require.NotNil(t, l)

	// не должен паниковать при записи
	assert.NotPanics(t, func() {
		l.Info().Msg("hello")
	})
}

func TestNop_DiscardsOutput(t *testing.T) {
	l := Nop()
	require.NotNil(t, l)
	assert.NotPanics(t, func() {
		l.Error().Msg("discarded")
	})
}

func TestGetChildLogger_IndependentOfParent(t *testing.T) {
	parent := Nop()
	child := parent.GetChildLogger()

	require.NotNil(t, child)
	assert.NotSame(t, parent, child)
}

func TestFromContext_WithoutLogger_NotNil(t *testing.T) {
	l := FromContext(context.Background())
	require.NotNil(t, l)
}

func TestFromContext_RoundTrip(t *testing.T) {
	parent := Nop()
	ctx := parent.WithContext(context.Background())

	got := FromContext(ctx)
	require.NotNil(t, got)
}
