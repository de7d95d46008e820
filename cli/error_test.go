package cli

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	_, err := Resolve([]string{"com", "a.src", "--target", "x86"})
	require.Error(t, err)

	kind, ok := KindOf(err)
	require.True(t, ok)
	assert.Equal(t, UnknownTargetError, kind)

	wrapped := errors.Wrapf(err, "resolving %s", "a.src")
	kind, ok = KindOf(wrapped)
	require.True(t, ok)
	assert.Equal(t, UnknownTargetError, kind)

	_, ok = KindOf(errors.New("unrelated"))
	assert.False(t, ok)

	_, ok = KindOf(nil)
	assert.False(t, ok)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "UsageError", UsageError.String())
	assert.Equal(t, "MissingFlagValueError", MissingFlagValueError.String())
	assert.Equal(t, "TargetNotSupportedError", TargetNotSupportedError.String())
	assert.Equal(t, "Kind(42)", Kind(42).String())
}
