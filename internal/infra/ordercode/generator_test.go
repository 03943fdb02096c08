package ordercode

import (
	"strings"
	"testing"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_Format(t *testing.T) {
	code := NewGenerator().Generate()

	require.True(t, strings.HasPrefix(code, Prefix))
	assert.Len(t, code, len(Prefix)+ulid.EncodedSize)
	assert.Equal(t, strings.ToUpper(code), code)

	_, err := ulid.ParseStrict(strings.TrimPrefix(code, Prefix))
	assert.NoError(t, err)
}

func TestGenerator_Unique(t *testing.T) {
	gen := NewGenerator()
	seen := make(map[string]struct{}, 1000)

	for range 1000 {
		code := gen.Generate()
		_, dup := seen[code]
		require.False(t, dup, "duplicate code %s", code)
		seen[code] = struct{}{}
	}
}
