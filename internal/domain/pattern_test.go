package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tgrep.dev/pkg/tgrep/internal/domain"
	m "tgrep.dev/pkg/tgrep/internal/model"
)

func TestCompile_Valid(t *testing.T) {
	pattern, err := domain.Compile(`fo+\d`)

	require.NoError(t, err)
	require.NotNil(t, pattern)
	assert.Equal(t, `fo+\d`, pattern.Source())
	assert.Equal(t, []int{1, 5}, pattern.FindIndex([]byte("xfoo7y")))
	assert.Nil(t, pattern.FindIndex([]byte("bar")))
}

func TestCompile_EmptyMeansNoSearch(t *testing.T) {
	pattern, err := domain.Compile("")

	assert.NoError(t, err)
	assert.Nil(t, pattern)
}

func TestCompile_InvalidReturnsTypedError(t *testing.T) {
	tests := []string{"(", "[a-", "a{2,1}", `\`, "*x"}

	for _, text := range tests {
		t.Run(text, func(t *testing.T) {
			var (
				pattern *m.Pattern
				err     error
			)

			require.NotPanics(t, func() { pattern, err = domain.Compile(text) })

			var compileErr *domain.PatternCompileError

			require.True(t, errors.As(err, &compileErr), "expected PatternCompileError, got %v", err)
			assert.Nil(t, pattern)
			assert.Equal(t, text, compileErr.Pattern)
			assert.NotEmpty(t, compileErr.Message())
			assert.NotContains(t, compileErr.Message(), "error parsing regexp")
			assert.Contains(t, compileErr.Error(), "invalid pattern")
		})
	}
}

func TestEnumerationError_Message(t *testing.T) {
	err := &domain.EnumerationError{Missing: nil}
	assert.Equal(t, "no search paths given", err.Error())

	err = &domain.EnumerationError{Missing: []m.Path{"/a", "/b"}}
	assert.Equal(t, "no valid search path: /a, /b", err.Error())
}
