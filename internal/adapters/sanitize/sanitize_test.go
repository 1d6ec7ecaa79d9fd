package sanitize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/quill/internal/adapters/sanitize"
	"go.trai.ch/quill/internal/core/domain"
)

func TestNew_None(t *testing.T) {
	for _, policy := range []domain.SanitizePolicy{"", domain.SanitizeNone} {
		s, err := sanitize.New(policy)
		require.NoError(t, err)
		assert.Nil(t, s)
	}
}

func TestNew_UnknownPolicy(t *testing.T) {
	_, err := sanitize.New("paranoid")
	assert.True(t, domain.HasKind(err, domain.ErrInvalidSanitizePolicy), "%v", err)
}

func TestSanitize(t *testing.T) {
	const input = `<p onclick="evil()">Hi <b>there</b><script>alert(1)</script></p>`

	tests := []struct {
		policy domain.SanitizePolicy
		want   string
	}{
		{domain.SanitizeUGC, `<p>Hi <b>there</b></p>`},
		{domain.SanitizeStrict, `Hi there`},
	}
	for _, tt := range tests {
		t.Run(string(tt.policy), func(t *testing.T) {
			s, err := sanitize.New(tt.policy)
			require.NoError(t, err)
			assert.Equal(t, tt.want, s.Sanitize(input))
		})
	}
}
