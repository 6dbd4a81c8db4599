package verifier

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/snonux/tossicat/internal/tossi"
)

func TestVerifyWordLength(t *testing.T) {
	tests := []struct {
		name    string
		word    string
		wantErr bool
	}{
		{"short digits", "12345", false},
		{"sentence", "아이디는 50자까지 설정이 가능합니다.", false},
		{"exactly fifty", strings.Repeat("가", 50), false},
		{"fifty one", strings.Repeat("가", 51), true},
		{"long number", "10000000000000000000000000000000000000000000000000000", true},
		{"repeated words", "테트리스1테트리스2테트리스3테트리스4테트리스5테트리스6테트리스7테트리스8테트리스9테트리스10", true},
		{"repeated words leading digit", "1테트리스2테트리스3테트리스4테트리스5테트리스6테트리스7테트리스8테트리스9테트리스10테트리스", true},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := VerifyWordLength(tt.word)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrWordTooLong))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestVerifierCustomLimit(t *testing.T) {
	v := Verifier{MaxWordLength: 3}
	assert.NoError(t, v.VerifyWordLength("가나다"))
	assert.ErrorIs(t, v.VerifyWordLength("가나다라"), ErrWordTooLong)
	assert.ErrorContains(t, v.VerifyWordLength("가나다라"), "4 characters, at most 3 allowed")
}

func TestVerifyParticle(t *testing.T) {
	assert.NoError(t, VerifyParticle("까지"))
	assert.NoError(t, VerifyParticle("은(는)"))
	assert.ErrorIs(t, VerifyParticle("류현지"), ErrInvalidParticle)
	assert.ErrorIs(t, VerifyParticle(""), ErrInvalidParticle)
	assert.ErrorIs(t, VerifyParticle(" 은"), ErrInvalidParticle)
	assert.ErrorIs(t, VerifyParticle("(으)로부터"), ErrInvalidParticle)
}

func TestVerifyOrder(t *testing.T) {
	long := strings.Repeat("가", 60)
	assert.ErrorIs(t, Verify(long, "없는토시"), ErrInvalidParticle)
	assert.ErrorIs(t, Verify(long, "을"), ErrWordTooLong)
	assert.NoError(t, Verify("집", "(으)로"))
}

func TestParticlesList(t *testing.T) {
	list := Particles()
	assert.Len(t, list, 42)
	list[0] = "changed"
	assert.Equal(t, "(가)이", Particles()[0])
}

func TestListedParticlesAreHandled(t *testing.T) {
	for _, p := range Particles() {
		particle := tossi.Classify(p)
		got := tossi.Transform("집", particle)
		if particle.Kind == tossi.Other {
			assert.Equal(t, p, got)
			continue
		}
		f, ok := particle.Kind.Forms()
		require.True(t, ok)
		assert.Contains(t, []string{f.Ambiguous, f.NoBatchim, f.Batchim}, got, "particle %q", p)
	}
}
