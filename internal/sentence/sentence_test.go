package sentence

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModify(t *testing.T) {
	tests := []struct {
		name     string
		template string
		want     string
	}{
		{
			name:     "two placeholders",
			template: "{한국어, 은} 정말 좋은 언어입니다. {커피, 을} 정말 좋아해요",
			want:     "한국어는 정말 좋은 언어입니다. 커피를 정말 좋아해요",
		},
		{
			name:     "no placeholders",
			template: "그냥 문장입니다.",
			want:     "그냥 문장입니다.",
		},
		{
			name:     "foreign word",
			template: "{google,(으)로} 검색",
			want:     "google(으)로 검색",
		},
		{
			name:     "comma inside word",
			template: "{1,000원, 이} 들었다",
			want:     "1,000원이 들었다",
		},
		{
			name:     "escaped braces",
			template: "{{literal}} {집, 로}",
			want:     "{literal} 집으로",
		},
		{
			name:     "unlisted particle",
			template: "{서울, 까지}",
			want:     "서울까지",
		},
		{
			name:     "empty template",
			template: "",
			want:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Modify(tt.template)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestModifyMalformed(t *testing.T) {
	tests := []struct {
		name     string
		template string
	}{
		{"unclosed", "{한국어, 은 정말"},
		{"no comma", "{한국어} 정말"},
		{"empty particle", "{한국어, } 정말"},
		{"empty word", "{ , 은} 정말"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Modify(tt.template)
			assert.ErrorIs(t, err, ErrMalformedPlaceholder)
		})
	}
}

func TestPlaceholders(t *testing.T) {
	template := "a{집, 로}b{커피,을}"
	got, err := Placeholders(template)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, Placeholder{Word: "집", Particle: "로", Start: 1, End: 1 + len("{집, 로}")}, got[0])
	assert.Equal(t, "커피", got[1].Word)
	assert.Equal(t, "을", got[1].Particle)
	assert.Equal(t, "{커피,을}", template[got[1].Start:got[1].End])
}
