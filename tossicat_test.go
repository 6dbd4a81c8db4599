package tossicat_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"codeberg.org/snonux/tossicat"
)

func TestPostfix(t *testing.T) {
	tests := []struct {
		word     string
		particle string
		want     string
	}{
		{"집", "으로", "집으로"},
		{"집", "로", "집으로"},
		{"집", "(으)로", "집으로"},
		{"넥슨(코리아)", "을", "넥슨(코리아)을"},
		{"비타500", "이", "비타500이"},
		{"google", "로", "google(으)로"},
		{"서울", "까지", "서울까지"},
	}

	for _, tt := range tests {
		t.Run(tt.word+"+"+tt.particle, func(t *testing.T) {
			if got := tossicat.Postfix(tt.word, tt.particle); got != tt.want {
				t.Errorf("Postfix(%q, %q) = %q, want %q", tt.word, tt.particle, got, tt.want)
			}
		})
	}
}

func TestPickAndTransform(t *testing.T) {
	if got := tossicat.Pick("나무", "으로"); got != "로" {
		t.Errorf("Pick() = %q, want %q", got, "로")
	}

	word, particle := tossicat.Transform("토씨캣", "(은)는")
	if word != "토씨캣" || particle != "은" {
		t.Errorf("Transform() = (%q, %q), want (%q, %q)", word, particle, "토씨캣", "은")
	}
}

func TestVerify(t *testing.T) {
	if err := tossicat.Verify("집", "(으)로"); err != nil {
		t.Errorf("Verify() unexpected error: %v", err)
	}
	if err := tossicat.Verify("집", "류현지"); !errors.Is(err, tossicat.ErrInvalidParticle) {
		t.Errorf("Verify() error = %v, want ErrInvalidParticle", err)
	}
	if err := tossicat.Verify(strings.Repeat("집", tossicat.MaxWordLength), "을"); err != nil {
		t.Errorf("Verify() with %d characters: %v", tossicat.MaxWordLength, err)
	}
	if err := tossicat.Verify(strings.Repeat("집", tossicat.MaxWordLength+1), "을"); !errors.Is(err, tossicat.ErrWordTooLong) {
		t.Errorf("Verify() error = %v, want ErrWordTooLong", err)
	}
	if n := len(tossicat.Particles()); n != 42 {
		t.Errorf("Particles() has %d entries, want 42", n)
	}
}

func TestModifySentence(t *testing.T) {
	got, err := tossicat.ModifySentence("안녕하세요, {한국어, 은} 바로 앞 글자에 따라 조사가 변합니다.")
	if err != nil {
		t.Fatalf("ModifySentence() error: %v", err)
	}
	want := "안녕하세요, 한국어는 바로 앞 글자에 따라 조사가 변합니다."
	if got != want {
		t.Errorf("ModifySentence() = %q, want %q", got, want)
	}

	if _, err := tossicat.ModifySentence("{한국어"); !errors.Is(err, tossicat.ErrMalformedPlaceholder) {
		t.Errorf("ModifySentence() error = %v, want ErrMalformedPlaceholder", err)
	}
}

func TestHelpers(t *testing.T) {
	if got := tossicat.JoinPhonemes([3]rune{'ㄱ', 'ㅏ', 'ㄴ'}); got != '간' {
		t.Errorf("JoinPhonemes() = %q, want %q", got, '간')
	}
	if got := tossicat.JoinPhonemes([3]rune{'ㄱ', 'ㅏ', ' '}); got != '가' {
		t.Errorf("JoinPhonemes() = %q, want %q", got, '가')
	}
	if got := tossicat.SplitPhonemes('글'); got != [3]rune{'ㄱ', 'ㅡ', 'ㄹ'} {
		t.Errorf("SplitPhonemes() = %q", got)
	}
	if got := tossicat.FindLastLetter("넥슨(코리아)"); got != '슨' {
		t.Errorf("FindLastLetter() = %q, want %q", got, '슨')
	}
	if got := tossicat.GuessFinalLetter("넥슨(코리아)"); got != 'ㄴ' {
		t.Errorf("GuessFinalLetter() = %q, want %q", got, 'ㄴ')
	}
	if got := tossicat.GuessFinalLetter("google"); got != 'N' {
		t.Errorf("GuessFinalLetter() = %q, want %q", got, 'N')
	}
	if got := tossicat.NumberToHangul("500"); got != "오백" {
		t.Errorf("NumberToHangul() = %q, want %q", got, "오백")
	}
}

func ExamplePostfix() {
	fmt.Println(tossicat.Postfix("집", "(으)로"))
	fmt.Println(tossicat.Postfix("나무", "으로"))
	fmt.Println(tossicat.Postfix("google", "을"))
	// Output:
	// 집으로
	// 나무로
	// google(을)를
}
