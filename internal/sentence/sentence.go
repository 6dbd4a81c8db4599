// Package sentence fills particle placeholders in running text.
//
// A placeholder is written "{word, particle}" and is replaced by the word
// followed by the particle form that fits it:
//
//	{한국어, 은} 정말 좋은 언어입니다.  ->  한국어는 정말 좋은 언어입니다.
//
// "{{" and "}}" stand for literal braces.
package sentence

import (
	"errors"
	"fmt"
	"strings"

	"codeberg.org/snonux/tossicat/internal/tossi"
)

// ErrMalformedPlaceholder is returned for an unclosed placeholder or one
// without a comma between word and particle.
var ErrMalformedPlaceholder = errors.New("malformed placeholder")

// Placeholder is one "{word, particle}" occurrence. Start and End are byte
// offsets of the braces in the template, End exclusive.
type Placeholder struct {
	Word     string
	Particle string
	Start    int
	End      int
}

type segment struct {
	text        string
	placeholder *Placeholder
}

// Placeholders returns the placeholders of template in order.
func Placeholders(template string) ([]Placeholder, error) {
	segments, err := parse(template)
	if err != nil {
		return nil, err
	}
	var out []Placeholder
	for _, s := range segments {
		if s.placeholder != nil {
			out = append(out, *s.placeholder)
		}
	}
	return out, nil
}

// Modify replaces every placeholder of template.
func Modify(template string) (string, error) {
	segments, err := parse(template)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for _, s := range segments {
		if s.placeholder == nil {
			b.WriteString(s.text)
			continue
		}
		b.WriteString(tossi.Postfix(s.placeholder.Word, s.placeholder.Particle))
	}
	return b.String(), nil
}

func parse(template string) ([]segment, error) {
	var (
		segments []segment
		text     strings.Builder
	)

	for i := 0; i < len(template); i++ {
		c := template[i]
		switch {
		case c == '{' && strings.HasPrefix(template[i:], "{{"):
			text.WriteByte('{')
			i++
		case c == '}' && strings.HasPrefix(template[i:], "}}"):
			text.WriteByte('}')
			i++
		case c == '{':
			end := strings.IndexByte(template[i:], '}')
			if end < 0 {
				return nil, fmt.Errorf("%w: unclosed at offset %d", ErrMalformedPlaceholder, i)
			}
			p, err := placeholder(template[i+1:i+end], i, i+end+1)
			if err != nil {
				return nil, err
			}
			if text.Len() > 0 {
				segments = append(segments, segment{text: text.String()})
				text.Reset()
			}
			segments = append(segments, segment{placeholder: p})
			i += end
		default:
			text.WriteByte(c)
		}
	}
	if text.Len() > 0 {
		segments = append(segments, segment{text: text.String()})
	}
	return segments, nil
}

// The particle follows the last comma so that words like "1,000원" work.
func placeholder(body string, start, end int) (*Placeholder, error) {
	comma := strings.LastIndexByte(body, ',')
	if comma < 0 {
		return nil, fmt.Errorf("%w: %q has no particle", ErrMalformedPlaceholder, body)
	}
	word := strings.TrimSpace(body[:comma])
	particle := strings.TrimSpace(body[comma+1:])
	if word == "" || particle == "" {
		return nil, fmt.Errorf("%w: %q needs both word and particle", ErrMalformedPlaceholder, body)
	}
	return &Placeholder{Word: word, Particle: particle, Start: start, End: end}, nil
}
