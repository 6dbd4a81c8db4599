package internal

import "testing"

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"words", "words"},
		{"단어 목록", "단어_목록"},
		{"a/b:c", "a_b_c"},
		{"test-file_1", "test-file_1"},
		{"ㄱㄴ", "__"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := SanitizeFilename(tt.input); got != tt.want {
				t.Errorf("SanitizeFilename(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestExportName(t *testing.T) {
	tests := []struct {
		source string
		ext    string
		want   string
	}{
		{"lists/단어 목록.txt", ".csv", "단어_목록.csv"},
		{"words", ".db", "words.db"},
		{"", ".csv", "tossicat.csv"},
		{"/", ".csv", "tossicat.csv"},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			if got := ExportName(tt.source, tt.ext); got != tt.want {
				t.Errorf("ExportName(%q, %q) = %q, want %q", tt.source, tt.ext, got, tt.want)
			}
		})
	}
}
