package main

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"

	"codeberg.org/snonux/tossicat/internal/cli"
	"codeberg.org/snonux/tossicat/internal/testutil"
)

// execute runs the root command with args and returns its output.
func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)

	cmd := newRootCommand(cli.NewFlags())
	cmd.SetArgs(args)
	stdout, stderr = testutil.CaptureOutput(t, func() {
		err = cmd.Execute()
	})
	return stdout, stderr, err
}

func TestRun(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"postfix", []string{"집", "로"}, "집으로"},
		{"pick", []string{"--pick", "나무", "을"}, "를"},
		{"transform", []string{"--transform", "google", "이"}, "google\t(이)가"},
		{"mode flag", []string{"--mode", "pick", "책", "는"}, "은"},
		{"sentence", []string{"--sentence", "{철수, 은} 학생이다."}, "철수는 학생이다."},
		{"number", []string{"--number", "1234"}, "천이백삼십사"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := execute(t, tt.args...)
			if err != nil {
				t.Fatalf("command failed: %v", err)
			}
			if got := strings.TrimSuffix(stdout, "\n"); got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"missing particle", []string{"집"}},
		{"strict unknown particle", []string{"--strict", "집", "께옵서"}},
		{"strict too long", []string{"--strict", "--max-length", "2", "서울역", "에서"}},
		{"pick and transform", []string{"--pick", "--transform", "집", "로"}},
		{"bad number", []string{"--number", "12a"}},
		{"bad export format", []string{"--export-format", "xml", "집", "로"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := execute(t, tt.args...); err == nil {
				t.Errorf("Expected error for %v", tt.args)
			}
		})
	}
}

func TestRun_BatchWithExport(t *testing.T) {
	dir := t.TempDir()
	batchFile := filepath.Join(dir, "words.txt")
	testutil.CreateTestFile(t, batchFile, []byte("집 = 로\n나무 = 을\n"))
	dbPath := filepath.Join(dir, "runs.db")

	stdout, _, err := execute(t, "--batch", batchFile, "--export", dbPath, "--export-format", "sqlite")
	if err != nil {
		t.Fatalf("batch failed: %v", err)
	}
	if !strings.HasPrefix(stdout, "집으로\n나무를\n") {
		t.Errorf("stdout = %q", stdout)
	}
	if !strings.Contains(stdout, "Results exported to: "+dbPath) {
		t.Errorf("export message missing: %q", stdout)
	}

	stdout, _, err = execute(t, "--history", "--export", dbPath)
	if err != nil {
		t.Fatalf("history failed: %v", err)
	}
	if !strings.Contains(stdout, batchFile) || !strings.Contains(stdout, "total=2") {
		t.Errorf("history = %q", stdout)
	}
}

func TestRun_ListParticles(t *testing.T) {
	stdout, _, err := execute(t, "--list-particles")
	if err != nil {
		t.Fatalf("command failed: %v", err)
	}
	if n := strings.Count(stdout, "\n"); n != 42 {
		t.Errorf("Expected 42 lines, got %d", n)
	}
}
