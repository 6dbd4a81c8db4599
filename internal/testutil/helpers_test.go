package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

func TestCreateTestFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "file.txt")
	CreateTestFile(t, path, []byte("집 = 로\n"))

	AssertFileExists(t, path)
	AssertFileContent(t, path, []byte("집 = 로\n"))
	AssertFileContains(t, path, "로")
	AssertFileNotExists(t, path+".missing")
}

func TestCaptureOutput(t *testing.T) {
	stdout, stderr := CaptureOutput(t, func() {
		fmt.Println("집으로")
		fmt.Fprintln(os.Stderr, "warning")
	})

	if stdout != "집으로\n" {
		t.Errorf("stdout = %q", stdout)
	}
	if stderr != "warning\n" {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestDiscardLogger(t *testing.T) {
	DiscardLogger().Info("dropped", "key", "value")
}
