//go:build mage

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

var Default = Build

const binary = "tossicat"

// Build compiles the tossicat binary into ./bin.
func Build() error {
	if err := os.MkdirAll("bin", 0755); err != nil {
		return fmt.Errorf("failed to create bin directory: %w", err)
	}
	// go-sqlite3 needs cgo
	env := map[string]string{"CGO_ENABLED": "1"}
	return sh.RunWith(env, "go", "build", "-o", filepath.Join("bin", binary), "./cmd/tossicat")
}

// Test runs all tests with the race detector.
func Test() error {
	return sh.RunV("go", "test", "-race", "./...")
}

// Lint runs go vet.
func Lint() error {
	return sh.RunV("go", "vet", "./...")
}

// Install builds and copies the binary to $GOPATH/bin.
func Install() error {
	mg.Deps(Build)
	gopath, err := sh.Output("go", "env", "GOPATH")
	if err != nil {
		return err
	}
	return sh.Copy(filepath.Join(gopath, "bin", binary), filepath.Join("bin", binary))
}

// Clean removes build output.
func Clean() error {
	return sh.Rm("bin")
}
