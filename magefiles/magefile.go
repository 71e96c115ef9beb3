//go:build mage

// Package main provides build targets for reprint using Mage.
//
// Usage:
//
//	mage build    Compile the reprint binary to bin/
//	mage test     Run all tests
//	mage race     Run all tests with the race detector
//	mage lint     Run golangci-lint
//	mage clean    Remove build artifacts
package main

import (
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binaryName = "reprint"
	binaryDir  = "bin"
	cmdDir     = "./cmd/reprint"
	binGo      = "go"
	binLint    = "golangci-lint"
)

// Build compiles the reprint binary to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	return sh.RunV(binGo, "build", "-v", "-o", filepath.Join(binaryDir, binaryName), cmdDir)
}

// Test runs all tests.
func Test() error {
	return sh.RunV(binGo, "test", "./...")
}

// Race runs all tests with the race detector.
func Race() error {
	return sh.RunV(binGo, "test", "-race", "./...")
}

// Lint runs golangci-lint.
func Lint() error {
	return sh.RunV(binLint, "run", "./...")
}

// Check runs lint and tests.
func Check() {
	mg.SerialDeps(Lint, Test)
}

// Clean removes build artifacts.
func Clean() error {
	return os.RemoveAll(binaryDir)
}
