//go:build mage

package main

import (
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

var binaries = []string{"create-ipa-dict", "find-similar-words", "merge-word-groups"}

// Default target to run when none is specified
var Default = Build

// Build compiles all tools into ./bin
func Build() error {
	for _, name := range binaries {
		if err := sh.RunV("go", "build", "-o", filepath.Join("bin", name), "./cmd/"+name); err != nil {
			return err
		}
	}
	return nil
}

// Test runs the unit tests
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Install installs all tools into GOPATH/bin
func Install() error {
	mg.Deps(Test)
	for _, name := range binaries {
		if err := sh.RunV("go", "install", "./cmd/"+name); err != nil {
			return err
		}
	}
	return nil
}

// Clean removes build artifacts
func Clean() error {
	return os.RemoveAll("bin")
}
