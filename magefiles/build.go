//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Build mg.Namespace

// Builds the trimesh command into bin/.
func (Build) Cli() error {
	if _, err := executeCmd("go", withArgs("build", "-o", "bin/trimesh", "."), withStream()); err != nil {
		return err
	}
	return nil
}

type Test mg.Namespace

// Runs every test.
func (Test) All() error {
	_, err := executeCmd("go", withArgs("test", "./..."), withStream())
	return err
}

// Runs the tests with the internal consistency assertions compiled in.
func (Test) Debug() error {
	_, err := executeCmd("go", withArgs("test", "-tags", "meshdebug", "./..."), withStream())
	return err
}

// Runs go vet and both test suites.
func (Test) Ci() {
	mg.SerialDeps(vet, Test{}.All, Test{}.Debug)
}

func vet() error {
	_, err := executeCmd("go", withArgs("vet", "./..."), withStream())
	return err
}

// Tidies go.mod and go.sum.
func Tidy() error {
	return goTidy()
}
