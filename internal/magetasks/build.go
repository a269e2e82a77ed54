package magetasks

import (
	"fmt"
	"time"

	"github.com/magefile/mage/sh"
)

// BuildAll builds the pare binary with version metadata baked in.
func BuildAll() error {
	PrintH2Header("Build")

	version := gitDescribe()
	commit := gitCommit()
	date := time.Now().UTC().Format(time.RFC3339)

	ldflags := fmt.Sprintf("-s -w -X '%s/internal/version.Version=%s' -X '%s/internal/version.CommitHash=%s' -X '%s/internal/version.BuildDate=%s'",
		ModulePath, version, ModulePath, commit, ModulePath, date)

	if err := sh.RunV("go", "build", "-ldflags", ldflags, "-o", BinPath, "./cmd/pare"); err != nil {
		PrintError("Build failed")
		return err
	}

	PrintSuccess("Built: " + BinPath)
	return nil
}

// Install installs pare into GOBIN.
func Install() error {
	PrintH2Header("Install")

	if err := sh.RunV("go", "install", "./cmd/pare"); err != nil {
		PrintError("Install failed")
		return err
	}

	PrintSuccess("Installed pare")
	return nil
}

// Clean removes build artifacts.
func Clean() error {
	PrintH2Header("Clean")

	_ = sh.Rm("./bin")
	_ = sh.Run("go", "clean", "-cache")

	PrintSuccess("Cleaned build artifacts")
	return nil
}

func gitDescribe() string {
	out, err := sh.Output("git", "describe", "--tags", "--always", "--dirty", "--match=v*")
	if err != nil {
		return "dev"
	}
	return out
}

func gitCommit() string {
	out, err := sh.Output("git", "rev-parse", "--short", "HEAD")
	if err != nil {
		return "unknown"
	}
	return out
}
