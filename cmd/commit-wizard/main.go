package main

import (
	"os"

	"github.com/evanfang0054/ai-commit-wizard/internal/cli"
)

// Version information (injected at build time)
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

func main() {
	cli.SetVersionInfo(Version, GitCommit, BuildTime)
	os.Exit(cli.Execute())
}
