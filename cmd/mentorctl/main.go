// Package main is the entry point for the mentorctl CLI.
//
// mentorctl is a command-line tool for deploying the CSIRO Mentor backend
// to Azure App Service. It provides a stateless, declarative deployment
// flow: every run converges the same fixed set of resources from a small
// YAML config, without Terraform or other IaC tools.
//
// Commands: init, deploy, health, logs, destroy.
//
// For detailed usage information, run:
//
//	mentorctl --help
package main

import (
	"fmt"
	"os"

	"github.com/csiro-mentor/mentorctl/cmd/mentorctl/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
