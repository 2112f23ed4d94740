// Package insightctl provides the command-line interface for the
// startup-insights tooling. It configures subcommands (check, scan, setup,
// load, stats, etc.), parses flags, and executes the selected command.
//
// Typical usage from a main package:
//
//	package main
//	import "github.com/startup-insights/insightctl/cmd/insightctl"
//	func main() { insightctl.Execute() }
package insightctl
