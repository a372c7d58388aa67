// Package config loads user-supplied syntax definitions from a TOML file
// and can optionally watch that file for changes so a long-lived Workspace
// picks up edits without restarting.
//
// File format:
//
//	[[syntax]]
//	name = "go"
//	extensions = ["go"]
//
//	[[syntax]]
//	name = "makefile"
//	filenames = ["Makefile", "GNUmakefile"]
package config
