// Package app wires application dependencies for the CLI.
//
// It builds the summary service from Config and exposes it via the App
// struct for commands to use.
package app
