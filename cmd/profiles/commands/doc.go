// Package commands defines the profiles CLI and wires dependencies for subcommands.
//
// Commands
//
//   - (none)     Print the basic profile and three progressively richer ones
//   - compose    Print one profile built from the named add-ons
//   - features   List the add-ons with their suffix and price
//
// Program lines go to stdout. Diagnostics go to stderr through slog at warn
// level and above: a failed compose is logged there, while the services'
// debug records are dropped.
package commands
