// Package summary renders profiles as the one-line price summaries shown by
// the CLI, and builds the demo and ad-hoc wrap chains behind them.
package summary
