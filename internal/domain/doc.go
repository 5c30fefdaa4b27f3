// Package domain defines the profile contract shared across the app.
// It contains plain types and interfaces only.
package domain
