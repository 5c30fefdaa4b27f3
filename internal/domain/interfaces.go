package domain

// Profile is anything that can report a feature list and a price.
//
// Implementations are immutable: repeated calls return identical results.
type Profile interface {
	Features() string
	Cost() int
}
