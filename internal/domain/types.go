package domain

// FeatureName identifies a profile add-on, e.g. "photo".
type FeatureName string

// String returns the string form of the feature name.
func (n FeatureName) String() string { return string(n) }
