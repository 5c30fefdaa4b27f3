package profile

import "profiles/internal/domain"

// BasicFeatures is the feature text of the free profile.
const BasicFeatures = "Basic Profile Features: Text Posts, Comments, Likes"

// Basic is the free profile every chain starts from.
type Basic struct{}

// NewBasic returns the free profile.
func NewBasic() *Basic { return &Basic{} }

// Features returns BasicFeatures.
func (*Basic) Features() string { return BasicFeatures }

// Cost returns 0.
func (*Basic) Cost() int { return 0 }

var _ domain.Profile = (*Basic)(nil)
