package profile

import (
	"errors"

	"profiles/internal/domain"
)

// ErrNilProfile is the panic value used when a wrapper is built around nil.
var ErrNilProfile = errors.New("profile: cannot wrap a nil profile")

// Add-on names accepted by Lookup.
const (
	PhotoSharing  domain.FeatureName = "photo"
	StorySharing  domain.FeatureName = "story"
	LiveStreaming domain.FeatureName = "live"
)

// AddOn is a read-only view of one paid feature. Only the package catalogue
// can wrap profiles; prices are fixed.
type AddOn struct {
	name      domain.FeatureName
	suffix    string
	increment int
}

var (
	photoSharing  = AddOn{name: PhotoSharing, suffix: ", Photo Sharing", increment: 5}
	storySharing  = AddOn{name: StorySharing, suffix: ", Story Sharing", increment: 3}
	liveStreaming = AddOn{name: LiveStreaming, suffix: ", Live Streaming", increment: 10}
)

// Name returns the name accepted by Lookup.
func (a AddOn) Name() domain.FeatureName { return a.name }

// Suffix returns the text appended to the inner features.
func (a AddOn) Suffix() string { return a.suffix }

// Increment returns the price added to the inner cost.
func (a AddOn) Increment() int { return a.increment }

// wrapped is a Profile with one add-on layered over an inner profile.
type wrapped struct {
	inner domain.Profile
	addOn AddOn
}

func (w *wrapped) Features() string { return w.inner.Features() + w.addOn.suffix }

func (w *wrapped) Cost() int { return w.inner.Cost() + w.addOn.increment }

// wrap layers a over inner. It panics with ErrNilProfile if inner is nil.
func (a AddOn) wrap(inner domain.Profile) domain.Profile {
	if isNil(inner) {
		panic(ErrNilProfile)
	}
	return &wrapped{inner: inner, addOn: a}
}

// WithPhotoSharing adds ", Photo Sharing" for 5.
func WithPhotoSharing(inner domain.Profile) domain.Profile { return photoSharing.wrap(inner) }

// WithStorySharing adds ", Story Sharing" for 3.
func WithStorySharing(inner domain.Profile) domain.Profile { return storySharing.wrap(inner) }

// WithLiveStreaming adds ", Live Streaming" for 10.
func WithLiveStreaming(inner domain.Profile) domain.Profile { return liveStreaming.wrap(inner) }

// isNil reports a nil interface or a typed nil *wrapped.
func isNil(p domain.Profile) bool {
	if p == nil {
		return true
	}
	w, ok := p.(*wrapped)
	return ok && w == nil
}
