package profile

import (
	"errors"
	"fmt"

	"profiles/internal/domain"
)

// ErrUnknownFeature is returned by Lookup for names outside the catalogue.
var ErrUnknownFeature = errors.New("unknown feature")

// Decorator wraps a profile with one more layer.
type Decorator func(domain.Profile) domain.Profile

// catalogue is ordered the way add-ons are listed to users.
var catalogue = []AddOn{photoSharing, storySharing, liveStreaming}

// Decorate applies ds to p in order, so ds[0] ends up innermost.
func Decorate(p domain.Profile, ds ...Decorator) domain.Profile {
	decorated := p
	for _, decorate := range ds {
		decorated = decorate(decorated)
	}
	return decorated
}

// AddOns returns the catalogue in display order.
func AddOns() []AddOn {
	out := make([]AddOn, len(catalogue))
	copy(out, catalogue)
	return out
}

// Names returns the add-on names in display order.
func Names() []domain.FeatureName {
	names := make([]domain.FeatureName, 0, len(catalogue))
	for _, a := range catalogue {
		names = append(names, a.name)
	}
	return names
}

// Lookup returns the decorator for name.
func Lookup(name domain.FeatureName) (Decorator, error) {
	for _, a := range catalogue {
		if a.name == name {
			return a.wrap, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFeature, name)
}
