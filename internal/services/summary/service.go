package summary

import (
	"fmt"
	"log/slog"

	"profiles/internal/domain"
	"profiles/internal/profile"
)

// Service builds profiles and renders them.
type Service struct {
	log *slog.Logger
}

// New returns a summary service. A nil logger falls back to slog.Default.
func New(log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{log: log}
}

// Line renders p as "<features> - Cost: $<cost>".
func Line(p domain.Profile) string {
	return fmt.Sprintf("%s - Cost: $%d", p.Features(), p.Cost())
}

// Demo returns the summaries of the basic profile and three progressively
// deeper chains. The same Basic backs every chain.
func (s *Service) Demo() []string {
	basic := profile.NewBasic()
	photo := profile.WithPhotoSharing(basic)
	story := profile.WithStorySharing(photo)
	full := profile.WithLiveStreaming(profile.WithStorySharing(profile.WithPhotoSharing(basic)))

	lines := make([]string, 0, 4)
	for _, p := range []domain.Profile{basic, photo, story, full} {
		lines = append(lines, Line(p))
	}
	s.log.Debug("built demo profiles", "count", len(lines))
	return lines
}

// Compose wraps a fresh Basic with the named add-ons, first name innermost,
// and renders the result.
func (s *Service) Compose(names ...domain.FeatureName) (string, error) {
	decorators := make([]profile.Decorator, 0, len(names))
	for _, name := range names {
		d, err := profile.Lookup(name)
		if err != nil {
			return "", fmt.Errorf("compose profile: %w", err)
		}
		decorators = append(decorators, d)
	}
	p := profile.Decorate(profile.NewBasic(), decorators...)
	s.log.Debug("composed profile", "addons", len(names), "cost", p.Cost())
	return Line(p), nil
}
