package summary_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"profiles/internal/domain"
	"profiles/internal/profile"
	"profiles/internal/services/summary"
)

func TestLine(t *testing.T) {
	assert.Equal(t,
		"Basic Profile Features: Text Posts, Comments, Likes - Cost: $0",
		summary.Line(profile.NewBasic()))
	assert.Equal(t,
		"Basic Profile Features: Text Posts, Comments, Likes, Live Streaming - Cost: $10",
		summary.Line(profile.WithLiveStreaming(profile.NewBasic())))
}

func TestDemo(t *testing.T) {
	want := []string{
		"Basic Profile Features: Text Posts, Comments, Likes - Cost: $0",
		"Basic Profile Features: Text Posts, Comments, Likes, Photo Sharing - Cost: $5",
		"Basic Profile Features: Text Posts, Comments, Likes, Photo Sharing, Story Sharing - Cost: $8",
		"Basic Profile Features: Text Posts, Comments, Likes, Photo Sharing, Story Sharing, Live Streaming - Cost: $18",
	}
	assert.Equal(t, want, summary.New(nil).Demo())
}

func TestCompose(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	svc := summary.New(log)

	tests := []struct {
		names []domain.FeatureName
		want  string
	}{
		{nil, "Basic Profile Features: Text Posts, Comments, Likes - Cost: $0"},
		{[]domain.FeatureName{"story"}, "Basic Profile Features: Text Posts, Comments, Likes, Story Sharing - Cost: $3"},
		{
			[]domain.FeatureName{"live", "story", "photo"},
			"Basic Profile Features: Text Posts, Comments, Likes, Live Streaming, Story Sharing, Photo Sharing - Cost: $18",
		},
		{
			[]domain.FeatureName{"photo", "photo"},
			"Basic Profile Features: Text Posts, Comments, Likes, Photo Sharing, Photo Sharing - Cost: $10",
		},
	}
	for _, tt := range tests {
		got, err := svc.Compose(tt.names...)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
	assert.Contains(t, buf.String(), "composed profile")
}

func TestCompose_UnknownFeature(t *testing.T) {
	_, err := summary.New(nil).Compose("photo", "hologram")
	require.ErrorIs(t, err, profile.ErrUnknownFeature)
}
