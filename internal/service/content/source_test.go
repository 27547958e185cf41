package content

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/zhouzirui/folio/backend/internal/config"
	"github.com/zhouzirui/folio/backend/internal/model/content"
)

func TestNewSourceSelection(t *testing.T) {
	logger := zap.NewNop()

	t.Run("sanity when project configured", func(t *testing.T) {
		src, err := NewSource(config.ContentConfig{ProjectID: "abc123", Dataset: "production", APIVersion: "2024-01-01"}, logger)
		require.NoError(t, err)
		assert.IsType(t, &SanityClient{}, src)
	})

	t.Run("seed by default", func(t *testing.T) {
		src, err := NewSource(config.ContentConfig{}, logger)
		require.NoError(t, err)
		assert.IsType(t, &content.MemoryStore{}, src)
	})

	t.Run("yaml file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "content.yaml")
		require.NoError(t, os.WriteFile(path, []byte("profile:\n  firstName: Grace\n  lastName: Hopper\n"), 0o600))

		src, err := NewSource(config.ContentConfig{File: path}, logger)
		require.NoError(t, err)

		svc := NewService(src, logger)
		profile, err := svc.Profile(context.Background())
		require.NoError(t, err)
		require.NotNil(t, profile)
		assert.Equal(t, "Grace Hopper", profile.FullName())
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := NewSource(config.ContentConfig{File: filepath.Join(t.TempDir(), "nope.yaml")}, logger)
		require.Error(t, err)
	})
}
