package content

import (
	"go.uber.org/zap"

	"github.com/zhouzirui/folio/backend/internal/config"
	"github.com/zhouzirui/folio/backend/internal/model/content"
)

// NewSource picks the content source from configuration: the Sanity query API
// when a project is set, otherwise the CONTENT_FILE YAML document or the
// built-in seed.
func NewSource(cfg config.ContentConfig, logger *zap.Logger) (content.Source, error) {
	if cfg.SanityEnabled() {
		logger.Info("using sanity content source",
			zap.String("project", cfg.ProjectID),
			zap.String("dataset", cfg.Dataset),
			zap.Bool("cdn", cfg.UseCDN && cfg.Token == ""))
		return NewSanityClient(cfg, nil), nil
	}

	if cfg.File == "" {
		logger.Info("using built-in content seed")
		return content.NewMemoryStore(content.Seed()), nil
	}

	doc, err := content.LoadFile(cfg.File)
	if err != nil {
		return nil, err
	}
	logger.Info("using content file", zap.String("path", cfg.File))
	return content.NewMemoryStore(doc), nil
}
