package content

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/zhouzirui/folio/backend/internal/model/content"
)

// Service serves page sections from a content source.
type Service struct {
	source content.Source
	logger *zap.Logger
}

// NewService wraps source.
func NewService(source content.Source, logger *zap.Logger) *Service {
	return &Service{source: source, logger: logger}
}

// Section fetches a single section by name.
func (s *Service) Section(ctx context.Context, name string) (content.Result, error) {
	q, err := content.QueryFor(name)
	if err != nil {
		return content.Result{}, fmt.Errorf("%w: %q", err, name)
	}

	res, err := s.source.Fetch(ctx, q)
	if err != nil {
		return content.Result{}, fmt.Errorf("fetch section %s: %w", name, err)
	}
	return res, nil
}

// PageSection is one rendered entry of the page.
type PageSection struct {
	Name string          `json:"name"`
	Data json.RawMessage `json:"data"`
}

// Page fetches every section concurrently. Sections have no ordering
// dependency on each other; empty ones are dropped and the rest keep page
// order. The first failure cancels the outstanding fetches.
func (s *Service) Page(ctx context.Context) ([]PageSection, error) {
	all := content.Sections()
	results := make([]content.Result, len(all))

	g, gctx := errgroup.WithContext(ctx)
	for i, section := range all {
		g.Go(func() error {
			res, err := s.source.Fetch(gctx, content.Query{Section: section.Name, GROQ: section.Query})
			if err != nil {
				return fmt.Errorf("fetch section %s: %w", section.Name, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	page := make([]PageSection, 0, len(all))
	for i, section := range all {
		if results[i].Empty() {
			s.logger.Debug("skipping empty section", zap.String("section", section.Name))
			continue
		}
		page = append(page, PageSection{Name: section.Name, Data: results[i].Data})
	}
	return page, nil
}

// Profile returns the owner's profile, or nil when none is published.
func (s *Service) Profile(ctx context.Context) (*content.Profile, error) {
	res, err := s.Section(ctx, content.SectionHero)
	if err != nil {
		return nil, err
	}
	profile, ok, err := content.Decode[content.Profile](res)
	if err != nil || !ok {
		return nil, err
	}
	return &profile, nil
}
