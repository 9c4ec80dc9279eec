package layout

import (
	"context"
	"errors"
	"log/slog"
	"regexp"

	"dashgrid/internal/database"
	"dashgrid/internal/models"
)

// Service defines all layout-related business operations
type Service interface {
	// Read operations
	GetLayout(ctx context.Context) (models.Layout, error)
	GetPanel(ctx context.Context, panelKey string) (*models.Panel, error)

	// Write operations
	SaveLayout(ctx context.Context, layout models.Layout) error
	DeletePanel(ctx context.Context, panelKey string) error
}

var (
	panelKeyPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
	colorPattern    = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
)

// service implements Service backed by the panel repository
type service struct {
	repo *database.PanelRepo
}

// NewService creates a new layout service
func NewService(repo *database.PanelRepo) Service {
	return &service{repo: repo}
}

// GetLayout retrieves the complete stored layout
func (s *service) GetLayout(ctx context.Context) (models.Layout, error) {
	return s.repo.GetAllPanels(ctx)
}

// GetPanel retrieves a single panel by key
func (s *service) GetPanel(ctx context.Context, panelKey string) (*models.Panel, error) {
	if !panelKeyPattern.MatchString(panelKey) {
		return nil, ErrInvalidPanelKey
	}
	panel, err := s.repo.GetPanel(ctx, panelKey)
	if errors.Is(err, models.ErrPanelNotFound) {
		return nil, ErrPanelNotFound
	}
	return panel, err
}

// SaveLayout validates and persists the full layout snapshot. An empty layout
// is legal and clears every stored panel.
func (s *service) SaveLayout(ctx context.Context, layout models.Layout) error {
	if err := validateLayout(layout); err != nil {
		return err
	}
	if err := s.repo.SavePanels(ctx, layout); err != nil {
		return err
	}
	slog.Info("layout saved", "panels", len(layout))
	return nil
}

// DeletePanel removes a panel and its widgets
func (s *service) DeletePanel(ctx context.Context, panelKey string) error {
	if !panelKeyPattern.MatchString(panelKey) {
		return ErrInvalidPanelKey
	}
	err := s.repo.DeletePanel(ctx, panelKey)
	if errors.Is(err, models.ErrPanelNotFound) {
		return ErrPanelNotFound
	}
	return err
}

// validateLayout checks every panel and widget before any write happens
func validateLayout(layout models.Layout) error {
	seen := make(map[int64]bool)
	for key, panel := range layout {
		if !panelKeyPattern.MatchString(key) {
			return ErrInvalidPanelKey
		}
		if panel.Title == "" {
			return ErrEmptyPanelTitle
		}
		if len(panel.Title) > 100 {
			return ErrPanelTitleTooLong
		}
		for _, w := range panel.Widgets {
			if w.WidgetID <= 0 {
				return ErrInvalidWidgetID
			}
			if seen[w.WidgetID] {
				return ErrDuplicateWidgetID
			}
			seen[w.WidgetID] = true
			if w.Title == "" {
				return ErrEmptyWidgetTitle
			}
			if len(w.Title) > 100 {
				return ErrTitleTooLong
			}
			if w.Color != "" && !colorPattern.MatchString(w.Color) {
				return ErrInvalidColor
			}
		}
	}
	return nil
}
