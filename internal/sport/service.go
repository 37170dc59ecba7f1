package sport

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/courtbook/courtbook-backend/internal/pkg/apperror"
	"github.com/courtbook/courtbook-backend/internal/pkg/storage"
)

// Thumbnail bounding box for uploaded sport images.
const (
	imageMaxWidth  = 512
	imageMaxHeight = 512
)

type CreateRequest struct {
	Name        string
	ImageURL    string
	Description string
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Sport, error)
	GetByID(ctx context.Context, id string) (*Sport, error)
	List(ctx context.Context, filter Filter) ([]*Sport, int, error)

	// SetImage stores a thumbnail of content as the sport's image and points
	// the sport's ImageURL at the serving endpoint.
	SetImage(ctx context.Context, id string, content io.Reader) (*Sport, error)
	// GetImage returns the stored image content for the sport.
	GetImage(ctx context.Context, id string) (io.ReadCloser, error)
}

type service struct {
	repo      Repository
	files     storage.Storage
	processor *storage.ImageProcessor
}

func NewService(repo Repository, files storage.Storage) Service {
	return &service{
		repo:      repo,
		files:     files,
		processor: storage.NewImageProcessor(),
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Sport, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrNameRequired
	}

	sp := &Sport{
		Name:        req.Name,
		ImageURL:    req.ImageURL,
		Description: req.Description,
	}

	if err := s.repo.Create(ctx, sp); err != nil {
		return nil, err
	}
	return sp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Sport, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Sport, int, error) {
	return s.repo.List(ctx, filter)
}

func imagePath(id string) string {
	return fmt.Sprintf("sports/%s.jpg", id)
}

func (s *service) SetImage(ctx context.Context, id string, content io.Reader) (*Sport, error) {
	sp, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	thumbnail, err := s.processor.GenerateThumbnail(content, imageMaxWidth, imageMaxHeight)
	if err != nil {
		return nil, apperror.Wrap(err, http.StatusBadRequest, "invalid image file")
	}

	if err := s.files.Save(ctx, imagePath(id), thumbnail); err != nil {
		return nil, fmt.Errorf("save sport image failed: %w", err)
	}

	sp.ImageURL = fmt.Sprintf("/v1/sports/%s/image", id)
	if err := s.repo.Update(ctx, sp); err != nil {
		return nil, err
	}
	return sp, nil
}

func (s *service) GetImage(ctx context.Context, id string) (io.ReadCloser, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	content, err := s.files.Get(ctx, imagePath(id))
	if err != nil {
		return nil, ErrNoImage
	}
	return content, nil
}
