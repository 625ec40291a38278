package service

import (
	"context"
	"fmt"
	"strconv"

	"productstore/internal/dto"
	"productstore/internal/model"
	"productstore/internal/repository"

	"github.com/rs/zerolog/log"
)

// ProductService defines the business logic contract for products.
// All input validation happens here, before any storage mutation.
type ProductService interface {
	Create(ctx context.Context, req dto.ProductRequest) (*dto.ProductResponse, error)
	Get(ctx context.Context, id uint) (*dto.ProductResponse, error)
	List(ctx context.Context, filter dto.ProductFilter) ([]dto.ProductResponse, error)
	Update(ctx context.Context, id uint, req dto.ProductRequest) (*dto.ProductResponse, error)
	Delete(ctx context.Context, id uint) (string, error)
	Categories() []string
}

type productService struct {
	repo repository.ProductRepository
}

func NewProductService(repo repository.ProductRepository) ProductService {
	return &productService{repo: repo}
}

func (s *productService) Create(ctx context.Context, req dto.ProductRequest) (*dto.ProductResponse, error) {
	p, err := productFromRequest(req)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	log.Info().Uint("id", p.ID).Str("product", p.String()).Msg("product created")
	resp := toResponse(p)
	return &resp, nil
}

func (s *productService) Get(ctx context.Context, id uint) (*dto.ProductResponse, error) {
	p, err := s.repo.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNotFound
	}
	resp := toResponse(p)
	return &resp, nil
}

// List honors at most one filter, with the reference precedence
// name > category > availability. An empty result set, filtered or not,
// is reported as ErrNotFound rather than an empty 200 list.
func (s *productService) List(ctx context.Context, filter dto.ProductFilter) ([]dto.ProductResponse, error) {
	var (
		products []model.Product
		err      error
	)

	switch {
	case filter.Name != "":
		log.Info().Str("name", filter.Name).Msg("find by name")
		products, err = s.repo.FindByName(ctx, filter.Name)
	case filter.Category != "":
		log.Info().Str("category", filter.Category).Msg("find by category")
		category, ok := model.ParseCategory(filter.Category)
		if !ok {
			return nil, invalidf("unknown category %q", filter.Category)
		}
		products, err = s.repo.FindByCategory(ctx, category)
	case filter.Availability != "":
		log.Info().Str("availability", filter.Availability).Msg("find by availability")
		available, parseErr := strconv.ParseBool(filter.Availability)
		if parseErr != nil {
			return nil, invalidf("availability must be a boolean value, got %q", filter.Availability)
		}
		products, err = s.repo.FindByAvailability(ctx, available)
	default:
		log.Info().Msg("find all")
		products, err = s.repo.All(ctx)
	}
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, ErrNotFound
	}

	responses := make([]dto.ProductResponse, 0, len(products))
	for i := range products {
		responses = append(responses, toResponse(&products[i]))
	}
	return responses, nil
}

// Update replaces every mutable field of an existing product. The path id
// always wins over any id carried in the body.
func (s *productService) Update(ctx context.Context, id uint, req dto.ProductRequest) (*dto.ProductResponse, error) {
	existing, err := s.repo.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrNotFound
	}

	p, err := productFromRequest(req)
	if err != nil {
		return nil, err
	}
	p.ID = existing.ID
	p.CreatedAt = existing.CreatedAt

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	log.Info().Uint("id", p.ID).Str("product", p.String()).Msg("product updated")
	resp := toResponse(p)
	return &resp, nil
}

func (s *productService) Delete(ctx context.Context, id uint) (string, error) {
	p, err := s.repo.Find(ctx, id)
	if err != nil {
		return "", err
	}
	if p == nil {
		return "", ErrNotFound
	}
	if err := s.repo.Delete(ctx, p); err != nil {
		return "", err
	}
	log.Info().Uint("id", id).Str("name", p.Name).Msg("product deleted")
	return fmt.Sprintf("The product with name %s successfully deleted", p.Name), nil
}

func (s *productService) Categories() []string {
	return model.CategoryNames()
}

// productFromRequest validates every field before constructing the entity, so
// a failure never leaves a partially-written product behind.
func productFromRequest(req dto.ProductRequest) (*model.Product, error) {
	if req.Name == "" {
		return nil, invalidf("name is required")
	}
	if req.Price == nil {
		return nil, invalidf("price is required")
	}
	if req.Available == nil {
		return nil, invalidf("available is required")
	}
	category, ok := model.ParseCategory(req.Category)
	if !ok {
		return nil, invalidf("unknown category %q", req.Category)
	}
	return &model.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
		Available:   *req.Available,
		Category:    category,
	}, nil
}

func toResponse(p *model.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Available:   p.Available,
		Category:    p.Category.String(),
	}
}
