package service

import (
	"context"
	"fmt"

	"github.com/ozerovd/go-sale-keeper/internal/logger"
	"github.com/ozerovd/go-sale-keeper/internal/store"
	"github.com/ozerovd/go-sale-keeper/models"
)

// defaultPageSize caps a single bulk listing page. Terminals page through the
// whole catalog anyway, so an oversized limit only wastes memory.
const defaultPageSize = 500

// catalogService is the concrete implementation of CatalogService.
type catalogService struct {
	catalogRepository store.CatalogRepository
	maxPageSize       int
	logger            *logger.Logger
}

func NewCatalogService(catalogRepository store.CatalogRepository, maxPageSize int, logger *logger.Logger) CatalogService {
	if maxPageSize <= 0 {
		maxPageSize = defaultPageSize
	}
	return &catalogService{
		catalogRepository: catalogRepository,
		maxPageSize:       maxPageSize,
		logger:            logger,
	}
}

// ListProducts returns one page of the product catalog.
func (s *catalogService) ListProducts(ctx context.Context, limit, offset int) (models.ProductListResponse, error) {
	log := logger.FromContext(ctx)
	limit, offset = s.clampPage(limit, offset)

	products, total, err := s.catalogRepository.ListProducts(ctx, limit, offset)
	if err != nil {
		log.Err(err).Msg("product listing ended with error")
		return models.ProductListResponse{}, fmt.Errorf("product listing ended with error: %w", err)
	}

	return models.ProductListResponse{
		Products: products,
		Total:    total,
		Limit:    limit,
		Offset:   offset,
	}, nil
}

// ListClients returns one page of the client directory.
func (s *catalogService) ListClients(ctx context.Context, limit, offset int) (models.ClientListResponse, error) {
	log := logger.FromContext(ctx)
	limit, offset = s.clampPage(limit, offset)

	clients, total, err := s.catalogRepository.ListClients(ctx, limit, offset)
	if err != nil {
		log.Err(err).Msg("client listing ended with error")
		return models.ClientListResponse{}, fmt.Errorf("client listing ended with error: %w", err)
	}

	return models.ClientListResponse{
		Clients: clients,
		Total:   total,
		Limit:   limit,
		Offset:  offset,
	}, nil
}

func (s *catalogService) clampPage(limit, offset int) (int, int) {
	if limit <= 0 || limit > s.maxPageSize {
		limit = s.maxPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
