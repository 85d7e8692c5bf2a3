package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ozerovd/go-sale-keeper/internal/logger"
	"github.com/ozerovd/go-sale-keeper/models"
)

// ─────────────────────────────────────────────
// Mock: store.CatalogRepository
// ─────────────────────────────────────────────

type mockCatalogRepository struct {
	listProductsFn func(ctx context.Context, limit, offset int) ([]models.Product, int, error)
	listClientsFn  func(ctx context.Context, limit, offset int) ([]models.Client, int, error)
}

func (m *mockCatalogRepository) ListProducts(ctx context.Context, limit, offset int) ([]models.Product, int, error) {
	if m.listProductsFn != nil {
		return m.listProductsFn(ctx, limit, offset)
	}
	return nil, 0, nil
}

func (m *mockCatalogRepository) ListClients(ctx context.Context, limit, offset int) ([]models.Client, int, error) {
	if m.listClientsFn != nil {
		return m.listClientsFn(ctx, limit, offset)
	}
	return nil, 0, nil
}

// ─────────────────────────────────────────────
// ListProducts
// ─────────────────────────────────────────────

func TestCatalogService_ListProducts_Success(t *testing.T) {
	expected := []models.Product{{ID: 1, Name: "Milk"}}
	repo := &mockCatalogRepository{
		listProductsFn: func(_ context.Context, limit, offset int) ([]models.Product, int, error) {
			assert.Equal(t, 100, limit)
			assert.Equal(t, 200, offset)
			return expected, 1234, nil
		},
	}
	svc := NewCatalogService(repo, 500, logger.Nop())

	resp, err := svc.ListProducts(context.Background(), 100, 200)

	require.NoError(t, err)
	assert.Equal(t, expected, resp.Products)
	assert.Equal(t, 1234, resp.Total)
	assert.Equal(t, 100, resp.Limit)
	assert.Equal(t, 200, resp.Offset)
}

func TestCatalogService_ListProducts_ClampsPage(t *testing.T) {
	repo := &mockCatalogRepository{
		listProductsFn: func(_ context.Context, limit, offset int) ([]models.Product, int, error) {
			assert.Equal(t, 500, limit, "oversized limit must be clamped to the configured maximum")
			assert.Equal(t, 0, offset, "negative offset must be reset to zero")
			return nil, 0, nil
		},
	}
	svc := NewCatalogService(repo, 500, logger.Nop())

	resp, err := svc.ListProducts(context.Background(), 100000, -5)

	require.NoError(t, err)
	assert.Equal(t, 500, resp.Limit)
	assert.Equal(t, 0, resp.Offset)
}

func TestCatalogService_ListProducts_ZeroLimitUsesMax(t *testing.T) {
	repo := &mockCatalogRepository{
		listProductsFn: func(_ context.Context, limit, _ int) ([]models.Product, int, error) {
			assert.Equal(t, 500, limit)
			return nil, 0, nil
		},
	}
	// zero configured page size falls back to the built-in default
	svc := NewCatalogService(repo, 0, logger.Nop())

	_, err := svc.ListProducts(context.Background(), 0, 0)
	require.NoError(t, err)
}

func TestCatalogService_ListProducts_RepositoryError(t *testing.T) {
	repo := &mockCatalogRepository{
		listProductsFn: func(_ context.Context, _, _ int) ([]models.Product, int, error) {
			return nil, 0, errRepository
		},
	}
	svc := NewCatalogService(repo, 500, logger.Nop())

	_, err := svc.ListProducts(context.Background(), 10, 0)
	require.ErrorIs(t, err, errRepository)
}

// ─────────────────────────────────────────────
// ListClients
// ─────────────────────────────────────────────

func TestCatalogService_ListClients_Success(t *testing.T) {
	expected := []models.Client{{ID: 3, Name: "Petrov"}}
	repo := &mockCatalogRepository{
		listClientsFn: func(_ context.Context, limit, offset int) ([]models.Client, int, error) {
			return expected, 1, nil
		},
	}
	svc := NewCatalogService(repo, 500, logger.Nop())

	resp, err := svc.ListClients(context.Background(), 10, 0)

	require.NoError(t, err)
	assert.Equal(t, expected, resp.Clients)
	assert.Equal(t, 1, resp.Total)
}

func TestCatalogService_ListClients_RepositoryError(t *testing.T) {
	repo := &mockCatalogRepository{
		listClientsFn: func(_ context.Context, _, _ int) ([]models.Client, int, error) {
			return nil, 0, errRepository
		},
	}
	svc := NewCatalogService(repo, 500, logger.Nop())

	_, err := svc.ListClients(context.Background(), 10, 0)
	require.ErrorIs(t, err, errRepository)
}
