package store

import (
	"context"
	"fmt"

	"github.com/ozerovd/go-sale-keeper/internal/logger"
	"github.com/ozerovd/go-sale-keeper/models"
)

// catalogRepository serves the read-only bulk listings consumed by the
// terminals' cache refresh.
type catalogRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewCatalogRepository(db *DB, logger *logger.Logger) CatalogRepository {
	logger.Debug().Msg("creating catalog repository")
	return &catalogRepository{
		db:     db,
		logger: logger,
	}
}

// ListProducts returns one page of the catalog plus the total row count.
func (r *catalogRepository) ListProducts(ctx context.Context, limit, offset int) ([]models.Product, int, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listProducts, limit, offset)
	if err != nil {
		log.Err(err).Str("func", "*catalogRepository.ListProducts").Msg("error listing products")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		var p models.Product
		if err = rows.Scan(&p.ID, &p.Name, &p.Price, &p.StockQuantity, &p.Unit, &p.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		products = append(products, p)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	var total int
	if err = r.db.QueryRowContext(ctx, countProducts).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return products, total, nil
}

// ListClients returns one page of the client directory plus the total row
// count.
func (r *catalogRepository) ListClients(ctx context.Context, limit, offset int) ([]models.Client, int, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listClients, limit, offset)
	if err != nil {
		log.Err(err).Str("func", "*catalogRepository.ListClients").Msg("error listing clients")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var clients []models.Client
	for rows.Next() {
		var c models.Client
		if err = rows.Scan(&c.ID, &c.Name, &c.Phone, &c.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		clients = append(clients, c)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	var total int
	if err = r.db.QueryRowContext(ctx, countClients).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return clients, total, nil
}
