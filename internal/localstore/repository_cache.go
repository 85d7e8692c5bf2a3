// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package localstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ozerovd/go-sale-keeper/internal/logger"
	"github.com/ozerovd/go-sale-keeper/models"
)

// CacheRepository stores the local read-only copy of the server catalog.
type CacheRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewCacheRepository(db *DB, log *logger.Logger) *CacheRepository {
	return &CacheRepository{
		db:     db,
		logger: log.GetChildLogger(),
	}
}

// PutProducts upserts a page of products into the cache in one transaction.
func (r *CacheRepository) PutProducts(ctx context.Context, products []models.Product) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return storageErr("begin put products tx", err)
	}
	defer tx.Rollback()

	for _, p := range products {
		_, err = tx.ExecContext(ctx, upsertProductQuery,
			p.ID, p.Name, p.Price.String(), p.StockQuantity, p.Unit, p.UpdatedAt)
		if err != nil {
			r.logger.Err(err).Str("func", "PutProducts").Int64("product_id", p.ID).Msg("error upserting product")
			return storageErr("upsert product", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return storageErr("commit put products tx", err)
	}

	return nil
}

// GetProduct returns one cached product by id.
func (r *CacheRepository) GetProduct(ctx context.Context, id int64) (models.Product, error) {
	row := r.db.QueryRowContext(ctx, selectProductQuery, id)

	product, err := scanProduct(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, fmt.Errorf("%w: id=%d", ErrProductNotFound, id)
	}
	if err != nil {
		return models.Product{}, storageErr("select product", err)
	}

	return product, nil
}

// GetAllProducts returns the whole product cache sorted by name.
func (r *CacheRepository) GetAllProducts(ctx context.Context) ([]models.Product, error) {
	rows, err := r.db.QueryContext(ctx, selectAllProductsQuery)
	if err != nil {
		r.logger.Err(err).Str("func", "GetAllProducts").Msg("error querying products cache")
		return nil, storageErr("select products", err)
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, storageErr("scan product", err)
		}
		products = append(products, product)
	}
	if err = rows.Err(); err != nil {
		return nil, storageErr("iterate products", err)
	}

	return products, nil
}

// CountProducts returns the number of cached products.
func (r *CacheRepository) CountProducts(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, countProductsQuery).Scan(&count); err != nil {
		return 0, storageErr("count products", err)
	}

	return count, nil
}

// PutClients upserts a page of clients into the cache in one transaction.
func (r *CacheRepository) PutClients(ctx context.Context, clients []models.Client) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return storageErr("begin put clients tx", err)
	}
	defer tx.Rollback()

	for _, c := range clients {
		if _, err = tx.ExecContext(ctx, upsertClientQuery, c.ID, c.Name, c.Phone, c.UpdatedAt); err != nil {
			r.logger.Err(err).Str("func", "PutClients").Int64("client_id", c.ID).Msg("error upserting client")
			return storageErr("upsert client", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return storageErr("commit put clients tx", err)
	}

	return nil
}

// GetClient returns one cached client by id.
func (r *CacheRepository) GetClient(ctx context.Context, id int64) (models.Client, error) {
	var client models.Client
	err := r.db.QueryRowContext(ctx, selectClientQuery, id).
		Scan(&client.ID, &client.Name, &client.Phone, &client.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Client{}, fmt.Errorf("%w: id=%d", ErrClientNotFound, id)
	}
	if err != nil {
		return models.Client{}, storageErr("select client", err)
	}

	return client, nil
}

// GetAllClients returns the whole client cache sorted by name.
func (r *CacheRepository) GetAllClients(ctx context.Context) ([]models.Client, error) {
	rows, err := r.db.QueryContext(ctx, selectAllClientsQuery)
	if err != nil {
		r.logger.Err(err).Str("func", "GetAllClients").Msg("error querying clients cache")
		return nil, storageErr("select clients", err)
	}
	defer rows.Close()

	var clients []models.Client
	for rows.Next() {
		var client models.Client
		if err = rows.Scan(&client.ID, &client.Name, &client.Phone, &client.UpdatedAt); err != nil {
			return nil, storageErr("scan client", err)
		}
		clients = append(clients, client)
	}
	if err = rows.Err(); err != nil {
		return nil, storageErr("iterate clients", err)
	}

	return clients, nil
}

// CountClients returns the number of cached clients.
func (r *CacheRepository) CountClients(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, countClientsQuery).Scan(&count); err != nil {
		return 0, storageErr("count clients", err)
	}

	return count, nil
}

func scanProduct(row rowScanner) (models.Product, error) {
	var (
		product models.Product
		price   string
	)

	err := row.Scan(&product.ID, &product.Name, &price, &product.StockQuantity, &product.Unit, &product.UpdatedAt)
	if err != nil {
		return models.Product{}, err
	}

	if product.Price, err = decimal.NewFromString(price); err != nil {
		return models.Product{}, fmt.Errorf("error parsing product price: %w", err)
	}

	return product, nil
}
