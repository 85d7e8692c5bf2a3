package pos

import (
	"context"
	"fmt"

	"github.com/ozerovd/go-sale-keeper/internal/adapter"
	"github.com/ozerovd/go-sale-keeper/internal/localstore"
	"github.com/ozerovd/go-sale-keeper/internal/logger"
	"github.com/ozerovd/go-sale-keeper/models"
)

const defaultCachePageSize = 500

type cacheRefresher struct {
	db       *localstore.DB
	cache    localstore.Cache
	server   adapter.ServerAdapter
	notifier Notifier
	pageSize int
	logger   *logger.Logger
}

// NewCacheRefresher builds the catalog cache refresh controller. pageSize
// bounds how many rows one server round trip carries.
func NewCacheRefresher(db *localstore.DB, cache localstore.Cache, server adapter.ServerAdapter, notifier Notifier, pageSize int, log *logger.Logger) CacheRefresher {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	if pageSize <= 0 {
		pageSize = defaultCachePageSize
	}

	return &cacheRefresher{
		db:       db,
		cache:    cache,
		server:   server,
		notifier: notifier,
		pageSize: pageSize,
		logger:   log.GetChildLogger(),
	}
}

// RefreshCaches implements [CacheRefresher]. Both datasets are downloaded in
// full before either cache is touched: a network failure halfway through must
// not leave the till without a catalog.
func (c *cacheRefresher) RefreshCaches(ctx context.Context) (models.CacheRefreshStats, error) {
	products, err := c.fetchAllProducts(ctx)
	if err != nil {
		return models.CacheRefreshStats{}, fmt.Errorf("fetch products: %w", err)
	}

	clients, err := c.fetchAllClients(ctx)
	if err != nil {
		return models.CacheRefreshStats{}, fmt.Errorf("fetch clients: %w", err)
	}

	if err = c.db.ClearCollection(ctx, localstore.CollectionProductsCache); err != nil {
		return models.CacheRefreshStats{}, err
	}
	if err = c.cache.PutProducts(ctx, products); err != nil {
		return models.CacheRefreshStats{}, fmt.Errorf("store products: %w", err)
	}

	if err = c.db.ClearCollection(ctx, localstore.CollectionClientsCache); err != nil {
		return models.CacheRefreshStats{}, err
	}
	if err = c.cache.PutClients(ctx, clients); err != nil {
		return models.CacheRefreshStats{}, fmt.Errorf("store clients: %w", err)
	}

	stats := models.CacheRefreshStats{Products: len(products), Clients: len(clients)}
	c.logger.Info().Int("products", stats.Products).Int("clients", stats.Clients).Msg("caches refreshed")
	c.notifier.CacheRefreshed(stats)

	return stats, nil
}

func (c *cacheRefresher) fetchAllProducts(ctx context.Context) ([]models.Product, error) {
	var all []models.Product

	for offset := 0; ; {
		page, err := c.server.ListProducts(ctx, c.pageSize, offset)
		if err != nil {
			return nil, err
		}

		all = append(all, page.Products...)
		offset += len(page.Products)

		if len(page.Products) == 0 || offset >= page.Total {
			return all, nil
		}
	}
}

func (c *cacheRefresher) fetchAllClients(ctx context.Context) ([]models.Client, error) {
	var all []models.Client

	for offset := 0; ; {
		page, err := c.server.ListClients(ctx, c.pageSize, offset)
		if err != nil {
			return nil, err
		}

		all = append(all, page.Clients...)
		offset += len(page.Clients)

		if len(page.Clients) == 0 || offset >= page.Total {
			return all, nil
		}
	}
}
