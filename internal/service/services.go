package service

import (
	"github.com/ozerovd/go-sale-keeper/internal/config"
	"github.com/ozerovd/go-sale-keeper/internal/logger"
	"github.com/ozerovd/go-sale-keeper/internal/store"
)

type Services struct {
	AuthService    AuthService
	SalesService   SalesService
	CatalogService CatalogService
}

func NewServices(storages store.Storages, cfg *config.ServerConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, cfg.App, logger),
		SalesService:   NewSalesService(storages.SaleRepository, logger),
		CatalogService: NewCatalogService(storages.CatalogRepository, cfg.Workers.CachePageSize, logger),
	}
}
