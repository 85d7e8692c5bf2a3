package store

import "github.com/ozerovd/go-sale-keeper/internal/logger"

// Storages bundles the server repositories handed to the service layer.
type Storages struct {
	UserRepository    UserRepository
	SaleRepository    SaleRepository
	CatalogRepository CatalogRepository
}

func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:    NewUserRepository(db, log),
		SaleRepository:    NewSaleRepository(db, log),
		CatalogRepository: NewCatalogRepository(db, log),
	}
}
