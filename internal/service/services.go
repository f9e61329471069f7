package service

import (
	"github.com/wall-of-love/server/internal/config"
	"github.com/wall-of-love/server/internal/logger"
	"github.com/wall-of-love/server/internal/store"
)

type Services struct {
	AuthService   AuthService
	ItemService   ItemService
	UploadService UploadService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:   NewAuthService(storages.UserRepository, cfg.Auth, logger),
		ItemService:   NewItemService(storages.ItemRepository, storages.FileStorage, logger),
		UploadService: NewUploadService(storages.FileStorage, logger),
	}
}
