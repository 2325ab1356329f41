package service

import (
	"github.com/paulobof/sistema-bancario/internal/config"
	"github.com/paulobof/sistema-bancario/internal/logger"
	"github.com/paulobof/sistema-bancario/internal/store"
	"github.com/paulobof/sistema-bancario/internal/validators"
)

type Services struct {
	ClientService  ClientService
	AccountService AccountService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		ClientService:  NewClientService(storages, validators.NewClientValidator(), logger),
		AccountService: NewAccountService(storages, cfg.Limits, logger),
		AppInfoService: appInfoService,
	}, nil
}
