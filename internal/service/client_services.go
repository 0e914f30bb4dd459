package service

import (
	"github.com/MKhiriev/go-bank-clients/internal/config"
	"github.com/MKhiriev/go-bank-clients/internal/logger"
	"github.com/MKhiriev/go-bank-clients/internal/store"
	"github.com/MKhiriev/go-bank-clients/internal/validators"
)

// ClientServices groups the services used by the front-ends.
type ClientServices struct {
	ClientService ClientService
}

func NewClientServices(storages *store.ClientStorages, cfg config.ClientExport, logger *logger.Logger) *ClientServices {
	logger.Info().
		Str("export_format", cfg.Format).
		Msg("creating new services...")

	return &ClientServices{
		ClientService: NewClientService(storages, validators.NewClientValidator(), cfg),
	}
}
