// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-bank-clients/internal/config"
	"github.com/MKhiriev/go-bank-clients/internal/logger"
	"github.com/MKhiriev/go-bank-clients/internal/store"
	"github.com/MKhiriev/go-bank-clients/internal/validators"
	"github.com/MKhiriev/go-bank-clients/models"
)

type clientService struct {
	repo      store.ClientRepository
	exporter  store.ClientExporter
	validator validators.Validator
	delimiter string
}

// NewClientService constructs a [ClientService] over the given storages.
// cfg.Format picks the exporter used by Export; cfg.Delimiter is used by
// Record and must match the text exporter's.
//
// Log entries go to the logger carried by the ctx of each call.
func NewClientService(storages *store.ClientStorages, validator validators.Validator, cfg config.ClientExport) ClientService {
	exporter := storages.TextExporter
	if cfg.Format == config.ExportFormatSQLite {
		exporter = storages.SQLiteExporter
	}

	return &clientService{
		repo:      storages.ClientRepository,
		exporter:  exporter,
		validator: validator,
		delimiter: cfg.Delimiter,
	}
}

func (s *clientService) List(ctx context.Context) []models.Client {
	return s.repo.List()
}

func (s *clientService) Count(ctx context.Context) int {
	return s.repo.Len()
}

func (s *clientService) Find(ctx context.Context, accountNumber string) (models.Client, error) {
	log := logger.FromContext(ctx)

	idx, err := s.repo.Find(accountNumber)
	if err != nil {
		log.Debug().
			Str("func", "clientService.Find").
			Str("account_number", accountNumber).
			Msg("client not found")
		return models.Client{}, fmt.Errorf("find client %q: %w", accountNumber, err)
	}

	return s.repo.Get(idx)
}

func (s *clientService) Exists(ctx context.Context, accountNumber string) bool {
	_, err := s.repo.Find(accountNumber)
	return err == nil
}

func (s *clientService) Add(ctx context.Context, client models.Client) error {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, client, validators.FieldAccountNumber); err != nil {
		return fmt.Errorf("add client: %w", err)
	}

	if err := s.repo.Add(client); err != nil {
		log.Warn().Err(err).
			Str("func", "clientService.Add").
			Str("account_number", client.AccountNumber).
			Msg("client was not added")
		return fmt.Errorf("add client %q: %w", client.AccountNumber, err)
	}

	log.Info().
		Str("func", "clientService.Add").
		Str("account_number", client.AccountNumber).
		Int("clients", s.repo.Len()).
		Msg("client added")

	return nil
}

func (s *clientService) Update(ctx context.Context, accountNumber string, fields models.ClientFields) (models.Client, error) {
	log := logger.FromContext(ctx)

	idx, err := s.repo.Find(accountNumber)
	if err != nil {
		return models.Client{}, fmt.Errorf("update client %q: %w", accountNumber, err)
	}

	updated, err := s.repo.Update(idx, fields)
	if err != nil {
		return models.Client{}, fmt.Errorf("update client %q: %w", accountNumber, err)
	}

	log.Info().
		Str("func", "clientService.Update").
		Str("account_number", accountNumber).
		Msg("client updated")

	return updated, nil
}

func (s *clientService) Delete(ctx context.Context, accountNumber string) (models.Client, error) {
	log := logger.FromContext(ctx)

	idx, err := s.repo.Find(accountNumber)
	if err != nil {
		return models.Client{}, fmt.Errorf("delete client %q: %w", accountNumber, err)
	}

	removed, err := s.repo.Delete(idx)
	if err != nil {
		return models.Client{}, fmt.Errorf("delete client %q: %w", accountNumber, err)
	}

	log.Info().
		Str("func", "clientService.Delete").
		Str("account_number", accountNumber).
		Int("clients", s.repo.Len()).
		Msg("client deleted")

	return removed, nil
}

func (s *clientService) DeleteAll(ctx context.Context) int {
	n := s.repo.Len()
	s.repo.DeleteAll()

	log := logger.FromContext(ctx)

	log.Info().
		Str("func", "clientService.DeleteAll").
		Int("removed", n).
		Msg("all clients deleted")

	return n
}

func (s *clientService) Export(ctx context.Context, path string) error {
	log := logger.FromContext(ctx)
	clients := s.repo.List()

	if err := s.exporter.Export(ctx, path, clients); err != nil {
		log.Err(err).
			Str("func", "clientService.Export").
			Str("path", path).
			Msg("clients were not exported")
		return fmt.Errorf("export clients to %q: %w", path, err)
	}

	log.Info().
		Str("func", "clientService.Export").
		Str("path", path).
		Int("clients", len(clients)).
		Msg("clients exported")

	return nil
}

func (s *clientService) Record(client models.Client) string {
	return store.FormatClientRecord(client, s.delimiter)
}
