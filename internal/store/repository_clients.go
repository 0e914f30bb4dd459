// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"sync"

	"github.com/MKhiriev/go-bank-clients/models"
)

type clientRepository struct {
	mu      sync.RWMutex
	clients []models.Client
}

// NewClientRepository returns an empty in-memory [ClientRepository].
func NewClientRepository() ClientRepository {
	return &clientRepository{}
}

func (r *clientRepository) Find(accountNumber string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.find(accountNumber)
}

func (r *clientRepository) find(accountNumber string) (int, error) {
	for i, c := range r.clients {
		if c.AccountNumber == accountNumber {
			return i, nil
		}
	}
	return -1, ErrClientNotFound
}

func (r *clientRepository) Get(index int) (models.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if !r.inRange(index) {
		return models.Client{}, ErrClientNotFound
	}
	return r.clients[index], nil
}

func (r *clientRepository) List() []models.Client {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Client, len(r.clients))
	copy(out, r.clients)
	return out
}

func (r *clientRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.clients)
}

func (r *clientRepository) Add(client models.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, err := r.find(client.AccountNumber); err == nil {
		return ErrClientAlreadyExists
	}
	r.clients = append(r.clients, client)
	return nil
}

func (r *clientRepository) Update(index int, fields models.ClientFields) (models.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.inRange(index) {
		return models.Client{}, ErrClientNotFound
	}
	r.clients[index] = r.clients[index].WithFields(fields)
	return r.clients[index], nil
}

func (r *clientRepository) Delete(index int) (models.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.inRange(index) {
		return models.Client{}, ErrClientNotFound
	}
	removed := r.clients[index]
	// shift left, order of the remaining records is kept
	copy(r.clients[index:], r.clients[index+1:])
	r.clients[len(r.clients)-1] = models.Client{}
	r.clients = r.clients[:len(r.clients)-1]
	return removed, nil
}

func (r *clientRepository) DeleteAll() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.clients = nil
}

func (r *clientRepository) inRange(index int) bool {
	return index >= 0 && index < len(r.clients)
}
