package services

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/Neon18H/APP-WEB-FILPP/domain"
)

// ClientService reads client records from the upstream table.
type ClientService struct {
	directory ClientDirectory
}

// NewClientService creates a ClientService backed by the given directory.
func NewClientService(directory ClientDirectory) *ClientService {
	return &ClientService{directory: directory}
}

// List returns every client record, newest first. An empty table is an
// empty slice, never an error.
func (s *ClientService) List(ctx context.Context) ([]domain.Client, error) {
	clients, err := s.directory.ListClients(ctx)
	if err != nil {
		log.Error().Err(err).Msg("listing clients from upstream table failed")
		return nil, err
	}
	if clients == nil {
		clients = []domain.Client{}
	}
	return clients, nil
}
