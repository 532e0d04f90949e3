package service

import (
	"context"

	"gunsmith-backend/internal/model"
	"gunsmith-backend/internal/repository"
)

type PlayerService struct {
	playerRepo *repository.PlayerRepository
}

func NewPlayerService(playerRepo *repository.PlayerRepository) *PlayerService {
	return &PlayerService{playerRepo: playerRepo}
}

func (s *PlayerService) Get(ctx context.Context, playerID string) (*model.Player, error) {
	return s.playerRepo.GetByID(ctx, playerID)
}

func (s *PlayerService) GetProfile(ctx context.Context, playerID string) (*model.PlayerProfile, error) {
	return s.playerRepo.GetProfile(ctx, playerID)
}
