package session

import (
	"consultorio-service/internal/app/contracts"
	"consultorio-service/internal/app/models"
	"context"
)

type sessionService struct {
	RedisRepository contracts.RedisRepository
}

func NewSessionService(redisRepository contracts.RedisRepository) contracts.SessionService {
	return &sessionService{
		RedisRepository: redisRepository,
	}
}

func (svc *sessionService) CreateSession(ctx context.Context, session *models.Session) error {
	return svc.RedisRepository.CreateSession(ctx, session)
}

func (svc *sessionService) GetSessionData(ctx context.Context, sessionID string) (*models.Session, error) {
	return svc.RedisRepository.GetSession(ctx, sessionID)
}

func (svc *sessionService) DeleteSession(ctx context.Context, sessionID string) error {
	return svc.RedisRepository.DeleteSession(ctx, sessionID)
}
