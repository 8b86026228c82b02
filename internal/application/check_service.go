package application

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/checkpass/checkpass-server/internal/domain/entity"
	repo "github.com/checkpass/checkpass-server/internal/domain/repository"
)

// CheckService records and lists a user's check runs.
type CheckService struct {
	Checks repo.CheckRepository
}

func NewCheckService(checks repo.CheckRepository) *CheckService {
	return &CheckService{Checks: checks}
}

func (s *CheckService) List(ctx context.Context, userID string) ([]*entity.Check, error) {
	return s.Checks.ListByUser(ctx, userID)
}

func (s *CheckService) Create(ctx context.Context, userID, checkType, status string, result json.RawMessage) (*entity.Check, error) {
	c := &entity.Check{
		UserID: userID,
		Type:   checkType,
		Status: status,
		Result: result,
	}
	if err := s.Checks.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("create check: %w", err)
	}
	return c, nil
}
