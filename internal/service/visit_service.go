package service

import (
	"context"
	"event_passport_backend/internal/model"
	"event_passport_backend/internal/repository"
)

type VisitService struct {
	VisitRepo *repository.VisitRepository
}

func NewVisitService(visitRepo *repository.VisitRepository) *VisitService {
	return &VisitService{VisitRepo: visitRepo}
}

// ListAll 关联参会者与展位，按访问时间倒序
func (s *VisitService) ListAll(ctx context.Context) ([]model.Visit, error) {
	visits, err := s.VisitRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if visits == nil {
		visits = []model.Visit{}
	}
	return visits, nil
}
