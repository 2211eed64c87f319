package service

import (
	"context"
	"errors"
	"event_passport_backend/internal/model"
	"event_passport_backend/internal/repository"
	"event_passport_backend/internal/util"
	"math"

	"gorm.io/gorm"
)

type AttendeeService struct {
	AttendeeRepo *repository.AttendeeRepository
	VisitRepo    *repository.VisitRepository
}

func NewAttendeeService(attendeeRepo *repository.AttendeeRepository, visitRepo *repository.VisitRepository) *AttendeeService {
	return &AttendeeService{
		AttendeeRepo: attendeeRepo,
		VisitRepo:    visitRepo,
	}
}

// AttendeeData 注册或签到时提交的参会者信息
// swagger:model AttendeeData
type AttendeeData struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	PhoneNumber string `json:"phoneNumber"`
}

// AttendeeVisits 参会者及其访问历史
type AttendeeVisits struct {
	Attendee *model.Attendee `json:"attendee"`
	Visits   []model.Visit   `json:"visits"`
}

// AttendeeStats completionRate 为百分比，保留两位小数
type AttendeeStats struct {
	Attendee       *model.Attendee `json:"attendee"`
	TotalVisits    int64           `json:"totalVisits"`
	TotalBooths    int64           `json:"totalBooths"`
	CompletionRate float64         `json:"completionRate"`
}

func attendeeError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrAttendeeNotFound
	}
	return err
}

func (s *AttendeeService) List(ctx context.Context) ([]model.Attendee, error) {
	attendees, err := s.AttendeeRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if attendees == nil {
		attendees = []model.Attendee{}
	}
	return attendees, nil
}

func (s *AttendeeService) GetByID(ctx context.Context, id string) (*model.Attendee, error) {
	attendee, err := s.AttendeeRepo.FindByID(ctx, id)
	return attendee, attendeeError(err)
}

// GetByEmail 邮箱大小写不敏感
func (s *AttendeeService) GetByEmail(ctx context.Context, email string) (*model.Attendee, error) {
	attendee, err := s.AttendeeRepo.FindByEmail(ctx, email)
	return attendee, attendeeError(err)
}

// Create 显式注册；邮箱已存在（任意大小写）返回 ErrEmailRegistered
func (s *AttendeeService) Create(ctx context.Context, data *AttendeeData) (*model.Attendee, error) {
	_, err := s.AttendeeRepo.FindByEmail(ctx, data.Email)
	if err == nil {
		return nil, util.ErrEmailRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	attendee := &model.Attendee{
		Name:        data.Name,
		Email:       model.NormalizeEmail(data.Email),
		PhoneNumber: data.PhoneNumber,
	}
	if err := s.AttendeeRepo.Create(ctx, attendee); err != nil {
		// 并发注册时由唯一索引兜底
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, util.ErrEmailRegistered
		}
		return nil, err
	}
	return attendee, nil
}

func (s *AttendeeService) GetWithVisits(ctx context.Context, id string) (*AttendeeVisits, error) {
	attendee, err := s.AttendeeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, attendeeError(err)
	}

	visits, err := s.ListVisits(ctx, id)
	if err != nil {
		return nil, err
	}
	return &AttendeeVisits{Attendee: attendee, Visits: visits}, nil
}

// ListVisits 不校验参会者是否存在，未知 id 返回空列表
func (s *AttendeeService) ListVisits(ctx context.Context, attendeeID string) ([]model.Visit, error) {
	visits, err := s.VisitRepo.ListByAttendee(ctx, attendeeID)
	if err != nil {
		return nil, err
	}
	if visits == nil {
		visits = []model.Visit{}
	}
	return visits, nil
}

func (s *AttendeeService) Stats(ctx context.Context, id string) (*AttendeeStats, error) {
	attendee, err := s.AttendeeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, attendeeError(err)
	}

	completed, err := s.VisitRepo.CountCompletedByAttendee(ctx, id)
	if err != nil {
		return nil, err
	}
	total, err := s.VisitRepo.CountByAttendee(ctx, id)
	if err != nil {
		return nil, err
	}

	return &AttendeeStats{
		Attendee:       attendee,
		TotalVisits:    completed,
		TotalBooths:    total,
		CompletionRate: completionRate(completed, total),
	}, nil
}

func completionRate(completed, total int64) float64 {
	if total == 0 {
		return 0
	}
	return roundTo(float64(completed)/float64(total)*100, 2)
}

func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
