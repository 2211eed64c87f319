package service

import (
	"context"
	"errors"
	"event_passport_backend/internal/model"
	"event_passport_backend/internal/repository"
	"event_passport_backend/internal/util"
	"event_passport_backend/pkg/logger"
	"event_passport_backend/pkg/monitoring"
	"event_passport_backend/pkg/tracing"
	"strconv"
	"time"
	"unicode/utf8"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// VisitEventPublisher 访问事件的下游投递，失败只记录日志
type VisitEventPublisher interface {
	Publish(ctx context.Context, event *model.VisitEvent) error
}

// NoopPublisher 未启用消息队列时使用
type NoopPublisher struct{}

func (NoopPublisher) Publish(ctx context.Context, event *model.VisitEvent) error {
	return nil
}

type CheckinService struct {
	AttendeeRepo *repository.AttendeeRepository
	BoothRepo    *repository.BoothRepository
	VisitRepo    *repository.VisitRepository
	Publisher    VisitEventPublisher
}

func NewCheckinService(
	attendeeRepo *repository.AttendeeRepository,
	boothRepo *repository.BoothRepository,
	visitRepo *repository.VisitRepository,
	publisher VisitEventPublisher,
) *CheckinService {
	if publisher == nil {
		publisher = NoopPublisher{}
	}
	return &CheckinService{
		AttendeeRepo: attendeeRepo,
		BoothRepo:    boothRepo,
		VisitRepo:    visitRepo,
		Publisher:    publisher,
	}
}

// CheckinRequest 扫码签到
// swagger:model CheckinRequest
type CheckinRequest struct {
	BoothQRCode  string       `json:"boothQrCode" binding:"required"`
	AttendeeData AttendeeData `json:"attendeeData" binding:"required"`
	Answers      []string     `json:"answers"`
}

// CheckinResult 签到结果
// swagger:model CheckinResult
type CheckinResult struct {
	Success  bool                  `json:"success"`
	Visit    *model.Visit          `json:"visit"`
	Attendee model.AttendeeSummary `json:"attendee"`
	Booth    model.BoothSummary    `json:"booth"`
}

// RateRequest rating 缺失时按 0 处理，进而校验失败
// swagger:model RateRequest
type RateRequest struct {
	Rating  *int   `json:"rating"`
	Comment string `json:"comment"`
}

// RateResult 评分结果
// swagger:model RateResult
type RateResult struct {
	Success bool         `json:"success"`
	Visit   *model.Visit `json:"visit"`
	Message string       `json:"message"`
}

func (s *CheckinService) Checkin(ctx context.Context, req *CheckinRequest) (*CheckinResult, error) {
	ctx, span := tracing.Tracer.Start(ctx, "CheckinService.Checkin")
	defer span.End()

	result, err := s.checkin(ctx, req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		monitoring.CheckinCounter.WithLabelValues(checkinFailureLabel(err)).Inc()
		return nil, err
	}

	span.SetAttributes(
		attribute.String("passport.visit_id", result.Visit.ID),
		attribute.Bool("passport.visited", result.Visit.IsVisited),
	)
	if result.Visit.IsVisited {
		monitoring.CheckinCounter.WithLabelValues("completed").Inc()
	} else {
		monitoring.CheckinCounter.WithLabelValues("incomplete").Inc()
	}

	s.publish(ctx, model.VisitEventCheckedIn, result.Visit)
	return result, nil
}

func (s *CheckinService) checkin(ctx context.Context, req *CheckinRequest) (*CheckinResult, error) {
	booth, err := s.BoothRepo.FindActiveByQRCode(ctx, req.BoothQRCode)
	if err != nil {
		return nil, boothError(err)
	}

	attendee, err := s.AttendeeRepo.Upsert(ctx, &model.Attendee{
		Name:        req.AttendeeData.Name,
		Email:       req.AttendeeData.Email,
		PhoneNumber: req.AttendeeData.PhoneNumber,
	})
	if err != nil {
		return nil, err
	}

	// 答案缺失时参会者已登记，但不产生访问记录
	if booth.HasQuestions && len(req.Answers) == 0 {
		return nil, util.ErrAnswersRequired
	}

	visit, err := s.VisitRepo.Upsert(ctx, attendee.ID, booth.ID)
	if err != nil {
		return nil, err
	}

	if booth.HasQuestions {
		answers, score, passed := GradeAnswers(booth.Questions, req.Answers)
		visit.Answers = answers
		visit.Score = &score
		visit.IsVisited = passed
	} else {
		visit.IsVisited = true
	}

	if err := s.VisitRepo.Save(ctx, visit); err != nil {
		return nil, err
	}

	completed, err := s.VisitRepo.CountCompletedByAttendee(ctx, attendee.ID)
	if err != nil {
		return nil, err
	}
	attendee.TotalVisits = int(completed)
	if err := s.AttendeeRepo.UpdateTotalVisits(ctx, attendee.ID, attendee.TotalVisits); err != nil {
		return nil, err
	}

	return &CheckinResult{
		Success:  true,
		Visit:    visit,
		Attendee: attendee.Summary(),
		Booth:    booth.Summary(),
	}, nil
}

func checkinFailureLabel(err error) string {
	switch {
	case errors.Is(err, util.ErrBoothNotFound):
		return "booth_not_found"
	case errors.Is(err, util.ErrAnswersRequired):
		return "answers_required"
	default:
		return "error"
	}
}

func (s *CheckinService) RateVisit(ctx context.Context, visitID string, req *RateRequest) (*RateResult, error) {
	ctx, span := tracing.Tracer.Start(ctx, "CheckinService.RateVisit")
	defer span.End()

	if req.Rating == nil || *req.Rating < model.MinRating || *req.Rating > model.MaxRating {
		return nil, util.ErrInvalidRating
	}
	if utf8.RuneCountInString(req.Comment) > model.MaxCommentLength {
		return nil, util.ErrCommentTooLong
	}

	visit, err := s.VisitRepo.FindByID(ctx, visitID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrVisitNotFound
		}
		return nil, err
	}
	if !visit.IsVisited {
		return nil, util.ErrVisitNotCompleted
	}

	rating := *req.Rating
	visit.Rating = &rating
	if req.Comment != "" {
		visit.RatingComment = req.Comment
	}

	if err := s.VisitRepo.Save(ctx, visit); err != nil {
		span.RecordError(err)
		return nil, err
	}

	monitoring.RatingCounter.WithLabelValues(strconv.Itoa(rating)).Inc()
	s.publish(ctx, model.VisitEventRated, visit)

	return &RateResult{
		Success: true,
		Visit:   visit,
		Message: "Rating submitted successfully",
	}, nil
}

func (s *CheckinService) publish(ctx context.Context, eventType string, visit *model.Visit) {
	event := &model.VisitEvent{
		Type:       eventType,
		VisitID:    visit.ID,
		AttendeeID: visit.AttendeeID,
		BoothID:    visit.BoothID,
		IsVisited:  visit.IsVisited,
		Score:      visit.Score,
		Rating:     visit.Rating,
		OccurredAt: time.Now(),
	}
	if err := s.Publisher.Publish(ctx, event); err != nil {
		logger.Log.Warn("Failed to publish visit event",
			zap.String("type", eventType),
			zap.String("visit_id", visit.ID),
			zap.Error(err),
		)
	}
}
