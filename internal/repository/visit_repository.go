package repository

import (
	"context"
	"event_passport_backend/internal/model"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type VisitRepository struct {
	DB *gorm.DB
}

func NewVisitRepository(db *gorm.DB) *VisitRepository {
	return &VisitRepository{DB: db}
}

// Upsert 依赖 (attendee_id, booth_id) 唯一索引，重复扫码不会产生第二条记录
func (r *VisitRepository) Upsert(ctx context.Context, attendeeID, boothID string) (*model.Visit, error) {
	db := r.DB.WithContext(ctx)
	candidate := &model.Visit{
		AttendeeID: attendeeID,
		BoothID:    boothID,
		VisitedAt:  time.Now(),
	}
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "attendee_id"}, {Name: "booth_id"}},
		DoNothing: true,
	}).Omit(clause.Associations).Create(candidate).Error
	if err != nil {
		return nil, err
	}

	var visit model.Visit
	err = db.Where("attendee_id = ? AND booth_id = ?", attendeeID, boothID).First(&visit).Error
	if err != nil {
		return nil, err
	}
	return &visit, nil
}

// Save 整体覆盖访问记录，不级联写入关联对象
func (r *VisitRepository) Save(ctx context.Context, visit *model.Visit) error {
	return r.DB.WithContext(ctx).Omit(clause.Associations).Save(visit).Error
}

func (r *VisitRepository) FindByID(ctx context.Context, id string) (*model.Visit, error) {
	var visit model.Visit
	err := r.DB.WithContext(ctx).Where("id = ?", id).First(&visit).Error
	if err != nil {
		return nil, err
	}
	return &visit, nil
}

func (r *VisitRepository) CountCompletedByAttendee(ctx context.Context, attendeeID string) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.Visit{}).
		Where("attendee_id = ? AND is_visited = ?", attendeeID, true).
		Count(&count).Error
	return count, err
}

func (r *VisitRepository) CountByAttendee(ctx context.Context, attendeeID string) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.Visit{}).
		Where("attendee_id = ?", attendeeID).
		Count(&count).Error
	return count, err
}

// ListByAttendee 关联展位，按访问时间倒序
func (r *VisitRepository) ListByAttendee(ctx context.Context, attendeeID string) ([]model.Visit, error) {
	var visits []model.Visit
	err := r.DB.WithContext(ctx).
		Preload("Booth").
		Where("attendee_id = ?", attendeeID).
		Order("visited_at DESC").
		Find(&visits).Error
	return visits, err
}

func (r *VisitRepository) ListAll(ctx context.Context) ([]model.Visit, error) {
	var visits []model.Visit
	err := r.DB.WithContext(ctx).
		Preload("Attendee").
		Preload("Booth").
		Order("visited_at DESC").
		Find(&visits).Error
	return visits, err
}
