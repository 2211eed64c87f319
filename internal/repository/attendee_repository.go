package repository

import (
	"context"
	"event_passport_backend/internal/model"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AttendeeRepository struct {
	DB *gorm.DB
}

func NewAttendeeRepository(db *gorm.DB) *AttendeeRepository {
	return &AttendeeRepository{DB: db}
}

// Create 插入新参会者，邮箱重复时返回 gorm.ErrDuplicatedKey
func (r *AttendeeRepository) Create(ctx context.Context, attendee *model.Attendee) error {
	return r.DB.WithContext(ctx).Create(attendee).Error
}

// Upsert 以邮箱唯一索引做原子的“查找或创建”：冲突时不插入，随后读回胜出的记录
func (r *AttendeeRepository) Upsert(ctx context.Context, attendee *model.Attendee) (*model.Attendee, error) {
	db := r.DB.WithContext(ctx)
	candidate := *attendee
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoNothing: true,
	}).Create(&candidate).Error
	if err != nil {
		return nil, err
	}

	return r.FindByEmail(ctx, candidate.Email)
}

func (r *AttendeeRepository) FindByID(ctx context.Context, id string) (*model.Attendee, error) {
	var attendee model.Attendee
	err := r.DB.WithContext(ctx).Where("id = ?", id).First(&attendee).Error
	if err != nil {
		return nil, err
	}
	return &attendee, nil
}

func (r *AttendeeRepository) FindByEmail(ctx context.Context, email string) (*model.Attendee, error) {
	var attendee model.Attendee
	err := r.DB.WithContext(ctx).Where("email = ?", model.NormalizeEmail(email)).First(&attendee).Error
	if err != nil {
		return nil, err
	}
	return &attendee, nil
}

func (r *AttendeeRepository) List(ctx context.Context) ([]model.Attendee, error) {
	var attendees []model.Attendee
	err := r.DB.WithContext(ctx).Order("created_at DESC").Find(&attendees).Error
	return attendees, err
}

// UpdateTotalVisits 写入重新统计后的完成访问数
func (r *AttendeeRepository) UpdateTotalVisits(ctx context.Context, attendeeID string, total int) error {
	return r.DB.WithContext(ctx).Model(&model.Attendee{}).
		Where("id = ?", attendeeID).
		UpdateColumns(map[string]interface{}{
			"total_visits": total,
			"updated_at":   time.Now(),
		}).Error
}

func (r *AttendeeRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.Attendee{}).Count(&count).Error
	return count, err
}
