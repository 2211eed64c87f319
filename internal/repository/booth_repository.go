package repository

import (
	"context"
	"event_passport_backend/internal/model"
	"time"

	"gorm.io/gorm"
)

type BoothRepository struct {
	DB *gorm.DB
}

func NewBoothRepository(db *gorm.DB) *BoothRepository {
	return &BoothRepository{DB: db}
}

func (r *BoothRepository) Create(ctx context.Context, booth *model.Booth) error {
	return r.DB.WithContext(ctx).Create(booth).Error
}

func (r *BoothRepository) Save(ctx context.Context, booth *model.Booth) error {
	return r.DB.WithContext(ctx).Save(booth).Error
}

func (r *BoothRepository) FindByID(ctx context.Context, id string) (*model.Booth, error) {
	var booth model.Booth
	err := r.DB.WithContext(ctx).Where("id = ?", id).First(&booth).Error
	if err != nil {
		return nil, err
	}
	return &booth, nil
}

// FindActiveByQRCode 扫码解析只认启用中的展位
func (r *BoothRepository) FindActiveByQRCode(ctx context.Context, qrCode string) (*model.Booth, error) {
	var booth model.Booth
	err := r.DB.WithContext(ctx).
		Where("qr_code = ? AND is_active = ?", qrCode, true).
		First(&booth).Error
	if err != nil {
		return nil, err
	}
	return &booth, nil
}

// FindByQRCode 不区分启用状态，用于二维码渲染
func (r *BoothRepository) FindByQRCode(ctx context.Context, qrCode string) (*model.Booth, error) {
	var booth model.Booth
	err := r.DB.WithContext(ctx).Where("qr_code = ?", qrCode).First(&booth).Error
	if err != nil {
		return nil, err
	}
	return &booth, nil
}

func (r *BoothRepository) ListActive(ctx context.Context) ([]model.Booth, error) {
	var booths []model.Booth
	err := r.DB.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at ASC").
		Find(&booths).Error
	return booths, err
}

// Deactivate 软删除：只清除启用标记。按列更新，不触发 BeforeSave
func (r *BoothRepository) Deactivate(ctx context.Context, id string) error {
	return r.DB.WithContext(ctx).Model(&model.Booth{}).
		Where("id = ?", id).
		UpdateColumns(map[string]interface{}{
			"is_active":  false,
			"updated_at": time.Now(),
		}).Error
}

func (r *BoothRepository) UpdateQRImageURL(ctx context.Context, id, url string) error {
	return r.DB.WithContext(ctx).Model(&model.Booth{}).
		Where("id = ?", id).
		UpdateColumn("qr_image_url", url).
		Error
}

func (r *BoothRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.Booth{}).Where("is_active = ?", true).Count(&count).Error
	return count, err
}
