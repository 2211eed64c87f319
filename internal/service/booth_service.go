package service

import (
	"context"
	"errors"
	"event_passport_backend/internal/model"
	"event_passport_backend/internal/repository"
	"event_passport_backend/internal/util"
	"event_passport_backend/pkg/logger"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type BoothService struct {
	BoothRepo *repository.BoothRepository
	QR        *QRService
}

func NewBoothService(boothRepo *repository.BoothRepository, qr *QRService) *BoothService {
	return &BoothService{
		BoothRepo: boothRepo,
		QR:        qr,
	}
}

// CreateBoothRequest hasQuestions 显式为 false 时忽略 questions
// swagger:model CreateBoothRequest
type CreateBoothRequest struct {
	Name         string           `json:"name" binding:"required"`
	Description  string           `json:"description" binding:"required"`
	HasQuestions *bool            `json:"hasQuestions"`
	Questions    []model.Question `json:"questions" binding:"omitempty,dive"`
}

// UpdateBoothRequest 只修改请求中出现的字段；questions 整体替换
// swagger:model UpdateBoothRequest
type UpdateBoothRequest struct {
	Name        *string           `json:"name"`
	Description *string           `json:"description"`
	Questions   *[]model.Question `json:"questions" binding:"omitempty,dive"`
	IsActive    *bool             `json:"isActive"`
}

// QRCodeResult 二维码渲染结果，boothId 为扫码令牌
type QRCodeResult struct {
	QRCode   string `json:"qrCode"`
	BoothID  string `json:"boothId"`
	ImageURL string `json:"imageUrl,omitempty"`
}

func boothError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrBoothNotFound
	}
	return err
}

func (s *BoothService) ListActive(ctx context.Context) ([]model.Booth, error) {
	booths, err := s.BoothRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	if booths == nil {
		booths = []model.Booth{}
	}
	return booths, nil
}

func (s *BoothService) GetByQRCode(ctx context.Context, token string) (*model.Booth, error) {
	booth, err := s.BoothRepo.FindActiveByQRCode(ctx, token)
	return booth, boothError(err)
}

func (s *BoothService) GetByID(ctx context.Context, id string) (*model.Booth, error) {
	booth, err := s.BoothRepo.FindByID(ctx, id)
	return booth, boothError(err)
}

func (s *BoothService) Create(ctx context.Context, req *CreateBoothRequest) (*model.Booth, error) {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Description) == "" {
		return nil, util.NewValidationError("Name and description are required")
	}

	questions := req.Questions
	if req.HasQuestions != nil && !*req.HasQuestions {
		questions = nil
	}

	booth := &model.Booth{
		Name:        req.Name,
		Description: req.Description,
		QRCode:      model.GenerateUUID(),
		Questions:   questions,
		IsActive:    true,
	}
	if err := s.BoothRepo.Create(ctx, booth); err != nil {
		return nil, err
	}

	s.publishQRImage(ctx, booth)
	return booth, nil
}

// publishQRImage 二维码图片上传失败不影响展位创建，/qr 接口仍可实时渲染
func (s *BoothService) publishQRImage(ctx context.Context, booth *model.Booth) {
	if s.QR == nil {
		return
	}
	url, err := s.QR.Publish(ctx, booth.QRCode)
	if err != nil {
		logger.Log.Warn("Failed to store booth QR image",
			zap.String("booth_id", booth.ID),
			zap.Error(err),
		)
		return
	}
	if err := s.BoothRepo.UpdateQRImageURL(ctx, booth.ID, url); err != nil {
		logger.Log.Warn("Failed to record booth QR image url",
			zap.String("booth_id", booth.ID),
			zap.Error(err),
		)
		return
	}
	booth.QRImageURL = url
}

func (s *BoothService) Update(ctx context.Context, id string, req *UpdateBoothRequest) (*model.Booth, error) {
	booth, err := s.BoothRepo.FindByID(ctx, id)
	if err != nil {
		return nil, boothError(err)
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, util.NewValidationError("Name cannot be empty")
		}
		booth.Name = *req.Name
	}
	if req.Description != nil {
		if strings.TrimSpace(*req.Description) == "" {
			return nil, util.NewValidationError("Description cannot be empty")
		}
		booth.Description = *req.Description
	}
	if req.Questions != nil {
		booth.Questions = *req.Questions
	}
	if req.IsActive != nil {
		booth.IsActive = *req.IsActive
	}

	if err := s.BoothRepo.Save(ctx, booth); err != nil {
		return nil, err
	}
	return booth, nil
}

// SoftDelete 只清除启用标记，历史访问记录保留
func (s *BoothService) SoftDelete(ctx context.Context, id string) (*model.Booth, error) {
	if _, err := s.BoothRepo.FindByID(ctx, id); err != nil {
		return nil, boothError(err)
	}
	if err := s.BoothRepo.Deactivate(ctx, id); err != nil {
		return nil, err
	}
	booth, err := s.BoothRepo.FindByID(ctx, id)
	return booth, boothError(err)
}

// QRCode 按令牌渲染二维码，停用的展位同样可以渲染
func (s *BoothService) QRCode(ctx context.Context, token string) (*QRCodeResult, error) {
	booth, err := s.BoothRepo.FindByQRCode(ctx, token)
	if err != nil {
		return nil, boothError(err)
	}

	png, err := RenderQRCode(booth.QRCode)
	if err != nil {
		return nil, err
	}
	return &QRCodeResult{
		QRCode:   QRCodeDataURL(png),
		BoothID:  booth.QRCode,
		ImageURL: booth.QRImageURL,
	}, nil
}

func (s *BoothService) Poster(ctx context.Context, token string) (*model.Booth, []byte, error) {
	booth, err := s.BoothRepo.FindByQRCode(ctx, token)
	if err != nil {
		return nil, nil, boothError(err)
	}
	pdf, err := RenderPoster(booth)
	if err != nil {
		return nil, nil, err
	}
	return booth, pdf, nil
}
