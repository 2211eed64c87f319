package model

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Question 展位测验题；Options 为空表示自由作答
type Question struct {
	Question      string   `json:"question" binding:"required"`
	CorrectAnswer string   `json:"correctAnswer" binding:"required"`
	Options       []string `json:"options"`
}

// Booth 展位，QRCode 为扫码令牌
// swagger:model Booth
type Booth struct {
	UUIDBase
	Name         string                        `gorm:"size:200;not null" json:"name"`
	Description  string                        `gorm:"type:text;not null" json:"description"`
	QRCode       string                        `gorm:"column:qr_code;size:64;not null;uniqueIndex" json:"qrCode"`
	HasQuestions bool                          `gorm:"not null" json:"hasQuestions"`
	Questions    datatypes.JSONSlice[Question] `json:"questions"`
	IsActive     bool                          `gorm:"not null;index" json:"isActive"`
	QRImageURL   string                        `gorm:"column:qr_image_url;size:500" json:"qrImageUrl,omitempty"`
}

func (Booth) TableName() string {
	return "booths"
}

// BeforeSave HasQuestions 始终由题目列表推导
func (b *Booth) BeforeSave(tx *gorm.DB) error {
	if b.Questions == nil {
		b.Questions = datatypes.JSONSlice[Question]{}
	}
	for i := range b.Questions {
		if b.Questions[i].Options == nil {
			b.Questions[i].Options = []string{}
		}
	}
	b.HasQuestions = len(b.Questions) > 0
	return nil
}

// BoothSummary 签到结果与统计中引用的展位摘要
type BoothSummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (b *Booth) Summary() BoothSummary {
	return BoothSummary{
		ID:          b.ID,
		Name:        b.Name,
		Description: b.Description,
	}
}
