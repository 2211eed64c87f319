package model

import (
	"strings"

	"gorm.io/gorm"
)

// Attendee 参会者，以小写邮箱作为身份
// swagger:model Attendee
type Attendee struct {
	UUIDBase
	Name        string `gorm:"size:100;not null" json:"name"`
	Email       string `gorm:"size:255;not null;uniqueIndex" json:"email"`
	PhoneNumber string `gorm:"size:50" json:"phoneNumber"`
	TotalVisits int    `gorm:"not null" json:"totalVisits"`
}

func (Attendee) TableName() string {
	return "attendees"
}

// BeforeSave 保证写入存储的邮箱总是小写，唯一索引因此大小写不敏感
func (a *Attendee) BeforeSave(tx *gorm.DB) error {
	a.Email = NormalizeEmail(a.Email)
	return nil
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// AttendeeSummary 签到结果中返回的参会者摘要
type AttendeeSummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	TotalVisits int    `json:"totalVisits"`
}

func (a *Attendee) Summary() AttendeeSummary {
	return AttendeeSummary{
		ID:          a.ID,
		Name:        a.Name,
		Email:       a.Email,
		TotalVisits: a.TotalVisits,
	}
}
