package model

import (
	"time"

	"gorm.io/datatypes"
)

const (
	// PassingScore 测验达到该分数即视为完成访问
	PassingScore = 70.0

	MinRating        = 1
	MaxRating        = 5
	MaxCommentLength = 500
)

// VisitAnswer 单题判分结果
type VisitAnswer struct {
	Question   string `json:"question"`
	UserAnswer string `json:"userAnswer"`
	IsCorrect  bool   `json:"isCorrect"`
}

// Visit 每个 (参会者, 展位) 至多一条访问记录
// swagger:model Visit
type Visit struct {
	UUIDBase
	AttendeeID    string                           `gorm:"type:varchar(36);not null;uniqueIndex:idx_visit_attendee_booth,priority:1" json:"attendeeId"`
	Attendee      *Attendee                        `gorm:"foreignKey:AttendeeID" json:"attendee,omitempty"`
	BoothID       string                           `gorm:"type:varchar(36);not null;uniqueIndex:idx_visit_attendee_booth,priority:2;index" json:"boothId"`
	Booth         *Booth                           `gorm:"foreignKey:BoothID" json:"booth,omitempty"`
	IsVisited     bool                             `gorm:"not null;index" json:"isVisited"`
	Answers       datatypes.JSONSlice[VisitAnswer] `json:"answers,omitempty"`
	Score         *float64                         `json:"score,omitempty"`
	Rating        *int                             `gorm:"check:chk_visits_rating,rating IS NULL OR (rating >= 1 AND rating <= 5)" json:"rating"`
	RatingComment string                           `gorm:"size:500" json:"ratingComment,omitempty"`
	VisitedAt     time.Time                        `gorm:"not null;index" json:"visitedAt"`
}

func (Visit) TableName() string {
	return "visits"
}
