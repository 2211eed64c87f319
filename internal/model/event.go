package model

import "time"

const (
	VisitEventCheckedIn = "visit.checked_in"
	VisitEventRated     = "visit.rated"
)

// VisitEvent 发布到消息队列的访问事件
type VisitEvent struct {
	Type       string    `json:"type"`
	VisitID    string    `json:"visitId"`
	AttendeeID string    `json:"attendeeId"`
	BoothID    string    `json:"boothId"`
	IsVisited  bool      `json:"isVisited"`
	Score      *float64  `json:"score,omitempty"`
	Rating     *int      `json:"rating,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}
