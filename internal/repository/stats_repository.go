package repository

import (
	"context"
	"event_passport_backend/internal/model"

	"gorm.io/gorm"
)

type StatsRepository struct {
	DB *gorm.DB
}

func NewStatsRepository(db *gorm.DB) *StatsRepository {
	return &StatsRepository{DB: db}
}

type RatingSummaryRow struct {
	TotalRatings  int64
	AverageRating float64
}

type RatingBucketRow struct {
	Rating int
	Count  int64
}

type BoothVisitRow struct {
	BoothID     string
	Name        string
	Description string
	QRCode      string `gorm:"column:qr_code"`
	VisitCount  int64
}

type BoothRatingRow struct {
	BoothID       string
	Name          string
	Description   string
	QRCode        string `gorm:"column:qr_code"`
	AverageRating float64
	TotalRatings  int64
}

func (r *StatsRepository) CountCompletedVisits(ctx context.Context) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.Visit{}).Where("is_visited = ?", true).Count(&count).Error
	return count, err
}

func (r *StatsRepository) ratedVisits(ctx context.Context) *gorm.DB {
	return r.DB.WithContext(ctx).Model(&model.Visit{}).
		Where("visits.is_visited = ? AND visits.rating IS NOT NULL", true)
}

// RatingSummary 已完成且已评分访问的数量与平均分
func (r *StatsRepository) RatingSummary(ctx context.Context) (RatingSummaryRow, error) {
	var row RatingSummaryRow
	err := r.ratedVisits(ctx).
		Select("COUNT(*) AS total_ratings, COALESCE(AVG(visits.rating), 0) AS average_rating").
		Scan(&row).Error
	return row, err
}

func (r *StatsRepository) RatingDistribution(ctx context.Context) ([]RatingBucketRow, error) {
	var rows []RatingBucketRow
	err := r.ratedVisits(ctx).
		Select("visits.rating AS rating, COUNT(*) AS count").
		Group("visits.rating").
		Scan(&rows).Error
	return rows, err
}

// BoothVisitCounts 已完成访问按展位分组并关联展位信息
func (r *StatsRepository) BoothVisitCounts(ctx context.Context) ([]BoothVisitRow, error) {
	var rows []BoothVisitRow
	err := r.DB.WithContext(ctx).Model(&model.Visit{}).
		Select("visits.booth_id AS booth_id, booths.name AS name, booths.description AS description, booths.qr_code AS qr_code, COUNT(*) AS visit_count").
		Joins("JOIN booths ON booths.id = visits.booth_id").
		Where("visits.is_visited = ?", true).
		Group("visits.booth_id, booths.name, booths.description, booths.qr_code").
		Order("visit_count DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *StatsRepository) BoothRatings(ctx context.Context) ([]BoothRatingRow, error) {
	var rows []BoothRatingRow
	err := r.ratedVisits(ctx).
		Select("visits.booth_id AS booth_id, booths.name AS name, booths.description AS description, booths.qr_code AS qr_code, AVG(visits.rating) AS average_rating, COUNT(*) AS total_ratings").
		Joins("JOIN booths ON booths.id = visits.booth_id").
		Group("visits.booth_id, booths.name, booths.description, booths.qr_code").
		Order("average_rating DESC").
		Scan(&rows).Error
	return rows, err
}
