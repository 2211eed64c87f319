package service

import (
	"context"
	"event_passport_backend/internal/repository"
	"event_passport_backend/pkg/tracing"
	"strconv"

	"golang.org/x/sync/errgroup"
)

type StatsService struct {
	StatsRepo    *repository.StatsRepository
	AttendeeRepo *repository.AttendeeRepository
	BoothRepo    *repository.BoothRepository
}

func NewStatsService(statsRepo *repository.StatsRepository, attendeeRepo *repository.AttendeeRepository, boothRepo *repository.BoothRepository) *StatsService {
	return &StatsService{
		StatsRepo:    statsRepo,
		AttendeeRepo: attendeeRepo,
		BoothRepo:    boothRepo,
	}
}

// BoothRef 统计结果中引用的展位
type BoothRef struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	QRCode      string `json:"qrCode"`
}

type BoothStat struct {
	BoothID    string   `json:"boothId"`
	VisitCount int64    `json:"visitCount"`
	Booth      BoothRef `json:"booth"`
}

type BoothRatingStat struct {
	BoothID       string   `json:"boothId"`
	AverageRating float64  `json:"averageRating"`
	TotalRatings  int64    `json:"totalRatings"`
	Booth         BoothRef `json:"booth"`
}

// RatingAnalytics ratingDistribution 固定包含 "1".."5" 五个键
type RatingAnalytics struct {
	TotalRatings       int64             `json:"totalRatings"`
	AverageRating      float64           `json:"averageRating"`
	RatingDistribution map[string]int64  `json:"ratingDistribution"`
	BoothRatingStats   []BoothRatingStat `json:"boothRatingStats"`
}

// Stats 管理后台统计
// swagger:model Stats
type Stats struct {
	TotalVisits     int64           `json:"totalVisits"`
	TotalAttendees  int64           `json:"totalAttendees"`
	TotalBooths     int64           `json:"totalBooths"`
	BoothStats      []BoothStat     `json:"boothStats"`
	RatingAnalytics RatingAnalytics `json:"ratingAnalytics"`
}

// GetStats 各项聚合并发执行，任一失败则整体失败；不做缓存
func (s *StatsService) GetStats(ctx context.Context) (*Stats, error) {
	ctx, span := tracing.Tracer.Start(ctx, "StatsService.GetStats")
	defer span.End()

	var (
		stats        Stats
		summary      repository.RatingSummaryRow
		buckets      []repository.RatingBucketRow
		boothVisits  []repository.BoothVisitRow
		boothRatings []repository.BoothRatingRow
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		stats.TotalVisits, err = s.StatsRepo.CountCompletedVisits(gctx)
		return
	})
	g.Go(func() (err error) {
		stats.TotalAttendees, err = s.AttendeeRepo.Count(gctx)
		return
	})
	g.Go(func() (err error) {
		stats.TotalBooths, err = s.BoothRepo.CountActive(gctx)
		return
	})
	g.Go(func() (err error) {
		summary, err = s.StatsRepo.RatingSummary(gctx)
		return
	})
	g.Go(func() (err error) {
		buckets, err = s.StatsRepo.RatingDistribution(gctx)
		return
	})
	g.Go(func() (err error) {
		boothVisits, err = s.StatsRepo.BoothVisitCounts(gctx)
		return
	})
	g.Go(func() (err error) {
		boothRatings, err = s.StatsRepo.BoothRatings(gctx)
		return
	})
	if err := g.Wait(); err != nil {
		span.RecordError(err)
		return nil, err
	}

	stats.BoothStats = make([]BoothStat, 0, len(boothVisits))
	for _, row := range boothVisits {
		stats.BoothStats = append(stats.BoothStats, BoothStat{
			BoothID:    row.BoothID,
			VisitCount: row.VisitCount,
			Booth: BoothRef{
				ID:          row.BoothID,
				Name:        row.Name,
				Description: row.Description,
				QRCode:      row.QRCode,
			},
		})
	}

	stats.RatingAnalytics = RatingAnalytics{
		TotalRatings:       summary.TotalRatings,
		RatingDistribution: ratingDistribution(buckets),
		BoothRatingStats:   make([]BoothRatingStat, 0, len(boothRatings)),
	}
	if summary.TotalRatings > 0 {
		stats.RatingAnalytics.AverageRating = roundTo(summary.AverageRating, 1)
	}
	for _, row := range boothRatings {
		stats.RatingAnalytics.BoothRatingStats = append(stats.RatingAnalytics.BoothRatingStats, BoothRatingStat{
			BoothID:       row.BoothID,
			AverageRating: row.AverageRating,
			TotalRatings:  row.TotalRatings,
			Booth: BoothRef{
				ID:          row.BoothID,
				Name:        row.Name,
				Description: row.Description,
				QRCode:      row.QRCode,
			},
		})
	}

	return &stats, nil
}

func ratingDistribution(buckets []repository.RatingBucketRow) map[string]int64 {
	dist := make(map[string]int64, 5)
	for r := 1; r <= 5; r++ {
		dist[strconv.Itoa(r)] = 0
	}
	for _, b := range buckets {
		key := strconv.Itoa(b.Rating)
		if _, ok := dist[key]; ok {
			dist[key] += b.Count
		}
	}
	return dist
}
