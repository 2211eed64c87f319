package graph

import (
	"context"
	"errors"
	"event_passport_backend/internal/model"
	"event_passport_backend/internal/service"
	"event_passport_backend/internal/util"
	"strconv"

	graphql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"
)

// 只读的管理后台查询
const schemaString = `
type RatingBucket {
  rating: Int!
  count: Int!
}

type BoothStat {
  boothId: ID!
  name: String!
  visitCount: Int!
}

type BoothRatingStat {
  boothId: ID!
  name: String!
  averageRating: Float!
  totalRatings: Int!
}

type RatingAnalytics {
  totalRatings: Int!
  averageRating: Float!
  distribution: [RatingBucket!]!
  boothRatingStats: [BoothRatingStat!]!
}

type Stats {
  totalVisits: Int!
  totalAttendees: Int!
  totalBooths: Int!
  boothStats: [BoothStat!]!
  ratingAnalytics: RatingAnalytics!
}

type Question {
  question: String!
  correctAnswer: String!
  options: [String!]!
}

type Booth {
  id: ID!
  name: String!
  description: String!
  qrCode: String!
  hasQuestions: Boolean!
  isActive: Boolean!
  questions: [Question!]!
}

type Query {
  # 汇总统计
  stats: Stats!

  # 启用中的展位
  booths: [Booth!]!

  # 按扫码令牌查询启用中的展位
  booth(token: String!): Booth
}

schema {
  query: Query
}
`

type Resolver struct {
	stats  *service.StatsService
	booths *service.BoothService
}

func NewResolver(stats *service.StatsService, booths *service.BoothService) *Resolver {
	return &Resolver{stats: stats, booths: booths}
}

// NewHandler 解析 Schema 并返回 HTTP 处理器
func NewHandler(stats *service.StatsService, booths *service.BoothService) *relay.Handler {
	schema := graphql.MustParseSchema(schemaString, NewResolver(stats, booths),
		graphql.UseFieldResolvers(),
	)
	return &relay.Handler{Schema: schema}
}

type ratingBucketResolver struct {
	Rating int32
	Count  int32
}

type boothStatResolver struct {
	BoothID    graphql.ID
	Name       string
	VisitCount int32
}

type boothRatingStatResolver struct {
	BoothID       graphql.ID
	Name          string
	AverageRating float64
	TotalRatings  int32
}

type ratingAnalyticsResolver struct {
	TotalRatings     int32
	AverageRating    float64
	Distribution     []*ratingBucketResolver
	BoothRatingStats []*boothRatingStatResolver
}

type statsResolver struct {
	TotalVisits     int32
	TotalAttendees  int32
	TotalBooths     int32
	BoothStats      []*boothStatResolver
	RatingAnalytics *ratingAnalyticsResolver
}

type questionResolver struct {
	Question      string
	CorrectAnswer string
	Options       []string
}

type boothResolver struct {
	ID           graphql.ID
	Name         string
	Description  string
	QRCode       string
	HasQuestions bool
	IsActive     bool
	Questions    []*questionResolver
}

func (r *Resolver) Stats(ctx context.Context) (*statsResolver, error) {
	stats, err := r.stats.GetStats(ctx)
	if err != nil {
		return nil, err
	}
	return newStatsResolver(stats), nil
}

func (r *Resolver) Booths(ctx context.Context) ([]*boothResolver, error) {
	booths, err := r.booths.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	resolvers := make([]*boothResolver, len(booths))
	for i := range booths {
		resolvers[i] = newBoothResolver(&booths[i])
	}
	return resolvers, nil
}

func (r *Resolver) Booth(ctx context.Context, args struct{ Token string }) (*boothResolver, error) {
	booth, err := r.booths.GetByQRCode(ctx, args.Token)
	if errors.Is(err, util.ErrBoothNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return newBoothResolver(booth), nil
}

func newStatsResolver(stats *service.Stats) *statsResolver {
	res := &statsResolver{
		TotalVisits:    int32(stats.TotalVisits),
		TotalAttendees: int32(stats.TotalAttendees),
		TotalBooths:    int32(stats.TotalBooths),
		BoothStats:     make([]*boothStatResolver, 0, len(stats.BoothStats)),
		RatingAnalytics: &ratingAnalyticsResolver{
			TotalRatings:     int32(stats.RatingAnalytics.TotalRatings),
			AverageRating:    stats.RatingAnalytics.AverageRating,
			BoothRatingStats: make([]*boothRatingStatResolver, 0, len(stats.RatingAnalytics.BoothRatingStats)),
		},
	}

	for _, s := range stats.BoothStats {
		res.BoothStats = append(res.BoothStats, &boothStatResolver{
			BoothID:    graphql.ID(s.BoothID),
			Name:       s.Booth.Name,
			VisitCount: int32(s.VisitCount),
		})
	}

	for rating := model.MinRating; rating <= model.MaxRating; rating++ {
		res.RatingAnalytics.Distribution = append(res.RatingAnalytics.Distribution, &ratingBucketResolver{
			Rating: int32(rating),
			Count:  int32(stats.RatingAnalytics.RatingDistribution[strconv.Itoa(rating)]),
		})
	}

	for _, s := range stats.RatingAnalytics.BoothRatingStats {
		res.RatingAnalytics.BoothRatingStats = append(res.RatingAnalytics.BoothRatingStats, &boothRatingStatResolver{
			BoothID:       graphql.ID(s.BoothID),
			Name:          s.Booth.Name,
			AverageRating: s.AverageRating,
			TotalRatings:  int32(s.TotalRatings),
		})
	}
	return res
}

func newBoothResolver(b *model.Booth) *boothResolver {
	res := &boothResolver{
		ID:           graphql.ID(b.ID),
		Name:         b.Name,
		Description:  b.Description,
		QRCode:       b.QRCode,
		HasQuestions: b.HasQuestions,
		IsActive:     b.IsActive,
		Questions:    make([]*questionResolver, 0, len(b.Questions)),
	}
	for _, q := range b.Questions {
		options := q.Options
		if options == nil {
			options = []string{}
		}
		res.Questions = append(res.Questions, &questionResolver{
			Question:      q.Question,
			CorrectAnswer: q.CorrectAnswer,
			Options:       options,
		})
	}
	return res
}
