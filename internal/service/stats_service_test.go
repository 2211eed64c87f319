package service

import (
	"context"
	"testing"
)

func TestGetStatsEmpty(t *testing.T) {
	f := newFixture(t)

	stats, err := f.stats.GetStats(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if stats.TotalVisits != 0 || stats.TotalAttendees != 0 || stats.TotalBooths != 0 {
		t.Errorf("totals = %+v", stats)
	}
	if stats.BoothStats == nil || stats.RatingAnalytics.BoothRatingStats == nil {
		t.Error("empty lists must not be nil")
	}
	if stats.RatingAnalytics.AverageRating != 0 {
		t.Errorf("averageRating = %v, want 0", stats.RatingAnalytics.AverageRating)
	}
	for _, key := range []string{"1", "2", "3", "4", "5"} {
		if n, ok := stats.RatingAnalytics.RatingDistribution[key]; !ok || n != 0 {
			t.Errorf("distribution[%s] = %d, %v", key, n, ok)
		}
	}
}

func TestGetStats(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	popular := f.createBooth(t, "Popular")
	quiz := f.createBooth(t, "Math", mathQuestion())
	retired := f.createBooth(t, "Retired")

	v1 := f.checkIn(t, popular, "ada@example.com").Visit
	v2 := f.checkIn(t, popular, "bob@example.com").Visit
	v3 := f.checkIn(t, retired, "ada@example.com").Visit
	f.checkIn(t, quiz, "bob@example.com", "3")

	f.rate(t, v1.ID, 5)
	f.rate(t, v2.ID, 4)
	f.rate(t, v3.ID, 4)

	if _, err := f.booths.SoftDelete(ctx, retired.ID); err != nil {
		t.Fatal(err)
	}

	stats, err := f.stats.GetStats(ctx)
	if err != nil {
		t.Fatal(err)
	}

	if stats.TotalVisits != 3 {
		t.Errorf("totalVisits = %d, want 3", stats.TotalVisits)
	}
	if stats.TotalAttendees != 2 {
		t.Errorf("totalAttendees = %d, want 2", stats.TotalAttendees)
	}
	if stats.TotalBooths != 2 {
		t.Errorf("totalBooths = %d, want 2 active", stats.TotalBooths)
	}

	// 停用展位的历史访问仍计入
	if len(stats.BoothStats) != 2 {
		t.Fatalf("boothStats = %+v", stats.BoothStats)
	}
	if stats.BoothStats[0].BoothID != popular.ID || stats.BoothStats[0].VisitCount != 2 {
		t.Errorf("first booth stat = %+v, want Popular with 2", stats.BoothStats[0])
	}
	if stats.BoothStats[0].Booth.QRCode != popular.QRCode {
		t.Errorf("booth ref = %+v", stats.BoothStats[0].Booth)
	}

	ra := stats.RatingAnalytics
	if ra.TotalRatings != 3 {
		t.Errorf("totalRatings = %d, want 3", ra.TotalRatings)
	}
	if ra.AverageRating != 4.3 {
		t.Errorf("averageRating = %v, want 4.3", ra.AverageRating)
	}
	var sum int64
	for _, n := range ra.RatingDistribution {
		sum += n
	}
	if sum != ra.TotalRatings {
		t.Errorf("distribution sums to %d, want %d", sum, ra.TotalRatings)
	}
	if ra.RatingDistribution["4"] != 2 || ra.RatingDistribution["5"] != 1 {
		t.Errorf("distribution = %v", ra.RatingDistribution)
	}

	ratings := make(map[string]BoothRatingStat)
	for _, s := range ra.BoothRatingStats {
		ratings[s.BoothID] = s
	}
	if got := ratings[popular.ID]; got.TotalRatings != 2 || got.AverageRating != 4.5 {
		t.Errorf("popular ratings = %+v", got)
	}
	if _, ok := ratings[quiz.ID]; ok {
		t.Error("unrated booth listed in rating stats")
	}
}
