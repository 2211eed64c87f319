package service

import (
	"context"
	"event_passport_backend/internal/config"
	"event_passport_backend/internal/model"
	"event_passport_backend/internal/repository"
	"event_passport_backend/internal/testutil"
	"sync"
	"testing"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []*model.VisitEvent
	err    error
}

func (p *recordingPublisher) Publish(ctx context.Context, event *model.VisitEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return p.err
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.events))
	for i, e := range p.events {
		out[i] = e.Type
	}
	return out
}

type fixture struct {
	attendeeRepo *repository.AttendeeRepository
	boothRepo    *repository.BoothRepository
	visitRepo    *repository.VisitRepository

	booths    *BoothService
	attendees *AttendeeService
	checkin   *CheckinService
	stats     *StatsService
	publisher *recordingPublisher
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testutil.NewTestDB(t)

	f := &fixture{
		attendeeRepo: repository.NewAttendeeRepository(db),
		boothRepo:    repository.NewBoothRepository(db),
		visitRepo:    repository.NewVisitRepository(db),
		publisher:    &recordingPublisher{},
	}

	storage := &StorageService{Provider: &LocalStorageProvider{Config: &config.StorageConfig{LocalPath: t.TempDir()}}}
	f.booths = NewBoothService(f.boothRepo, NewQRService(storage))
	f.attendees = NewAttendeeService(f.attendeeRepo, f.visitRepo)
	f.checkin = NewCheckinService(f.attendeeRepo, f.boothRepo, f.visitRepo, f.publisher)
	f.stats = NewStatsService(repository.NewStatsRepository(db), f.attendeeRepo, f.boothRepo)
	return f
}

func (f *fixture) createBooth(t *testing.T, name string, questions ...model.Question) *model.Booth {
	t.Helper()
	booth, err := f.booths.Create(context.Background(), &CreateBoothRequest{
		Name:        name,
		Description: name + " description",
		Questions:   questions,
	})
	if err != nil {
		t.Fatalf("create booth %q: %v", name, err)
	}
	return booth
}

func (f *fixture) checkIn(t *testing.T, booth *model.Booth, email string, answers ...string) *CheckinResult {
	t.Helper()
	result, err := f.checkin.Checkin(context.Background(), &CheckinRequest{
		BoothQRCode:  booth.QRCode,
		AttendeeData: AttendeeData{Name: "Ada", Email: email},
		Answers:      answers,
	})
	if err != nil {
		t.Fatalf("check in %s at %q: %v", email, booth.Name, err)
	}
	return result
}

func (f *fixture) rate(t *testing.T, visitID string, rating int) {
	t.Helper()
	if _, err := f.checkin.RateVisit(context.Background(), visitID, &RateRequest{Rating: &rating}); err != nil {
		t.Fatalf("rate visit %s: %v", visitID, err)
	}
}

func intPtr(v int) *int { return &v }

func mathQuestion() model.Question {
	return model.Question{Question: "2+2?", CorrectAnswer: "4", Options: []string{"3", "4"}}
}
