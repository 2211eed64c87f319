package service

import (
	"context"
	"errors"
	"event_passport_backend/internal/model"
	"event_passport_backend/internal/util"
	"strings"
	"testing"
)

func TestCreateBooth(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	booth := f.createBooth(t, "Math", mathQuestion())
	if booth.QRCode == "" || booth.ID == "" {
		t.Fatalf("booth ids not assigned: %+v", booth)
	}
	if !booth.IsActive || !booth.HasQuestions {
		t.Errorf("isActive=%v hasQuestions=%v, want both true", booth.IsActive, booth.HasQuestions)
	}
	if !strings.HasSuffix(booth.QRImageURL, "qrcodes/"+booth.QRCode+".png") {
		t.Errorf("qrImageUrl = %q", booth.QRImageURL)
	}

	other := f.createBooth(t, "Plain")
	if other.QRCode == booth.QRCode {
		t.Error("scan tokens must be unique")
	}
	if other.HasQuestions {
		t.Error("booth without questions reports hasQuestions")
	}

	stored, err := f.booths.GetByQRCode(ctx, booth.QRCode)
	if err != nil {
		t.Fatal(err)
	}
	if len(stored.Questions) != 1 || stored.Questions[0].CorrectAnswer != "4" {
		t.Errorf("questions = %+v", stored.Questions)
	}
}

func TestCreateBoothDropsQuestionsWhenDisabled(t *testing.T) {
	f := newFixture(t)
	disabled := false

	booth, err := f.booths.Create(context.Background(), &CreateBoothRequest{
		Name:         "Plain",
		Description:  "no quiz",
		HasQuestions: &disabled,
		Questions:    []model.Question{mathQuestion()},
	})
	if err != nil {
		t.Fatal(err)
	}
	if booth.HasQuestions || len(booth.Questions) != 0 {
		t.Errorf("questions kept: hasQuestions=%v questions=%+v", booth.HasQuestions, booth.Questions)
	}
}

func TestCreateBoothRequiresNameAndDescription(t *testing.T) {
	f := newFixture(t)

	_, err := f.booths.Create(context.Background(), &CreateBoothRequest{Name: "  ", Description: "x"})
	if util.StatusOf(err) != 400 {
		t.Fatalf("err = %v, want validation error", err)
	}
}

func TestUpdateBooth(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	booth := f.createBooth(t, "Math", mathQuestion())

	name := "Algebra"
	updated, err := f.booths.Update(ctx, booth.ID, &UpdateBoothRequest{Name: &name})
	if err != nil {
		t.Fatal(err)
	}
	if updated.Name != "Algebra" || updated.Description != booth.Description || !updated.HasQuestions {
		t.Errorf("partial update changed other fields: %+v", updated)
	}

	empty := []model.Question{}
	updated, err = f.booths.Update(ctx, booth.ID, &UpdateBoothRequest{Questions: &empty})
	if err != nil {
		t.Fatal(err)
	}
	if updated.HasQuestions {
		t.Error("hasQuestions should follow the question list")
	}

	blank := ""
	if _, err := f.booths.Update(ctx, booth.ID, &UpdateBoothRequest{Name: &blank}); util.StatusOf(err) != 400 {
		t.Errorf("blank name: err = %v, want validation error", err)
	}
	if _, err := f.booths.Update(ctx, "missing", &UpdateBoothRequest{Name: &name}); !errors.Is(err, util.ErrBoothNotFound) {
		t.Errorf("missing booth: err = %v", err)
	}
}

func TestSoftDeleteBooth(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	booth := f.createBooth(t, "Plain")
	keep := f.createBooth(t, "Keep")
	visit := f.checkIn(t, booth, "ada@example.com").Visit

	deleted, err := f.booths.SoftDelete(ctx, booth.ID)
	if err != nil {
		t.Fatal(err)
	}
	if deleted.IsActive {
		t.Error("booth still active")
	}

	booths, err := f.booths.ListActive(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(booths) != 1 || booths[0].ID != keep.ID {
		t.Errorf("active booths = %+v", booths)
	}

	if _, err := f.booths.GetByQRCode(ctx, booth.QRCode); !errors.Is(err, util.ErrBoothNotFound) {
		t.Errorf("token lookup of deleted booth: err = %v", err)
	}

	// 按 id 仍可查到，访问记录保留
	if _, err := f.booths.GetByID(ctx, booth.ID); err != nil {
		t.Errorf("GetByID after soft delete: %v", err)
	}
	stored, err := f.visitRepo.FindByID(ctx, visit.ID)
	if err != nil {
		t.Fatalf("visit lost after soft delete: %v", err)
	}
	if !stored.IsVisited {
		t.Error("visit changed by soft delete")
	}

	if _, err := f.booths.SoftDelete(ctx, "missing"); !errors.Is(err, util.ErrBoothNotFound) {
		t.Errorf("missing booth: err = %v", err)
	}
}

func TestBoothQRCode(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	booth := f.createBooth(t, "Plain")
	if _, err := f.booths.SoftDelete(ctx, booth.ID); err != nil {
		t.Fatal(err)
	}

	result, err := f.booths.QRCode(ctx, booth.QRCode)
	if err != nil {
		t.Fatalf("inactive booth should still render: %v", err)
	}
	if !strings.HasPrefix(result.QRCode, "data:image/png;base64,") {
		t.Errorf("qrCode = %.40q", result.QRCode)
	}
	if result.BoothID != booth.QRCode {
		t.Errorf("boothId = %q, want scan token", result.BoothID)
	}

	if _, err := f.booths.QRCode(ctx, "missing"); !errors.Is(err, util.ErrBoothNotFound) {
		t.Errorf("missing token: err = %v", err)
	}
}
