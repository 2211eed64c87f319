package app

import (
	"bytes"
	"encoding/json"
	"event_passport_backend/internal/testutil"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

type testServer struct {
	t      *testing.T
	router *gin.Engine
	token  string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	application, err := Build(testutil.NewTestConfig(t), Dependencies{DB: testutil.NewTestDB(t)})
	if err != nil {
		t.Fatal(err)
	}
	return &testServer{t: t, router: application.Router}
}

func (s *testServer) do(method, path string, body interface{}) *httptest.ResponseRecorder {
	s.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			s.t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *testServer) login() {
	s.t.Helper()
	w := s.do(http.MethodPost, "/api/auth/login", map[string]string{
		"username": testutil.AdminUsername,
		"password": testutil.AdminPassword,
	})
	if w.Code != http.StatusOK {
		s.t.Fatalf("login: status = %d, body = %s", w.Code, w.Body.String())
	}
	var result struct{ Token string }
	decode(s.t, w, &result)
	s.token = result.Token
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), v); err != nil {
		t.Fatalf("decode %s: %v", w.Body.String(), err)
	}
}

func TestIndexAndHealth(t *testing.T) {
	s := newTestServer(t)

	w := s.do(http.MethodGet, "/", nil)
	var banner struct{ Message string }
	decode(t, w, &banner)
	if w.Code != http.StatusOK || banner.Message != "Digital Event Passport API" {
		t.Errorf("index: %d %s", w.Code, w.Body.String())
	}

	if w := s.do(http.MethodGet, "/api/health", nil); w.Code != http.StatusOK {
		t.Errorf("health: status = %d", w.Code)
	}
}

func TestAdminRoutesRequireToken(t *testing.T) {
	s := newTestServer(t)

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/booths"},
		{http.MethodGet, "/api/booths/some-id"},
		{http.MethodPut, "/api/booths/some-id"},
		{http.MethodDelete, "/api/booths/some-id"},
		{http.MethodGet, "/api/booths/some-token/poster"},
		{http.MethodGet, "/api/attendees"},
		{http.MethodGet, "/api/visits"},
		{http.MethodGet, "/api/visits/stats"},
		{http.MethodPost, "/api/graphql"},
		{http.MethodGet, "/api/auth/me"},
	}
	for _, r := range routes {
		w := s.do(r.method, r.path, nil)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("%s %s: status = %d, want 401", r.method, r.path, w.Code)
			continue
		}
		var body map[string]interface{}
		decode(t, w, &body)
		if _, ok := body["message"]; !ok || len(body) != 1 {
			t.Errorf("%s %s: error body = %s", r.method, r.path, w.Body.String())
		}
	}

	s.token = "not-a-jwt"
	if w := s.do(http.MethodGet, "/api/visits/stats", nil); w.Code != http.StatusUnauthorized {
		t.Errorf("invalid token: status = %d, want 401", w.Code)
	}
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	s := newTestServer(t)

	w := s.do(http.MethodPost, "/api/auth/login", map[string]string{"username": "admin", "password": "wrong"})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}

	w = s.do(http.MethodPost, "/api/auth/login", map[string]string{"username": "admin"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("missing password: status = %d, want 400", w.Code)
	}
}

func TestPassportFlow(t *testing.T) {
	s := newTestServer(t)
	s.login()

	// 管理员创建两个展位
	w := s.do(http.MethodPost, "/api/booths", map[string]interface{}{
		"name":        "Math",
		"description": "Quick quiz",
		"questions": []map[string]interface{}{
			{"question": "2+2?", "correctAnswer": "4", "options": []string{"3", "4"}},
		},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create booth: %d %s", w.Code, w.Body.String())
	}
	var quiz struct {
		ID           string
		QRCode       string
		HasQuestions bool
	}
	decode(t, w, &quiz)
	if !quiz.HasQuestions || quiz.QRCode == "" {
		t.Fatalf("booth = %+v", quiz)
	}

	w = s.do(http.MethodPost, "/api/booths", map[string]interface{}{"name": "Plain", "description": "No quiz"})
	var plain struct{ ID, QRCode string }
	decode(t, w, &plain)

	w = s.do(http.MethodPost, "/api/booths", map[string]interface{}{"name": "No description"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("invalid booth: status = %d, want 400", w.Code)
	}

	// 以下为公开接口
	s.token = ""

	if w := s.do(http.MethodGet, "/api/booths/qr/"+quiz.QRCode, nil); w.Code != http.StatusOK {
		t.Errorf("lookup by token: status = %d", w.Code)
	}
	if w := s.do(http.MethodGet, "/api/booths/qr/unknown", nil); w.Code != http.StatusNotFound {
		t.Errorf("unknown token: status = %d, want 404", w.Code)
	}
	if w := s.do(http.MethodGet, "/api/booths/"+quiz.QRCode+"/qr", nil); w.Code != http.StatusOK {
		t.Errorf("qr image: status = %d", w.Code)
	}

	attendee := map[string]string{"name": "Ada", "email": "ada@example.com"}

	w = s.do(http.MethodPost, "/api/visits/checkin", map[string]interface{}{
		"boothQrCode":  quiz.QRCode,
		"attendeeData": attendee,
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("checkin without answers: status = %d, want 400", w.Code)
	}

	w = s.do(http.MethodPost, "/api/visits/checkin", map[string]interface{}{
		"boothQrCode":  quiz.QRCode,
		"attendeeData": attendee,
		"answers":      []string{"4"},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("checkin: %d %s", w.Code, w.Body.String())
	}
	var checkin struct {
		Success bool
		Visit   struct {
			ID        string
			IsVisited bool
			Score     float64
		}
		Attendee struct{ ID, Email string }
	}
	decode(t, w, &checkin)
	if !checkin.Success || !checkin.Visit.IsVisited || checkin.Visit.Score != 100 {
		t.Errorf("checkin = %+v", checkin)
	}

	w = s.do(http.MethodPost, "/api/visits/checkin", map[string]interface{}{
		"boothQrCode":  plain.QRCode,
		"attendeeData": map[string]string{"name": "Ada", "email": "not-an-email"},
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("invalid email: status = %d, want 400", w.Code)
	}

	w = s.do(http.MethodPost, "/api/visits/"+checkin.Visit.ID+"/rate", map[string]interface{}{"rating": 6})
	if w.Code != http.StatusBadRequest {
		t.Errorf("rating 6: status = %d, want 400", w.Code)
	}
	w = s.do(http.MethodPost, "/api/visits/"+checkin.Visit.ID+"/rate", map[string]interface{}{"rating": 5, "comment": "great"})
	if w.Code != http.StatusOK {
		t.Errorf("rate: %d %s", w.Code, w.Body.String())
	}

	w = s.do(http.MethodPost, "/api/attendees", attendee)
	if w.Code != http.StatusBadRequest {
		t.Errorf("duplicate attendee: status = %d, want 400", w.Code)
	}

	w = s.do(http.MethodGet, "/api/attendees/email/ADA@example.com", nil)
	if w.Code != http.StatusOK {
		t.Errorf("lookup by email: status = %d", w.Code)
	}

	w = s.do(http.MethodGet, "/api/attendees/"+checkin.Attendee.ID+"/stats", nil)
	var stats struct {
		TotalVisits    int
		TotalBooths    int
		CompletionRate float64
	}
	decode(t, w, &stats)
	if stats.TotalVisits != 1 || stats.TotalBooths != 1 || stats.CompletionRate != 100 {
		t.Errorf("attendee stats = %+v", stats)
	}

	w = s.do(http.MethodGet, "/api/visits/attendee/"+checkin.Attendee.ID, nil)
	var visits []map[string]interface{}
	decode(t, w, &visits)
	if len(visits) != 1 {
		t.Errorf("attendee visits = %s", w.Body.String())
	}

	// 管理员查看统计并下线展位
	s.login()

	w = s.do(http.MethodGet, "/api/visits/stats", nil)
	var overview struct {
		TotalVisits     int
		TotalAttendees  int
		TotalBooths     int
		RatingAnalytics struct {
			TotalRatings  int
			AverageRating float64
		}
	}
	decode(t, w, &overview)
	if overview.TotalVisits != 1 || overview.TotalAttendees != 1 || overview.TotalBooths != 2 {
		t.Errorf("stats = %+v", overview)
	}
	if overview.RatingAnalytics.TotalRatings != 1 || overview.RatingAnalytics.AverageRating != 5 {
		t.Errorf("rating analytics = %+v", overview.RatingAnalytics)
	}

	w = s.do(http.MethodGet, "/api/booths/"+quiz.QRCode+"/poster", nil)
	if w.Code != http.StatusOK || w.Header().Get("Content-Type") != "application/pdf" {
		t.Errorf("poster: %d %s", w.Code, w.Header().Get("Content-Type"))
	}

	if w := s.do(http.MethodDelete, "/api/booths/"+plain.ID, nil); w.Code != http.StatusOK {
		t.Errorf("delete: status = %d", w.Code)
	}
	w = s.do(http.MethodGet, "/api/booths", nil)
	var active []map[string]interface{}
	decode(t, w, &active)
	if len(active) != 1 {
		t.Errorf("active booths after delete = %d, want 1", len(active))
	}

	if w := s.do(http.MethodPost, "/api/auth/logout", nil); w.Code != http.StatusOK {
		t.Errorf("logout: status = %d", w.Code)
	}
	if w := s.do(http.MethodGet, "/api/auth/me", nil); w.Code != http.StatusUnauthorized {
		t.Errorf("after logout: status = %d, want 401", w.Code)
	}
}
