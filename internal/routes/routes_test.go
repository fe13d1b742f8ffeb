package routes

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/zaqqye/portfolio_backend/internal/config"
	"github.com/zaqqye/portfolio_backend/internal/database"
	"github.com/zaqqye/portfolio_backend/internal/database/dbtest"
	"github.com/zaqqye/portfolio_backend/internal/mailer"
	"github.com/zaqqye/portfolio_backend/internal/models"
)

type fakeNotifier struct {
	mu   sync.Mutex
	err  error
	sent []mailer.Message
}

func (f *fakeNotifier) Send(msg mailer.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, msg)
	return f.err
}

func testConfig() *config.Config {
	return &config.Config{
		EmailUser:         "me@example.com",
		ContactValidation: "none",
		JWTSecret:         "test-secret",
		JWTExpiresIn:      5,
		AdminEmail:        "admin@example.com",
		AdminPassword:     "admin123",
		CORSOrigins:       []string{"*"},
	}
}

func newTestRouter(t *testing.T, cfg *config.Config, notifier mailer.Notifier) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db := dbtest.Open(t)
	if err := database.SeedAdmin(db, cfg); err != nil {
		t.Fatalf("seed admin: %v", err)
	}
	r := gin.New()
	Register(r, db, cfg, notifier, nil)
	return r, db
}

func doJSON(r http.Handler, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			_ = json.NewEncoder(&buf).Encode(b)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var out struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
	return out.Message
}

func TestContactSubmitSuccess(t *testing.T) {
	notifier := &fakeNotifier{}
	r, db := newTestRouter(t, testConfig(), notifier)

	w := doJSON(r, http.MethodPost, "/api/contact", map[string]string{"name": "A", "email": "a@x.com", "message": "hi"}, nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("\nwanted:\n201\ngot:\n%d %s", w.Code, w.Body.String())
	}
	if got := decodeMessage(t, w); got != "Message sent successfully" {
		t.Errorf("\nwanted:\nMessage sent successfully\ngot:\n%s", got)
	}

	var rows []models.Contact
	db.Where("name = ? AND email = ? AND message = ?", "A", "a@x.com", "hi").Find(&rows)
	if len(rows) != 1 {
		t.Fatalf("\nwanted:\nexactly one stored record\ngot:\n%d", len(rows))
	}
	if len(notifier.sent) != 1 || notifier.sent[0].To != "me@example.com" {
		t.Errorf("\nwanted:\none notification to me@example.com\ngot:\n%+v", notifier.sent)
	}
}

func TestContactSubmitRelayDownStillStores(t *testing.T) {
	notifier := &fakeNotifier{err: errors.New("dial tcp: connection refused")}
	r, db := newTestRouter(t, testConfig(), notifier)

	w := doJSON(r, http.MethodPost, "/api/contact", map[string]string{"name": "A", "email": "a@x.com", "message": "hi"}, nil)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("\nwanted:\n500\ngot:\n%d", w.Code)
	}
	if got := decodeMessage(t, w); got != "Error sending message" {
		t.Errorf("\nwanted:\nError sending message\ngot:\n%s", got)
	}
	var count int64
	db.Model(&models.Contact{}).Where("email = ?", "a@x.com").Count(&count)
	if count != 1 {
		t.Errorf("\nwanted:\nrecord kept after relay failure\ngot:\n%d records", count)
	}
}

func TestContactSubmitStorageDown(t *testing.T) {
	notifier := &fakeNotifier{}
	r, db := newTestRouter(t, testConfig(), notifier)
	if err := db.Migrator().DropTable(&models.Contact{}); err != nil {
		t.Fatalf("drop: %v", err)
	}

	w := doJSON(r, http.MethodPost, "/api/contact", map[string]string{"name": "A", "email": "a@x.com", "message": "hi"}, nil)
	if w.Code != http.StatusInternalServerError || decodeMessage(t, w) != "Error sending message" {
		t.Errorf("\nwanted:\n500 Error sending message\ngot:\n%d %s", w.Code, w.Body.String())
	}
	if len(notifier.sent) != 0 {
		t.Errorf("\nwanted:\nno notification\ngot:\n%d", len(notifier.sent))
	}
}

func TestContactSubmitValidationPolicy(t *testing.T) {
	tests := []struct {
		name     string
		policy   string
		body     any
		wantCode int
	}{
		{name: "none accepts anything", policy: "none", body: map[string]string{"email": "nope"}, wantCode: http.StatusCreated},
		{name: "strict rejects bad email", policy: "strict", body: map[string]string{"name": "A", "email": "nope", "message": "hi"}, wantCode: http.StatusBadRequest},
		{name: "strict accepts valid", policy: "strict", body: map[string]string{"name": "A", "email": "a@x.com", "message": "hi"}, wantCode: http.StatusCreated},
		{name: "malformed json", policy: "none", body: `{"name":`, wantCode: http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			cfg.ContactValidation = tt.policy
			r, db := newTestRouter(t, cfg, &fakeNotifier{})

			w := doJSON(r, http.MethodPost, "/api/contact", tt.body, nil)
			if w.Code != tt.wantCode {
				t.Fatalf("\nwanted:\n%d\ngot:\n%d %s", tt.wantCode, w.Code, w.Body.String())
			}
			var count int64
			db.Model(&models.Contact{}).Count(&count)
			if tt.wantCode == http.StatusBadRequest && count != 0 {
				t.Errorf("\nwanted:\nnothing stored on rejection\ngot:\n%d", count)
			}
		})
	}
}

func TestProjectsNewestFirst(t *testing.T) {
	r, _ := newTestRouter(t, testConfig(), &fakeNotifier{})

	first := map[string]any{"title": "First", "description": "d1", "imageUrl": "/img/1.png", "techTags": []string{"Go", "React"}}
	second := map[string]any{"title": "Second", "description": "d2", "imageUrl": "/img/2.png", "githubUrl": "https://github.com/x/y"}
	for _, p := range []map[string]any{first, second} {
		w := doJSON(r, http.MethodPost, "/api/projects", p, nil)
		if w.Code != http.StatusCreated {
			t.Fatalf("\nwanted:\n201\ngot:\n%d %s", w.Code, w.Body.String())
		}
		time.Sleep(5 * time.Millisecond)
	}

	w := doJSON(r, http.MethodGet, "/api/projects", nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("\nwanted:\n200\ngot:\n%d", w.Code)
	}
	var got []models.Project
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 2 || got[0].Title != "Second" || got[1].Title != "First" {
		t.Fatalf("\nwanted:\n[Second First]\ngot:\n%+v", got)
	}
	if !got[0].CreatedAt.After(got[1].CreatedAt) {
		t.Errorf("\nwanted:\ndescending created_at\ngot:\n%v then %v", got[0].CreatedAt, got[1].CreatedAt)
	}
	if len(got[1].TechTags) != 2 || got[1].TechTags[0] != "Go" || got[1].TechTags[1] != "React" {
		t.Errorf("\nwanted:\n[Go React]\ngot:\n%v", got[1].TechTags)
	}
	if got[0].TechTags == nil || len(got[0].TechTags) != 0 {
		t.Errorf("\nwanted:\nempty tag list\ngot:\n%v", got[0].TechTags)
	}
}

func TestCreateProjectFieldNames(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			name: "listing names",
			body: `{"title":"T","description":"d","imageUrl":"/i.png","techTags":["Go"],"demoUrl":"https://demo","githubUrl":"https://gh"}`,
		},
		{
			name: "short names",
			body: `{"title":"T","description":"d","image":"/i.png","tech":["Go"],"demo":"https://demo","github":"https://gh"}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := newTestRouter(t, testConfig(), &fakeNotifier{})
			w := doJSON(r, http.MethodPost, "/api/projects", tt.body, nil)
			if w.Code != http.StatusCreated {
				t.Fatalf("\nwanted:\n201\ngot:\n%d %s", w.Code, w.Body.String())
			}
			var raw map[string]any
			if err := json.Unmarshal(w.Body.Bytes(), &raw); err != nil {
				t.Fatalf("decode: %v", err)
			}
			for _, key := range []string{"id", "imageUrl", "techTags", "demoUrl", "githubUrl", "createdAt"} {
				if _, ok := raw[key]; !ok {
					t.Errorf("\nwanted:\n%q in response\ngot:\n%s", key, w.Body.String())
				}
			}
			if raw["imageUrl"] != "/i.png" || raw["demoUrl"] != "https://demo" || raw["githubUrl"] != "https://gh" {
				t.Errorf("\nwanted:\nurls carried over\ngot:\n%s", w.Body.String())
			}
		})
	}
}

func TestCreateProjectRequiresFields(t *testing.T) {
	tests := []struct {
		name string
		body any
	}{
		{name: "missing image and description", body: map[string]any{"title": "No image"}},
		{name: "empty body", body: map[string]any{}},
		{name: "malformed json", body: `{"title":`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, db := newTestRouter(t, testConfig(), &fakeNotifier{})
			w := doJSON(r, http.MethodPost, "/api/projects", tt.body, nil)
			if w.Code != http.StatusInternalServerError {
				t.Fatalf("\nwanted:\n500\ngot:\n%d %s", w.Code, w.Body.String())
			}
			if got := decodeMessage(t, w); got != "Error creating project" {
				t.Errorf("\nwanted:\nError creating project\ngot:\n%s", got)
			}
			var count int64
			db.Model(&models.Project{}).Count(&count)
			if count != 0 {
				t.Errorf("\nwanted:\nnothing stored\ngot:\n%d", count)
			}
		})
	}
}

func TestProjectsSameTimestampOrder(t *testing.T) {
	r, db := newTestRouter(t, testConfig(), &fakeNotifier{})
	at := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	for _, p := range []models.Project{
		{ID: "00000000-0000-0000-0000-00000000000a", Title: "A", Description: "d", ImageURL: "/a.png", CreatedAt: at},
		{ID: "00000000-0000-0000-0000-00000000000c", Title: "C", Description: "d", ImageURL: "/c.png", CreatedAt: at},
		{ID: "00000000-0000-0000-0000-00000000000b", Title: "B", Description: "d", ImageURL: "/b.png", CreatedAt: at},
	} {
		if err := db.Create(&p).Error; err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	for i := 0; i < 3; i++ {
		w := doJSON(r, http.MethodGet, "/api/projects", nil, nil)
		var got []models.Project
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if len(got) != 3 || got[0].Title != "C" || got[1].Title != "B" || got[2].Title != "A" {
			t.Fatalf("\nwanted:\n[C B A]\ngot:\n%+v", got)
		}
	}
}

func TestListProjectsStorageFailure(t *testing.T) {
	r, db := newTestRouter(t, testConfig(), &fakeNotifier{})
	if err := db.Migrator().DropTable(&models.Project{}); err != nil {
		t.Fatalf("drop: %v", err)
	}
	w := doJSON(r, http.MethodGet, "/api/projects", nil, nil)
	if w.Code != http.StatusInternalServerError || decodeMessage(t, w) != "Error fetching projects" {
		t.Errorf("\nwanted:\n500 Error fetching projects\ngot:\n%d %s", w.Code, w.Body.String())
	}
}

func TestSkillsCreateAndList(t *testing.T) {
	r, _ := newTestRouter(t, testConfig(), &fakeNotifier{})

	w := doJSON(r, http.MethodPost, "/api/skills", map[string]any{"name": "Go", "level": "Advanced"}, nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("\nwanted:\n201\ngot:\n%d %s", w.Code, w.Body.String())
	}
	var created models.Skill
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.ID == "" || created.Name != "Go" || created.Level != "Advanced" {
		t.Fatalf("\nwanted:\nGo/Advanced with id\ngot:\n%+v", created)
	}

	w = doJSON(r, http.MethodPost, "/api/skills", map[string]any{"name": "SQL", "level": 4}, nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("\nwanted:\n201\ngot:\n%d %s", w.Code, w.Body.String())
	}

	w = doJSON(r, http.MethodGet, "/api/skills", nil, nil)
	var skills []models.Skill
	if err := json.Unmarshal(w.Body.Bytes(), &skills); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(skills) != 2 {
		t.Fatalf("\nwanted:\n2 skills\ngot:\n%d", len(skills))
	}
	if skills[0].ID != created.ID || skills[1].Name != "SQL" || skills[1].Level != "4" {
		t.Errorf("\nwanted:\n[Go SQL/4] in insertion order\ngot:\n%+v", skills)
	}
}

func TestSkillRejectsMissingLevel(t *testing.T) {
	r, _ := newTestRouter(t, testConfig(), &fakeNotifier{})
	w := doJSON(r, http.MethodPost, "/api/skills", map[string]any{"name": "Go"}, nil)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("\nwanted:\n500\ngot:\n%d %s", w.Code, w.Body.String())
	}
	if got := decodeMessage(t, w); got != "Error creating skill" {
		t.Errorf("\nwanted:\nError creating skill\ngot:\n%s", got)
	}
}

func login(t *testing.T, r http.Handler) string {
	t.Helper()
	w := doJSON(r, http.MethodPost, "/api/auth/login", map[string]string{"email": "admin@example.com", "password": "admin123"}, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("\nwanted:\n200 login\ngot:\n%d %s", w.Code, w.Body.String())
	}
	var out struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil || out.AccessToken == "" || out.TokenType != "Bearer" {
		t.Fatalf("\nwanted:\nbearer token\ngot:\n%s (%v)", w.Body.String(), err)
	}
	return out.AccessToken
}

func TestAdminWritesGate(t *testing.T) {
	cfg := testConfig()
	cfg.RequireAdminWrites = true
	r, _ := newTestRouter(t, cfg, &fakeNotifier{})

	body := map[string]any{"name": "Go", "level": "Advanced"}
	if w := doJSON(r, http.MethodPost, "/api/skills", body, nil); w.Code != http.StatusUnauthorized {
		t.Fatalf("\nwanted:\n401 without token\ngot:\n%d", w.Code)
	}

	token := login(t, r)
	w := doJSON(r, http.MethodPost, "/api/skills", body, map[string]string{"Authorization": "Bearer " + token})
	if w.Code != http.StatusCreated {
		t.Fatalf("\nwanted:\n201 with token\ngot:\n%d %s", w.Code, w.Body.String())
	}

	if w := doJSON(r, http.MethodGet, "/api/skills", nil, nil); w.Code != http.StatusOK {
		t.Errorf("\nwanted:\npublic reads\ngot:\n%d", w.Code)
	}
}

func TestLoginRejectsBadPassword(t *testing.T) {
	r, _ := newTestRouter(t, testConfig(), &fakeNotifier{})
	w := doJSON(r, http.MethodPost, "/api/auth/login", map[string]string{"email": "admin@example.com", "password": "wrong"}, nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("\nwanted:\n401\ngot:\n%d", w.Code)
	}
}

func TestAdminContactsList(t *testing.T) {
	r, _ := newTestRouter(t, testConfig(), &fakeNotifier{})

	if w := doJSON(r, http.MethodGet, "/api/admin/contacts", nil, nil); w.Code != http.StatusUnauthorized {
		t.Fatalf("\nwanted:\n401\ngot:\n%d", w.Code)
	}

	for _, name := range []string{"A", "B"} {
		doJSON(r, http.MethodPost, "/api/contact", map[string]string{"name": name, "email": "x@x.com", "message": "hi"}, nil)
		time.Sleep(5 * time.Millisecond)
	}

	token := login(t, r)
	w := doJSON(r, http.MethodGet, "/api/admin/contacts", nil, map[string]string{"Authorization": "Bearer " + token})
	if w.Code != http.StatusOK {
		t.Fatalf("\nwanted:\n200\ngot:\n%d", w.Code)
	}
	var out struct {
		Data []models.Contact `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out.Data) != 2 || out.Data[0].Name != "B" {
		t.Errorf("\nwanted:\n[B A]\ngot:\n%+v", out.Data)
	}
}

func TestAdminContactsListLimit(t *testing.T) {
	r, _ := newTestRouter(t, testConfig(), &fakeNotifier{})
	token := login(t, r)
	auth := map[string]string{"Authorization": "Bearer " + token}

	tests := []struct {
		query string
		want  int
	}{
		{query: "", want: 100},
		{query: "?limit=20", want: 20},
		{query: "?limit=100000000", want: 500},
		{query: "?limit=-3", want: 100},
		{query: "?limit=abc", want: 100},
	}
	for _, tt := range tests {
		w := doJSON(r, http.MethodGet, "/api/admin/contacts"+tt.query, nil, auth)
		if w.Code != http.StatusOK {
			t.Fatalf("\nwanted:\n200\ngot:\n%d", w.Code)
		}
		var out struct {
			Meta struct {
				Limit int `json:"limit"`
			} `json:"meta"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if out.Meta.Limit != tt.want {
			t.Errorf("\nwanted:\nlimit %d for %q\ngot:\n%d", tt.want, tt.query, out.Meta.Limit)
		}
	}
}

func TestHealthAndCORS(t *testing.T) {
	r, _ := newTestRouter(t, testConfig(), &fakeNotifier{})
	w := doJSON(r, http.MethodGet, "/healthz", nil, map[string]string{"Origin": "https://portfolio.example"})
	if w.Code != http.StatusOK {
		t.Fatalf("\nwanted:\n200\ngot:\n%d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("\nwanted:\n*\ngot:\n%q", got)
	}
}
