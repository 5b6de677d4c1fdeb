package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"

	"github.com/wsikandar/portfolio-cms/adapters/persistence/memory"
	"github.com/wsikandar/portfolio-cms/internal/application/dispatch"
	authUC "github.com/wsikandar/portfolio-cms/internal/application/usecase/auth"
	"github.com/wsikandar/portfolio-cms/internal/application/usecase/content"
	"github.com/wsikandar/portfolio-cms/internal/config"
	"github.com/wsikandar/portfolio-cms/pkg/auth"
	"github.com/wsikandar/portfolio-cms/pkg/logger"
)

const suitePassword = "handler-suite-password"

type HandlerTestSuite struct {
	suite.Suite
	Router *gin.Engine
	Store  *memory.Store
	JWT    *auth.JWTService
}

func (s *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	store := memory.NewStore()
	hash, err := auth.HashPassword(suitePassword)
	s.Require().NoError(err)
	_, err = store.Credentials().Upsert(context.Background(), hash)
	s.Require().NoError(err)

	log := logger.NewNop()
	jwtSvc := auth.NewJWTService("handler-suite-secret", time.Hour)

	aggregate := content.NewAggregateUseCase(
		store.Profiles(),
		store.SocialLinks(),
		store.Skills(),
		store.Experience(),
		store.Projects(),
		store.Education(),
		store.Certifications(),
		store.Testimonials(),
		store.Services(),
		store.Sections(),
		log,
	)
	login := authUC.NewLoginUseCase(store.Credentials(), jwtSvc, log)
	rotate := authUC.NewRotatePasswordUseCase(store.Credentials(), log)

	dispatcher := dispatch.NewDispatcher(
		dispatch.Repositories{
			Profiles:       store.Profiles(),
			SocialLinks:    store.SocialLinks(),
			Skills:         store.Skills(),
			Experience:     store.Experience(),
			Projects:       store.Projects(),
			Education:      store.Education(),
			Certifications: store.Certifications(),
			Testimonials:   store.Testimonials(),
			Services:       store.Services(),
			Sections:       store.Sections(),
			Credentials:    store.Credentials(),
		},
		login,
		rotate,
		nil,
		nil,
		log,
	)

	var cfg config.Config
	cfg.App.Env = "test"

	s.Router = NewRouter(cfg, jwtSvc, Handlers{
		Portfolio: NewPortfolioHandler(aggregate, nil, log),
		Actions:   NewActionHandler(dispatcher, log),
		Media:     NewMediaHandler(nil, log),
	})
	s.Store = store
	s.JWT = jwtSvc
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) postAction(body any, token string) *httptest.ResponseRecorder {
	raw, err := json.Marshal(body)
	s.Require().NoError(err)
	req := httptest.NewRequest(http.MethodPost, "/api/portfolio/actions", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.Router.ServeHTTP(w, req)
	return w
}

func (s *HandlerTestSuite) Test_GetPortfolio_Defaults() {
	req := httptest.NewRequest(http.MethodGet, "/api/portfolio", nil)
	w := httptest.NewRecorder()
	s.Router.ServeHTTP(w, req)

	s.Equal(http.StatusOK, w.Code)

	var resp map[string]json.RawMessage
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	for _, key := range []string{
		"profile", "socialLinks", "skills", "workExperience", "projects",
		"education", "certifications", "testimonials", "services", "sectionSettings",
	} {
		s.Contains(resp, key)
	}

	var skills []any
	s.Require().NoError(json.Unmarshal(resp["skills"], &skills))
	s.Empty(skills)

	var p struct {
		Name  string `json:"name"`
		Theme string `json:"theme"`
	}
	s.Require().NoError(json.Unmarshal(resp["profile"], &p))
	s.Equal("Portfolio", p.Name)
	s.Equal("professional", p.Theme)
}

func (s *HandlerTestSuite) Test_Health() {
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	w := httptest.NewRecorder()
	s.Router.ServeHTTP(w, req)
	s.Equal(http.StatusOK, w.Code)
}

func (s *HandlerTestSuite) Test_Login_And_WriteWithToken() {
	w := s.postAction(gin.H{"action": "login", "data": gin.H{"password": "wrong"}}, "")
	s.Equal(http.StatusUnauthorized, w.Code)

	w = s.postAction(gin.H{"action": "login", "data": gin.H{"password": suitePassword}}, "")
	s.Require().Equal(http.StatusOK, w.Code)

	var loginResp struct {
		Success bool   `json:"success"`
		Token   string `json:"token"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &loginResp))
	s.True(loginResp.Success)
	s.Require().NotEmpty(loginResp.Token)

	w = s.postAction(gin.H{
		"action": "addProject",
		"data":   gin.H{"title": "Portfolio CMS"},
	}, loginResp.Token)
	s.Require().Equal(http.StatusOK, w.Code)

	var created struct {
		ID    string `json:"id"`
		Title string `json:"title"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &created))
	s.Equal("1", created.ID, "the result is the entity itself, wire ids are strings")
	s.Equal("Portfolio CMS", created.Title)
}

func (s *HandlerTestSuite) Test_WriteWithoutAuth_Rejected() {
	w := s.postAction(gin.H{
		"action": "addProject",
		"data":   gin.H{"title": "nope"},
	}, "")
	s.Equal(http.StatusUnauthorized, w.Code)

	projects, err := s.Store.Projects().List(context.Background())
	s.Require().NoError(err)
	s.Empty(projects)
}

func (s *HandlerTestSuite) Test_CheckAuth_ResponseShape() {
	w := s.postAction(gin.H{"action": "checkAuth"}, "")
	s.Require().Equal(http.StatusOK, w.Code)

	var resp struct {
		Authenticated bool `json:"authenticated"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.False(resp.Authenticated)

	token, err := s.JWT.GenerateToken()
	s.Require().NoError(err)
	w = s.postAction(gin.H{"action": "checkAuth"}, token)
	s.Require().Equal(http.StatusOK, w.Code)
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.True(resp.Authenticated)
}

func (s *HandlerTestSuite) Test_UnknownAction_BadRequest() {
	token, err := s.JWT.GenerateToken()
	s.Require().NoError(err)

	w := s.postAction(gin.H{"action": "doTheThing"}, token)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlerTestSuite) Test_DeleteMissing_NotFound() {
	token, err := s.JWT.GenerateToken()
	s.Require().NoError(err)

	w := s.postAction(gin.H{"action": "deleteSkill", "id": "42"}, token)
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *HandlerTestSuite) Test_MediaUpload_RequiresToken() {
	req := httptest.NewRequest(http.MethodPost, "/api/admin/media", nil)
	w := httptest.NewRecorder()
	s.Router.ServeHTTP(w, req)
	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *HandlerTestSuite) Test_MediaUpload_UnavailableWithoutUploader() {
	token, err := s.JWT.GenerateToken()
	s.Require().NoError(err)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/media", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	s.Router.ServeHTTP(w, req)
	s.Equal(http.StatusServiceUnavailable, w.Code)
}

func (s *HandlerTestSuite) Test_UpdateTheme_Public() {
	w := s.postAction(gin.H{"action": "updateTheme", "data": gin.H{"theme": "bauhaus"}}, "")
	s.Require().Equal(http.StatusOK, w.Code)

	p, err := s.Store.Profiles().Get(context.Background())
	s.Require().NoError(err)
	s.Equal("bauhaus", string(p.Theme))
}

type stubSnapshotCache struct {
	data []byte
	sets int
}

func (c *stubSnapshotCache) Get(_ context.Context) ([]byte, bool) {
	return c.data, c.data != nil
}

func (c *stubSnapshotCache) Set(_ context.Context, raw []byte) {
	c.data = raw
	c.sets++
}

func (c *stubSnapshotCache) Invalidate(_ context.Context) { c.data = nil }

func TestGetPortfolio_ServesCachedSnapshotVerbatim(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := memory.NewStore()
	log := logger.NewNop()

	aggregate := content.NewAggregateUseCase(
		store.Profiles(), store.SocialLinks(), store.Skills(), store.Experience(),
		store.Projects(), store.Education(), store.Certifications(),
		store.Testimonials(), store.Services(), store.Sections(), log,
	)
	cache := &stubSnapshotCache{data: []byte(`{"cached":true}`)}
	handler := NewPortfolioHandler(aggregate, cache, log)

	r := gin.New()
	r.GET("/api/portfolio", handler.GetPortfolio)

	req := httptest.NewRequest(http.MethodGet, "/api/portfolio", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if got := w.Body.String(); got != `{"cached":true}` {
		t.Fatalf("expected the cached bytes untouched, got %s", got)
	}
	if cache.sets != 0 {
		t.Fatalf("a cache hit must not re-render the snapshot")
	}
}

func TestGetPortfolio_FillsCacheOnMiss(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := memory.NewStore()
	log := logger.NewNop()

	aggregate := content.NewAggregateUseCase(
		store.Profiles(), store.SocialLinks(), store.Skills(), store.Experience(),
		store.Projects(), store.Education(), store.Certifications(),
		store.Testimonials(), store.Services(), store.Sections(), log,
	)
	cache := &stubSnapshotCache{}
	handler := NewPortfolioHandler(aggregate, cache, log)

	r := gin.New()
	r.GET("/api/portfolio", handler.GetPortfolio)

	req := httptest.NewRequest(http.MethodGet, "/api/portfolio", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if cache.sets != 1 {
		t.Fatalf("expected the rendered snapshot to be cached, sets = %d", cache.sets)
	}
	if !bytes.Equal(cache.data, w.Body.Bytes()) {
		t.Fatal("cached bytes differ from the served response")
	}
}
