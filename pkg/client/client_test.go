package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snapshotJSON() []byte {
	p := DefaultPortfolio()
	p.Profile.Name = "Warda"
	p.Skills = []Skill{{ID: "1", Name: "Go", Category: "Backend", Level: 90, Enabled: true}}
	raw, _ := json.Marshal(p)
	return raw
}

func TestFetchAll_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/portfolio", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write(snapshotJSON())
	}))
	defer srv.Close()

	c := New(srv.URL)
	p, err := c.FetchAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Warda", p.Profile.Name)
	require.Len(t, p.Skills, 1)
	assert.Equal(t, "1", p.Skills[0].ID)
}

func TestFetchAll_FallsBackToDefaults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL)
	p, err := c.FetchAll(context.Background())
	assert.Error(t, err)
	require.NotNil(t, p, "a renderer always gets a portfolio")
	assert.Equal(t, "Portfolio", p.Profile.Name)
	assert.True(t, p.SectionSettings.Hero)
	assert.NotNil(t, p.Skills)
}

func TestFetchAll_SharesOneRequest(t *testing.T) {
	var calls int32
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		<-release
		w.Write(snapshotJSON())
	}))
	defer srv.Close()

	c := New(srv.URL)

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p, err := c.FetchAll(context.Background())
			assert.NoError(t, err)
			assert.Equal(t, "Warda", p.Profile.Name)
		}()
	}
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "concurrent reads share one fetch")
}

func TestFetchAll_CachedUntilWrite(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/portfolio" {
			atomic.AddInt32(&calls, 1)
			w.Write(snapshotJSON())
			return
		}
		json.NewEncoder(w).Encode(map[string]any{"success": true})
	}))
	defer srv.Close()

	c := New(srv.URL)
	ctx := context.Background()

	_, err := c.FetchAll(ctx)
	require.NoError(t, err)
	_, err = c.FetchAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))

	_, err = c.Do(ctx, "deleteSkill", "1", nil)
	require.NoError(t, err)

	_, err = c.FetchAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls), "a write invalidates the cached snapshot")
}

func TestMutations_ApplyToLocalMirror(t *testing.T) {
	var fetches int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/portfolio" {
			atomic.AddInt32(&fetches, 1)
			w.Write(snapshotJSON())
			return
		}
		var req actionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		switch req.Action {
		case "addSkill":
			json.NewEncoder(w).Encode(Skill{ID: "2", Name: "Redis", Category: "Backend", Level: 70, Enabled: true})
		case "updateSkill":
			json.NewEncoder(w).Encode(Skill{ID: "1", Name: "Go", Category: "Backend", Level: 95, Enabled: true})
		case "deleteSkill":
			json.NewEncoder(w).Encode(map[string]any{"success": true})
		default:
			t.Fatalf("unexpected action %q", req.Action)
		}
	}))
	defer srv.Close()

	c := New(srv.URL)
	ctx := context.Background()

	p, err := c.FetchAll(ctx)
	require.NoError(t, err)
	require.Len(t, p.Skills, 1)

	created, err := c.AddSkill(ctx, Skill{Name: "Redis", Category: "Backend", Level: 70})
	require.NoError(t, err)
	assert.Equal(t, "2", created.ID)

	updated, err := c.UpdateSkill(ctx, "1", map[string]int{"level": 95})
	require.NoError(t, err)
	assert.Equal(t, 95, updated.Level)

	require.NoError(t, c.DeleteSkill(ctx, "2"))

	p, err = c.FetchAll(ctx)
	require.NoError(t, err)
	require.Len(t, p.Skills, 1)
	assert.Equal(t, "1", p.Skills[0].ID)
	assert.Equal(t, 95, p.Skills[0].Level)
	assert.Equal(t, int32(1), atomic.LoadInt32(&fetches), "own edits show up without a refetch")
}

func TestReorderProjects_ReordersMirror(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/portfolio" {
			p := DefaultPortfolio()
			p.Projects = []Project{
				{ID: "1", Title: "first", Enabled: true},
				{ID: "2", Title: "second", Enabled: true},
				{ID: "3", Title: "third", Enabled: true},
			}
			json.NewEncoder(w).Encode(p)
			return
		}
		json.NewEncoder(w).Encode(map[string]any{"success": true})
	}))
	defer srv.Close()

	c := New(srv.URL)
	ctx := context.Background()

	_, err := c.FetchAll(ctx)
	require.NoError(t, err)
	require.NoError(t, c.ReorderProjects(ctx, []string{"3", "1", "2"}))

	p, err := c.FetchAll(ctx)
	require.NoError(t, err)
	require.Len(t, p.Projects, 3)
	assert.Equal(t, "3", p.Projects[0].ID)
	assert.Equal(t, "1", p.Projects[1].ID)
	assert.Equal(t, "2", p.Projects[2].ID)
}

func TestEnabledAccessors_FilterDisabledRows(t *testing.T) {
	p := DefaultPortfolio()
	p.Skills = []Skill{
		{ID: "1", Name: "Go", Enabled: true},
		{ID: "2", Name: "COBOL", Enabled: false},
	}
	p.Projects = []Project{
		{ID: "1", Title: "shown", Enabled: true, Featured: true},
		{ID: "2", Title: "hidden", Enabled: false, Featured: true},
		{ID: "3", Title: "plain", Enabled: true},
	}

	skills := p.EnabledSkills()
	require.Len(t, skills, 1)
	assert.Equal(t, "Go", skills[0].Name)

	featured := p.FeaturedProjects()
	require.Len(t, featured, 1)
	assert.Equal(t, "shown", featured[0].Title)
	assert.Len(t, p.EnabledProjects(), 2)
}

func TestLogin_StoresTokenForLaterRequests(t *testing.T) {
	var sawAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req actionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		switch req.Action {
		case "login":
			json.NewEncoder(w).Encode(map[string]any{"success": true, "token": "tok-123"})
		default:
			sawAuth = r.Header.Get("Authorization")
			json.NewEncoder(w).Encode(map[string]any{"success": true})
		}
	}))
	defer srv.Close()

	c := New(srv.URL)
	ctx := context.Background()

	require.NoError(t, c.Login(ctx, "secret"))
	_, err := c.Do(ctx, "deleteProject", "1", nil)
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", sawAuth)
}

func TestDo_SurfacesServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]any{"error": "unauthorized", "message": "Unauthorized"})
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.Do(context.Background(), "addSkill", "", map[string]string{"name": "Go"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "addSkill")
}

func TestSetTheme_Optimistic(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/portfolio" {
			w.Write(snapshotJSON())
			return
		}
		json.NewEncoder(w).Encode(map[string]any{"success": true})
	}))
	defer srv.Close()

	c := New(srv.URL)
	ctx := context.Background()

	p, err := c.FetchAll(ctx)
	require.NoError(t, err)
	require.NoError(t, c.SetTheme(ctx, "bauhaus"))
	assert.Equal(t, "bauhaus", p.Profile.Theme, "theme flips locally before the server confirms")
}
