package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glitchowt/backoffice/internal/domain"
	"github.com/glitchowt/backoffice/internal/service/post"
	"github.com/glitchowt/backoffice/internal/service/reel"
	"github.com/glitchowt/backoffice/internal/service/roadmap"
	"github.com/glitchowt/backoffice/internal/service/subscriber"
)

// In-memory repositories so handler tests run against the real service layer.

type memSubscriberRepo struct {
	subs []domain.Subscriber
}

func (m *memSubscriberRepo) Create(ctx context.Context, sub *domain.Subscriber) error {
	for _, s := range m.subs {
		if s.Email == sub.Email {
			return subscriber.ErrAlreadySubscribed
		}
	}
	sub.ID = "sub-1"
	sub.CreatedAt = time.Date(2025, 6, 13, 9, 30, 0, 0, time.UTC)
	m.subs = append([]domain.Subscriber{*sub}, m.subs...)
	return nil
}

func (m *memSubscriberRepo) List(ctx context.Context) ([]domain.Subscriber, error) {
	return m.subs, nil
}

func (m *memSubscriberRepo) ListEmails(ctx context.Context) ([]string, error) {
	var out []string
	for _, s := range m.subs {
		out = append(out, s.Email)
	}
	return out, nil
}

func (m *memSubscriberRepo) Delete(ctx context.Context, id string) error {
	for i, s := range m.subs {
		if s.ID == id {
			m.subs = append(m.subs[:i], m.subs[i+1:]...)
			break
		}
	}
	return nil
}

type memPostRepo struct {
	posts []domain.BlogPost
}

func (m *memPostRepo) List(ctx context.Context, f post.ListFilter, p post.Page) ([]domain.BlogPost, int, error) {
	var matched []domain.BlogPost
	for _, bp := range m.posts {
		if f.Category != "" && bp.Category != f.Category {
			continue
		}
		if f.TitleSearch != "" && !strings.Contains(strings.ToLower(bp.Title), strings.ToLower(f.TitleSearch)) {
			continue
		}
		matched = append(matched, bp)
	}
	total := len(matched)
	off := p.Offset()
	if off >= total {
		return []domain.BlogPost{}, total, nil
	}
	end := off + p.Size
	if end > total {
		end = total
	}
	return matched[off:end], total, nil
}

func (m *memPostRepo) Get(ctx context.Context, id string) (*domain.BlogPost, error) {
	for i := range m.posts {
		if m.posts[i].ID == id {
			return &m.posts[i], nil
		}
	}
	return nil, post.ErrNotFound
}

func (m *memPostRepo) Create(ctx context.Context, bp *domain.BlogPost) error {
	bp.ID = "p-new"
	m.posts = append(m.posts, *bp)
	return nil
}

func (m *memPostRepo) Update(ctx context.Context, id string, patch domain.BlogPostPatch) (*domain.BlogPost, error) {
	for i := range m.posts {
		if m.posts[i].ID != id {
			continue
		}
		if patch.Title != nil {
			m.posts[i].Title = *patch.Title
		}
		return &m.posts[i], nil
	}
	return nil, post.ErrNotFound
}

func (m *memPostRepo) Delete(ctx context.Context, id string) error {
	for i := range m.posts {
		if m.posts[i].ID == id {
			m.posts = append(m.posts[:i], m.posts[i+1:]...)
			return nil
		}
	}
	return post.ErrNotFound
}

type memRoadmapRepo struct {
	features []domain.RoadmapFeature
}

func (m *memRoadmapRepo) List(ctx context.Context) ([]domain.RoadmapFeature, error) {
	return m.features, nil
}

func (m *memRoadmapRepo) Create(ctx context.Context, f *domain.RoadmapFeature) error {
	f.ID = "f-new"
	m.features = append([]domain.RoadmapFeature{*f}, m.features...)
	return nil
}

func (m *memRoadmapRepo) Update(ctx context.Context, id string, patch domain.RoadmapFeaturePatch) (*domain.RoadmapFeature, error) {
	for i := range m.features {
		if m.features[i].ID != id {
			continue
		}
		if patch.Status != nil {
			m.features[i].Status = *patch.Status
		}
		f := m.features[i]
		return &f, nil
	}
	return nil, roadmap.ErrNotFound
}

func (m *memRoadmapRepo) Delete(ctx context.Context, id string) error { return nil }

type memReelRepo struct {
	reels []domain.InstagramReel
}

func (m *memReelRepo) List(ctx context.Context) ([]domain.InstagramReel, error) {
	return m.reels, nil
}

func (m *memReelRepo) Create(ctx context.Context, r *domain.InstagramReel) error {
	r.ID = "r-new"
	m.reels = append(m.reels, *r)
	return nil
}

func (m *memReelRepo) Update(ctx context.Context, id string, patch domain.InstagramReelPatch) (*domain.InstagramReel, error) {
	return nil, reel.ErrNotFound
}

func (m *memReelRepo) Delete(ctx context.Context, id string) error { return reel.ErrNotFound }

// denyAll simulates an exhausted rate limit window.
type denyAll struct{}

func (denyAll) Allow(ctx context.Context, key string) bool { return false }

func newTestServer(t *testing.T) (*httptest.Server, *memSubscriberRepo, *memPostRepo) {
	t.Helper()
	subRepo := &memSubscriberRepo{}
	postRepo := &memPostRepo{}
	h := NewHandlers(
		subscriber.NewService(subRepo),
		post.NewService(postRepo),
		roadmap.NewService(&memRoadmapRepo{features: []domain.RoadmapFeature{
			{ID: "f-1", Name: "Voice shortcuts", Status: domain.StatusPlanned},
		}}),
		reel.NewService(&memReelRepo{}),
		nil,
		nil,
	)
	dispatchStub := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	srv := httptest.NewServer(SetupRoutes(h, dispatchStub))
	t.Cleanup(srv.Close)
	return srv, subRepo, postRepo
}

func TestSubscribeEndpoint(t *testing.T) {
	srv, repo, _ := newTestServer(t)

	resp, err := http.Post(srv.URL+"/api/subscribers", "application/json",
		strings.NewReader(`{"email":"hello@glitchowt.com"}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	require.Len(t, repo.subs, 1)

	// Duplicate signup keeps the friendly conflict message.
	resp2, err := http.Post(srv.URL+"/api/subscribers", "application/json",
		strings.NewReader(`{"email":"hello@glitchowt.com"}`))
	require.NoError(t, err)
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusConflict, resp2.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp2.Body).Decode(&body))
	assert.Equal(t, "You're already subscribed!", body["error"])
}

func TestSubscribeInvalidEmail(t *testing.T) {
	srv, repo, _ := newTestServer(t)

	resp, err := http.Post(srv.URL+"/api/subscribers", "application/json",
		strings.NewReader(`{"email":"nope"}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Empty(t, repo.subs)
}

func TestSubscribeRateLimited(t *testing.T) {
	h := NewHandlers(
		subscriber.NewService(&memSubscriberRepo{}),
		post.NewService(&memPostRepo{}),
		roadmap.NewService(&memRoadmapRepo{}),
		reel.NewService(&memReelRepo{}),
		denyAll{},
		nil,
	)

	req := httptest.NewRequest(http.MethodPost, "/api/subscribers",
		strings.NewReader(`{"email":"hello@glitchowt.com"}`))
	rec := httptest.NewRecorder()
	h.Subscribe(rec, req)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestListPostsPaginationEnvelope(t *testing.T) {
	srv, _, postRepo := newTestServer(t)
	for i := 0; i < 8; i++ {
		postRepo.posts = append(postRepo.posts, domain.BlogPost{
			ID:       string(rune('a' + i)),
			Title:    "Post " + string(rune('A'+i)),
			Category: "The Friday Five",
		})
	}

	resp, err := http.Get(srv.URL + "/api/posts?page=2&limit=6")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		Data       []domain.BlogPost `json:"data"`
		Pagination PaginationMeta    `json:"pagination"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Len(t, out.Data, 2)
	assert.Equal(t, 8, out.Pagination.Total)
	assert.Equal(t, 2, out.Pagination.TotalPages)
	assert.False(t, out.Pagination.HasMore)
}

func TestCreatePostRejectsBadDate(t *testing.T) {
	srv, _, _ := newTestServer(t)

	resp, err := http.Post(srv.URL+"/api/posts", "application/json",
		strings.NewReader(`{"title":"Launch","date":"13-06-2025","category":"The Friday Five","html_content":"<p>x</p>"}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRoadmapStatusEndpoint(t *testing.T) {
	srv, _, _ := newTestServer(t)

	req, _ := http.NewRequest(http.MethodPut, srv.URL+"/api/roadmap/f-1/status",
		strings.NewReader(`{"status":"done"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		Feature domain.RoadmapFeature `json:"feature"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, domain.StatusDone, out.Feature.Status)

	// Unknown status stays on the board untouched.
	req2, _ := http.NewRequest(http.MethodPut, srv.URL+"/api/roadmap/f-1/status",
		strings.NewReader(`{"status":"shipped"}`))
	req2.Header.Set("Content-Type", "application/json")
	resp2, err := http.DefaultClient.Do(req2)
	require.NoError(t, err)
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp2.StatusCode)
}

func TestRoadmapBucketsEndpoint(t *testing.T) {
	srv, _, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/roadmap/buckets")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		Statuses []domain.FeatureStatus                         `json:"statuses"`
		Buckets  map[domain.FeatureStatus][]domain.RoadmapFeature `json:"buckets"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, domain.FeatureStatuses, out.Statuses)
	assert.Len(t, out.Buckets[domain.StatusPlanned], 1)
	assert.Empty(t, out.Buckets[domain.StatusDone])
}

func TestExportSubscribersEndpoint(t *testing.T) {
	srv, repo, _ := newTestServer(t)
	repo.subs = []domain.Subscriber{
		{ID: "s-1", Email: "a@example.com", CreatedAt: time.Date(2025, 6, 13, 9, 30, 0, 0, time.UTC)},
	}

	resp, err := http.Get(srv.URL + "/api/subscribers/export")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/csv", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "glitchowt-waitlist-")
	assert.Contains(t, resp.Header.Get("Content-Disposition"), ".csv")
}

func TestHealthEndpoint(t *testing.T) {
	srv, _, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
}

func TestGetPostNotFound(t *testing.T) {
	srv, _, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/posts/no-such-id")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
