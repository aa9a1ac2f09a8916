package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creekriver/campground/internal/domain"
	"github.com/creekriver/campground/internal/handler"
)

// mockCampsiteServicer is a test double for handler.CampsiteServicer.
type mockCampsiteServicer struct {
	create  func(ctx context.Context, site domain.Campsite) (domain.Campsite, error)
	getByID func(ctx context.Context, id uuid.UUID) (domain.Campsite, error)
	list    func(ctx context.Context) ([]domain.Campsite, error)
	update  func(ctx context.Context, site domain.Campsite) (domain.Campsite, error)
	delete  func(ctx context.Context, id uuid.UUID) error
}

func (m *mockCampsiteServicer) Create(ctx context.Context, site domain.Campsite) (domain.Campsite, error) {
	return m.create(ctx, site)
}
func (m *mockCampsiteServicer) GetByID(ctx context.Context, id uuid.UUID) (domain.Campsite, error) {
	return m.getByID(ctx, id)
}
func (m *mockCampsiteServicer) List(ctx context.Context) ([]domain.Campsite, error) {
	return m.list(ctx)
}
func (m *mockCampsiteServicer) Update(ctx context.Context, site domain.Campsite) (domain.Campsite, error) {
	return m.update(ctx, site)
}
func (m *mockCampsiteServicer) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

var _ handler.CampsiteServicer = (*mockCampsiteServicer)(nil)

func newCampsiteHandler(svc handler.CampsiteServicer) http.Handler {
	return handler.NewServer(nil, svc, nil, nil).Routes()
}

func campsiteFixture() domain.Campsite {
	return domain.Campsite{
		ID:             uuid.New(),
		CampsiteTypeID: uuid.New(),
		Nickname:       "Barred Owl",
		ImageURL:       "https://example.com/owl.jpg",
	}
}

// ---- POST /api/campsites -----------------------------------------------------

func TestCreateCampsite_201(t *testing.T) {
	fixture := campsiteFixture()
	svc := &mockCampsiteServicer{
		create: func(_ context.Context, site domain.Campsite) (domain.Campsite, error) {
			assert.Equal(t, "Barred Owl", site.Nickname)
			return fixture, nil
		},
	}

	body := jsonBody(t, map[string]any{
		"campsite_type_id": fixture.CampsiteTypeID,
		"nickname":         "Barred Owl",
		"image_url":        fixture.ImageURL,
	})

	req := httptest.NewRequest(http.MethodPost, "/api/campsites", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newCampsiteHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp domain.Campsite
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, fixture.ID, resp.ID)
	assert.Equal(t, "Barred Owl", resp.Nickname)
}

func TestCreateCampsite_422_ValidationError(t *testing.T) {
	svc := &mockCampsiteServicer{
		create: func(_ context.Context, _ domain.Campsite) (domain.Campsite, error) {
			return domain.Campsite{}, fmt.Errorf("%w: nickname is required", domain.ErrValidation)
		},
	}

	body := jsonBody(t, map[string]any{"campsite_type_id": uuid.New(), "nickname": ""})

	req := httptest.NewRequest(http.MethodPost, "/api/campsites", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newCampsiteHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "nickname is required")
}

func TestCreateCampsite_404_UnknownType(t *testing.T) {
	svc := &mockCampsiteServicer{
		create: func(_ context.Context, _ domain.Campsite) (domain.Campsite, error) {
			return domain.Campsite{}, fmt.Errorf("campsite type: %w", domain.ErrNotFound)
		},
	}

	body := jsonBody(t, map[string]any{"campsite_type_id": uuid.New(), "nickname": "X"})

	req := httptest.NewRequest(http.MethodPost, "/api/campsites", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newCampsiteHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateCampsite_422_BadBody(t *testing.T) {
	svc := &mockCampsiteServicer{}

	req := httptest.NewRequest(http.MethodPost, "/api/campsites", bytes.NewBufferString("nope"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newCampsiteHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

// ---- GET /api/campsites ------------------------------------------------------

func TestListCampsites_200(t *testing.T) {
	sites := []domain.Campsite{campsiteFixture(), campsiteFixture()}
	svc := &mockCampsiteServicer{
		list: func(_ context.Context) ([]domain.Campsite, error) { return sites, nil },
	}

	req := httptest.NewRequest(http.MethodGet, "/api/campsites", nil)
	rec := httptest.NewRecorder()

	newCampsiteHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp []domain.Campsite
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

// ---- GET /api/campsites/{id} -------------------------------------------------

func TestGetCampsite_200(t *testing.T) {
	fixture := campsiteFixture()
	svc := &mockCampsiteServicer{
		getByID: func(_ context.Context, id uuid.UUID) (domain.Campsite, error) {
			assert.Equal(t, fixture.ID, id)
			return fixture, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/campsites/"+fixture.ID.String(), nil)
	rec := httptest.NewRecorder()

	newCampsiteHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetCampsite_404(t *testing.T) {
	svc := &mockCampsiteServicer{
		getByID: func(_ context.Context, _ uuid.UUID) (domain.Campsite, error) {
			return domain.Campsite{}, domain.ErrNotFound
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/campsites/"+uuid.New().String(), nil)
	rec := httptest.NewRecorder()

	newCampsiteHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"not_found"`)
}

func TestGetCampsite_422_BadID(t *testing.T) {
	svc := &mockCampsiteServicer{}

	req := httptest.NewRequest(http.MethodGet, "/api/campsites/not-a-uuid", nil)
	rec := httptest.NewRecorder()

	newCampsiteHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

// ---- PUT /api/campsites/{id} -------------------------------------------------

func TestUpdateCampsite_200(t *testing.T) {
	fixture := campsiteFixture()
	fixture.Nickname = "Renamed Owl"
	svc := &mockCampsiteServicer{
		update: func(_ context.Context, site domain.Campsite) (domain.Campsite, error) {
			assert.Equal(t, fixture.ID, site.ID)
			return fixture, nil
		},
	}

	body := jsonBody(t, map[string]any{
		"campsite_type_id": fixture.CampsiteTypeID,
		"nickname":         "Renamed Owl",
	})

	req := httptest.NewRequest(http.MethodPut, "/api/campsites/"+fixture.ID.String(), body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newCampsiteHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Renamed Owl")
}

func TestUpdateCampsite_404(t *testing.T) {
	svc := &mockCampsiteServicer{
		update: func(_ context.Context, _ domain.Campsite) (domain.Campsite, error) {
			return domain.Campsite{}, domain.ErrNotFound
		},
	}

	body := jsonBody(t, map[string]any{"campsite_type_id": uuid.New(), "nickname": "X"})

	req := httptest.NewRequest(http.MethodPut, "/api/campsites/"+uuid.New().String(), body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newCampsiteHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ---- DELETE /api/campsites/{id} ----------------------------------------------

func TestDeleteCampsite_204(t *testing.T) {
	svc := &mockCampsiteServicer{
		delete: func(_ context.Context, _ uuid.UUID) error { return nil },
	}

	req := httptest.NewRequest(http.MethodDelete, "/api/campsites/"+uuid.New().String(), nil)
	rec := httptest.NewRecorder()

	newCampsiteHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestDeleteCampsite_409_InUse(t *testing.T) {
	svc := &mockCampsiteServicer{
		delete: func(_ context.Context, _ uuid.UUID) error {
			return fmt.Errorf("service.CampsiteService.Delete: %w", domain.ErrCampsiteInUse)
		},
	}

	req := httptest.NewRequest(http.MethodDelete, "/api/campsites/"+uuid.New().String(), nil)
	rec := httptest.NewRecorder()

	newCampsiteHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), `"campsite_in_use"`)
}

func TestDeleteCampsite_404(t *testing.T) {
	svc := &mockCampsiteServicer{
		delete: func(_ context.Context, _ uuid.UUID) error { return domain.ErrNotFound },
	}

	req := httptest.NewRequest(http.MethodDelete, "/api/campsites/"+uuid.New().String(), nil)
	rec := httptest.NewRecorder()

	newCampsiteHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
