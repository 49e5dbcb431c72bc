package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"realestate_backend/internal/services/dto"
	"realestate_backend/internal/validator"
	"realestate_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePropertyService returns canned results and records the request it
// received.
type fakePropertyService struct {
	lastFilter   *dto.PropertyFilterRequest
	searchResult *dto.PaginatedResponse
	searchErr    error

	lastID    string
	getResult *dto.PropertyResponse
	getErr    error
}

func (f *fakePropertyService) SearchProperties(_ context.Context, req *dto.PropertyFilterRequest) (*dto.PaginatedResponse, error) {
	f.lastFilter = req
	return f.searchResult, f.searchErr
}

func (f *fakePropertyService) GetPropertyByID(_ context.Context, id string) (*dto.PropertyResponse, error) {
	f.lastID = id
	return f.getResult, f.getErr
}

func newTestRouter(t *testing.T, svc *fakePropertyService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	base := NewBaseHandler(validator.New())
	handler := NewPropertyHandler(base, svc)

	r := gin.New()
	api := r.Group("/api/v1")
	handler.RegisterRoutes(api)
	return r
}

func doRequest(t *testing.T, r *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, body string) *apperrors.AppError {
	t.Helper()
	var resp apperrors.ErrorResponse
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	require.NotNil(t, resp.Error)
	return resp.Error
}

func TestSearchProperties_OK(t *testing.T) {
	svc := &fakePropertyService{
		searchResult: &dto.PaginatedResponse{
			Items: []dto.PropertyResponse{{
				ID:       "64f0c0ffee0ddba11ce0ffee",
				Name:     "Casa Norte",
				Price:    "350000",
				ImageURL: "",
			}},
			Page:       2,
			PageSize:   10,
			Total:      25,
			TotalPages: 3,
		},
	}
	r := newTestRouter(t, svc)

	w := doRequest(t, r, "/api/v1/properties?name=casa&page=2")

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.PaginatedResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(25), resp.Total)
	assert.Equal(t, 3, resp.TotalPages)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "Casa Norte", resp.Items[0].Name)

	require.NotNil(t, svc.lastFilter)
	assert.Equal(t, "casa", svc.lastFilter.Name)
	assert.Equal(t, 2, svc.lastFilter.Page)
	assert.Equal(t, 10, svc.lastFilter.PageSize, "absent pageSize binds to its default")
	assert.Equal(t, "createdat", svc.lastFilter.SortBy)
	assert.Equal(t, "desc", svc.lastFilter.SortDir)
}

func TestSearchProperties_InvalidRange(t *testing.T) {
	svc := &fakePropertyService{searchErr: apperrors.ErrInvalidPriceRange}
	r := newTestRouter(t, svc)

	w := doRequest(t, r, "/api/v1/properties?minPrice=500&maxPrice=100")

	require.Equal(t, http.StatusBadRequest, w.Code)
	appErr := decodeError(t, w.Body.String())
	assert.Equal(t, apperrors.CodeInvalidRange, appErr.Code)
}

func TestSearchProperties_StoreUnavailable(t *testing.T) {
	svc := &fakePropertyService{searchErr: apperrors.ErrStoreUnavailable(assert.AnError)}
	r := newTestRouter(t, svc)

	w := doRequest(t, r, "/api/v1/properties")

	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	appErr := decodeError(t, w.Body.String())
	assert.Equal(t, apperrors.CodeStoreUnavailable, appErr.Code)
}

func TestSearchProperties_NameTooLong(t *testing.T) {
	svc := &fakePropertyService{}
	r := newTestRouter(t, svc)

	w := doRequest(t, r, "/api/v1/properties?name="+strings.Repeat("a", 101))

	require.Equal(t, http.StatusBadRequest, w.Code)
	appErr := decodeError(t, w.Body.String())
	assert.Equal(t, apperrors.CodeValidationFailed, appErr.Code)
	assert.Nil(t, svc.lastFilter, "a rejected request must not reach the service")
}

func TestSearchProperties_UnbindablePage(t *testing.T) {
	svc := &fakePropertyService{}
	r := newTestRouter(t, svc)

	w := doRequest(t, r, "/api/v1/properties?page=abc")

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, svc.lastFilter)
}

func TestGetPropertyByID_OK(t *testing.T) {
	svc := &fakePropertyService{
		getResult: &dto.PropertyResponse{
			ID:       "64f0c0ffee0ddba11ce0ffee",
			Name:     "Casa Norte",
			Price:    "350000.50",
			ImageURL: "https://img.example/casa.jpg",
		},
	}
	r := newTestRouter(t, svc)

	w := doRequest(t, r, "/api/v1/properties/64f0c0ffee0ddba11ce0ffee")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "64f0c0ffee0ddba11ce0ffee", svc.lastID)

	var resp dto.PropertyResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Casa Norte", resp.Name)
	assert.Equal(t, "350000.50", resp.Price)
}

func TestGetPropertyByID_NotFound(t *testing.T) {
	svc := &fakePropertyService{} // nil result, nil error
	r := newTestRouter(t, svc)

	w := doRequest(t, r, "/api/v1/properties/64f0c0ffee0ddba11ce0ffee")

	require.Equal(t, http.StatusNotFound, w.Code)
	appErr := decodeError(t, w.Body.String())
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}

func TestGetPropertyByID_Malformed(t *testing.T) {
	svc := &fakePropertyService{getErr: apperrors.ErrMalformedIdentifier}
	r := newTestRouter(t, svc)

	w := doRequest(t, r, "/api/v1/properties/not-an-id")

	require.Equal(t, http.StatusBadRequest, w.Code)
	appErr := decodeError(t, w.Body.String())
	assert.Equal(t, apperrors.CodeMalformedIdentifier, appErr.Code)
}

// fakePinger flips between reachable and unreachable store states.
type fakePinger struct {
	err error
}

func (p *fakePinger) Ping(_ context.Context) error { return p.err }

func TestHealthz(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHealthHandler(&fakePinger{err: assert.AnError}).RegisterRoutes(r)

	w := doRequest(t, r, "/healthz")
	require.Equal(t, http.StatusOK, w.Code, "liveness never depends on the store")
}

func TestReadyz(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("store reachable", func(t *testing.T) {
		r := gin.New()
		NewHealthHandler(&fakePinger{}).RegisterRoutes(r)

		w := doRequest(t, r, "/readyz")
		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("store unreachable", func(t *testing.T) {
		r := gin.New()
		NewHealthHandler(&fakePinger{err: assert.AnError}).RegisterRoutes(r)

		w := doRequest(t, r, "/readyz")
		require.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}
