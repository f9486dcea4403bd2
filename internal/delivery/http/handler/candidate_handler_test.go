package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"new-recruitment-api/config"
	"new-recruitment-api/internal/delivery/http/handler"
	"new-recruitment-api/internal/domain"
	"new-recruitment-api/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockCandidateUsecase struct {
	mock.Mock
}

func (m *MockCandidateUsecase) List(ctx context.Context, page int) (*domain.CandidatePage, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CandidatePage), args.Error(1)
}

func (m *MockCandidateUsecase) ListByJobOffer(ctx context.Context, jobOfferID int64, page int) (*domain.CandidatePage, error) {
	args := m.Called(ctx, jobOfferID, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CandidatePage), args.Error(1)
}

func (m *MockCandidateUsecase) Create(ctx context.Context, candidate *domain.Candidate) error {
	return m.Called(ctx, candidate).Error(0)
}

func newTestRouter(uc domain.CandidateUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return handler.NewRouter(handler.RouterDeps{
		CandidateUC: uc,
		Config: &config.Config{
			CandidatesPerPage:        10,
			RateLimitGlobalThreshold: 10000,
			RateLimitWindowSeconds:   60,
		},
	})
}

func emptyPage(page int) *domain.CandidatePage {
	return domain.NewCandidatePage(nil, 0, page, 10)
}

func TestListCandidates(t *testing.T) {
	t.Run("Should default missing and malformed page params to 1", func(t *testing.T) {
		for _, target := range []string{"/candidates", "/candidates?page=abc", "/candidates?page=-2", "/candidates?page=0"} {
			mockUC := new(MockCandidateUsecase)
			mockUC.On("List", mock.Anything, 1).Return(emptyPage(1), nil)
			router := newTestRouter(mockUC)

			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodGet, target, nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code, target)
			mockUC.AssertCalled(t, "List", mock.Anything, 1)
		}
	})

	t.Run("Should pass a valid page through and return the page object", func(t *testing.T) {
		mockUC := new(MockCandidateUsecase)
		mockUC.On("List", mock.Anything, 3).Return(&domain.CandidatePage{
			Candidates:      []domain.Candidate{{ID: 21, Name: "Ann"}},
			TotalPages:      5,
			CurrentPage:     3,
			HasNextPage:     true,
			HasPreviousPage: true,
			NextPage:        4,
			PreviousPage:    2,
		}, nil)
		router := newTestRouter(mockUC)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/candidates?page=3", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var body map[string]interface{}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, float64(5), body["totalPages"])
		assert.Equal(t, float64(3), body["currentPage"])
		assert.Equal(t, true, body["hasNextPage"])
		assert.Equal(t, true, body["hasPreviousPage"])
		assert.Equal(t, float64(4), body["nextPage"])
		assert.Equal(t, float64(2), body["previousPage"])
	})

	t.Run("Should reduce unexpected failures to a generic 500", func(t *testing.T) {
		mockUC := new(MockCandidateUsecase)
		mockUC.On("List", mock.Anything, 1).Return(nil, apperror.Internal(errors.New("connection reset")))
		router := newTestRouter(mockUC)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/candidates", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"message":"Internal server error"}`, w.Body.String())
	})
}

func TestListCandidatesByJobOffer(t *testing.T) {
	t.Run("Should return 400 for a non-integer job offer id without touching the store", func(t *testing.T) {
		mockUC := new(MockCandidateUsecase)
		router := newTestRouter(mockUC)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/candidates/job-offer/abc", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"message":"Invalid job offer ID"}`, w.Body.String())
		mockUC.AssertNotCalled(t, "ListByJobOffer", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should pass the job offer id and page through", func(t *testing.T) {
		mockUC := new(MockCandidateUsecase)
		mockUC.On("ListByJobOffer", mock.Anything, int64(5), 2).Return(emptyPage(2), nil)
		router := newTestRouter(mockUC)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/candidates/job-offer/5?page=2", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		mockUC.AssertCalled(t, "ListByJobOffer", mock.Anything, int64(5), 2)
	})
}

func TestCreateCandidate(t *testing.T) {
	createBody := func() []byte {
		b, _ := json.Marshal(map[string]interface{}{
			"name":                "Ann",
			"surname":             "Lee",
			"email":               "ann@x.com",
			"phone":               "123",
			"years_of_experience": 3,
			"job_offers":          []int64{1},
		})
		return b
	}

	t.Run("Should return 201 with a confirmation message", func(t *testing.T) {
		mockUC := new(MockCandidateUsecase)
		mockUC.On("Create", mock.Anything, mock.AnythingOfType("*domain.Candidate")).Return(nil).Run(func(args mock.Arguments) {
			c := args.Get(1).(*domain.Candidate)
			assert.Equal(t, "Ann", c.Name)
			assert.Equal(t, "Lee", c.Surname)
			assert.Equal(t, []int64{1}, c.JobOffers)
			assert.Equal(t, domain.StatusNew, c.RecruitmentStatus)
		})
		router := newTestRouter(mockUC)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/candidates", bytes.NewReader(createBody()))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.JSONEq(t, `{"message":"Candidate created successfully"}`, w.Body.String())
	})

	t.Run("Should surface validation failures as 422 with the accumulated messages", func(t *testing.T) {
		mockUC := new(MockCandidateUsecase)
		mockUC.On("Create", mock.Anything, mock.Anything).Return(
			apperror.UnprocessableEntity("Invalid inputs passed: Name is required, Job offers must contain at least one job offer ID"),
		)
		router := newTestRouter(mockUC)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/candidates", bytes.NewReader([]byte(`{}`)))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.JSONEq(t, `{"message":"Invalid inputs passed: Name is required, Job offers must contain at least one job offer ID"}`, w.Body.String())
	})

	t.Run("Should return 400 for a malformed body", func(t *testing.T) {
		mockUC := new(MockCandidateUsecase)
		router := newTestRouter(mockUC)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/candidates", bytes.NewReader([]byte(`{"years_of_experience": "three"}`)))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockUC.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should reduce creation failures to a generic 500", func(t *testing.T) {
		mockUC := new(MockCandidateUsecase)
		mockUC.On("Create", mock.Anything, mock.Anything).Return(apperror.Internal(errors.New("legacy: API returned status 502")))
		router := newTestRouter(mockUC)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/candidates", bytes.NewReader(createBody()))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"message":"Internal server error"}`, w.Body.String())
	})
}

func TestHealth(t *testing.T) {
	router := newTestRouter(new(MockCandidateUsecase))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"System operational"}`, w.Body.String())
}
