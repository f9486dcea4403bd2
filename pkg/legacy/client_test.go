package legacy_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"new-recruitment-api/internal/domain"
	"new-recruitment-api/pkg/legacy"

	"github.com/stretchr/testify/assert"
)

func testCandidate() *domain.Candidate {
	return &domain.Candidate{
		Name:              "Ann",
		Surname:           "Lee",
		Email:             "ann@x.com",
		Phone:             "123",
		YearsOfExperience: 3,
		JobOffers:         []int64{1},
	}
}

func TestNotifyCandidateCreated(t *testing.T) {
	t.Run("Should post the reduced candidate shape with the api key", func(t *testing.T) {
		var gotPath, gotKey, gotContentType string
		var gotBody map[string]string

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			gotPath = r.URL.Path
			gotKey = r.Header.Get("x-api-key")
			gotContentType = r.Header.Get("Content-Type")
			_ = json.NewDecoder(r.Body).Decode(&gotBody)
			w.WriteHeader(http.StatusCreated)
		}))
		defer srv.Close()

		client := legacy.NewClient(srv.URL, "secret-key")
		err := client.NotifyCandidateCreated(context.Background(), testCandidate())

		assert.NoError(t, err)
		assert.Equal(t, "/candidates", gotPath)
		assert.Equal(t, "secret-key", gotKey)
		assert.Equal(t, "application/json", gotContentType)
		// Only the legacy fields cross the wire; phone and the rest stay local
		assert.Equal(t, map[string]string{
			"firstName": "Ann",
			"lastName":  "Lee",
			"email":     "ann@x.com",
		}, gotBody)
	})

	t.Run("Should fail on a non-2xx response", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "legacy system unavailable", http.StatusBadGateway)
		}))
		defer srv.Close()

		client := legacy.NewClient(srv.URL, "secret-key")
		err := client.NotifyCandidateCreated(context.Background(), testCandidate())

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "502")
	})

	t.Run("Should fail on a transport error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close() // nothing is listening anymore

		client := legacy.NewClient(srv.URL, "secret-key")
		err := client.NotifyCandidateCreated(context.Background(), testCandidate())

		assert.Error(t, err)
	})
}
