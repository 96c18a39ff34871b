package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"cfr_notifier/internal/adapter/http/handlers/mocks"
	"cfr_notifier/internal/domain/entities"
	"cfr_notifier/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestGeocodeHandler_Search(t *testing.T) {
	gin.SetMode(gin.TestMode)

	setup := func(t *testing.T) (*gin.Engine, *mocks.MockIGeocodeUseCase) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIGeocodeUseCase(ctrl)
		r := gin.New()
		r.GET("/api/geocode", NewGeocodeHandler(uc).Search)
		return r, uc
	}

	get := func(r http.Handler, url string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, url, nil))
		return w
	}

	t.Run("short query", func(t *testing.T) {
		r, uc := setup(t)
		uc.EXPECT().Search(gomock.Any(), "ab").Return(nil, usecase.ErrQueryTooShort)

		if w := get(r, "/api/geocode?q=ab"); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("upstream failure", func(t *testing.T) {
		r, uc := setup(t)
		uc.EXPECT().Search(gomock.Any(), "100 Queen").Return(nil, fmt.Errorf("%w: 503", usecase.ErrGeocoderUnavailable))

		if w := get(r, "/api/geocode?q=100+Queen"); w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("empty result is an empty array", func(t *testing.T) {
		r, uc := setup(t)
		uc.EXPECT().Search(gomock.Any(), "nowhere").Return([]entities.AddressCandidate{}, nil)

		w := get(r, "/api/geocode?q=nowhere")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Body.String() != "[]" {
			t.Fatalf("expected [], got %s", w.Body.String())
		}
	})

	t.Run("candidates", func(t *testing.T) {
		r, uc := setup(t)
		uc.EXPECT().Search(gomock.Any(), "100 Queen").Return([]entities.AddressCandidate{
			{Label: "100 Queen St W, Toronto", City: "Toronto", Province: "Ontario", Latitude: 43.65, Longitude: -79.38},
		}, nil)

		w := get(r, "/api/geocode?q=100+Queen")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var body []map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if len(body) != 1 || body[0]["city"] != "Toronto" || body[0]["lat"] != 43.65 {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}
