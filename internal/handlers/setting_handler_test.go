package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "pocketledger/internal/errors"
	"pocketledger/internal/models"
)

// mockSettingStore implements store.SettingStorer with pluggable behavior.
type mockSettingStore struct {
	putFn    func(key string, value json.RawMessage) (*models.Setting, error)
	getFn    func(key string) (*models.Setting, error)
	listFn   func() ([]models.Setting, error)
	deleteFn func(key string) error
}

func (m *mockSettingStore) PutSetting(key string, value json.RawMessage) (*models.Setting, error) {
	return m.putFn(key, value)
}

func (m *mockSettingStore) GetSetting(key string) (*models.Setting, error) {
	return m.getFn(key)
}

func (m *mockSettingStore) ListSettings() ([]models.Setting, error) {
	return m.listFn()
}

func (m *mockSettingStore) DeleteSetting(key string) error {
	return m.deleteFn(key)
}

func setupSettingRouter(m *mockSettingStore) *gin.Engine {
	h := NewSettingHandler(m)
	r := gin.New()
	r.GET("/settings", h.ListSettings)
	r.PUT("/settings/:key", h.PutSetting)
	r.GET("/settings/:key", h.GetSetting)
	r.DELETE("/settings/:key", h.DeleteSetting)
	return r
}

func TestPutSettingHandler(t *testing.T) {
	t.Run("stores_raw_body_under_path_key", func(t *testing.T) {
		var capturedKey string
		var capturedValue json.RawMessage
		r := setupSettingRouter(&mockSettingStore{
			putFn: func(key string, value json.RawMessage) (*models.Setting, error) {
				capturedKey = key
				capturedValue = value
				return &models.Setting{Key: key, Value: value}, nil
			},
		})

		rec := doRequest(r, http.MethodPut, "/settings/currency", `{"code":"EUR","symbol":"€"}`)

		assertStatus(t, rec, http.StatusOK)
		if capturedKey != "currency" {
			t.Errorf("expected key from the path, got %q", capturedKey)
		}
		if string(capturedValue) != `{"code":"EUR","symbol":"€"}` {
			t.Errorf("expected the raw body as the value, got %s", capturedValue)
		}
	})

	t.Run("invalid_json_rejected", func(t *testing.T) {
		r := setupSettingRouter(&mockSettingStore{
			putFn: func(key string, value json.RawMessage) (*models.Setting, error) {
				return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "setting value must be valid JSON")
			},
		})

		rec := doRequest(r, http.MethodPut, "/settings/currency", `{broken`)

		assertErrorCode(t, rec, http.StatusBadRequest, "INVALID_INPUT")
	})
}

func TestGetSettingHandler(t *testing.T) {
	t.Run("not_found", func(t *testing.T) {
		r := setupSettingRouter(&mockSettingStore{
			getFn: func(key string) (*models.Setting, error) {
				return nil, apperrors.ErrSettingNotFound
			},
		})

		rec := doRequest(r, http.MethodGet, "/settings/missing", "")

		assertErrorCode(t, rec, http.StatusNotFound, "SETTING_NOT_FOUND")
	})
}

func TestDeleteSettingHandler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		r := setupSettingRouter(&mockSettingStore{
			deleteFn: func(key string) error { return nil },
		})

		rec := doRequest(r, http.MethodDelete, "/settings/currency", "")

		assertStatus(t, rec, http.StatusNoContent)
	})
}
