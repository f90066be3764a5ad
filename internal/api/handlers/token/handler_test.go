package token

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	mocks "github.com/ccandelora/randomment/internal/mocks/api/handlers/token"
	"github.com/ccandelora/randomment/internal/model"
)

func setupHandler(t *testing.T) (*Handler, *mocks.MocktokenService) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMocktokenService(ctrl)
	validate := validator.New()
	handler := NewHandler(mockService, validate)
	return handler, mockService
}

func TestHandler_Register_Success(t *testing.T) {
	handler, mockService := setupHandler(t)

	userID := uuid.New()
	reqBody := RegisterRequest{
		UserID:   userID.String(),
		Platform: model.PlatformIOS,
		Token:    "device-token",
	}

	bodyBytes, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPost, "/api/moments/tokens", bytes.NewReader(bodyBytes))
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	mockService.EXPECT().
		RegisterToken(gomock.Any(), userID, model.PlatformIOS, "device-token").
		Return(uuid.New(), nil)

	handler.Register(c)

	assert.Equal(t, http.StatusCreated, w.Result().StatusCode)
}

func TestHandler_Register_UnknownPlatform(t *testing.T) {
	handler, _ := setupHandler(t)

	reqBody := RegisterRequest{
		UserID:   uuid.New().String(),
		Platform: "windows",
		Token:    "device-token",
	}

	bodyBytes, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPost, "/api/moments/tokens", bytes.NewReader(bodyBytes))
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Register(c)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestHandler_Deactivate_Success(t *testing.T) {
	handler, mockService := setupHandler(t)

	userID := uuid.New()
	reqBody := DeactivateRequest{
		UserID:   userID.String(),
		Platform: model.PlatformAndroid,
	}

	bodyBytes, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodDelete, "/api/moments/tokens", bytes.NewReader(bodyBytes))
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	mockService.EXPECT().
		Deactivate(gomock.Any(), userID, model.PlatformAndroid).
		Return(nil)

	handler.Deactivate(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
}
