package token

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	mocks "github.com/ccandelora/randomment/internal/mocks/service/token"
	"github.com/ccandelora/randomment/internal/model"
	"github.com/ccandelora/randomment/internal/repository/devicetoken"
)

func TestRegisterToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMocktokenRepository(ctrl)
	svc := NewService(repoMock)

	userID := uuid.New()
	tokenID := uuid.New()

	repoMock.EXPECT().
		UpsertToken(gomock.Any(), model.DeviceToken{UserID: userID, Platform: model.PlatformIOS, Token: "tok"}).
		Return(tokenID, nil)

	id, err := svc.RegisterToken(context.Background(), userID, model.PlatformIOS, "tok")
	assert.NoError(t, err)
	assert.Equal(t, tokenID, id)
}

func TestDeactivate_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMocktokenRepository(ctrl)
	svc := NewService(repoMock)

	userID := uuid.New()

	repoMock.EXPECT().
		Deactivate(gomock.Any(), userID, model.PlatformAndroid).
		Return(devicetoken.ErrTokenNotFound)

	err := svc.Deactivate(context.Background(), userID, model.PlatformAndroid)
	assert.ErrorIs(t, err, devicetoken.ErrTokenNotFound)
}

func TestActiveTokens(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMocktokenRepository(ctrl)
	svc := NewService(repoMock)

	userID := uuid.New()
	tokens := []model.DeviceToken{
		{UserID: userID, Platform: model.PlatformIOS, Token: "tok-1", IsActive: true},
	}

	repoMock.EXPECT().GetActiveByUserID(gomock.Any(), userID).Return(tokens, nil)

	got, err := svc.ActiveTokens(context.Background(), userID)
	assert.NoError(t, err)
	assert.Equal(t, tokens, got)
}
