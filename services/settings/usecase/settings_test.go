package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/DipakAnap/cablink-backend/internal/pkg/apperr"
	"github.com/DipakAnap/cablink-backend/services/settings/mocks"
)

func TestGetPercentSetting(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		repoErr  error
		expected float64
	}{
		{name: "parses plain percentage", raw: "10", expected: 10},
		{name: "trims whitespace", raw: " 12.5 ", expected: 12.5},
		{name: "absent key means feature off", repoErr: apperr.ErrNotFound, expected: 0},
		{name: "unparsable value means feature off", raw: "ten", expected: 0},
		{name: "negative clamps to zero", raw: "-5", expected: 0},
		{name: "above hundred clamps to hundred", raw: "150", expected: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := mocks.NewMockSettingsRepo(ctrl)
			repo.EXPECT().
				GetSetting(gomock.Any(), "referral_discount_percent").
				Return(tt.raw, tt.repoErr)

			uc := NewSettingsUC(repo)
			percent, err := uc.GetPercentSetting(context.Background(), "referral_discount_percent")

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, percent)
		})
	}
}

func TestUpdateSetting_EmptyKeyRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockSettingsRepo(ctrl)

	uc := NewSettingsUC(repo)
	err := uc.UpdateSetting(context.Background(), "  ", "x")

	assert.True(t, apperr.IsInvalidInput(err))
}
