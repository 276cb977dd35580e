package service

import (
	"context"
	"testing"

	clientMocks "docuagent/internal/client/mocks"
	"docuagent/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSettingsService(t *testing.T) {
	ctx := context.Background()
	bag := model.Settings{
		"notifications": model.BoolValue(true),
		"future_flag":   model.StringValue("kept"),
	}

	m := new(clientMocks.MockSettingsAPI)
	m.On("Get", ctx).Return(bag, nil)
	m.On("Replace", ctx, bag).Return(bag, nil)
	svc := NewSettingsService(m)

	got, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, bag, got)

	stored, err := svc.Replace(ctx, bag)
	require.NoError(t, err)
	assert.Equal(t, "kept", stored["future_flag"].String())

	_, err = svc.Replace(ctx, nil)
	assert.ErrorIs(t, err, ErrSettingsRequired)
	m.AssertNumberOfCalls(t, "Replace", 1)
	m.AssertNotCalled(t, "Replace", mock.Anything, model.Settings(nil))
}
