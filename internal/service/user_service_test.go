package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apperrors "authsvc/internal/errors"
	"authsvc/internal/model"
)

func TestUserService_GetUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByID", mock.Anything, uint(1)).Return(&model.User{
		ID:    1,
		Email: "a@x.com",
	}, nil)

	// nil cache client degrades to repository reads
	svc := NewUserService(mockRepo, nil)

	user, err := svc.GetUser(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, "a@x.com", user.Email)

	mockRepo.AssertExpectations(t)
}

func TestUserService_GetUser_NotFound(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByID", mock.Anything, uint(99)).Return(nil, apperrors.ErrUserNotFound)

	svc := NewUserService(mockRepo, nil)

	user, err := svc.GetUser(context.Background(), 99)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	assert.Nil(t, user)
}
