package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"authsvc/internal/auth"
	apperrors "authsvc/internal/errors"
	"authsvc/internal/model"
	"authsvc/internal/password"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func TestAuthService_SignUp(t *testing.T) {
	tests := []struct {
		name          string
		email         string
		password      string
		fullName      string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:     "successful signup",
			email:    "test@example.com",
			password: "password123",
			fullName: "Test User",
			setupMock: func(m *MockUserRepository) {
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:     "email already exists",
			email:    "existing@example.com",
			password: "password123",
			fullName: "Existing User",
			setupMock: func(m *MockUserRepository) {
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(apperrors.ErrDuplicateEmail)
			},
			expectedError: apperrors.ErrDuplicateEmail,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			jwtService := auth.NewJWTService("test-secret")
			svc := NewAuthService(mockRepo, jwtService)

			user, err := svc.SignUp(context.Background(), tt.email, tt.password, tt.fullName)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, user)
				assert.Equal(t, tt.email, user.Email)
				assert.Equal(t, tt.fullName, user.FullName)
				assert.NotEmpty(t, user.PasswordHash)
				assert.NotEqual(t, tt.password, user.PasswordHash)
				assert.True(t, password.Verify(tt.password, user.PasswordHash))
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Authenticate(t *testing.T) {
	hashed, err := password.Hash("password123")
	assert.NoError(t, err)

	stored := &model.User{
		ID:           42,
		Email:        "test@example.com",
		PasswordHash: hashed,
		FullName:     "Test User",
	}

	tests := []struct {
		name          string
		email         string
		password      string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:     "successful authentication",
			email:    "test@example.com",
			password: "password123",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "test@example.com").Return(stored, nil)
			},
			expectedError: nil,
		},
		{
			name:     "unknown email",
			email:    "notfound@example.com",
			password: "password123",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "notfound@example.com").Return(nil, nil)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			email:    "test@example.com",
			password: "wrongpw",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "test@example.com").Return(stored, nil)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			svc := NewAuthService(mockRepo, auth.NewJWTService("test-secret"))
			identity, err := svc.Authenticate(context.Background(), tt.email, tt.password)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, identity)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, identity)
				assert.Equal(t, stored.ID, identity.ID)
				assert.Equal(t, stored.Email, identity.Email)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_LoginIssuesVerifiableToken(t *testing.T) {
	hashed, err := password.Hash("secret1")
	assert.NoError(t, err)

	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByEmail", mock.Anything, "a@x.com").Return(&model.User{
		ID:           7,
		Email:        "a@x.com",
		PasswordHash: hashed,
	}, nil)

	svc := NewAuthService(mockRepo, auth.NewJWTService("test-secret"))

	token, user, err := svc.Login(context.Background(), "a@x.com", "secret1")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, uint(7), user.ID)

	identity, err := svc.VerifyToken(token)
	assert.NoError(t, err)
	assert.Equal(t, user.ID, identity.ID)
	assert.Equal(t, user.Email, identity.Email)

	mockRepo.AssertExpectations(t)
}

func TestAuthService_VerifyToken_Invalid(t *testing.T) {
	svc := NewAuthService(new(MockUserRepository), auth.NewJWTService("test-secret"))

	for _, tok := range []string{"", "garbage", "a.b.c"} {
		identity, err := svc.VerifyToken(tok)
		assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)
		assert.Nil(t, identity)
	}

	// Token signed with a different secret must not verify either.
	other, err := auth.NewJWTService("other-secret").IssueToken(1, "a@x.com")
	assert.NoError(t, err)
	identity, err := svc.VerifyToken(other)
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)
	assert.Nil(t, identity)
}
