package authenticating

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/vfg2006/meta-ads-manager-api/infrastructure/repository"
	"github.com/vfg2006/meta-ads-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/meta-ads-manager-api/internal/domain"
	"github.com/vfg2006/meta-ads-manager-api/pkg/apiErrors"
)

func newTestService(repo repository.UserRepository) *Service {
	return &Service{
		userRepo: repo,
		secret:   []byte("segredo-de-teste"),
		tokenTTL: time.Hour,
		now:      time.Now,
	}
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	service := newTestService(mockUserRepo)

	tests := []struct {
		name     string
		req      domain.RegisterRequest
		setup    func()
		validate func(t *testing.T, resp *domain.AuthResponse, err error)
	}{
		{
			name: "Cadastro normaliza o email e retorna token",
			req:  domain.RegisterRequest{Email: " Ana@Exemplo.com ", Password: "senha-forte", Name: "Ana"},
			setup: func() {
				mockUserRepo.EXPECT().GetByEmail(gomock.Any(), "ana@exemplo.com").Return(nil, nil)
				mockUserRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, user *domain.User) error {
					assert.Equal(t, "ana@exemplo.com", user.Email)
					assert.Equal(t, domain.UserRoleUser, user.Role)
					assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("senha-forte")))
					return nil
				})
			},
			validate: func(t *testing.T, resp *domain.AuthResponse, err error) {
				require.NoError(t, err)
				assert.NotEmpty(t, resp.Token)
				assert.Equal(t, "ana@exemplo.com", resp.User.Email)
			},
		},
		{
			name: "Email já cadastrado retorna conflito",
			req:  domain.RegisterRequest{Email: "ana@exemplo.com", Password: "senha-forte", Name: "Ana"},
			setup: func() {
				mockUserRepo.EXPECT().GetByEmail(gomock.Any(), "ana@exemplo.com").Return(&domain.User{ID: "u1"}, nil)
			},
			validate: func(t *testing.T, resp *domain.AuthResponse, err error) {
				assert.Nil(t, resp)
				assert.ErrorIs(t, err, ErrUserAlreadyExists)

				var authErr *AuthError
				require.True(t, errors.As(err, &authErr))
				assert.Equal(t, apiErrors.ErrConflict, authErr.APICode())
			},
		},
		{
			name: "Violação de unicidade no insert também é conflito",
			req:  domain.RegisterRequest{Email: "ana@exemplo.com", Password: "senha-forte", Name: "Ana"},
			setup: func() {
				mockUserRepo.EXPECT().GetByEmail(gomock.Any(), gomock.Any()).Return(nil, nil)
				mockUserRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(repository.ErrDuplicate)
			},
			validate: func(t *testing.T, resp *domain.AuthResponse, err error) {
				assert.ErrorIs(t, err, ErrUserAlreadyExists)
			},
		},
		{
			name: "Falha de banco vira erro de operação",
			req:  domain.RegisterRequest{Email: "ana@exemplo.com", Password: "senha-forte", Name: "Ana"},
			setup: func() {
				mockUserRepo.EXPECT().GetByEmail(gomock.Any(), gomock.Any()).Return(nil, errors.New("conexão recusada"))
			},
			validate: func(t *testing.T, resp *domain.AuthResponse, err error) {
				assert.ErrorIs(t, err, ErrDatabaseOperation)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			resp, err := service.Register(context.Background(), tt.req)
			tt.validate(t, resp, err)
		})
	}
}

func TestService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	service := newTestService(mockUserRepo)

	activeUser := &domain.User{
		ID:           "u1",
		Email:        "ana@exemplo.com",
		PasswordHash: hashPassword(t, "senha-forte"),
		Name:         "Ana",
		Role:         domain.UserRoleAdmin,
		Active:       true,
	}
	inactiveUser := *activeUser
	inactiveUser.Active = false

	tests := []struct {
		name     string
		password string
		user     *domain.User
		wantErr  error
	}{
		{name: "Credenciais corretas", password: "senha-forte", user: activeUser},
		{name: "Senha incorreta", password: "errada", user: activeUser, wantErr: ErrInvalidCredentials},
		{name: "Usuário inexistente", password: "senha-forte", user: nil, wantErr: ErrInvalidCredentials},
		{name: "Usuário desativado", password: "senha-forte", user: &inactiveUser, wantErr: ErrUserDisabled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUserRepo.EXPECT().GetByEmail(gomock.Any(), "ana@exemplo.com").Return(tt.user, nil)

			resp, err := service.Login(context.Background(), domain.LoginRequest{Email: "ana@exemplo.com", Password: tt.password})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, resp)
				return
			}

			require.NoError(t, err)
			claims, err := service.ValidateToken(resp.Token)
			require.NoError(t, err)
			assert.Equal(t, "u1", claims.UserID)
			assert.True(t, claims.IsAdmin())
		})
	}
}

func TestService_ValidateToken(t *testing.T) {
	service := newTestService(nil)
	user := &domain.User{ID: "u1", Email: "ana@exemplo.com", Role: domain.UserRoleUser}

	t.Run("Token expirado", func(t *testing.T) {
		service.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
		token, err := service.generateJWT(user)
		require.NoError(t, err)

		service.now = time.Now
		_, err = service.ValidateToken(token)
		assert.ErrorIs(t, err, ErrTokenExpired)
	})

	t.Run("Assinatura com outro segredo", func(t *testing.T) {
		other := newTestService(nil)
		other.secret = []byte("outro-segredo")
		token, err := other.generateJWT(user)
		require.NoError(t, err)

		_, err = service.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Token malformado", func(t *testing.T) {
		_, err := service.ValidateToken("nao.e.jwt")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestService_GetUserProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	service := newTestService(mockUserRepo)

	mockUserRepo.EXPECT().GetByID(gomock.Any(), "u1").Return(&domain.User{ID: "u1"}, nil)
	mockUserRepo.EXPECT().GetByID(gomock.Any(), "u2").Return(nil, nil)

	user, err := service.GetUserProfile(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)

	_, err = service.GetUserProfile(context.Background(), "u2")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
