package migration

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/vfg2006/meta-ads-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/meta-ads-manager-api/internal/domain"
	"github.com/vfg2006/meta-ads-manager-api/pkg/vault"
)

func TestSeedAdmin(t *testing.T) {
	tests := []struct {
		name        string
		seed        AdminSeed
		setupMock   func(repo *mocks.MockUserRepository)
		wantCreated bool
		wantErr     error
		errContains string
	}{
		{
			name: "cria administrador com email normalizado",
			seed: AdminSeed{Email: " Admin@Empresa.com ", Password: "senha-segura"},
			setupMock: func(repo *mocks.MockUserRepository) {
				repo.EXPECT().GetByEmail(gomock.Any(), "admin@empresa.com").Return(nil, nil)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, user *domain.User) error {
					assert.Equal(t, "admin@empresa.com", user.Email)
					assert.Equal(t, domain.UserRoleAdmin, user.Role)
					assert.Equal(t, "Administrador", user.Name)
					assert.True(t, user.Active)
					assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("senha-segura")))
					return nil
				})
			},
			wantCreated: true,
		},
		{
			name: "não altera usuário existente",
			seed: AdminSeed{Email: "admin@empresa.com", Password: "outra-senha"},
			setupMock: func(repo *mocks.MockUserRepository) {
				repo.EXPECT().GetByEmail(gomock.Any(), "admin@empresa.com").
					Return(&domain.User{ID: "u-1", Email: "admin@empresa.com"}, nil)
			},
		},
		{
			name: "senha curta",
			seed: AdminSeed{Email: "admin@empresa.com", Password: "123"},
			setupMock: func(repo *mocks.MockUserRepository) {
				repo.EXPECT().GetByEmail(gomock.Any(), "admin@empresa.com").Return(nil, nil)
			},
			wantErr: ErrWeakAdminPassword,
		},
		{
			name: "erro ao consultar banco",
			seed: AdminSeed{Email: "admin@empresa.com", Password: "senha-segura"},
			setupMock: func(repo *mocks.MockUserRepository) {
				repo.EXPECT().GetByEmail(gomock.Any(), "admin@empresa.com").Return(nil, errors.New("conexão recusada"))
			},
			errContains: "conexão recusada",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mocks.NewMockUserRepository(ctrl)
			tt.setupMock(repo)

			user, created, err := SeedAdmin(context.Background(), repo, tt.seed)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
				return
			case tt.errContains != "":
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, user)
			assert.Equal(t, tt.wantCreated, created)
		})
	}
}

func TestSeedPlatformApp(t *testing.T) {
	cipher, err := vault.New("chave-de-teste-para-o-seed")
	require.NoError(t, err)

	encrypt := func(t *testing.T, plain string) string {
		out, err := cipher.Encrypt(plain)
		require.NoError(t, err)
		return out
	}

	seed := PlatformAppSeed{OwnerID: "admin-1", AppID: "1234567890", AppSecret: "segredo-do-app"}

	tests := []struct {
		name        string
		seed        PlatformAppSeed
		setupMock   func(t *testing.T, repo *mocks.MockMetaAppRepository)
		wantID      string
		wantCreated bool
		wantErr     error
		errContains string
	}{
		{
			name: "cria app da plataforma com secret criptografado",
			seed: seed,
			setupMock: func(t *testing.T, repo *mocks.MockMetaAppRepository) {
				repo.EXPECT().GetByAppID(gomock.Any(), "admin-1", "1234567890").Return(nil, nil)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, app *domain.MetaApp) error {
					assert.NotEmpty(t, app.ID)
					assert.Equal(t, "admin-1", app.UserID)
					assert.Equal(t, "1234567890", app.AppID)
					assert.NotEqual(t, "segredo-do-app", app.AppSecret)
					plain, err := cipher.Decrypt(app.AppSecret)
					assert.NoError(t, err)
					assert.Equal(t, "segredo-do-app", plain)
					assert.True(t, app.IsActive)
					assert.Equal(t, domain.VerificationStatusVerified, app.VerificationStatus)
					return nil
				})
			},
			wantCreated: true,
		},
		{
			name: "reaproveita registro existente sem alterar",
			seed: seed,
			setupMock: func(t *testing.T, repo *mocks.MockMetaAppRepository) {
				repo.EXPECT().GetByAppID(gomock.Any(), "admin-1", "1234567890").Return(&domain.MetaApp{
					ID: "app-record", UserID: "admin-1", AppID: "1234567890",
					AppSecret: encrypt(t, "segredo-do-app"), IsActive: true,
				}, nil)
			},
			wantID: "app-record",
		},
		{
			name: "atualiza secret rotacionado",
			seed: seed,
			setupMock: func(t *testing.T, repo *mocks.MockMetaAppRepository) {
				repo.EXPECT().GetByAppID(gomock.Any(), "admin-1", "1234567890").Return(&domain.MetaApp{
					ID: "app-record", UserID: "admin-1", AppID: "1234567890",
					AppSecret: encrypt(t, "segredo-antigo"), IsActive: true,
				}, nil)
				repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, app *domain.MetaApp) error {
					plain, err := cipher.Decrypt(app.AppSecret)
					assert.NoError(t, err)
					assert.Equal(t, "segredo-do-app", plain)
					return nil
				})
			},
			wantID: "app-record",
		},
		{
			name: "app desativado não é reativado",
			seed: seed,
			setupMock: func(t *testing.T, repo *mocks.MockMetaAppRepository) {
				repo.EXPECT().GetByAppID(gomock.Any(), "admin-1", "1234567890").
					Return(&domain.MetaApp{ID: "app-record", IsActive: false}, nil)
			},
			wantErr: ErrPlatformAppInactive,
		},
		{
			name:      "sem secret",
			seed:      PlatformAppSeed{OwnerID: "admin-1", AppID: "1234567890"},
			setupMock: func(t *testing.T, repo *mocks.MockMetaAppRepository) {},
			wantErr:   ErrPlatformAppIncomplete,
		},
		{
			name: "erro ao gravar",
			seed: seed,
			setupMock: func(t *testing.T, repo *mocks.MockMetaAppRepository) {
				repo.EXPECT().GetByAppID(gomock.Any(), "admin-1", "1234567890").Return(nil, nil)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("violação de chave"))
			},
			errContains: "violação de chave",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mocks.NewMockMetaAppRepository(ctrl)
			tt.setupMock(t, repo)

			app, created, err := SeedPlatformApp(context.Background(), repo, cipher, tt.seed)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
				return
			case tt.errContains != "":
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, app)
			assert.Equal(t, tt.wantCreated, created)
			if tt.wantID != "" {
				assert.Equal(t, tt.wantID, app.ID)
			}
		})
	}
}
