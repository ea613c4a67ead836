package migration

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/vfg2006/meta-ads-manager-api/infrastructure/repository"
	"github.com/vfg2006/meta-ads-manager-api/internal/domain"
	"github.com/vfg2006/meta-ads-manager-api/pkg/utils"
	"github.com/vfg2006/meta-ads-manager-api/pkg/vault"
)

const minAdminPasswordLength = 8

var (
	ErrWeakAdminPassword     = errors.New("admin password must have at least 8 characters")
	ErrPlatformAppInactive   = errors.New("platform meta app exists but is inactive")
	ErrPlatformAppIncomplete = errors.New("platform meta app requires app id and secret")
)

type AdminSeed struct {
	Email    string
	Password string
	Name     string
}

// SeedAdmin cria o administrador inicial. Se o email já existe nada é alterado.
func SeedAdmin(ctx context.Context, userRepo repository.UserRepository, seed AdminSeed) (*domain.User, bool, error) {
	email := strings.ToLower(strings.TrimSpace(seed.Email))

	existing, err := userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, false, fmt.Errorf("failed to look up admin: %w", err)
	}
	if existing != nil {
		return existing, false, nil
	}

	if len(seed.Password) < minAdminPasswordLength {
		return nil, false, ErrWeakAdminPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(seed.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, false, fmt.Errorf("failed to hash admin password: %w", err)
	}

	name := seed.Name
	if name == "" {
		name = "Administrador"
	}

	admin := &domain.User{
		ID:           utils.GenerateID(),
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
		Role:         domain.UserRoleAdmin,
		Active:       true,
	}

	if err := userRepo.Create(ctx, admin); err != nil {
		return nil, false, fmt.Errorf("failed to create admin: %w", err)
	}

	return admin, true, nil
}

type PlatformAppSeed struct {
	OwnerID   string
	AppID     string
	AppSecret string
	Name      string
}

// SeedPlatformApp garante o registro em meta_apps usado pelo fluxo OAuth (META_APP_RECORD_ID).
// O secret é gravado criptografado e, se mudou no ambiente, é atualizado.
func SeedPlatformApp(
	ctx context.Context,
	appRepo repository.MetaAppRepository,
	cipher vault.Cipher,
	seed PlatformAppSeed,
) (*domain.MetaApp, bool, error) {
	if seed.OwnerID == "" || seed.AppID == "" || seed.AppSecret == "" {
		return nil, false, ErrPlatformAppIncomplete
	}

	existing, err := appRepo.GetByAppID(ctx, seed.OwnerID, seed.AppID)
	if err != nil {
		return nil, false, fmt.Errorf("failed to look up platform app: %w", err)
	}

	if existing != nil {
		if !existing.IsActive {
			return nil, false, ErrPlatformAppInactive
		}

		current, err := cipher.Decrypt(existing.AppSecret)
		if err == nil && current == seed.AppSecret {
			return existing, false, nil
		}

		encrypted, err := cipher.Encrypt(seed.AppSecret)
		if err != nil {
			return nil, false, fmt.Errorf("failed to encrypt app secret: %w", err)
		}
		existing.AppSecret = encrypted

		if err := appRepo.Update(ctx, existing); err != nil {
			return nil, false, fmt.Errorf("failed to update platform app: %w", err)
		}
		return existing, false, nil
	}

	encrypted, err := cipher.Encrypt(seed.AppSecret)
	if err != nil {
		return nil, false, fmt.Errorf("failed to encrypt app secret: %w", err)
	}

	name := seed.Name
	if name == "" {
		name = "Meta Ads Manager"
	}

	now := time.Now()
	app := &domain.MetaApp{
		ID:                 utils.GenerateID(),
		UserID:             seed.OwnerID,
		AppID:              seed.AppID,
		AppSecret:          encrypted,
		AppName:            name,
		IsActive:           true,
		IsVerified:         true,
		VerificationStatus: domain.VerificationStatusVerified,
		LastVerifiedAt:     &now,
	}

	if err := appRepo.Create(ctx, app); err != nil {
		return nil, false, fmt.Errorf("failed to create platform app: %w", err)
	}

	return app, true, nil
}
