package authenticating

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/vfg2006/meta-ads-manager-api/infrastructure/repository"
	"github.com/vfg2006/meta-ads-manager-api/internal/config"
	"github.com/vfg2006/meta-ads-manager-api/internal/domain"
	"github.com/vfg2006/meta-ads-manager-api/pkg/apiErrors"
	"github.com/vfg2006/meta-ads-manager-api/pkg/utils"
)

const defaultTokenTTL = 7 * 24 * time.Hour

type Authenticator interface {
	Register(ctx context.Context, req domain.RegisterRequest) (*domain.AuthResponse, error)
	Login(ctx context.Context, req domain.LoginRequest) (*domain.AuthResponse, error)
	GetUserProfile(ctx context.Context, userID string) (*domain.User, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
}

type Service struct {
	userRepo repository.UserRepository
	secret   []byte
	tokenTTL time.Duration
	now      func() time.Time
}

func NewService(userRepo repository.UserRepository, cfg config.Auth) Authenticator {
	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}

	return &Service{
		userRepo: userRepo,
		secret:   []byte(cfg.Secret),
		tokenTTL: ttl,
		now:      time.Now,
	}
}

func (s *Service) Register(ctx context.Context, req domain.RegisterRequest) (*domain.AuthResponse, error) {
	email := handleEmail(req.Email)

	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, newDatabaseError(err, "Erro ao consultar usuário no banco de dados")
	}
	if existing != nil {
		return nil, NewAuthError(ErrUserAlreadyExists, apiErrors.ErrConflict, "Email já cadastrado")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrInternalServer, "Erro ao gerar hash da senha")
	}

	user := &domain.User{
		ID:           utils.GenerateID(),
		Email:        email,
		PasswordHash: string(hashedPassword),
		Name:         strings.TrimSpace(req.Name),
		Role:         domain.UserRoleUser,
		Active:       true,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// corrida entre dois cadastros com o mesmo email
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, NewAuthError(ErrUserAlreadyExists, apiErrors.ErrConflict, "Email já cadastrado")
		}
		return nil, newDatabaseError(err, "Erro ao criar usuário")
	}

	logrus.WithFields(logrus.Fields{
		"user_id": user.ID,
		"email":   user.Email,
	}).Info("auth: usuário cadastrado")

	return s.authResponse(user)
}

func (s *Service) Login(ctx context.Context, req domain.LoginRequest) (*domain.AuthResponse, error) {
	email := handleEmail(req.Email)

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, newDatabaseError(err, "Erro ao consultar usuário no banco de dados")
	}

	// usuário inexistente e senha errada respondem igual
	if user == nil {
		return nil, NewAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "Email ou senha incorretos")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, NewAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "Email ou senha incorretos")
	}

	if !user.Active {
		return nil, NewAuthError(ErrUserDisabled, apiErrors.ErrUserDisabled, "Conta desativada")
	}

	return s.authResponse(user)
}

func (s *Service) GetUserProfile(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		logrus.WithError(err).WithField("user_id", userID).Error("auth: erro ao buscar perfil")
		return nil, newDatabaseError(err, "Erro ao consultar usuário no banco de dados")
	}
	if user == nil {
		return nil, NewAuthError(ErrUserNotFound, apiErrors.ErrNotFound, "Usuário não encontrado")
	}

	return user, nil
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	claims := &domain.Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de assinatura inesperado: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if !token.Valid || claims.UserID == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

func (s *Service) authResponse(user *domain.User) (*domain.AuthResponse, error) {
	token, err := s.generateJWT(user)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrInternalServer, "Erro ao gerar token de autenticação")
	}

	return &domain.AuthResponse{
		Token: token,
		User:  user,
	}, nil
}

func (s *Service) generateJWT(user *domain.User) (string, error) {
	now := s.now()

	claims := domain.Claims{
		UserID:    user.ID,
		UserEmail: user.Email,
		UserName:  user.Name,
		UserRole:  user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func handleEmail(s string) string {
	email := strings.ToLower(s)
	email = strings.TrimSpace(email)
	email = strings.ReplaceAll(email, " ", "")
	return email
}
