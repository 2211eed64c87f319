package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"event_passport_backend/internal/config"
	"event_passport_backend/internal/model"
	"event_passport_backend/internal/util"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	Cfg          *config.Config
	Sessions     SessionStore
	passwordHash []byte
}

// LoginResult 登录成功返回的令牌
// swagger:model LoginResult
type LoginResult struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	Username  string    `json:"username"`
}

// NewAuthService 未配置 password_hash 时，启动时对明文 password 做一次 bcrypt
func NewAuthService(cfg *config.Config, sessions SessionStore) (*AuthService, error) {
	hash := []byte(cfg.Admin.PasswordHash)
	if len(hash) == 0 {
		if cfg.Admin.Password == "" {
			return nil, errors.New("admin.password_hash or admin.password must be set")
		}
		generated, err := bcrypt.GenerateFromPassword([]byte(cfg.Admin.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		hash = generated
	}

	return &AuthService{
		Cfg:          cfg,
		Sessions:     sessions,
		passwordHash: hash,
	}, nil
}

func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	if subtle.ConstantTimeCompare([]byte(username), []byte(s.Cfg.Admin.Username)) != 1 {
		return nil, util.ErrInvalidCredential
	}
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		return nil, util.ErrInvalidCredential
	}

	sessionID := model.GenerateUUID()
	token, expiresAt, err := util.GenerateJWT(username, sessionID, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
	if err != nil {
		return nil, err
	}

	if err := s.Sessions.Create(ctx, sessionID, username, s.Cfg.JWT.ExpireTime); err != nil {
		return nil, err
	}

	return &LoginResult{
		Token:     token,
		ExpiresAt: expiresAt,
		Username:  username,
	}, nil
}

// Authenticate 签名有效且会话仍存在才算通过
func (s *AuthService) Authenticate(ctx context.Context, token string) (*util.Claims, error) {
	claims, err := util.ParseJWT(token, s.Cfg.JWT.Secret)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, util.ErrSessionExpired
		}
		return nil, util.ErrInvalidCredential
	}
	if claims.Role != util.RoleAdmin || claims.SessionID == "" {
		return nil, util.ErrInvalidCredential
	}

	ok, err := s.Sessions.Exists(ctx, claims.SessionID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, util.ErrSessionExpired
	}
	return claims, nil
}

func (s *AuthService) Logout(ctx context.Context, claims *util.Claims) error {
	return s.Sessions.Delete(ctx, claims.SessionID)
}
