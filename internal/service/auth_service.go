package service

import (
	"context"
	"fmt"
	"time"

	"myshop-ml/internal/config"
	"myshop-ml/internal/db"
	"myshop-ml/internal/models"
	"myshop-ml/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	cfg       *config.Config
	jwtSecret []byte
}

func NewAuthService(cfg *config.Config) *AuthService {
	return &AuthService{cfg: cfg, jwtSecret: []byte(cfg.JWTSecret)}
}

// Register crea una cuenta nueva con role "user".
func (s *AuthService) Register(ctx context.Context, username, email, password string) (*models.AccountDoc, error) {
	if username == "" || email == "" || password == "" {
		return nil, fmt.Errorf("username, email y password son obligatorios")
	}

	conn, err := db.Open(ctx, s.cfg)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	users := repository.NewUserRepository(conn.DB())

	existing, err := users.FindAccountByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return users.InsertAccount(ctx, username, email, string(hash))
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, *models.AccountDoc, error) {
	conn, err := db.Open(ctx, s.cfg)
	if err != nil {
		return "", nil, err
	}
	defer conn.Close()

	u, err := repository.NewUserRepository(conn.DB()).FindAccountByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}
	if u == nil {
		return "", nil, fmt.Errorf("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return "", nil, fmt.Errorf("invalid credentials")
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  u.ID,
		"role": u.Role,
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
	})
	sToken, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", nil, err
	}
	return sToken, u, nil
}
