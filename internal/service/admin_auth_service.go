package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/myseringan/texnokross-bolt-sub000/internal/config"
	"github.com/myseringan/texnokross-bolt-sub000/internal/models"
	"github.com/myseringan/texnokross-bolt-sub000/internal/repository"
)

// AdminClaims is the panel-operator JWT payload.
type AdminClaims struct {
	AdminID  uint   `json:"admin_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// AdminAuthService authenticates panel operators.
type AdminAuthService struct {
	admins repository.AdminRepository
	jwtCfg config.JWTConfig
}

// NewAdminAuthService creates an admin auth service.
func NewAdminAuthService(admins repository.AdminRepository, jwtCfg config.JWTConfig) *AdminAuthService {
	return &AdminAuthService{admins: admins, jwtCfg: jwtCfg}
}

// Login verifies the credentials and returns a signed token. Unknown
// username and wrong password are indistinguishable to the caller.
func (s *AdminAuthService) Login(username, password string) (*models.Admin, string, error) {
	admin, err := s.admins.GetByUsername(username)
	if err != nil {
		return nil, "", err
	}
	if admin == nil {
		return nil, "", ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)) != nil {
		return nil, "", ErrInvalidCredentials
	}
	token, err := s.issueToken(admin)
	if err != nil {
		return nil, "", err
	}
	return admin, token, nil
}

// ParseToken validates an operator JWT and returns its claims.
func (s *AdminAuthService) ParseToken(tokenString string) (*AdminClaims, error) {
	claims := &AdminClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.jwtCfg.SecretKey), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidCredentials
	}
	return claims, nil
}

func (s *AdminAuthService) issueToken(admin *models.Admin) (string, error) {
	expireHours := s.jwtCfg.ExpireHours
	if expireHours <= 0 {
		expireHours = 24
	}
	claims := AdminClaims{
		AdminID:  admin.ID,
		Username: admin.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(expireHours) * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Subject:   fmt.Sprintf("admin:%d", admin.ID),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtCfg.SecretKey))
}
