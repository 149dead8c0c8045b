package service

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"
	"unicode"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/myseringan/texnokross-bolt-sub000/internal/config"
	"github.com/myseringan/texnokross-bolt-sub000/internal/logger"
	"github.com/myseringan/texnokross-bolt-sub000/internal/models"
	"github.com/myseringan/texnokross-bolt-sub000/internal/repository"
)

const resetCodeTTL = 10 * time.Minute

// UserClaims is the customer JWT payload.
type UserClaims struct {
	UserID uint   `json:"user_id"`
	Phone  string `json:"phone"`
	jwt.RegisteredClaims
}

// AuthService handles customer registration, login, and password recovery.
// Identity is a normalized Uzbek phone number.
type AuthService struct {
	users  repository.UserRepository
	codes  repository.ResetCodeRepository
	jwtCfg config.JWTConfig
	policy config.PasswordPolicyConfig
}

// NewAuthService creates an auth service.
func NewAuthService(users repository.UserRepository, codes repository.ResetCodeRepository, jwtCfg config.JWTConfig, policy config.PasswordPolicyConfig) *AuthService {
	return &AuthService{users: users, codes: codes, jwtCfg: jwtCfg, policy: policy}
}

// NormalizePhone strips separators and resolves an Uzbek number to its
// +998XXXXXXXXX canonical form. Nine bare digits get the country code
// prefixed; anything that does not end up as +998 plus nine digits fails.
func NormalizePhone(raw string) (string, error) {
	var digits strings.Builder
	for _, r := range strings.TrimSpace(raw) {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	number := digits.String()
	switch {
	case len(number) == 9:
		number = "998" + number
	case len(number) == 12 && strings.HasPrefix(number, "998"):
	default:
		return "", ErrPhoneInvalid
	}
	return "+" + number, nil
}

// ValidatePassword checks the password against the configured policy.
func (s *AuthService) ValidatePassword(password string) error {
	minLength := s.policy.MinLength
	if minLength <= 0 {
		minLength = 6
	}
	if len(password) < minLength {
		return ErrPasswordPolicy
	}
	hasNumber, hasLetter := false, false
	for _, r := range password {
		if unicode.IsDigit(r) {
			hasNumber = true
		}
		if unicode.IsLetter(r) {
			hasLetter = true
		}
	}
	if s.policy.RequireNumber && !hasNumber {
		return ErrPasswordPolicy
	}
	if s.policy.RequireLetter && !hasLetter {
		return ErrPasswordPolicy
	}
	return nil
}

// Register creates a customer account and returns it with a signed token.
func (s *AuthService) Register(phone, name, password string) (*models.User, string, error) {
	normalized, err := NormalizePhone(phone)
	if err != nil {
		return nil, "", err
	}
	if err := s.ValidatePassword(password); err != nil {
		return nil, "", err
	}
	existing, err := s.users.GetByPhone(normalized)
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", ErrPhoneExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}
	user := &models.User{
		Phone:        normalized,
		Name:         strings.TrimSpace(name),
		PasswordHash: string(hash),
	}
	if err := s.users.Create(user); err != nil {
		return nil, "", err
	}
	token, err := s.issueToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Login authenticates a customer. An unknown phone yields ErrNotFound so
// the storefront can offer registration; a wrong password yields
// ErrInvalidCredentials.
func (s *AuthService) Login(phone, password string) (*models.User, string, error) {
	normalized, err := NormalizePhone(phone)
	if err != nil {
		return nil, "", err
	}
	user, err := s.users.GetByPhone(normalized)
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		return nil, "", ErrNotFound
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, "", ErrInvalidCredentials
	}
	token, err := s.issueToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// ForgotPassword issues a short-lived recovery code for the phone.
// Delivery is out of band; the code is returned so debug mode can echo it.
// An unknown phone yields ErrNotFound.
func (s *AuthService) ForgotPassword(phone string) (string, error) {
	normalized, err := NormalizePhone(phone)
	if err != nil {
		return "", err
	}
	user, err := s.users.GetByPhone(normalized)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", ErrNotFound
	}
	if err := s.codes.InvalidateByPhone(normalized); err != nil {
		return "", err
	}
	code, err := generateResetCode()
	if err != nil {
		return "", err
	}
	record := &models.PasswordResetCode{
		Phone:     normalized,
		Code:      code,
		ExpiresAt: time.Now().Add(resetCodeTTL),
	}
	if err := s.codes.Create(record); err != nil {
		return "", err
	}
	logger.Infow("reset_code_issued", "phone", normalized)
	return code, nil
}

// ResetPassword consumes a recovery code and sets a new password.
func (s *AuthService) ResetPassword(phone, code, newPassword string) error {
	normalized, err := NormalizePhone(phone)
	if err != nil {
		return err
	}
	if err := s.ValidatePassword(newPassword); err != nil {
		return err
	}
	record, err := s.codes.GetActive(normalized, code, time.Now())
	if err != nil {
		return err
	}
	if record == nil {
		return ErrResetCodeInvalid
	}
	user, err := s.users.GetByPhone(normalized)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrNotFound
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hash)
	if err := s.users.Update(user); err != nil {
		return err
	}
	return s.codes.MarkUsed(record.ID)
}

// ChangePassword verifies the current password and replaces it.
func (s *AuthService) ChangePassword(userID uint, current, newPassword string) error {
	user, err := s.users.GetByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrNotFound
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(current)) != nil {
		return ErrInvalidCredentials
	}
	if err := s.ValidatePassword(newPassword); err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hash)
	return s.users.Update(user)
}

// ChangePasswordByPhone is ChangePassword keyed by phone for callers that
// are not carrying a token.
func (s *AuthService) ChangePasswordByPhone(phone, current, newPassword string) error {
	normalized, err := NormalizePhone(phone)
	if err != nil {
		return err
	}
	user, err := s.users.GetByPhone(normalized)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrNotFound
	}
	return s.ChangePassword(user.ID, current, newPassword)
}

// GetUser returns a customer by ID.
func (s *AuthService) GetUser(userID uint) (*models.User, error) {
	user, err := s.users.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}

// ParseToken validates a customer JWT and returns its claims.
func (s *AuthService) ParseToken(tokenString string) (*UserClaims, error) {
	claims := &UserClaims{}
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

func (s *AuthService) issueToken(user *models.User) (string, error) {
	expireHours := s.jwtCfg.ExpireHours
	if expireHours <= 0 {
		expireHours = 168
	}
	claims := UserClaims{
		UserID: user.ID,
		Phone:  user.Phone,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(expireHours) * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Subject:   fmt.Sprintf("user:%d", user.ID),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtCfg.SecretKey))
}

func generateResetCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
