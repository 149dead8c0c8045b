package service

import (
	"errors"
	"testing"

	"github.com/myseringan/texnokross-bolt-sub000/internal/config"
	"github.com/myseringan/texnokross-bolt-sub000/internal/repository"
)

func newAuthFixture(t *testing.T, policy config.PasswordPolicyConfig) *AuthService {
	t.Helper()
	db := newTestDB(t)
	jwtCfg := config.JWTConfig{SecretKey: "test-secret", ExpireHours: 1}
	return NewAuthService(repository.NewUserRepository(db), repository.NewResetCodeRepository(db), jwtCfg, policy)
}

func TestNormalizePhone(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"+998 90 123 45 67", "+998901234567", true},
		{"998901234567", "+998901234567", true},
		{"901234567", "+998901234567", true},
		{"90-123-45-67", "+998901234567", true},
		{"12345", "", false},
		{"+7 915 123 45 67", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, err := NormalizePhone(tc.in)
		if tc.ok && (err != nil || got != tc.want) {
			t.Errorf("NormalizePhone(%q) = %q, %v; want %q", tc.in, got, err, tc.want)
		}
		if !tc.ok && !errors.Is(err, ErrPhoneInvalid) {
			t.Errorf("NormalizePhone(%q): expected ErrPhoneInvalid, got %v", tc.in, err)
		}
	}
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newAuthFixture(t, config.PasswordPolicyConfig{MinLength: 6})

	user, token, err := svc.Register("90 123 45 67", "Aziz", "parol123")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.Phone != "+998901234567" {
		t.Fatalf("phone not normalized: %q", user.Phone)
	}
	if token == "" {
		t.Fatalf("register must return a token")
	}

	// Any formatting of the same number logs into the same account.
	loggedIn, token, err := svc.Login("+998 (90) 123-45-67", "parol123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if loggedIn.ID != user.ID || token == "" {
		t.Fatalf("login returned wrong account: %+v", loggedIn)
	}

	claims, err := svc.ParseToken(token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims.UserID != user.ID || claims.Phone != user.Phone {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestRegisterDuplicatePhone(t *testing.T) {
	svc := newAuthFixture(t, config.PasswordPolicyConfig{MinLength: 6})

	if _, _, err := svc.Register("901234567", "Aziz", "parol123"); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, _, err := svc.Register("+998901234567", "Boshqa", "parol456"); !errors.Is(err, ErrPhoneExists) {
		t.Fatalf("expected ErrPhoneExists, got %v", err)
	}
}

func TestLoginErrors(t *testing.T) {
	svc := newAuthFixture(t, config.PasswordPolicyConfig{MinLength: 6})

	if _, _, err := svc.Login("901234567", "whatever"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown phone: expected ErrNotFound, got %v", err)
	}

	if _, _, err := svc.Register("901234567", "Aziz", "parol123"); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, _, err := svc.Login("901234567", "noto'g'ri"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", err)
	}
}

func TestPasswordPolicy(t *testing.T) {
	svc := newAuthFixture(t, config.PasswordPolicyConfig{
		MinLength:     8,
		RequireNumber: true,
		RequireLetter: true,
	})

	cases := []struct {
		password string
		ok       bool
	}{
		{"abc12345", true},
		{"short1a", false},
		{"onlyletters", false},
		{"12345678", false},
	}
	for _, tc := range cases {
		err := svc.ValidatePassword(tc.password)
		if tc.ok && err != nil {
			t.Errorf("ValidatePassword(%q): unexpected %v", tc.password, err)
		}
		if !tc.ok && !errors.Is(err, ErrPasswordPolicy) {
			t.Errorf("ValidatePassword(%q): expected ErrPasswordPolicy, got %v", tc.password, err)
		}
	}
}

func TestPasswordResetFlow(t *testing.T) {
	svc := newAuthFixture(t, config.PasswordPolicyConfig{MinLength: 6})

	if _, _, err := svc.Register("901234567", "Aziz", "eskiparol"); err != nil {
		t.Fatalf("register: %v", err)
	}

	code, err := svc.ForgotPassword("901234567")
	if err != nil {
		t.Fatalf("forgot: %v", err)
	}
	if len(code) != 6 {
		t.Fatalf("expected 6-digit code, got %q", code)
	}

	wrong := "000000"
	if code == wrong {
		wrong = "111111"
	}
	if err := svc.ResetPassword("901234567", wrong, "yangiparol"); !errors.Is(err, ErrResetCodeInvalid) {
		t.Fatalf("wrong code: expected ErrResetCodeInvalid, got %v", err)
	}
	if err := svc.ResetPassword("901234567", code, "yangiparol"); err != nil {
		t.Fatalf("reset: %v", err)
	}

	// Code is single-use.
	if err := svc.ResetPassword("901234567", code, "boshqaparol"); !errors.Is(err, ErrResetCodeInvalid) {
		t.Fatalf("reused code: expected ErrResetCodeInvalid, got %v", err)
	}

	if _, _, err := svc.Login("901234567", "eskiparol"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("old password must stop working, got %v", err)
	}
	if _, _, err := svc.Login("901234567", "yangiparol"); err != nil {
		t.Fatalf("new password login: %v", err)
	}
}

func TestForgotPasswordUnknownPhone(t *testing.T) {
	svc := newAuthFixture(t, config.PasswordPolicyConfig{MinLength: 6})

	if _, err := svc.ForgotPassword("909999999"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestChangePassword(t *testing.T) {
	svc := newAuthFixture(t, config.PasswordPolicyConfig{MinLength: 6})

	user, _, err := svc.Register("901234567", "Aziz", "birinchi1")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if err := svc.ChangePassword(user.ID, "xato", "ikkinchi2"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong current: expected ErrInvalidCredentials, got %v", err)
	}
	if err := svc.ChangePassword(user.ID, "birinchi1", "ikkinchi2"); err != nil {
		t.Fatalf("change: %v", err)
	}
	if _, _, err := svc.Login("901234567", "ikkinchi2"); err != nil {
		t.Fatalf("login with new password: %v", err)
	}
}
