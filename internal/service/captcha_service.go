package service

import (
	"time"

	"github.com/mojocn/base64Captcha"

	"github.com/myseringan/texnokross-bolt-sub000/internal/config"
)

// CaptchaService issues and verifies image captchas for the admin login
// form. When disabled, verification always passes.
type CaptchaService struct {
	enabled bool
	captcha *base64Captcha.Captcha
}

// NewCaptchaService creates a captcha service from config.
func NewCaptchaService(cfg config.CaptchaConfig) *CaptchaService {
	if !cfg.Enabled {
		return &CaptchaService{enabled: false}
	}
	driver := base64Captcha.NewDriverDigit(cfg.Height, cfg.Width, cfg.Length, 0.7, cfg.NoiseCount)
	store := base64Captcha.NewMemoryStore(cfg.MaxStore, time.Duration(cfg.ExpireSeconds)*time.Second)
	return &CaptchaService{
		enabled: true,
		captcha: base64Captcha.NewCaptcha(driver, store),
	}
}

// Enabled reports whether captcha checks are active.
func (s *CaptchaService) Enabled() bool {
	return s.enabled
}

// Generate returns a captcha ID and its base64-encoded PNG.
func (s *CaptchaService) Generate() (id, image string, err error) {
	if !s.enabled {
		return "", "", nil
	}
	id, image, _, err = s.captcha.Generate()
	return id, image, err
}

// Verify checks an answer, consuming the captcha either way.
func (s *CaptchaService) Verify(id, answer string) error {
	if !s.enabled {
		return nil
	}
	if id == "" || answer == "" {
		return ErrCaptchaInvalid
	}
	if !s.captcha.Verify(id, answer, true) {
		return ErrCaptchaInvalid
	}
	return nil
}
