package service

import "errors"

// Business sentinels. Handlers map these onto localized responses.
var (
	ErrNotFound             = errors.New("record not found")
	ErrProductNameRequired  = errors.New("product name required")
	ErrProductPriceInvalid  = errors.New("product price invalid")
	ErrTooManyImages        = errors.New("too many product images")
	ErrCategoryNameRequired = errors.New("category name required")
	ErrCategoryNameExists   = errors.New("category name already exists")
	ErrCategoryInUse        = errors.New("category still referenced by products")
	ErrBannerInvalid        = errors.New("banner invalid")
	ErrQuantityInvalid      = errors.New("quantity invalid")
	ErrCartEmpty            = errors.New("cart is empty")
	ErrOrderStatusInvalid   = errors.New("order status invalid")
	ErrPhoneInvalid         = errors.New("phone number invalid")
	ErrPhoneExists          = errors.New("phone already registered")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrPasswordPolicy       = errors.New("password does not meet policy")
	ErrResetCodeInvalid     = errors.New("reset code invalid or expired")
	ErrCaptchaInvalid       = errors.New("captcha invalid")
	ErrRemoteSyncFailed     = errors.New("remote store write failed")
)
