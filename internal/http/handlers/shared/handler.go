// Package shared holds the base handler embedded by the public and admin
// handler sets: the dependency container plus the business-error mapping.
package shared

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/myseringan/texnokross-bolt-sub000/internal/constants"
	"github.com/myseringan/texnokross-bolt-sub000/internal/http/response"
	"github.com/myseringan/texnokross-bolt-sub000/internal/logger"
	"github.com/myseringan/texnokross-bolt-sub000/internal/provider"
	"github.com/myseringan/texnokross-bolt-sub000/internal/service"
)

// Handler is the base for all endpoint handlers.
type Handler struct {
	*provider.Container
}

// New creates the base handler.
func New(container *provider.Container) Handler {
	return Handler{Container: container}
}

// businessError maps a service sentinel onto an HTTP status and message key.
type businessError struct {
	status int
	msgKey string
}

var businessErrors = map[error]businessError{
	service.ErrNotFound:             {http.StatusNotFound, "not_found"},
	service.ErrProductNameRequired:  {http.StatusBadRequest, "product_name_required"},
	service.ErrProductPriceInvalid:  {http.StatusBadRequest, "product_price_invalid"},
	service.ErrTooManyImages:        {http.StatusBadRequest, "too_many_images"},
	service.ErrCategoryNameRequired: {http.StatusBadRequest, "category_name_required"},
	service.ErrCategoryNameExists:   {http.StatusConflict, "category_name_exists"},
	service.ErrCategoryInUse:        {http.StatusConflict, "category_in_use"},
	service.ErrBannerInvalid:        {http.StatusBadRequest, "banner_invalid"},
	service.ErrQuantityInvalid:      {http.StatusBadRequest, "quantity_invalid"},
	service.ErrCartEmpty:            {http.StatusBadRequest, "cart_empty"},
	service.ErrOrderStatusInvalid:   {http.StatusBadRequest, "order_status_invalid"},
	service.ErrPhoneInvalid:         {http.StatusBadRequest, "phone_invalid"},
	service.ErrPhoneExists:          {http.StatusConflict, "phone_exists"},
	service.ErrInvalidCredentials:   {http.StatusUnauthorized, "invalid_credentials"},
	service.ErrPasswordPolicy:       {http.StatusBadRequest, "password_policy"},
	service.ErrResetCodeInvalid:     {http.StatusBadRequest, "reset_code_invalid"},
	service.ErrCaptchaInvalid:       {http.StatusBadRequest, "captcha_invalid"},
	service.ErrRemoteSyncFailed:     {http.StatusBadGateway, "remote_sync_failed"},
}

// RespondError answers with the mapped business error, or a logged 500 for
// anything unexpected.
func (h Handler) RespondError(c *gin.Context, err error) {
	for sentinel, mapped := range businessErrors {
		if errors.Is(err, sentinel) {
			response.Error(c, mapped.status, mapped.msgKey)
			return
		}
	}
	logger.Errorw("unhandled_error",
		"path", c.FullPath(),
		"method", c.Request.Method,
		"error", err,
	)
	response.Internal(c)
}

// SessionID returns the cart session token resolved by the session
// middleware.
func (h Handler) SessionID(c *gin.Context) string {
	return c.GetString(constants.SessionIDHeader)
}

// UintParam parses a numeric path parameter, answering 400 itself on
// failure.
func (h Handler) UintParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		response.BadRequest(c)
		return 0, false
	}
	return uint(value), true
}

// Pagination reads page/page_size query params with sane bounds.
func (h Handler) Pagination(c *gin.Context) (page, pageSize int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ = strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return page, pageSize
}
