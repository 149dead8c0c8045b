// Package response defines the unified JSON envelope every endpoint
// answers with: a status code mirror, a localized message, and the payload.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/myseringan/texnokross-bolt-sub000/internal/i18n"
)

// Response is the envelope for single-object answers.
type Response struct {
	StatusCode int         `json:"status_code"`
	Msg        string      `json:"msg"`
	Data       interface{} `json:"data,omitempty"`
}

// PageData wraps a paginated list payload.
type PageData struct {
	List     interface{} `json:"list"`
	Total    int64       `json:"total"`
	Page     int         `json:"page"`
	PageSize int         `json:"page_size"`
}

// Success answers 200 with the payload.
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		StatusCode: http.StatusOK,
		Msg:        i18n.T(i18n.ResolveLocale(c), "ok"),
		Data:       data,
	})
}

// SuccessPage answers 200 with a paginated payload.
func SuccessPage(c *gin.Context, list interface{}, total int64, page, pageSize int) {
	Success(c, PageData{List: list, Total: total, Page: page, PageSize: pageSize})
}

// Error answers with a localized message for the given message key.
func Error(c *gin.Context, status int, msgKey string) {
	c.JSON(status, Response{
		StatusCode: status,
		Msg:        i18n.T(i18n.ResolveLocale(c), msgKey),
	})
}

// ErrorWithData answers an error that still carries a payload, for writes
// that partially succeeded.
func ErrorWithData(c *gin.Context, status int, msgKey string, data interface{}) {
	c.JSON(status, Response{
		StatusCode: status,
		Msg:        i18n.T(i18n.ResolveLocale(c), msgKey),
		Data:       data,
	})
}

// BadRequest answers 400 with the generic bad-request message.
func BadRequest(c *gin.Context) {
	Error(c, http.StatusBadRequest, "bad_request")
}

// Unauthorized answers 401.
func Unauthorized(c *gin.Context) {
	Error(c, http.StatusUnauthorized, "unauthorized")
}

// NotFound answers 404.
func NotFound(c *gin.Context) {
	Error(c, http.StatusNotFound, "not_found")
}

// Internal answers 500.
func Internal(c *gin.Context) {
	Error(c, http.StatusInternalServerError, "internal_error")
}
