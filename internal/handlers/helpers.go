package handlers

import (
	"context"
	"errors"
	"io/fs"
	"net"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	"investadmin/internal/client"
	apperrors "investadmin/internal/errors"
	"investadmin/internal/logger"
	"investadmin/internal/services"
)

// MessageResponse is the body of successful and client-error replies.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorDetail describes the failure behind a report error. Stack carries the
// full error chain and is only set outside production.
type ErrorDetail struct {
	Name    string `json:"name"`
	Message string `json:"message"`
	Stack   string `json:"stack,omitempty"`
}

// ReportErrorResponse is the body of a failed report generation.
type ReportErrorResponse struct {
	Message string      `json:"message"`
	Error   ErrorDetail `json:"error"`
}

// Error kinds reported in ErrorDetail.Name.
const (
	KindUpstream = "UpstreamError"
	KindNetwork  = "NetworkError"
	KindTimeout  = "TimeoutError"
	KindStorage  = "StorageError"
	KindDecode   = "DecodeError"
	KindGeneric  = "Error"
)

// respondWithError writes an AppError. Client errors carry {"message"};
// server errors are logged and answered with the status code only.
func respondWithError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		appErr = apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if appErr.StatusCode >= http.StatusInternalServerError {
		logger.Get().Errorw("request failed",
			"code", appErr.Code,
			"error", err.Error(),
			"path", c.Request.URL.Path,
			"method", c.Request.Method,
		)
		c.AbortWithStatus(appErr.StatusCode)
		return
	}

	if appErr.Internal != nil {
		logger.Get().Infow("client error",
			"code", appErr.Code,
			"internal", appErr.Internal.Error(),
			"path", c.Request.URL.Path,
		)
	}
	c.AbortWithStatusJSON(appErr.StatusCode, MessageResponse{Message: appErr.Message})
}

// respondWithReportError maps a report failure to its phase message and a
// stable error description.
func respondWithReportError(c *gin.Context, err error, withStack bool) {
	sentinel := apperrors.ErrReportGenerate
	cause := err

	var reportErr *services.ReportError
	if errors.As(err, &reportErr) {
		cause = reportErr.Err
		if reportErr.Phase == services.PhaseSave {
			sentinel = apperrors.ErrReportSave
		}
	}

	logger.Get().Errorw("report generation failed",
		"code", sentinel.Code,
		"error", err.Error(),
		"path", c.Request.URL.Path,
	)

	detail := ErrorDetail{Name: errorKind(cause), Message: publicMessage(cause)}
	if withStack {
		detail.Message = cause.Error()
		detail.Stack = err.Error()
	}
	c.AbortWithStatusJSON(sentinel.StatusCode, ReportErrorResponse{Message: sentinel.Message, Error: detail})
}

// errorKind classifies err without exposing library-specific types.
// Filesystem errors are matched first: their syscall.Errno also satisfies
// net.Error.
func errorKind(err error) string {
	var (
		statusErr *client.StatusError
		decodeErr *client.DecodeError
		pathErr   *fs.PathError
		linkErr   *os.LinkError
		urlErr    *url.Error
		opErr     *net.OpError
	)
	switch {
	case errors.As(err, &statusErr):
		return KindUpstream
	case errors.As(err, &decodeErr):
		return KindDecode
	case errors.As(err, &pathErr), errors.As(err, &linkErr):
		return KindStorage
	case errors.Is(err, context.DeadlineExceeded):
		return KindTimeout
	case errors.As(err, &urlErr):
		if urlErr.Timeout() {
			return KindTimeout
		}
		return KindNetwork
	case errors.As(err, &opErr):
		if opErr.Timeout() {
			return KindTimeout
		}
		return KindNetwork
	default:
		return KindGeneric
	}
}

// publicMessage is err's message with upstream URLs and socket addresses
// removed from transport failures.
func publicMessage(err error) string {
	msg := err.Error()
	var urlErr *url.Error
	if !errors.As(err, &urlErr) || urlErr.Err == nil {
		return msg
	}

	inner := urlErr.Err.Error()
	var opErr *net.OpError
	if errors.As(urlErr.Err, &opErr) && opErr.Err != nil {
		inner = opErr.Op + ": " + opErr.Err.Error()
	}
	return strings.Replace(msg, urlErr.Error(), urlErr.Op+": "+inner, 1)
}
