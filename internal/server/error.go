package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"lsbkit/api"
	"lsbkit/internal/imageio"
	"lsbkit/internal/logging"
	"lsbkit/internal/workflow"
	"lsbkit/pkg/crypto"
	"lsbkit/pkg/image"
	"lsbkit/pkg/stegano"
	"lsbkit/pkg/text"
)

var (
	errRequestBodyDecode = api.Error{Code: "invalid_body", Error: "Error reading request body"}
	errUnknownOperation  = api.Error{Code: "unknown_operation", Error: "No cipher operation is registered under that name"}
)

// badRequestErrors are the precondition failures caused by the request content rather than by the server
var badRequestErrors = []error{
	imageio.ErrInvalidImage,
	imageio.ErrUnsupportedFormat,
	imageio.ErrTransparentBMP,
	image.ErrNotRectangular,
	image.ErrGrayRange,
	stegano.ErrEmptyCover,
	stegano.ErrEmptyPayload,
	stegano.ErrCoverTooSmall,
	stegano.ErrNotSquare,
	stegano.ErrFrameBounds,
	crypto.ErrEmptyKey,
	crypto.ErrPadLength,
	crypto.ErrBlockSize,
	crypto.ErrInvalidKey,
	crypto.ErrKeyLength,
	text.ErrBitCount,
	workflow.ErrUnknownCipher,
}

func statusFor(err error) int {
	for _, target := range badRequestErrors {
		if errors.Is(err, target) {
			return http.StatusBadRequest
		}
	}
	return http.StatusInternalServerError
}

// abortWithError logs err and replies with a JSON api.Error. Client errors carry the error message, server errors
// only the code
func abortWithError(ctx *gin.Context, logger *logging.Logger, code string, err error) {
	status := statusFor(err)
	logger.WithError(err).Error("Error processing request", "status", status)

	body := api.Error{Code: code, Error: "An internal error occurred"}
	if status == http.StatusBadRequest {
		body.Error = err.Error()
	}
	ctx.AbortWithStatusJSON(status, body)
}
