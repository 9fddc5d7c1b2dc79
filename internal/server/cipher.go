package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lsbkit/api"
	"lsbkit/internal/logging"
	"lsbkit/pkg/crypto"
)

// HealthHandler godoc
//
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} api.HealthResponse
// @Router /health [get]
func HealthHandler(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, api.HealthResponse{Status: "ok", CipherOperations: len(crypto.ListOperations())})
}

// ListCipherOperationsHandler godoc
//
// @Summary List cipher operations
// @Description Lists the cipher operations that can be used with the cipher endpoint, sorted by name
// @Tags cipher
// @Produce json
// @Success 200 {object} api.CipherOperationsResponse
// @Router /cipher/operations [get]
func ListCipherOperationsHandler(ctx *gin.Context) {
	ops := crypto.ListOperations()
	response := api.CipherOperationsResponse{Operations: make([]api.CipherOperation, 0, len(ops))}
	for _, op := range ops {
		response.Operations = append(response.Operations, api.CipherOperation{
			Name:        op.Name(),
			Type:        string(op.Type()),
			Description: op.Description(),
		})
	}
	ctx.JSON(http.StatusOK, response)
}

// CipherOperationHandler godoc
//
// @Summary Apply a cipher operation
// @Description Encrypts or decrypts the input with the named operation. Caesar and xor need a one byte key, otp a key as long as the input
// @Tags cipher
// @Accept json
// @Produce json
// @Param operation path string true "Operation name, such as caesar_encrypt"
// @Param requestBody body api.CipherRequest true "Input and key, base64 encoded"
// @Success 200 {object} api.CipherResponse
// @Failure 400 {object} api.Error
// @Failure 404 {object} api.Error
// @Failure 500 {object} api.Error
// @Router /cipher/{operation} [post]
func CipherOperationHandler(ctx *gin.Context) {
	var requestBody api.CipherRequest

	logger := logging.BuildLoggerFromCtx(ctx)
	operationName := ctx.Param("operation")
	logger.Debug("Processing cipher request", "operation", operationName)

	op, found := crypto.GetOperation(operationName)
	if !found {
		ctx.AbortWithStatusJSON(http.StatusNotFound, errUnknownOperation)
		return
	}

	if err := ctx.ShouldBindJSON(&requestBody); err != nil {
		logger.WithError(err).Error("Error decoding request body")
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errRequestBodyDecode)
		return
	}

	output, err := op.Execute(ctx.Request.Context(), requestBody.Input, map[string]interface{}{crypto.KeyParam: requestBody.Key})
	if err != nil {
		abortWithError(ctx, logger, "cipher_error", err)
		return
	}

	ctx.JSON(http.StatusOK, api.CipherResponse{Output: output})
}
