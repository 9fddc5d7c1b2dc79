package server

import (
	"bytes"
	"fmt"
	"image/png"
	"net/http"

	"github.com/gin-gonic/gin"

	"lsbkit/api"
	"lsbkit/internal/imageio"
	"lsbkit/internal/logging"
	"lsbkit/internal/workflow"
	"lsbkit/pkg/config"
	"lsbkit/pkg/model"
)

func toWorkflowCipher(c *api.Cipher) *workflow.Cipher {
	if c == nil || c.Algorithm == "" {
		return nil
	}
	return &workflow.Cipher{Algorithm: c.Algorithm, Key: c.Key}
}

func parseFormat(format string) (imageio.Format, error) {
	switch imageio.Format(format) {
	case "", imageio.PNG:
		return imageio.PNG, nil
	case imageio.BMP:
		return imageio.BMP, nil
	default:
		return "", fmt.Errorf("%w: %q", imageio.ErrUnsupportedFormat, format)
	}
}

// EmbedTextHandler godoc
//
// @Summary Embed a message in an image
// @Description Encrypts the message with the optional cipher, then hides it in the least significant bits of the cover. Unframed messages longer than the cover capacity are truncated
// @Tags text
// @Accept json
// @Produce json
// @Param requestBody body api.EmbedTextRequest true "Cover image and message, base64 encoded"
// @Success 200 {object} api.EmbedTextResponse
// @Failure 400 {object} api.Error
// @Failure 500 {object} api.Error
// @Router /embed/text [post]
func EmbedTextHandler(ctx *gin.Context) {
	var requestBody api.EmbedTextRequest

	logger := logging.BuildLoggerFromCtx(ctx)
	logger.Debug("Processing text embed request")

	if err := ctx.ShouldBindJSON(&requestBody); err != nil {
		logger.WithError(err).Error("Error decoding request body")
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errRequestBodyDecode)
		return
	}

	format, err := parseFormat(requestBody.Format)
	if err != nil {
		abortWithError(ctx, logger, "invalid_format", err)
		return
	}

	embedder, err := workflow.NewEmbedder(model.InputFile{
		Content: bytes.NewReader(requestBody.Cover),
		Size:    int64(len(requestBody.Cover)),
	}, config.EmbedConfig{
		PngCompressionLevel: png.BestCompression, // to reduce bandwidth costs since lower compression results in huge images
		Framed:              requestBody.Framed,
	}, toWorkflowCipher(requestBody.Cipher))
	if err != nil {
		abortWithError(ctx, logger, "invalid_request", err)
		return
	}

	if err = embedder.EmbedText(ctx.Request.Context(), requestBody.Message); err != nil {
		abortWithError(ctx, logger, "embed_error", err)
		return
	}

	encodedImageBuffer := bytes.NewBuffer(make([]byte, 0, len(requestBody.Cover))) // pre allocate with size of original, since it should be similar
	if err = embedder.WriteEncoded(encodedImageBuffer, format); err != nil {
		abortWithError(ctx, logger, "encode_error", err)
		return
	}

	logger.With("stats", toHumanizedEmbedStats(embedder.Stats())).Info("Text embedding was successful")
	ctx.JSON(http.StatusOK, api.EmbedTextResponse{Image: encodedImageBuffer.Bytes(), Stats: embedder.Stats()})
}

// RevealTextHandler godoc
//
// @Summary Reveal a message hidden in an image
// @Description Extracts the message hidden by the embed endpoint and decrypts it with the optional cipher. Framing and cipher must match the ones used to embed
// @Tags text
// @Accept json
// @Produce json
// @Param requestBody body api.RevealTextRequest true "Image holding the message, base64 encoded"
// @Success 200 {object} api.RevealTextResponse
// @Failure 400 {object} api.Error
// @Failure 500 {object} api.Error
// @Router /reveal/text [post]
func RevealTextHandler(ctx *gin.Context) {
	var requestBody api.RevealTextRequest

	logger := logging.BuildLoggerFromCtx(ctx)
	logger.Debug("Processing text reveal request")

	if err := ctx.ShouldBindJSON(&requestBody); err != nil {
		logger.WithError(err).Error("Error decoding request body")
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errRequestBodyDecode)
		return
	}

	revealer, err := workflow.NewRevealer(model.InputFile{
		Content: bytes.NewReader(requestBody.Image),
		Size:    int64(len(requestBody.Image)),
	}, toWorkflowCipher(requestBody.Cipher), requestBody.Framed)
	if err != nil {
		abortWithError(ctx, logger, "invalid_request", err)
		return
	}

	message, err := revealer.RevealText(ctx.Request.Context())
	if err != nil {
		abortWithError(ctx, logger, "reveal_error", err)
		return
	}

	logger.With("stats", toHumanizedRevealStats(revealer.Stats())).Info("Text reveal was successful")
	ctx.JSON(http.StatusOK, api.RevealTextResponse{Message: message, Stats: revealer.Stats()})
}
