package server

import (
	"bytes"
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

// EmbedImageHandler godoc
//
// @Summary Embed an image in another image
// @Description Converts the payload to black and white with the threshold and hides it in the top left corner of the cover, which must be at least as large in both dimensions
// @Tags image
// @Accept json
// @Produce json
// @Param requestBody body api.EmbedImageRequest true "Cover and payload images, base64 encoded"
// @Success 200 {object} api.EmbedImageResponse
// @Failure 400 {object} api.Error
// @Failure 500 {object} api.Error
// @Router /embed/image [post]
func EmbedImageHandler(ctx *gin.Context) {
	var requestBody api.EmbedImageRequest

	logger := logging.BuildLoggerFromCtx(ctx)
	logger.Debug("Processing image embed request")

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

	payload, _, err := imageio.Decode(bytes.NewReader(requestBody.Payload))
	if err != nil {
		abortWithError(ctx, logger, "invalid_image", err)
		return
	}

	embedConfig := config.EmbedConfig{Threshold: config.DefaultThreshold, PngCompressionLevel: png.BestCompression}
	if requestBody.Threshold != nil {
		embedConfig.Threshold = *requestBody.Threshold
	}

	embedder, err := workflow.NewEmbedder(model.InputFile{
		Content: bytes.NewReader(requestBody.Cover),
		Size:    int64(len(requestBody.Cover)),
	}, embedConfig, nil)
	if err != nil {
		abortWithError(ctx, logger, "invalid_image", err)
		return
	}

	if err = embedder.EmbedImage(ctx.Request.Context(), payload); err != nil {
		abortWithError(ctx, logger, "embed_error", err)
		return
	}

	encodedImageBuffer := bytes.NewBuffer(make([]byte, 0, len(requestBody.Cover)))
	if err = embedder.WriteEncoded(encodedImageBuffer, format); err != nil {
		abortWithError(ctx, logger, "encode_error", err)
		return
	}

	logger.With("stats", toHumanizedEmbedStats(embedder.Stats())).Info("Image embedding was successful")
	ctx.JSON(http.StatusOK, api.EmbedImageResponse{Image: encodedImageBuffer.Bytes(), Stats: embedder.Stats()})
}

// RevealImageHandler godoc
//
// @Summary Reveal an image hidden in another image
// @Description Reads the least significant bits of a square image back as a black and white image of the same size
// @Tags image
// @Accept json
// @Produce json
// @Param requestBody body api.RevealImageRequest true "Square image, base64 encoded"
// @Success 200 {object} api.RevealImageResponse
// @Failure 400 {object} api.Error
// @Failure 500 {object} api.Error
// @Router /reveal/image [post]
func RevealImageHandler(ctx *gin.Context) {
	var requestBody api.RevealImageRequest

	logger := logging.BuildLoggerFromCtx(ctx)
	logger.Debug("Processing image reveal request")

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

	revealer, err := workflow.NewRevealer(model.InputFile{
		Content: bytes.NewReader(requestBody.Image),
		Size:    int64(len(requestBody.Image)),
	}, nil, false)
	if err != nil {
		abortWithError(ctx, logger, "invalid_image", err)
		return
	}

	revealed, err := revealer.RevealImage(ctx.Request.Context())
	if err != nil {
		abortWithError(ctx, logger, "reveal_error", err)
		return
	}

	var encodedImageBuffer bytes.Buffer
	if err = imageio.Encode(&encodedImageBuffer, revealed, format, png.BestCompression); err != nil {
		abortWithError(ctx, logger, "encode_error", err)
		return
	}

	logger.With("stats", toHumanizedRevealStats(revealer.Stats())).Info("Image reveal was successful")
	ctx.JSON(http.StatusOK, api.RevealImageResponse{Image: encodedImageBuffer.Bytes(), Stats: revealer.Stats()})
}
