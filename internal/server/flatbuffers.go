package server

import (
	"bytes"
	"errors"
	"fmt"
	"image/png"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	flatbuffers "github.com/google/flatbuffers/go"

	"lsbkit/api"
	"lsbkit/api/lsbkit/EmbedText"
	"lsbkit/internal/imageio"
	"lsbkit/internal/logging"
	"lsbkit/internal/workflow"
	"lsbkit/pkg/config"
	"lsbkit/pkg/model"
)

const octetStream = "application/octet-stream"

var errMalformedFlatBuffer = errors.New("request body is not a valid EmbedTextRequest flatbuffer")

type embedTextRequest struct {
	cover   []byte
	message []byte
	framed  bool
	cipher  *workflow.Cipher
}

// readEmbedTextRequest copies the fields out of the flatbuffer. Accessors panic on truncated buffers, which is
// reported as an error
func readEmbedTextRequest(body []byte) (req embedTextRequest, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", errMalformedFlatBuffer, r)
		}
	}()
	if len(body) < flatbuffers.SizeUOffsetT {
		return req, errMalformedFlatBuffer
	}

	fbRequest := EmbedText.GetRootAsEmbedTextRequest(body, 0)
	req.cover = fbRequest.CoverBytes()
	req.message = fbRequest.MessageBytes()
	req.framed = fbRequest.Framed()
	if algorithm := string(fbRequest.Cipher()); algorithm != "" {
		req.cipher = &workflow.Cipher{Algorithm: algorithm, Key: fbRequest.KeyBytes()}
	}
	return req, nil
}

// FlatBuffersEmbedTextHandler godoc
//
// @Summary Embed a message in an image, flatbuffers edition
// @Description Same as the JSON embed endpoint, but the body is an EmbedTextRequest flatbuffer and the response an EmbedTextResponse flatbuffer holding a png. Errors are returned as JSON
// @Tags text
// @Accept octet-stream
// @Produce octet-stream
// @Success 200 {string} binary
// @Failure 400 {object} api.Error
// @Failure 500 {object} api.Error
// @Router /fb/embed/text [post]
func FlatBuffersEmbedTextHandler(ctx *gin.Context) {
	logger := logging.BuildLoggerFromCtx(ctx)
	logger.Debug("Processing flatbuffers text embed request")

	requestBody, err := io.ReadAll(ctx.Request.Body)
	if err != nil {
		logger.WithError(err).Error("Error reading request body")
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errRequestBodyDecode)
		return
	}

	req, err := readEmbedTextRequest(requestBody)
	if err != nil {
		logger.WithError(err).Error("Error decoding request body")
		ctx.AbortWithStatusJSON(http.StatusBadRequest, api.Error{Code: "invalid_body", Error: err.Error()})
		return
	}

	embedder, err := workflow.NewEmbedder(model.InputFile{
		Content: bytes.NewReader(req.cover),
		Size:    int64(len(req.cover)),
	}, config.EmbedConfig{
		PngCompressionLevel: png.BestCompression,
		Framed:              req.framed,
	}, req.cipher)
	if err != nil {
		abortWithError(ctx, logger, "invalid_request", err)
		return
	}

	if err = embedder.EmbedText(ctx.Request.Context(), req.message); err != nil {
		abortWithError(ctx, logger, "embed_error", err)
		return
	}

	encodedImageBuffer := bytes.NewBuffer(make([]byte, 0, len(req.cover)))
	if err = embedder.WriteEncoded(encodedImageBuffer, imageio.PNG); err != nil {
		abortWithError(ctx, logger, "encode_error", err)
		return
	}

	stats := embedder.Stats()
	fbResponseBuilder := flatbuffers.NewBuilder(encodedImageBuffer.Len() + 64)

	// Vectors must be created before the table is started
	imageOffset := fbResponseBuilder.CreateByteVector(encodedImageBuffer.Bytes())
	EmbedText.EmbedTextResponseStart(fbResponseBuilder)
	EmbedText.EmbedTextResponseAddImage(fbResponseBuilder, imageOffset)
	EmbedText.EmbedTextResponseAddCapacityBits(fbResponseBuilder, int64(stats.CapacityBits))
	EmbedText.EmbedTextResponseAddPayloadBits(fbResponseBuilder, int64(stats.PayloadBits))
	EmbedText.EmbedTextResponseAddPsnr(fbResponseBuilder, stats.PSNR)
	response := EmbedText.EmbedTextResponseEnd(fbResponseBuilder)
	EmbedText.FinishEmbedTextResponseBuffer(fbResponseBuilder, response)

	logger.With("stats", toHumanizedEmbedStats(stats)).Info("Text embedding was successful")
	ctx.Data(http.StatusOK, octetStream, fbResponseBuilder.FinishedBytes())
}
