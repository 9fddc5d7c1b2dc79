package server

import (
	"bytes"
	"encoding/json"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/stretchr/testify/require"

	"lsbkit/api"
	"lsbkit/api/lsbkit/EmbedText"
	"lsbkit/internal/imageio"
	"lsbkit/internal/logging"
	"lsbkit/pkg/image"
	"lsbkit/pkg/stegano"
	"lsbkit/test"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func encodedCover(t *testing.T, rows, cols int) []byte {
	t.Helper()
	return encodedPNG(t, test.GenerateCover(rows, cols, true))
}

func encodedPNG(t *testing.T, img image.ARGBImage) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, imageio.Encode(&buf, img, imageio.PNG, png.BestSpeed))
	return buf.Bytes()
}

func doJSON(t *testing.T, router http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestHealthAndRequestID(t *testing.T) {
	router := NewRouter(Options{})

	w := doJSON(t, router, http.MethodGet, "/api/v1/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NotEmpty(t, w.Header().Get(RequestIDHeader))
	health := decode[api.HealthResponse](t, w)
	require.Equal(t, "ok", health.Status)
	require.GreaterOrEqual(t, health.CipherOperations, 10)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	req.Header.Set(RequestIDHeader, "client-id")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, "client-id", w.Header().Get(RequestIDHeader))
}

func TestCORS(t *testing.T) {
	router := NewRouter(Options{AllowOrigins: []string{"http://localhost:3000"}})

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/embed/text", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCipherEndpoints(t *testing.T) {
	router := NewRouter(Options{})

	w := doJSON(t, router, http.MethodGet, "/api/v1/cipher/operations", nil)
	require.Equal(t, http.StatusOK, w.Code)
	ops := decode[api.CipherOperationsResponse](t, w)
	require.Equal(t, "caesar_decrypt", ops.Operations[0].Name)

	w = doJSON(t, router, http.MethodPost, "/api/v1/cipher/caesar_encrypt", api.CipherRequest{Input: []byte{72, 105}, Key: []byte{3}})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.Equal(t, []byte{75, 108}, decode[api.CipherResponse](t, w).Output)

	w = doJSON(t, router, http.MethodPost, "/api/v1/cipher/rot13", api.CipherRequest{Input: []byte("x")})
	require.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/v1/cipher/otp_encrypt", api.CipherRequest{Input: []byte("abc"), Key: []byte("a")})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "cipher_error", decode[api.Error](t, w).Code)
}

func TestEmbedRevealText(t *testing.T) {
	router := NewRouter(Options{})
	cipher := &api.Cipher{Algorithm: "cbc", Key: []byte{1, 2, 3}}

	w := doJSON(t, router, http.MethodPost, "/api/v1/embed/text", api.EmbedTextRequest{
		Cover:   encodedCover(t, 20, 20),
		Message: []byte("over the wall"),
		Cipher:  cipher,
		Framed:  true,
		Format:  "bmp",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	embedded := decode[api.EmbedTextResponse](t, w)
	require.Equal(t, 400, embedded.Stats.CapacityBits)
	require.Equal(t, 64+13*8, embedded.Stats.PayloadBits)

	w = doJSON(t, router, http.MethodPost, "/api/v1/reveal/text", api.RevealTextRequest{Image: embedded.Image, Cipher: cipher, Framed: true})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.Equal(t, []byte("over the wall"), decode[api.RevealTextResponse](t, w).Message)
}

func TestEmbedTextErrors(t *testing.T) {
	router := NewRouter(Options{})

	tests := []struct {
		name     string
		body     api.EmbedTextRequest
		expected int
	}{
		{"InvalidCover", api.EmbedTextRequest{Cover: []byte("not an image"), Message: []byte("x")}, http.StatusBadRequest},
		{"UnknownCipher", api.EmbedTextRequest{Cover: encodedCover(t, 4, 4), Cipher: &api.Cipher{Algorithm: "enigma"}}, http.StatusBadRequest},
		{"FrameTooLarge", api.EmbedTextRequest{Cover: encodedCover(t, 4, 4), Message: []byte("x"), Framed: true}, http.StatusBadRequest},
		{"UnknownFormat", api.EmbedTextRequest{Cover: encodedCover(t, 4, 4), Format: "gif"}, http.StatusBadRequest},
		{"TranslucentBMP", api.EmbedTextRequest{Cover: encodedPNG(t, image.ARGBImage{{image.ARGB(100, 1, 2, 3)}}), Message: []byte("x"), Format: "bmp"}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, router, http.MethodPost, "/api/v1/embed/text", tt.body)
			require.Equal(t, tt.expected, w.Code, w.Body.String())
			require.NotEmpty(t, decode[api.Error](t, w).Error)
		})
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/embed/text", bytes.NewReader([]byte("{")))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, errRequestBodyDecode, decode[api.Error](t, w))
}

func TestEmbedRevealImage(t *testing.T) {
	router := NewRouter(Options{})

	payload := image.ARGBImage{
		{image.ARGB(255, 255, 255, 255), image.ARGB(255, 0, 0, 0), image.ARGB(255, 255, 255, 255)},
	}
	var payloadBuf bytes.Buffer
	require.NoError(t, imageio.Encode(&payloadBuf, payload, imageio.PNG, png.DefaultCompression))

	w := doJSON(t, router, http.MethodPost, "/api/v1/embed/image", api.EmbedImageRequest{Cover: encodedCover(t, 5, 5), Payload: payloadBuf.Bytes()})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	embedded := decode[api.EmbedImageResponse](t, w)
	require.Equal(t, 3, embedded.Stats.PayloadBits)

	w = doJSON(t, router, http.MethodPost, "/api/v1/reveal/image", api.RevealImageRequest{Image: embedded.Image})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	revealed, format, err := imageio.Decode(bytes.NewReader(decode[api.RevealImageResponse](t, w).Image))
	require.NoError(t, err)
	require.Equal(t, "png", format)
	require.Equal(t, payload[0], revealed[0][:3])

	w = doJSON(t, router, http.MethodPost, "/api/v1/reveal/image", api.RevealImageRequest{Image: encodedCover(t, 2, 3)})
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/v1/embed/image", api.EmbedImageRequest{Cover: encodedCover(t, 2, 2), Payload: payloadBuf.Bytes()})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func buildFlatBuffersRequest(cover, message []byte, algorithm string, key []byte) []byte {
	builder := flatbuffers.NewBuilder(len(cover) + len(message) + 64)
	coverOffset := builder.CreateByteVector(cover)
	messageOffset := builder.CreateByteVector(message)
	cipherOffset := builder.CreateString(algorithm)
	keyOffset := builder.CreateByteVector(key)

	EmbedText.EmbedTextRequestStart(builder)
	EmbedText.EmbedTextRequestAddCover(builder, coverOffset)
	EmbedText.EmbedTextRequestAddMessage(builder, messageOffset)
	EmbedText.EmbedTextRequestAddFramed(builder, true)
	EmbedText.EmbedTextRequestAddCipher(builder, cipherOffset)
	EmbedText.EmbedTextRequestAddKey(builder, keyOffset)
	EmbedText.FinishEmbedTextRequestBuffer(builder, EmbedText.EmbedTextRequestEnd(builder))
	return builder.FinishedBytes()
}

func TestFlatBuffersEmbedText(t *testing.T) {
	router := NewRouter(Options{})

	body := buildFlatBuffersRequest(encodedCover(t, 16, 16), []byte("binary"), "xor", []byte{0x21})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/fb/embed/text", bytes.NewReader(body))
	req.Header.Set("Content-Type", octetStream)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.Equal(t, octetStream, w.Header().Get("Content-Type"))

	response := EmbedText.GetRootAsEmbedTextResponse(w.Body.Bytes(), 0)
	require.EqualValues(t, 256, response.CapacityBits())
	require.EqualValues(t, 64+6*8, response.PayloadBits())

	stego, _, err := imageio.Decode(bytes.NewReader(response.ImageBytes()))
	require.NoError(t, err)
	framed, err := stegano.RevealFramed(stego)
	require.NoError(t, err)
	expected := make([]byte, len("binary"))
	for i, b := range []byte("binary") {
		expected[i] = b ^ 0x21
	}
	require.Equal(t, expected, framed)
}

func TestFlatBuffersMalformed(t *testing.T) {
	router := NewRouter(Options{})

	for _, body := range [][]byte{{}, {1, 2}, {0xff, 0xff, 0xff, 0x7f, 0, 0}} {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/fb/embed/text", bytes.NewReader(body))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusBadRequest, w.Code)
	}
}

func TestLogFormatter(t *testing.T) {
	line := logFormatter(gin.LogFormatterParams{
		TimeStamp:    time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		StatusCode:   http.StatusOK,
		Latency:      2 * time.Minute,
		BodySize:     2048,
		Method:       http.MethodPost,
		Path:         "/api/v1/embed/text",
		ErrorMessage: `quoted "error"`,
		Keys:         map[string]any{logging.RequestIDKey: "abc"},
	})

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(line), &entry))
	require.Equal(t, "2.0 kB", entry["response_size"])
	require.Equal(t, "2m0s", entry["latency"])
	require.Equal(t, "abc", entry["request_id"])
	require.Equal(t, `quoted "error"`, entry["error"])
}

func TestSwaggerDoc(t *testing.T) {
	router := NewRouter(Options{})

	w := doJSON(t, router, http.MethodGet, "/swagger/doc.json", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	require.Equal(t, "/api/v1", doc["basePath"])
	require.Contains(t, doc["paths"], "/embed/text")
}
