package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "lsbkit/docs"
	"lsbkit/internal/logging"
)

const (
	RFC3339Millis   = "2006-01-02T15:04:05.000Z07:00"
	RequestIDHeader = "X-Request-ID"

	shutdownTimeout = 5 * time.Second
)

type Options struct {
	Port string
	// AllowOrigins lists the origins allowed by CORS, every origin is allowed when it is empty
	AllowOrigins []string
}

// NewRouter godoc
// @title lsbkit API
// @version 1.0
// @description An API to hide data in the least significant bits of images and to apply classical ciphers
// @BasePath /api/v1
func NewRouter(opts Options) *gin.Engine {
	r := gin.New()
	r.Use(requestIDMiddleware, gin.LoggerWithConfig(gin.LoggerConfig{Formatter: logFormatter}), gin.Recovery(), cors.New(corsConfig(opts.AllowOrigins)))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")
	v1.GET("/health", HealthHandler)
	v1.GET("/cipher/operations", ListCipherOperationsHandler)
	v1.POST("/cipher/:operation", CipherOperationHandler)
	v1.POST("/embed/text", EmbedTextHandler)
	v1.POST("/reveal/text", RevealTextHandler)
	v1.POST("/embed/image", EmbedImageHandler)
	v1.POST("/reveal/image", RevealImageHandler)
	v1.POST("/fb/embed/text", FlatBuffersEmbedTextHandler)

	return r
}

// StartServer serves the API on port until ctx is cancelled, then waits for in flight requests to finish
func StartServer(ctx context.Context, opts Options) error {
	gin.SetMode(gin.ReleaseMode)
	httpSrv := &http.Server{
		Addr:    fmt.Sprintf(":%s", opts.Port),
		Handler: NewRouter(opts),
	}

	logger := logging.BuildLogger()
	serveErr := make(chan error, 1)
	go func() {
		logger.Info("Starting server", "addr", httpSrv.Addr)
		serveErr <- httpSrv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func corsConfig(allowOrigins []string) cors.Config {
	config := cors.DefaultConfig()
	if len(allowOrigins) == 0 {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = allowOrigins
	}
	config.AllowHeaders = append(config.AllowHeaders, RequestIDHeader)
	config.ExposeHeaders = []string{RequestIDHeader}
	return config
}

// requestIDMiddleware reuses the request id sent by the client, or generates one
func requestIDMiddleware(ctx *gin.Context) {
	requestID := ctx.GetHeader(RequestIDHeader)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	ctx.Set(logging.RequestIDKey, requestID)
	ctx.Header(RequestIDHeader, requestID)
	ctx.Next()
}

type requestLogEntry struct {
	Timestamp       string `json:"timestamp"`
	StatusCode      int    `json:"status_code"`
	Latency         string `json:"latency"`
	LatencyRaw      int64  `json:"latency_raw"`
	ResponseSize    string `json:"response_size"`
	ResponseSizeRaw int    `json:"response_size_raw"`
	ClientIP        string `json:"client_ip"`
	Method          string `json:"method"`
	Path            string `json:"path"`
	RequestID       string `json:"request_id,omitempty"`
	Error           string `json:"error,omitempty"`
}

func logFormatter(param gin.LogFormatterParams) string {
	if param.Latency > time.Minute {
		param.Latency = param.Latency.Truncate(time.Second)
	}

	entry := requestLogEntry{
		Timestamp:       param.TimeStamp.Format(RFC3339Millis),
		StatusCode:      param.StatusCode,
		Latency:         param.Latency.String(),
		LatencyRaw:      int64(param.Latency),
		ResponseSize:    humanize.Bytes(uint64(max(param.BodySize, 0))),
		ResponseSizeRaw: param.BodySize,
		ClientIP:        param.ClientIP,
		Method:          param.Method,
		Path:            param.Path,
		Error:           param.ErrorMessage,
	}
	if requestID, ok := param.Keys[logging.RequestIDKey].(string); ok {
		entry.RequestID = requestID
	}

	line, err := json.Marshal(entry)
	if err != nil {
		return fmt.Sprintf("{\"error\": %q}\n", err.Error())
	}
	return string(line) + "\n"
}
