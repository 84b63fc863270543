package rest

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"kgeyst.com/whiskers/pkg/common"
	"kgeyst.com/whiskers/pkg/whiskers/domain"
)

const (
	EndPointHealth  = "/health"
	EndPointPredict = "/predict"
)

// Predictor is satisfied by api.API.
type Predictor interface {
	PredictFromInput(input string) (string, error)
}

type PredictRequest struct {
	// Image is base64, a data URL or a URL. Local file paths are not accepted.
	Image string `json:"image" binding:"required"`
}

type PredictResponse struct {
	Result string `json:"result"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type Handler struct {
	predictor Predictor
}

func NewHandler(predictor Predictor) *Handler {
	return &Handler{
		predictor: predictor,
	}
}

// NewRouter builds the HTTP surface of Whiskers so that a browser-based shell can call it.
func NewRouter(predictor Predictor, logger common.Logger) *gin.Engine {
	handler := NewHandler(predictor)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLoggingMiddleware(logger))
	router.Use(corsMiddleware())
	router.GET(EndPointHealth, handler.Health)
	router.POST(EndPointPredict, handler.Predict)
	return router
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

func (h *Handler) Predict(c *gin.Context) {
	var request PredictRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: an \"image\" field is required"})
		return
	}
	result, err := h.predictor.PredictFromInput(request.Image)
	if err != nil {
		c.JSON(statusCodeFor(err), ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, PredictResponse{Result: result})
}

// Problems with the inference endpoint are reported as 502, problems with the caller's input as 400.
func statusCodeFor(err error) int {
	var remoteErr *domain.RemoteError
	switch {
	case errors.As(err, &remoteErr),
		errors.Is(err, domain.ErrTransport),
		errors.Is(err, domain.ErrReadBody),
		errors.Is(err, domain.ErrParseResponse):
		return http.StatusBadGateway
	case errors.Is(err, domain.ErrBuildRequest):
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

func requestLoggingMiddleware(logger common.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Log(fmt.Sprintf("%s %s => %d (took %d ms, client %s)",
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			time.Since(start).Milliseconds(),
			c.ClientIP(),
		))
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
