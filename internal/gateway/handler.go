package gateway

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/abhisek/dreamteacher/internal/logging"
)

// Handler exposes a Completer over HTTP.
type Handler struct {
	completer Completer
	log       *logging.Logger
}

// NewHandler creates a Handler.
func NewHandler(completer Completer, log *logging.Logger) *Handler {
	if log == nil {
		log = logging.Nop()
	}
	return &Handler{completer: completer, log: log}
}

// Chat handles POST /api/chat.
func (h *Handler) Chat(c *gin.Context) {
	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ChatReply{Error: "invalid request body"})
		return
	}
	req = req.Normalize()
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, ChatReply{Error: err.Error()})
		return
	}

	text, err := h.completer.Complete(c.Request.Context(), req)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, ChatReply{Response: text})
	case errors.Is(err, ErrInvalidRequest):
		c.JSON(http.StatusBadRequest, ChatReply{Error: err.Error()})
	default:
		h.log.Error("chat completion failed", "kind", req.Kind, "error", err)
		c.JSON(http.StatusInternalServerError, ChatReply{
			Error:    "completion unavailable",
			Response: FallbackReply,
		})
	}
}

// Health handles GET /healthz.
func (h *Handler) Health(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

// RouterOptions configures NewRouter.
type RouterOptions struct {
	// AllowOrigins lists CORS origins. Empty allows all.
	AllowOrigins []string
	// Debug keeps gin's debug output.
	Debug bool
}

// NewRouter wires the gateway routes onto a gin engine.
func NewRouter(h *Handler, opts RouterOptions) *gin.Engine {
	if !opts.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(h.log))

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}
	if len(opts.AllowOrigins) == 0 {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = opts.AllowOrigins
	}
	r.Use(cors.New(corsCfg))

	r.GET("/healthz", h.Health)
	r.POST(ChatPath, h.Chat)
	return r
}

func requestLogger(log *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info("http request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds(),
		)
	}
}
