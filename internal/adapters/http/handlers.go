package httpadapter

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"svw.info/minesweeper/internal/domain"
	"svw.info/minesweeper/internal/session"
	"svw.info/minesweeper/internal/usecase"
)

type Handler struct {
	UC       *usecase.Service
	Defaults domain.GameConfig
	Seed     *int64 // fixed seed for new games, nil for time based
	Log      logrus.FieldLogger
}

func New(uc *usecase.Service, defaults domain.GameConfig, seed *int64, log logrus.FieldLogger) *Handler {
	return &Handler{UC: uc, Defaults: defaults, Seed: seed, Log: log}
}

// Router builds the gin engine with request IDs and request logging.
func (h *Handler) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestID(), RequestLogger(h.Log))
	h.Register(r)
	return r
}

func (h *Handler) Register(r gin.IRouter) {
	r.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	api := r.Group("/api/games")
	api.POST("", h.handleNew)
	api.GET("", h.handleList)
	api.GET("/:id", h.handleView)
	api.POST("/:id/reveal", h.handleReveal)
	api.POST("/:id/restart", h.handleRestart)
	api.DELETE("/:id", h.handleDelete)
}

type errorResp struct {
	Error string `json:"error"`
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidConfig):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrOutOfBounds):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrGameNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func fail(c *gin.Context, err error) {
	c.AbortWithStatusJSON(statusFor(err), errorResp{Error: err.Error()})
}

func badJSON(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, errorResp{Error: "invalid JSON: " + err.Error()})
}

// bindOptional decodes a JSON body, treating an empty body as no input.
func bindOptional(c *gin.Context, dst any) error {
	if err := c.ShouldBindJSON(dst); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// ---- New / Restart ----

type gameReq struct {
	Rows    *int   `json:"rows,omitempty"`
	Columns *int   `json:"columns,omitempty"`
	Bombs   *int   `json:"bombs,omitempty"`
	Seed    *int64 `json:"seed,omitempty"`
}

func (r gameReq) board() usecase.Board {
	return usecase.Board{Rows: r.Rows, Columns: r.Columns, Bombs: r.Bombs}
}

func (h *Handler) handleNew(c *gin.Context) {
	var req gameReq
	if err := bindOptional(c, &req); err != nil {
		badJSON(c, err)
		return
	}
	seed := req.Seed
	if seed == nil {
		seed = h.Seed
	}
	v, err := h.UC.NewGame(c.Request.Context(), req.board().Apply(h.Defaults), seed)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, v)
}

func (h *Handler) handleRestart(c *gin.Context) {
	var req gameReq
	if err := bindOptional(c, &req); err != nil {
		badJSON(c, err)
		return
	}
	v, err := h.UC.Restart(c.Request.Context(), c.Param("id"), req.board(), req.Seed)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

// ---- Reveal / View ----

type revealReq struct {
	Row *int `json:"row" binding:"required"`
	Col *int `json:"col" binding:"required"`
}

func (h *Handler) handleReveal(c *gin.Context) {
	var req revealReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badJSON(c, err)
		return
	}
	v, err := h.UC.Reveal(c.Request.Context(), c.Param("id"), domain.Location{Row: *req.Row, Col: *req.Col})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

func (h *Handler) handleView(c *gin.Context) {
	v, err := h.UC.View(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

// ---- List / Delete ----

type listResp struct {
	Games []session.Meta `json:"games"`
}

func (h *Handler) handleList(c *gin.Context) {
	games, err := h.UC.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, listResp{Games: games})
}

func (h *Handler) handleDelete(c *gin.Context) {
	if err := h.UC.Delete(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
