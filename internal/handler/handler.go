package handler

import (
	json "github.com/goccy/go-json"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"inheritance-engine/internal/engine"
	"inheritance-engine/internal/model"
)

type Handler struct {
	engine *engine.Engine
	logger *zap.Logger
}

func New(e *engine.Engine, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{engine: e, logger: logger}
}

// Route dispatches on path.
func (h *Handler) Route(ctx *fasthttp.RequestCtx) {
	switch string(ctx.Path()) {
	case "/calculate", "/calculation-requests":
		h.HandleCalculation(ctx)
	case "/health":
		ctx.SetContentType("text/plain; charset=utf-8")
		ctx.SetBodyString("ok")
	default:
		writeError(ctx, fasthttp.StatusNotFound, "Not found")
	}
}

func (h *Handler) HandleCalculation(ctx *fasthttp.RequestCtx) {
	if !ctx.IsPost() {
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req model.CalculationRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.logger.Warn("invalid calculation request", zap.Error(err))
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	resp := h.engine.Process(ctx, &req)

	body, err := json.Marshal(resp)
	if err != nil {
		h.logger.Error("encode calculation response", zap.Error(err))
		writeError(ctx, fasthttp.StatusInternalServerError, "Failed to encode response")
		return
	}
	ctx.SetContentType("application/json")
	ctx.SetBody(body)
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	body, _ := json.Marshal(model.ErrorResponse{
		Status:  status,
		Message: message,
	})
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(body)
}
