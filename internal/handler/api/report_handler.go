package api

import (
	"errors"

	"github.com/labstack/echo/v4"

	"ShopPulse/internal/domain/models"
	"ShopPulse/internal/usecase"
	"ShopPulse/pkg/cache"
	xhttp "ShopPulse/pkg/http"
	"ShopPulse/pkg/logger"
)

// ReportHandler serves the derived report views.
type ReportHandler struct {
	reports *usecase.ReportUseCase
	cache   cache.Service
	logger  *logger.Logger
}

func NewReportHandler(reports *usecase.ReportUseCase, cacheSvc cache.Service, log *logger.Logger) *ReportHandler {
	return &ReportHandler{reports: reports, cache: cacheSvc, logger: log}
}

func (h *ReportHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", h.Healthz)

	g := e.Group("/api")
	g.GET("/dashboard", h.Dashboard)
	g.GET("/revenue", h.Revenue)
	g.GET("/top-products", h.TopProducts)
	g.GET("/top-categories", h.TopCategories)
	g.GET("/inventory", h.Inventory)
}

func (h *ReportHandler) Dashboard(c echo.Context) error {
	var req models.DashboardRequest
	if payload := xhttp.ReadAndValidateRequest(c, &req); payload != nil {
		return xhttp.BadRequestResponse(c, payload)
	}

	dash, err := h.reports.Dashboard(c.Request().Context(), req.Period, req.Limit)
	if err != nil {
		return h.respondError(c, err)
	}
	return xhttp.SuccessResponse(c, dash)
}

func (h *ReportHandler) Revenue(c echo.Context) error {
	var req models.RevenueRequest
	if payload := xhttp.ReadAndValidateRequest(c, &req); payload != nil {
		return xhttp.BadRequestResponse(c, payload)
	}

	series, err := h.reports.Revenue(c.Request().Context(), req.Period)
	if err != nil {
		return h.respondError(c, err)
	}
	return xhttp.SuccessResponse(c, series)
}

func (h *ReportHandler) TopProducts(c echo.Context) error {
	var req models.TopProductsRequest
	if payload := xhttp.ReadAndValidateRequest(c, &req); payload != nil {
		return xhttp.BadRequestResponse(c, payload)
	}

	ranked, err := h.reports.TopProducts(c.Request().Context(), req.Period, req.Limit)
	if err != nil {
		return h.respondError(c, err)
	}
	return xhttp.ListResponse(c, ranked, int64(len(ranked)))
}

func (h *ReportHandler) TopCategories(c echo.Context) error {
	var req models.TopCategoriesRequest
	if payload := xhttp.ReadAndValidateRequest(c, &req); payload != nil {
		return xhttp.BadRequestResponse(c, payload)
	}

	ranked, err := h.reports.TopCategories(c.Request().Context(), req.Limit)
	if err != nil {
		return h.respondError(c, err)
	}
	return xhttp.ListResponse(c, ranked, int64(len(ranked)))
}

func (h *ReportHandler) Inventory(c echo.Context) error {
	inv, err := h.reports.Inventory(c.Request().Context())
	if err != nil {
		return h.respondError(c, err)
	}
	return xhttp.SuccessResponse(c, inv)
}

func (h *ReportHandler) Healthz(c echo.Context) error {
	status := map[string]string{"status": "ok"}
	if err := h.reports.Health(c.Request().Context()); err != nil {
		status["status"] = "degraded"
		status["upstream"] = err.Error()
	}
	if _, err := h.cache.Exists(c.Request().Context(), "healthz"); err != nil {
		status["status"] = "degraded"
		status["cache"] = err.Error()
	}
	if stale, passErr := h.reports.Stale(); stale {
		status["serving"] = "stale"
		status["pass_error"] = passErr
	}
	return xhttp.SuccessResponse(c, status)
}

func (h *ReportHandler) respondError(c echo.Context, err error) error {
	if errors.Is(err, usecase.ErrNoSnapshot) {
		return xhttp.AppErrorResponse(c, xhttp.UpstreamError("report data is not available yet"))
	}
	h.logger.Error("report request failed",
		logger.String("path", c.Path()),
		logger.Error(err))
	return xhttp.InternalServerErrorResponse(c)
}
