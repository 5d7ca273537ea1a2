package healthdata

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/medqueue/hospital-api/internal/handler"
	"github.com/medqueue/hospital-api/internal/middleware"
	"github.com/medqueue/hospital-api/internal/model"
	"github.com/medqueue/hospital-api/internal/service/health"
)

type Handler struct {
	service *health.Service
}

func NewHandler(service *health.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) SaveVitals(c *gin.Context) {
	var req model.SaveVitalsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	rec, err := h.service.SaveVitals(c.Request.Context(), middleware.CurrentUsername(c), &req)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(rec))
}

func (h *Handler) LatestVitals(c *gin.Context) {
	rec, err := h.service.LatestVitals(c.Request.Context(), middleware.CurrentUsername(c))
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(rec))
}

func (h *Handler) SaveHistory(c *gin.Context) {
	var req model.SaveHistoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	rec, err := h.service.SaveHistory(c.Request.Context(), middleware.CurrentUsername(c), &req)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(rec))
}

func (h *Handler) ListHistory(c *gin.Context) {
	recs, err := h.service.History(c.Request.Context(), middleware.CurrentUsername(c))
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(recs))
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	healthGroup := r.Group("/health")
	{
		healthGroup.POST("/vitals", h.SaveVitals)
		healthGroup.GET("/vitals/latest", h.LatestVitals)
		healthGroup.POST("/history", h.SaveHistory)
		healthGroup.GET("/history", h.ListHistory)
	}
}
