package directory

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/medqueue/hospital-api/internal/handler"
	"github.com/medqueue/hospital-api/internal/service/directory"
)

type Handler struct {
	service *directory.Service
}

func NewHandler(service *directory.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) ListHospitals(c *gin.Context) {
	c.JSON(http.StatusOK, handler.NewSuccessResponse(h.service.Hospitals()))
}

func (h *Handler) GetFees(c *gin.Context) {
	fees, err := h.service.Fees(c.Param("hospital"))
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(fees))
}

func (h *Handler) ListShops(c *gin.Context) {
	c.JSON(http.StatusOK, handler.NewSuccessResponse(h.service.Shops()))
}

func (h *Handler) ListSlots(c *gin.Context) {
	c.JSON(http.StatusOK, handler.NewSuccessResponse(h.service.Slots()))
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	dir := r.Group("/directory")
	{
		dir.GET("/hospitals", h.ListHospitals)
		dir.GET("/hospitals/:hospital/fees", h.GetFees)
		dir.GET("/shops", h.ListShops)
		dir.GET("/slots", h.ListSlots)
	}
}
