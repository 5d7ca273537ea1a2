package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/medqueue/hospital-api/internal/handler"
	"github.com/medqueue/hospital-api/internal/middleware"
	"github.com/medqueue/hospital-api/internal/model"
	"github.com/medqueue/hospital-api/internal/service/captcha"
	"github.com/medqueue/hospital-api/internal/service/user"
)

type Handler struct {
	userSvc    *user.Service
	captchaSvc *captcha.Service
}

func NewHandler(userSvc *user.Service, captchaSvc *captcha.Service) *Handler {
	return &Handler{userSvc: userSvc, captchaSvc: captchaSvc}
}

func (h *Handler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	u, err := h.userSvc.Register(c.Request.Context(), &req)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, handler.NewSuccessResponse(u))
}

func (h *Handler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	tokens, err := h.userSvc.Login(c.Request.Context(), &req)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(tokens))
}

func (h *Handler) GetCaptcha(c *gin.Context) {
	ch, err := h.captchaSvc.Issue(c.Request.Context())
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(ch))
}

func (h *Handler) Me(c *gin.Context) {
	u, err := h.userSvc.Profile(c.Request.Context(), middleware.CurrentUsername(c))
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(u))
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	auth := r.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.GET("/captcha", h.GetCaptcha)
	}
}

func (h *Handler) RegisterProtectedRoutes(r *gin.RouterGroup) {
	users := r.Group("/users")
	{
		users.GET("/me", h.Me)
	}
}
