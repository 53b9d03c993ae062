package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"creon-backend/internal/common/middleware"
	"creon-backend/internal/service/grant"
)

type GrantHandler struct {
	service *grant.Service
}

func NewGrantHandler(service *grant.Service) *GrantHandler {
	return &GrantHandler{service: service}
}

func (h *GrantHandler) RegisterRoutes(router *gin.RouterGroup) {
	grants := router.Group("/grants")
	{
		grants.GET("", h.ListGrants)
		grants.POST("", h.CreateGrant)
		grants.GET("/:id", h.GetGrant)
	}

	router.POST("/grant-applications", h.Apply)
	router.GET("/users/:id/grant-applications", h.ListUserApplications)
}

// @Summary List grants
// @Tags grants
// @Produce json
// @Success 200 {array} domain.Grant
// @Failure 500 {object} middleware.ErrorResponse "Internal server error"
// @Router /grants [get]
func (h *GrantHandler) ListGrants(c *gin.Context) {
	grants, err := h.service.List(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, grants)
}

// @Summary Get grant
// @Tags grants
// @Produce json
// @Param id path int true "Grant ID"
// @Success 200 {object} domain.Grant
// @Failure 400 {object} middleware.ValidationErrorResponse "Invalid grant ID"
// @Failure 404 {object} middleware.ErrorResponse "Grant not found"
// @Router /grants/{id} [get]
func (h *GrantHandler) GetGrant(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	g, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, g)
}

// @Summary Create grant
// @Tags grants
// @Accept json
// @Produce json
// @Param grant body createGrantRequest true "Grant"
// @Success 201 {object} domain.Grant
// @Failure 400 {object} middleware.ValidationErrorResponse "Invalid input"
// @Router /grants [post]
func (h *GrantHandler) CreateGrant(c *gin.Context) {
	var req createGrantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(middleware.BindingError(err))
		return
	}

	g, err := h.service.Create(c.Request.Context(), req.toInput())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, g)
}

// @Summary Apply for a grant
// @Description The application is always stored as pending and the grant's applicationCount grows by one.
// @Tags grants
// @Accept json
// @Produce json
// @Param application body createGrantApplicationRequest true "Application"
// @Success 201 {object} domain.GrantApplication
// @Failure 400 {object} middleware.ValidationErrorResponse "Invalid input, unknown user or grant, closed grant"
// @Failure 500 {object} middleware.ErrorResponse "Internal server error"
// @Router /grant-applications [post]
func (h *GrantHandler) Apply(c *gin.Context) {
	var req createGrantApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(middleware.BindingError(err))
		return
	}

	app, err := h.service.Apply(c.Request.Context(), req.toInput())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, app)
}

// @Summary List grant applications of a user
// @Tags grants
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {array} domain.GrantApplication
// @Failure 500 {object} middleware.ErrorResponse "Internal server error"
// @Router /users/{id}/grant-applications [get]
func (h *GrantHandler) ListUserApplications(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	apps, err := h.service.ListApplications(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, apps)
}
