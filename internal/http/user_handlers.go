package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"creon-backend/internal/common/errors"
	"creon-backend/internal/common/middleware"
	"creon-backend/internal/service/user"
)

type UserHandler struct {
	service *user.Service
}

func NewUserHandler(service *user.Service) *UserHandler {
	return &UserHandler{
		service: service,
	}
}

func (h *UserHandler) RegisterRoutes(router *gin.RouterGroup) {
	users := router.Group("/users")
	{
		users.GET("/wallet/:address", h.GetUserByWallet)
		users.GET("/:id", h.GetUser)
		users.POST("", h.CreateUser)
		users.PATCH("/:id", h.UpdateUser)
	}
}

// @Summary Get user by ID
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} domain.User
// @Failure 400 {object} middleware.ValidationErrorResponse "Invalid user ID"
// @Failure 404 {object} middleware.ErrorResponse "User not found"
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	u, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, u)
}

// @Summary Get user by wallet address
// @Tags users
// @Produce json
// @Param address path string true "Wallet address"
// @Success 200 {object} domain.User
// @Failure 404 {object} middleware.ErrorResponse "User not found"
// @Router /users/wallet/{address} [get]
func (h *UserHandler) GetUserByWallet(c *gin.Context) {
	u, err := h.service.GetByWallet(c.Request.Context(), c.Param("address"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, u)
}

// @Summary Create user
// @Description Creates a profile together with zeroed stats. walletType is required when walletAddress is set.
// @Tags users
// @Accept json
// @Produce json
// @Param user body createUserRequest true "User"
// @Success 201 {object} domain.User
// @Failure 400 {object} middleware.ValidationErrorResponse "Invalid input"
// @Failure 409 {object} middleware.ErrorResponse "Username, email or wallet already taken"
// @Failure 500 {object} middleware.ErrorResponse "Internal server error"
// @Router /users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(middleware.BindingError(err))
		return
	}

	u, err := h.service.Create(c.Request.Context(), req.toDomain())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, u)
}

// @Summary Update user
// @Description Applies the fields present in the body. An empty body returns the user unchanged.
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param patch body updateUserRequest true "Fields to change"
// @Success 200 {object} domain.User
// @Failure 400 {object} middleware.ValidationErrorResponse "Invalid input"
// @Failure 404 {object} middleware.ErrorResponse "User not found"
// @Failure 409 {object} middleware.ErrorResponse "Username, email or wallet already taken"
// @Router /users/{id} [patch]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(middleware.BindingError(err))
		return
	}

	u, err := h.service.Update(c.Request.Context(), id, req.toDomain())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, u)
}

// pathID parses a positive integer path parameter. On failure the error is
// attached to c and false is returned.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		_ = c.Error(errors.NewValidationError(name, "must be a positive integer"))
		return 0, false
	}
	return id, true
}
