package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"creon-backend/internal/common/middleware"
	"creon-backend/internal/domain"
	"creon-backend/internal/service/user"
)

type WalletHandler struct {
	service *user.Service
	limit   gin.HandlerFunc
}

// NewWalletHandler wires the connect endpoint. limit may be nil.
func NewWalletHandler(service *user.Service, limit gin.HandlerFunc) *WalletHandler {
	return &WalletHandler{
		service: service,
		limit:   limit,
	}
}

func (h *WalletHandler) RegisterRoutes(router *gin.RouterGroup) {
	wallet := router.Group("/wallet")
	{
		wallet.POST("/connect", withLimit(h.limit, h.ConnectWallet)...)
	}
}

// @Summary Connect wallet
// @Description Returns the owner of the wallet, creating a placeholder profile the first time the wallet is seen.
// @Tags wallet
// @Accept json
// @Produce json
// @Param wallet body connectWalletRequest true "Wallet"
// @Success 200 {object} domain.User
// @Failure 400 {object} middleware.ValidationErrorResponse "Invalid address or wallet type"
// @Failure 429 {object} middleware.ErrorResponse "Rate limit exceeded"
// @Failure 500 {object} middleware.ErrorResponse "Internal server error"
// @Router /wallet/connect [post]
func (h *WalletHandler) ConnectWallet(c *gin.Context) {
	var req connectWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(middleware.BindingError(err))
		return
	}

	u, _, err := h.service.ConnectWallet(c.Request.Context(), req.WalletAddress, domain.WalletType(req.WalletType))
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, u)
}

// withLimit prepends the optional rate limiter to handler.
func withLimit(mw gin.HandlerFunc, handler gin.HandlerFunc) []gin.HandlerFunc {
	if mw == nil {
		return []gin.HandlerFunc{handler}
	}
	return []gin.HandlerFunc{mw, handler}
}
