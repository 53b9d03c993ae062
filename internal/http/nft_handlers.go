package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"creon-backend/internal/common/middleware"
	"creon-backend/internal/service/nft"
)

type NFTHandler struct {
	service *nft.Service
}

func NewNFTHandler(service *nft.Service) *NFTHandler {
	return &NFTHandler{service: service}
}

func (h *NFTHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/users/:id/nfts", h.ListUserNFTs)
	router.POST("/nfts", h.CreateNFT)
}

// @Summary List NFTs of a user
// @Tags nfts
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {array} domain.NFT
// @Failure 400 {object} middleware.ValidationErrorResponse "Invalid user ID"
// @Failure 500 {object} middleware.ErrorResponse "Internal server error"
// @Router /users/{id}/nfts [get]
func (h *NFTHandler) ListUserNFTs(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	nfts, err := h.service.ListByUser(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, nfts)
}

// @Summary Create NFT
// @Tags nfts
// @Accept json
// @Produce json
// @Param nft body createNFTRequest true "NFT"
// @Success 201 {object} domain.NFT
// @Failure 400 {object} middleware.ValidationErrorResponse "Invalid input or unknown user"
// @Failure 500 {object} middleware.ErrorResponse "Internal server error"
// @Router /nfts [post]
func (h *NFTHandler) CreateNFT(c *gin.Context) {
	var req createNFTRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(middleware.BindingError(err))
		return
	}

	n, err := h.service.Create(c.Request.Context(), req.toDomain())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, n)
}
