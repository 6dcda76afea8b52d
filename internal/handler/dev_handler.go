package handler

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Gusmack1/charlesmackaybooks-order-service/internal/cart"
	"github.com/Gusmack1/charlesmackaybooks-order-service/internal/catalog"
)

// DevHandler serves the non-production conveniences: the seeded dev cart
// and the catalog feed validation report.
type DevHandler struct {
	catalog      *catalog.Store
	environment  string
	cartSeedPath string
	logger       *zap.Logger
}

func NewDevHandler(cat *catalog.Store, environment, cartSeedPath string, logger *zap.Logger) *DevHandler {
	return &DevHandler{
		catalog:      cat,
		environment:  environment,
		cartSeedPath: cartSeedPath,
		logger:       logger,
	}
}

// DevCart returns the seeded cart snapshot. 404 in production and when
// the seed file is missing.
func (h *DevHandler) DevCart(c *gin.Context) {
	if h.environment == "production" {
		c.JSON(http.StatusNotFound, gin.H{"message": "not found"})
		return
	}

	storage := cart.NewFileStorage(h.cartSeedPath)
	snap, err := storage.Load()
	if err != nil {
		if os.IsNotExist(err) {
			c.JSON(http.StatusNotFound, gin.H{"message": "no dev cart seed"})
			return
		}
		h.logger.Error("Failed to load dev cart seed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to load dev cart seed"})
		return
	}

	store := cart.NewStore(storage, h.logger)
	c.JSON(http.StatusOK, gin.H{
		"generatedAt": snap.GeneratedAt,
		"items":       store.Items(),
		"total":       store.Total(),
	})
}

// ValidateFeeds reports catalog data-quality problems.
func (h *DevHandler) ValidateFeeds(c *gin.Context) {
	problems := h.catalog.Validate()
	c.JSON(http.StatusOK, gin.H{
		"ok":        len(problems) == 0,
		"problems":  problems,
		"total":     len(h.catalog.List()),
		"timestamp": time.Now().UTC(),
	})
}
