package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mitchstreats/treats-backend/internal/catalog"
	apperrors "github.com/mitchstreats/treats-backend/internal/errors"
)

type CatalogController struct {
	catalog *catalog.Catalog
}

func NewCatalogController(cat *catalog.Catalog) *CatalogController {
	return &CatalogController{
		catalog: cat,
	}
}

// ListProducts returns the product catalog in display order
// GET /api/products
func (ctrl *CatalogController) ListProducts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"products": ctrl.catalog.Products(),
		"count":    len(ctrl.catalog.Products()),
	})
}

// GetProduct returns a single product
// GET /api/products/:id
func (ctrl *CatalogController) GetProduct(c *gin.Context) {
	product, err := ctrl.catalog.FindByID(c.Param("id"))
	if err != nil {
		apperrors.NotFound(c, apperrors.ResourceNotFound, "Product not found")
		return
	}
	c.JSON(http.StatusOK, product)
}
