package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"inventory_manager/internal/model"
	"inventory_manager/internal/service"

	"github.com/gin-gonic/gin"
)

// ProductHandler handles product CRUD requests
type ProductHandler struct {
	service service.ProductService
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(s service.ProductService) *ProductHandler {
	return &ProductHandler{service: s}
}

// ListProducts returns every product, or a filtered set when ?q= is present.
func (h *ProductHandler) ListProducts(c *gin.Context) {
	products, err := h.service.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		log.Printf("Error listing products: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to retrieve products"})
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) CreateProduct(c *gin.Context) {
	req, ok := bindProductRequest(c)
	if !ok {
		return
	}

	product, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		respondProductError(c, err, "Failed to create product")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "product": product})
}

func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid product ID"})
		return
	}

	req, ok := bindProductRequest(c)
	if !ok {
		return
	}

	product, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		respondProductError(c, err, "Failed to update product")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "product": product})
}

// DeleteProduct removes a product. Deleting an id that is already gone
// still reports success.
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid product ID"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondProductError(c, err, "Failed to delete product")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// bindProductRequest decodes the JSON body, translating a malformed price
// into the same field-level error shape the service produces.
func bindProductRequest(c *gin.Context) (model.ProductRequest, bool) {
	var req model.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if errors.Is(err, model.ErrInvalidPrice) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error(), "field": "price"})
		} else {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request"})
		}
		return req, false
	}
	return req, true
}

// respondProductError maps service errors onto HTTP responses without
// leaking database detail to the client.
func respondProductError(c *gin.Context, err error, fallback string) {
	var vErr *service.ValidationError
	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": vErr.Message, "field": vErr.Field})
	case errors.Is(err, service.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": service.ErrProductNotFound.Error()})
	default:
		log.Printf("%s: %v", fallback, err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": fallback})
	}
}

// RegisterProductRoutes registers product routes behind the auth middleware
func (h *ProductHandler) RegisterProductRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	products := rg.Group("/products")
	products.Use(authMW)
	{
		products.GET("", h.ListProducts)
		products.POST("", h.CreateProduct)
		products.PUT("/:id", h.UpdateProduct)
		products.POST("/:id", h.UpdateProduct)
		products.DELETE("/:id", h.DeleteProduct)
	}
}
