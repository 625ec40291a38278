package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"productstore/internal/apierror"
	"productstore/internal/dto"
	"productstore/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type ProductsHandler struct{ svc service.ProductService }

func NewProductsHandler(svc service.ProductService) *ProductsHandler {
	return &ProductsHandler{svc: svc}
}

// Create handles POST /products: 201 with the stored representation and a
// Location header pointing at the read route.
func (h *ProductsHandler) Create(c *gin.Context) {
	log.Info().Msg("request to create a product")
	if !requireJSON(c) {
		return
	}
	var req dto.ProductRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.Header("Location", fmt.Sprintf("/products/%d", resp.ID))
	c.JSON(http.StatusCreated, resp)
}

// List handles GET /products with the optional name/category/availability
// filters. An empty result set is a 404, never an empty 200 array.
func (h *ProductsHandler) List(c *gin.Context) {
	log.Info().Msg("request to list products")
	var filter dto.ProductFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProductsHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	log.Info().Uint("id", id).Msg("request to retrieve a product")
	resp, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Update handles PUT /products/:id. The content-type check runs first, then
// existence (404), then body validation (400) — the reference ordering.
func (h *ProductsHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	log.Info().Uint("id", id).Msg("request to update a product")
	if !requireJSON(c) {
		return
	}
	var req dto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid JSON: "+err.Error()))
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProductsHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	log.Info().Uint("id", id).Msg("request to delete a product")
	message, err := h.svc.Delete(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: message})
}

// pathID parses the :id segment. A non-integer id addresses no resource, so
// the response is 404 rather than 400 (the reference router only matched
// integer ids).
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Product not found"))
		return 0, false
	}
	return uint(id), true
}

// respondError maps service errors onto the HTTP taxonomy: validation → 400,
// not found → 404, anything else → 500 via the error-handler middleware.
func (h *ProductsHandler) respondError(c *gin.Context, err error) {
	var verr *service.ValidationError
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, apierror.New("Product not found"))
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, apierror.New(verr.Reason))
	default:
		_ = c.Error(err)
	}
}
