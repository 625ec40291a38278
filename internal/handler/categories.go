package handler

import (
	"net/http"

	"productstore/internal/service"

	"github.com/gin-gonic/gin"
)

// CategoriesHandler exposes the closed category enumeration so UI pickers do
// not hardcode the member names.
type CategoriesHandler struct{ svc service.ProductService }

func NewCategoriesHandler(svc service.ProductService) *CategoriesHandler {
	return &CategoriesHandler{svc: svc}
}

func (h *CategoriesHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Categories())
}
