package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"product-portal/internal/domain"
	"product-portal/internal/service"
	mdw "product-portal/internal/transport/http/middleware"
	resp "product-portal/internal/transport/http/response"
)

type ProductHandler struct {
	svc *service.CatalogService
}

func NewProductHandler(svc *service.CatalogService) *ProductHandler {
	return &ProductHandler{svc: svc}
}

type variantReq struct {
	Name   string  `json:"name" binding:"required"`
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

type createProductReq struct {
	Name        string       `json:"name" binding:"required"`
	Description string       `json:"description" binding:"omitempty,max=1024"`
	Variants    []variantReq `json:"variants" binding:"required,min=1,dive"`
}

// POST /api/products
func (h *ProductHandler) Create(c *gin.Context) {
	var in createProductReq
	if !bindJSON(c, &in) {
		return
	}
	input := service.CreateProductInput{Name: in.Name, Description: in.Description}
	for _, v := range in.Variants {
		input.Variants = append(input.Variants, service.VariantInput{Name: v.Name, Amount: v.Amount})
	}
	p, err := h.svc.Create(c.Request.Context(), mdw.CurrentUser(c), input)
	if err != nil {
		resp.FromError(c, err)
		return
	}
	resp.OK(c, http.StatusCreated, "Product created successfully", gin.H{"product": p})
}

// GET /api/products （仅 admin，带属主信息）
func (h *ProductHandler) ListAll(c *gin.Context) {
	ps, err := h.svc.ListAll(c.Request.Context())
	if err != nil {
		resp.FromError(c, err)
		return
	}
	resp.OK(c, http.StatusOK, "", gin.H{"products": ps, "count": len(ps)})
}

// GET /api/products/my
func (h *ProductHandler) ListMine(c *gin.Context) {
	ps, err := h.svc.ListByOwner(c.Request.Context(), mdw.CurrentUser(c).ID)
	if err != nil {
		resp.FromError(c, err)
		return
	}
	resp.OK(c, http.StatusOK, "", gin.H{"products": ps, "count": len(ps)})
}

// GET /api/products/:id （属主或 admin）
func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	p, err := h.svc.Get(c.Request.Context(), mdw.CurrentUser(c), id)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		resp.Fail(c, http.StatusNotFound, "Product not found")
	case errors.Is(err, domain.ErrForbidden):
		resp.Fail(c, http.StatusForbidden, "Not authorized to view this product")
	case err != nil:
		resp.FromError(c, err)
	default:
		resp.OK(c, http.StatusOK, "", gin.H{"product": p})
	}
}

// DELETE /api/products/:id （仅 admin；级联删除变体，成功返回 200）
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			resp.Fail(c, http.StatusNotFound, "Product not found")
			return
		}
		resp.FromError(c, err)
		return
	}
	resp.OK(c, http.StatusOK, "Product deleted successfully", nil)
}

func paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.Fail(c, http.StatusBadRequest, "invalid product id")
		return 0, false
	}
	return uint(id), true
}
