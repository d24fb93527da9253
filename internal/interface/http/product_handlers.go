package http

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"example.com/producthub/internal/domain/paging"
	domproduct "example.com/producthub/internal/domain/product"
)

var errIDMismatch = errors.New("id in body does not match id in path")

type productRequest struct {
	Name        string   `json:"name" validate:"required,max=100"`
	Description string   `json:"description" validate:"required,max=500"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
	Stock       int64    `json:"stock" validate:"gte=0"`
	IsActive    *bool    `json:"is_active"`
}

type updateProductRequest struct {
	ID string `json:"id"`
	productRequest
}

func (a *API) handleListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := a.productSvc.GetAll(r.Context())
	if err != nil {
		handleDomainError(w, err)
		return
	}

	resp := make([]map[string]any, 0, len(products))
	for _, p := range products {
		resp = append(resp, mapProduct(p))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (a *API) handleListProductsPaged(w http.ResponseWriter, r *http.Request) {
	params, err := decodeQueryParams(r.URL.Query())
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	res, err := a.productSvc.GetPaged(r.Context(), params)
	if err != nil {
		handleDomainError(w, err)
		return
	}

	items := make([]map[string]any, 0, len(res.Items))
	for _, p := range res.Items {
		items = append(items, mapProduct(p))
	}
	writeJSON(w, http.StatusOK, paging.PagedResult[map[string]any]{
		PageNumber:  res.PageNumber,
		PageSize:    res.PageSize,
		TotalCount:  res.TotalCount,
		TotalPages:  res.TotalPages,
		HasPrevious: res.HasPrevious,
		HasNext:     res.HasNext,
		Items:       items,
	})
}

func (a *API) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	p, err := a.productSvc.GetByID(r.Context(), id)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapProduct(p))
}

func (a *API) handleCreateProduct(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	// New products default to active unless the caller says otherwise.
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	p, err := a.productSvc.Create(r.Context(), &domproduct.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
		Stock:       req.Stock,
		IsActive:    isActive,
	})
	if err != nil {
		handleDomainError(w, err)
		return
	}

	w.Header().Set("Location", "/api/products/"+p.ID.String())
	writeJSON(w, http.StatusCreated, mapProduct(p))
}

func (a *API) handleUpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	var req updateProductRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}
	if req.ID != "" {
		bodyID, err := uuid.Parse(req.ID)
		if err != nil || bodyID != id {
			respondError(w, http.StatusBadRequest, errIDMismatch)
			return
		}
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	p, err := a.productSvc.Update(r.Context(), &domproduct.Product{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
		Stock:       req.Stock,
		IsActive:    isActive,
	})
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapProduct(p))
}

func (a *API) handleDeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	if err := a.productSvc.Delete(r.Context(), id); err != nil {
		handleDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
