package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	domproduct "example.com/producthub/internal/domain/product"
	productuc "example.com/producthub/internal/usecase/product"
)

type API struct {
	productSvc *productuc.Service
	validator  *validator.Validate
	logger     zerolog.Logger
	cors       CORSOptions
}

type Dependencies struct {
	ProductService *productuc.Service
	Logger         zerolog.Logger
	CORS           CORSOptions
}

func NewAPI(deps Dependencies) *API {
	return &API{
		productSvc: deps.ProductService,
		validator:  validator.New(),
		logger:     deps.Logger,
		cors:       deps.CORS,
	}
}

func (a *API) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(requestLogger(a.logger))
	r.Use(chimw.Recoverer)
	r.Use(CORS(a.cors))
	r.Use(chimw.AllowContentType("application/json", "text/plain"))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/openapi.json", a.handleOpenAPI)

		r.Route("/products", func(pr chi.Router) {
			pr.Get("/", a.handleListProducts)
			pr.Get("/paged", a.handleListProductsPaged)
			pr.Post("/", a.handleCreateProduct)
			pr.Get("/{id}", a.handleGetProduct)
			pr.Put("/{id}", a.handleUpdateProduct)
			pr.Delete("/{id}", a.handleDeleteProduct)
		})
	})

	return r
}

func (a *API) decodeAndValidate(r *http.Request, dst any) error {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return err
	}
	return a.validator.Struct(dst)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

type errorResponse struct {
	Message string `json:"message,omitempty"`
	Error   string `json:"error"`
}

func respondError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func parseIDParam(r *http.Request, key string) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, key))
}

func mapProduct(p *domproduct.Product) map[string]any {
	return map[string]any{
		"id":          p.ID,
		"name":        p.Name,
		"description": p.Description,
		"price":       p.Price,
		"stock":       p.Stock,
		"create_time": p.CreateTime,
		"update_time": p.UpdateTime,
		"is_active":   p.IsActive,
	}
}

func handleDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domproduct.ErrProductNotFound):
		respondError(w, http.StatusNotFound, err)
	case errors.Is(err, domproduct.ErrInvalidPriceRange):
		respondError(w, http.StatusBadRequest, err)
	default:
		// Storage and other unexpected failures surface as a generic 500;
		// details stay in the server log.
		writeJSON(w, http.StatusInternalServerError, errorResponse{
			Message: "internal server error",
			Error:   err.Error(),
		})
	}
}
