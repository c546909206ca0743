package httpapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/joshhoffman/SportsStore/internal/catalog"
)

// StorefrontHandler serves the public catalog: the paged product listing, the
// category menu and product images.
type StorefrontHandler struct {
	repo     catalog.Repository
	pageSize int
}

func NewStorefrontHandler(repo catalog.Repository, pageSize int) *StorefrontHandler {
	return &StorefrontHandler{repo: repo, pageSize: pageSize}
}

func (h *StorefrontHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")

	page := 1
	if v := r.URL.Query().Get("page"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid page")
			return
		}
		page = n
	}

	products, err := h.repo.Products(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load products")
		return
	}

	writeJSON(w, http.StatusOK, catalog.ListPage(products, category, page, h.pageSize))
}

type categoryMenuResponse struct {
	Categories []string `json:"categories"`
	Selected   string   `json:"selected,omitempty"`
}

func (h *StorefrontHandler) Categories(w http.ResponseWriter, r *http.Request) {
	products, err := h.repo.Products(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load products")
		return
	}

	writeJSON(w, http.StatusOK, categoryMenuResponse{
		Categories: catalog.CategoryMenu(products),
		Selected:   r.URL.Query().Get("selected"),
	})
}

func (h *StorefrontHandler) GetImage(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "productId"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	p, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			writeError(w, http.StatusNotFound, "product not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to load product")
		return
	}

	if len(p.ImageData) == 0 {
		writeError(w, http.StatusNotFound, "no image for product")
		return
	}

	w.Header().Set("Content-Type", p.ImageMimeType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(p.ImageData)
}
