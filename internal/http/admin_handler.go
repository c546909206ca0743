package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"sort"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/joshhoffman/SportsStore/internal/auth"
	"github.com/joshhoffman/SportsStore/internal/catalog"
)

const adminCookie = "admin_session"

// AdminHandler covers the login-gated product CRUD area.
type AdminHandler struct {
	repo     catalog.Repository
	auth     auth.Authenticator
	sessions *auth.Sessions
}

func NewAdminHandler(repo catalog.Repository, authenticator auth.Authenticator, sessions *auth.Sessions) *AdminHandler {
	return &AdminHandler{repo: repo, auth: authenticator, sessions: sessions}
}

func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Username  string `json:"username"`
		Password  string `json:"password"`
		ReturnURL string `json:"returnUrl"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	if !h.auth.Authenticate(body.Username, body.Password) {
		writeError(w, http.StatusUnauthorized, "incorrect username or password")
		return
	}

	token := h.sessions.Issue()
	http.SetCookie(w, &http.Cookie{
		Name:     adminCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})

	redirect := body.ReturnURL
	if redirect == "" {
		redirect = "/admin/products"
	}
	writeJSON(w, http.StatusOK, map[string]string{"redirectTo": redirect})
}

func (h *AdminHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if ck, err := r.Cookie(adminCookie); err == nil {
		h.sessions.Revoke(ck.Value)
	}
	http.SetCookie(w, &http.Cookie{Name: adminCookie, Value: "", Path: "/", MaxAge: -1})
	writeJSON(w, http.StatusOK, map[string]string{"status": "logged out"})
}

// Require rejects requests without a live admin session.
func (h *AdminHandler) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ck, err := r.Cookie(adminCookie)
		if err != nil || !h.sessions.Valid(ck.Value) {
			writeError(w, http.StatusUnauthorized, "login required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (h *AdminHandler) Index(w http.ResponseWriter, r *http.Request) {
	products, err := h.repo.Products(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load products")
		return
	}

	sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })
	writeJSON(w, http.StatusOK, products)
}

func (h *AdminHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
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

	writeJSON(w, http.StatusOK, p)
}

type productRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
}

func (h *AdminHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var body productRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if body.Name == "" || body.Price.IsNegative() {
		writeError(w, http.StatusBadRequest, "name required and price must be non-negative")
		return
	}

	p := catalog.Product{
		Name:        body.Name,
		Description: body.Description,
		Category:    body.Category,
		Price:       body.Price,
	}
	if err := h.repo.Save(r.Context(), &p); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save product")
		return
	}

	writeJSON(w, http.StatusCreated, p)
}

func (h *AdminHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "productId"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	var body productRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if body.Name == "" || body.Price.IsNegative() {
		writeError(w, http.StatusBadRequest, "name required and price must be non-negative")
		return
	}

	// Preserve the stored image; updates come from the product form, which
	// does not carry image bytes.
	p, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			writeError(w, http.StatusNotFound, "product not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to load product")
		return
	}

	p.Name = body.Name
	p.Description = body.Description
	p.Category = body.Category
	p.Price = body.Price

	if err := h.repo.Save(r.Context(), &p); err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			writeError(w, http.StatusNotFound, "product not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to save product")
		return
	}

	writeJSON(w, http.StatusOK, p)
}

func (h *AdminHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "productId"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	mime := r.Header.Get("Content-Type")
	if mime == "" {
		writeError(w, http.StatusBadRequest, "missing content type")
		return
	}

	data, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read image payload")
		return
	}
	if len(data) == 0 {
		writeError(w, http.StatusBadRequest, "empty image payload")
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

	p.ImageData = data
	p.ImageMimeType = mime

	if err := h.repo.Save(r.Context(), &p); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save image")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "image saved"})
}

func (h *AdminHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "productId"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	if err := h.repo.Delete(r.Context(), id); err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			writeError(w, http.StatusNotFound, "product not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to delete product")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
