package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type Deps struct {
	Storefront *StorefrontHandler
	Cart       *CartHandler
	Checkout   *CheckoutHandler
	Admin      *AdminHandler
}

func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)

	r.Get("/health", health)

	r.Route("/api", func(r chi.Router) {
		r.Get("/products", d.Storefront.ListProducts)
		r.Get("/products/{productId}/image", d.Storefront.GetImage)
		r.Get("/categories", d.Storefront.Categories)

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", d.Cart.GetCart)
			r.Post("/items", d.Cart.AddItem)
			r.Delete("/items/{productId}", d.Cart.RemoveItem)
		})

		r.Post("/checkout", d.Checkout.Checkout)

		r.Route("/admin", func(r chi.Router) {
			r.Post("/login", d.Admin.Login)
			r.Post("/logout", d.Admin.Logout)

			r.Route("/products", func(r chi.Router) {
				r.Use(d.Admin.Require)
				r.Get("/", d.Admin.Index)
				r.Post("/", d.Admin.CreateProduct)
				r.Get("/{productId}", d.Admin.GetProduct)
				r.Put("/{productId}", d.Admin.UpdateProduct)
				r.Post("/{productId}/image", d.Admin.UploadImage)
				r.Delete("/{productId}", d.Admin.DeleteProduct)
			})
		})
	})

	return r
}

func health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "service": "storefront"})
}
