package httpapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/joshhoffman/SportsStore/internal/auth"
	"github.com/joshhoffman/SportsStore/internal/cart"
	"github.com/joshhoffman/SportsStore/internal/catalog"
	"github.com/joshhoffman/SportsStore/internal/checkout"
)

// fakeRepo implements catalog.Repository with function fields, so each test
// overrides only what it needs.
type fakeRepo struct {
	productsFunc func(ctx context.Context) ([]catalog.Product, error)
	getByIDFunc  func(ctx context.Context, id int64) (catalog.Product, error)
	saveFunc     func(ctx context.Context, p *catalog.Product) error
	deleteFunc   func(ctx context.Context, id int64) error
}

func (f *fakeRepo) Products(ctx context.Context) ([]catalog.Product, error) {
	if f.productsFunc != nil {
		return f.productsFunc(ctx)
	}
	return nil, nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id int64) (catalog.Product, error) {
	if f.getByIDFunc != nil {
		return f.getByIDFunc(ctx, id)
	}
	return catalog.Product{}, catalog.ErrNotFound
}

func (f *fakeRepo) Save(ctx context.Context, p *catalog.Product) error {
	if f.saveFunc != nil {
		return f.saveFunc(ctx, p)
	}
	return nil
}

func (f *fakeRepo) Delete(ctx context.Context, id int64) error {
	if f.deleteFunc != nil {
		return f.deleteFunc(ctx, id)
	}
	return nil
}

type fakeProcessor struct {
	calls int
	err   error
}

func (f *fakeProcessor) ProcessOrder(ctx context.Context, c *cart.Cart, details checkout.ShippingDetails) error {
	f.calls++
	return f.err
}

type testApp struct {
	router    http.Handler
	store     *cart.Store
	processor *fakeProcessor
	sessions  *auth.Sessions
}

func newTestApp(repo catalog.Repository, pageSize int) *testApp {
	store := cart.NewStore()
	processor := &fakeProcessor{}
	sessions := auth.NewSessions(time.Hour)

	deps := Deps{
		Storefront: NewStorefrontHandler(repo, pageSize),
		Cart:       NewCartHandler(store, repo),
		Checkout:   NewCheckoutHandler(store, checkout.NewService(processor)),
		Admin:      NewAdminHandler(repo, auth.NewStaticAuthenticator("admin", "secret"), sessions),
	}

	return &testApp{
		router:    NewRouter(deps),
		store:     store,
		processor: processor,
		sessions:  sessions,
	}
}

// do runs the request through the router, carrying cookies forward so a test
// can act as one browser session.
func (a *testApp) do(req *http.Request, cookies []*http.Cookie) (*httptest.ResponseRecorder, []*http.Cookie) {
	for _, ck := range cookies {
		req.AddCookie(ck)
	}

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)

	merged := cookies
	for _, ck := range w.Result().Cookies() {
		merged = append(merged, ck)
	}
	return w, merged
}
