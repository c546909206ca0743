package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshhoffman/SportsStore/internal/catalog"
)

func login(t *testing.T, app *testApp) []*http.Cookie {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/admin/login", bytes.NewBufferString(`{"username":"admin","password":"secret"}`))
	w, cookies := app.do(req, nil)
	require.Equal(t, http.StatusOK, w.Code)
	return cookies
}

func TestLoginWithValidCredentials(t *testing.T) {
	app := newTestApp(fixtureRepo(), 3)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/login", bytes.NewBufferString(`{"username":"admin","password":"secret","returnUrl":"/MyURL"}`))
	w, cookies := app.do(req, nil)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		RedirectTo string `json:"redirectTo"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	require.Equal(t, "/MyURL", resp.RedirectTo)
	require.NotEmpty(t, cookies)
}

func TestLoginWithInvalidCredentials(t *testing.T) {
	app := newTestApp(fixtureRepo(), 3)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/login", bytes.NewBufferString(`{"username":"badUser","password":"badPass"}`))
	w, _ := app.do(req, nil)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Empty(t, w.Result().Cookies(), "no session on failed login")
}

func TestAdminRoutesRequireLogin(t *testing.T) {
	app := newTestApp(fixtureRepo(), 3)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/products/", nil)
	w, _ := app.do(req, nil)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogoutEndsSession(t *testing.T) {
	app := newTestApp(fixtureRepo(), 3)
	cookies := login(t, app)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/logout", nil)
	w, _ := app.do(req, cookies)
	require.Equal(t, http.StatusOK, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/admin/products/", nil)
	w, _ = app.do(req, cookies)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminIndexContainsAllProducts(t *testing.T) {
	app := newTestApp(fixtureRepo(), 3)
	cookies := login(t, app)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/products/", nil)
	w, _ := app.do(req, cookies)

	require.Equal(t, http.StatusOK, w.Code)

	var products []catalog.Product
	require.NoError(t, json.NewDecoder(w.Body).Decode(&products))
	require.Len(t, products, 5)
	require.Equal(t, "p1", products[0].Name)
	require.Equal(t, "p5", products[4].Name)
}

func TestAdminEditProduct(t *testing.T) {
	app := newTestApp(fixtureRepo(), 3)
	cookies := login(t, app)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/products/2", nil)
	w, _ := app.do(req, cookies)

	require.Equal(t, http.StatusOK, w.Code)

	var p catalog.Product
	require.NoError(t, json.NewDecoder(w.Body).Decode(&p))
	require.Equal(t, int64(2), p.ID)
}

func TestAdminEditNonexistentProduct(t *testing.T) {
	app := newTestApp(fixtureRepo(), 3)
	cookies := login(t, app)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/products/4000", nil)
	w, _ := app.do(req, cookies)

	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdminCreateProduct(t *testing.T) {
	repo := fixtureRepo()
	var saved *catalog.Product
	repo.saveFunc = func(ctx context.Context, p *catalog.Product) error {
		p.ID = 6
		saved = p
		return nil
	}
	app := newTestApp(repo, 3)
	cookies := login(t, app)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/products/", bytes.NewBufferString(`{"name":"Kayak","description":"A boat","category":"Watersports","price":"275.00"}`))
	w, _ := app.do(req, cookies)

	require.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, saved)
	require.Equal(t, "Kayak", saved.Name)
	require.Equal(t, int64(6), saved.ID)
}

func TestAdminCreateProductRejectsInvalid(t *testing.T) {
	repo := fixtureRepo()
	saves := 0
	repo.saveFunc = func(ctx context.Context, p *catalog.Product) error {
		saves++
		return nil
	}
	app := newTestApp(repo, 3)
	cookies := login(t, app)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/products/", bytes.NewBufferString(`{"name":"","price":"10"}`))
	w, _ := app.do(req, cookies)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Zero(t, saves, "invalid product must not be saved")
}

func TestAdminUpdateProduct(t *testing.T) {
	repo := fixtureRepo()
	var saved *catalog.Product
	repo.saveFunc = func(ctx context.Context, p *catalog.Product) error {
		saved = p
		return nil
	}
	app := newTestApp(repo, 3)
	cookies := login(t, app)

	req := httptest.NewRequest(http.MethodPut, "/api/admin/products/2", bytes.NewBufferString(`{"name":"p2-renamed","category":"Cat9","price":"99.99"}`))
	w, _ := app.do(req, cookies)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, saved)
	require.Equal(t, int64(2), saved.ID)
	require.Equal(t, "p2-renamed", saved.Name)
}

func TestAdminUpdateNonexistentProduct(t *testing.T) {
	app := newTestApp(fixtureRepo(), 3)
	cookies := login(t, app)

	req := httptest.NewRequest(http.MethodPut, "/api/admin/products/4000", bytes.NewBufferString(`{"name":"Ghost","price":"1"}`))
	w, _ := app.do(req, cookies)

	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdminDeleteProduct(t *testing.T) {
	repo := fixtureRepo()
	var deleted int64
	repo.deleteFunc = func(ctx context.Context, id int64) error {
		deleted = id
		return nil
	}
	app := newTestApp(repo, 3)
	cookies := login(t, app)

	req := httptest.NewRequest(http.MethodDelete, "/api/admin/products/2", nil)
	w, _ := app.do(req, cookies)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, int64(2), deleted)
}

func TestAdminDeleteNonexistentProduct(t *testing.T) {
	repo := fixtureRepo()
	repo.deleteFunc = func(ctx context.Context, id int64) error {
		return catalog.ErrNotFound
	}
	app := newTestApp(repo, 3)
	cookies := login(t, app)

	req := httptest.NewRequest(http.MethodDelete, "/api/admin/products/4000", nil)
	w, _ := app.do(req, cookies)

	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdminUploadImage(t *testing.T) {
	repo := fixtureRepo()
	var saved *catalog.Product
	repo.saveFunc = func(ctx context.Context, p *catalog.Product) error {
		saved = p
		return nil
	}
	app := newTestApp(repo, 3)
	cookies := login(t, app)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/products/2/image", bytes.NewReader([]byte{0x89, 0x50, 0x4e, 0x47}))
	req.Header.Set("Content-Type", "image/png")
	w, _ := app.do(req, cookies)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, saved)
	require.Equal(t, "image/png", saved.ImageMimeType)
	require.Equal(t, []byte{0x89, 0x50, 0x4e, 0x47}, saved.ImageData)
}
