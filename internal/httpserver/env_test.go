package httpserver_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"easy-shop/internal/apperr"
	"easy-shop/internal/httpserver"
	"easy-shop/internal/models"
	"easy-shop/internal/service"
)

type fakeUserStore struct {
	mu    sync.Mutex
	users map[string]*models.User
}

func (f *fakeUserStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u, ok := f.users[email]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, apperr.New(apperr.KindNotFound, "User not found")
}

func (f *fakeUserStore) Create(_ context.Context, user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[user.Email]; ok {
		return apperr.New(apperr.KindConflict, "Email already exists")
	}
	user.ID = primitive.NewObjectID()
	cp := *user
	f.users[user.Email] = &cp
	return nil
}

type fakeProductStore struct {
	mu   sync.Mutex
	docs []models.Product
}

func (f *fakeProductStore) List(_ context.Context) ([]models.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Product, len(f.docs))
	copy(out, f.docs)
	return out, nil
}

func (f *fakeProductStore) ListLimited(ctx context.Context, limit int64) ([]models.Product, error) {
	all, _ := f.List(ctx)
	if int64(len(all)) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (f *fakeProductStore) Get(_ context.Context, id primitive.ObjectID) (models.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, d := range f.docs {
		if d["_id"] == id {
			return d, nil
		}
	}
	return nil, nil
}

func (f *fakeProductStore) Insert(_ context.Context, doc models.Product) (primitive.ObjectID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := primitive.NewObjectID()
	stored := models.Product{"_id": id}
	for k, v := range doc {
		stored[k] = v
	}
	f.docs = append(f.docs, stored)
	return id, nil
}

type testEnv struct {
	T        *testing.T
	E        *echo.Echo
	Users    *fakeUserStore
	Products *fakeProductStore
}

func newTestEnv(t *testing.T) *testEnv {
	users := &fakeUserStore{users: map[string]*models.User{}}
	products := &fakeProductStore{}

	e := echo.New()
	httpserver.Register(e, &httpserver.Deps{
		AuthHandler:    &httpserver.AuthHTTP{Svc: &service.AuthService{Users: users}},
		CatalogHandler: &httpserver.CatalogHTTP{Svc: &service.CatalogService{Products: products}},
	})

	return &testEnv{T: t, E: e, Users: users, Products: products}
}

func (env *testEnv) doJSON(method, target string, body interface{}) *httptest.ResponseRecorder {
	env.T.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(env.T, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	env.E.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}
