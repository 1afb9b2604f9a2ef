package service

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"easy-shop/internal/apperr"
	"easy-shop/internal/models"
)

// fakeUserStore is the in-memory substitute for the mongo-backed user
// repo, honoring the same contract (not_found / conflict kinds).
type fakeUserStore struct {
	mu    sync.Mutex
	users map[string]*models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[string]*models.User{}}
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

func (f *fakeUserStore) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.users)
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

type publishedEvent struct {
	Topic string
	Key   string
	Event interface{}
}

type recordPublisher struct {
	mu     sync.Mutex
	events []publishedEvent
	err    error
}

func (p *recordPublisher) PublishEvent(_ context.Context, topic, key string, event interface{}) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, publishedEvent{Topic: topic, Key: key, Event: event})
	return nil
}

func (p *recordPublisher) published() []publishedEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]publishedEvent, len(p.events))
	copy(out, p.events)
	return out
}
