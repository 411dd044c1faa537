package usecase_test

import (
	"context"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Calificaciones-api/internal/domain/entity"
	"github.com/jhoicas/Calificaciones-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	users map[string]*entity.User
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)

func newFakeUserRepo(seed ...*entity.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[string]*entity.User)}
	for _, u := range seed {
		cp := *u
		r.users[u.ID] = &cp
	}
	return r
}

func (r *fakeUserRepo) Create(user *entity.User) error {
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(user *entity.User) error {
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) UpdatePassword(id, passwordHash string) error {
	if u, ok := r.users[id]; ok {
		u.PasswordHash = passwordHash
	}
	return nil
}

func (r *fakeUserRepo) Delete(id string) error {
	delete(r.users, id)
	return nil
}

// List reproduce el contrato del repositorio real: criterios combinados con
// AND, subcadena case-insensitive en nombre/email, rol exacto, orden por nombre.
func (r *fakeUserRepo) List(filter repository.UserFilter) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.users {
		if filter.Name != "" && !strings.Contains(strings.ToLower(u.Name), strings.ToLower(filter.Name)) {
			continue
		}
		if filter.Email != "" && !strings.Contains(strings.ToLower(u.Email), strings.ToLower(filter.Email)) {
			continue
		}
		if filter.Role != "" && u.Role != filter.Role {
			continue
		}
		cp := *u
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeUserRepo) ListStoreOwners() ([]*entity.User, error) {
	return r.List(repository.UserFilter{Role: entity.RoleStoreOwner})
}

func (r *fakeUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

type fakeStoreRepo struct {
	stores map[string]*entity.Store
	rows   []repository.StoreWithRating // lo que devuelve List
}

var _ repository.StoreRepository = (*fakeStoreRepo)(nil)

func newFakeStoreRepo(seed ...*entity.Store) *fakeStoreRepo {
	r := &fakeStoreRepo{stores: make(map[string]*entity.Store)}
	for _, s := range seed {
		cp := *s
		r.stores[s.ID] = &cp
	}
	return r
}

func (r *fakeStoreRepo) Create(store *entity.Store) error {
	cp := *store
	r.stores[store.ID] = &cp
	return nil
}

func (r *fakeStoreRepo) GetByID(id string) (*entity.Store, error) {
	s, ok := r.stores[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *fakeStoreRepo) GetByOwner(ownerID string) (*entity.Store, error) {
	for _, s := range r.stores {
		if s.OwnerID != nil && *s.OwnerID == ownerID {
			cp := *s
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeStoreRepo) GetByEmailAndOwner(email, ownerID string) (*entity.Store, error) {
	for _, s := range r.stores {
		if s.Email == email && s.OwnerID != nil && *s.OwnerID == ownerID {
			cp := *s
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeStoreRepo) Update(store *entity.Store) error {
	cp := *store
	r.stores[store.ID] = &cp
	return nil
}

func (r *fakeStoreRepo) Delete(id string) error {
	delete(r.stores, id)
	return nil
}

func (r *fakeStoreRepo) List(_ context.Context, _ repository.StoreFilter, _ string) ([]repository.StoreWithRating, error) {
	return r.rows, nil
}

func (r *fakeStoreRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.stores)), nil
}

// ratingEntry una fila del libro de calificaciones en memoria.
type ratingEntry struct {
	userID  string
	storeID string
	value   int
}

// fakeRatingRepo reproduce la semántica del upsert real: una fila por
// (user, store), el reenvío sobreescribe el valor conservando la posición
// original (el orden de calificadores es por fecha del primer envío).
type fakeRatingRepo struct {
	entries []ratingEntry
	users   *fakeUserRepo // para resolver nombre/email de los calificadores
}

var _ repository.RatingRepository = (*fakeRatingRepo)(nil)

func newFakeRatingRepo(users *fakeUserRepo) *fakeRatingRepo {
	return &fakeRatingRepo{users: users}
}

func (r *fakeRatingRepo) Upsert(_ context.Context, userID, storeID string, value int) error {
	for i, e := range r.entries {
		if e.userID == userID && e.storeID == storeID {
			r.entries[i].value = value
			return nil
		}
	}
	r.entries = append(r.entries, ratingEntry{userID: userID, storeID: storeID, value: value})
	return nil
}

func (r *fakeRatingRepo) AverageForStore(_ context.Context, storeID string) (*decimal.Decimal, error) {
	var sum, n int64
	for _, e := range r.entries {
		if e.storeID == storeID {
			sum += int64(e.value)
			n++
		}
	}
	if n == 0 {
		return nil, nil
	}
	avg := decimal.NewFromInt(sum).Div(decimal.NewFromInt(n))
	return &avg, nil
}

func (r *fakeRatingRepo) RatersForStore(_ context.Context, storeID string) ([]repository.Rater, error) {
	out := make([]repository.Rater, 0)
	for _, e := range r.entries {
		if e.storeID != storeID {
			continue
		}
		rater := repository.Rater{Rating: e.value}
		if u, _ := r.users.GetByID(e.userID); u != nil {
			rater.Name = u.Name
			rater.Email = u.Email
		}
		out = append(out, rater)
	}
	return out, nil
}

func (r *fakeRatingRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.entries)), nil
}
