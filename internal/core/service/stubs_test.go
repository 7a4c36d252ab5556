package service

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/tiempovital/admin-api/internal/core/auth"
	"github.com/tiempovital/admin-api/internal/core/command"
	"github.com/tiempovital/admin-api/internal/core/domain"
	"github.com/tiempovital/admin-api/internal/core/query"
)

// In-memory store adapters backing the application service tests.

type stubUserRepo struct {
	users map[string]*domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	clone := *u
	return &clone
}

func (r *stubUserRepo) FindAll(_ context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrEmailExists
		}
	}
	r.users[user.ID] = cloneUser(user)
	return cloneUser(user), nil
}

func (r *stubUserRepo) Update(_ context.Context, id string, user *domain.User) (*domain.User, error) {
	u := cloneUser(user)
	u.ID = id
	r.users[id] = u
	return cloneUser(u), nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	delete(r.users, id)
	return nil
}

type stubOfficeRepo struct {
	offices map[string]*domain.Office
}

func newStubOfficeRepo() *stubOfficeRepo {
	return &stubOfficeRepo{offices: make(map[string]*domain.Office)}
}

func cloneOffice(o *domain.Office) *domain.Office {
	clone := *o
	return &clone
}

func (r *stubOfficeRepo) FindAll(_ context.Context) ([]domain.Office, error) {
	out := make([]domain.Office, 0, len(r.offices))
	for _, o := range r.offices {
		out = append(out, *o)
	}
	return out, nil
}

func (r *stubOfficeRepo) FindByID(_ context.Context, id string) (*domain.Office, error) {
	o, ok := r.offices[id]
	if !ok {
		return nil, domain.ErrOfficeNotFound
	}
	return cloneOffice(o), nil
}

func (r *stubOfficeRepo) FindByName(_ context.Context, name string) (*domain.Office, error) {
	for _, o := range r.offices {
		if o.Name == name {
			return cloneOffice(o), nil
		}
	}
	return nil, domain.ErrOfficeNotFound
}

func (r *stubOfficeRepo) FindByUserID(_ context.Context, userID string) ([]domain.Office, error) {
	var out []domain.Office
	for _, o := range r.offices {
		if o.UserID == userID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (r *stubOfficeRepo) Create(_ context.Context, office *domain.Office) (*domain.Office, error) {
	for _, o := range r.offices {
		if o.Name == office.Name {
			return nil, domain.ErrOfficeExists
		}
	}
	r.offices[office.ID] = cloneOffice(office)
	return cloneOffice(office), nil
}

func (r *stubOfficeRepo) Update(_ context.Context, id string, office *domain.Office) (*domain.Office, error) {
	o := cloneOffice(office)
	o.ID = id
	r.offices[id] = o
	return cloneOffice(o), nil
}

func (r *stubOfficeRepo) Delete(_ context.Context, id string) error {
	delete(r.offices, id)
	return nil
}

func (r *stubOfficeRepo) DeleteByUserID(_ context.Context, userID string) error {
	for id, o := range r.offices {
		if o.UserID == userID {
			delete(r.offices, id)
		}
	}
	return nil
}

// newUserStack wires real query/command services over the stub repos, the
// way the router does in production.
func newUserStack(users *stubUserRepo, offices *stubOfficeRepo) (*query.UserQueryService, *command.UserCommandService, *auth.PasswordHasher) {
	hasher := auth.NewPasswordHasher(bcrypt.MinCost)
	queries := query.NewUserQueryService(users)
	commands := command.NewUserCommandService(users, offices, hasher, nil, zerolog.Nop())
	return queries, commands, hasher
}
