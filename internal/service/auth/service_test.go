package auth_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/hireloop/scheduler-api/internal/model"
	"github.com/hireloop/scheduler-api/internal/repository"
	"github.com/hireloop/scheduler-api/internal/service/auth"
	pkgauth "github.com/hireloop/scheduler-api/pkg/auth"
	apperrors "github.com/hireloop/scheduler-api/pkg/errors"
	"github.com/hireloop/scheduler-api/pkg/security"
)

type memUserRepo struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]*model.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[int64]*model.User)}
}

func (r *memUserRepo) Create(_ context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return repository.ErrDuplicate
		}
	}
	r.nextID++
	user.ID = r.nextID
	user.CreatedAt = time.Now()
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *memUserRepo) Get(_ context.Context, id int64) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *memUserRepo) ListPanels(_ context.Context) ([]*model.Panel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var panels []*model.Panel
	for _, u := range r.users {
		if u.Role == model.RolePanel {
			panels = append(panels, &model.Panel{ID: u.ID, Email: u.Email, Role: u.Role})
		}
	}
	return panels, nil
}

func newService(t *testing.T) (*auth.Service, *memUserRepo) {
	t.Helper()
	repo := newMemUserRepo()
	hasher := security.NewBcryptHasher(bcrypt.MinCost)
	jwtSvc := pkgauth.NewJWTService("test-secret", time.Hour)
	return auth.NewService(repo, hasher, jwtSvc), repo
}

func TestRegister(t *testing.T) {
	svc, _ := newService(t)

	user, err := svc.Register(context.Background(), "panel@example.com", "password123", "panel")
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, model.RolePanel, user.Role)
	assert.NotEqual(t, "password123", user.PasswordHash)
}

func TestRegisterInvalidRole(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.Register(context.Background(), "x@example.com", "password123", "superuser")
	require.Error(t, err)
	assert.Equal(t, 400, apperrors.Status(err))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.Register(context.Background(), "dup@example.com", "password123", "recruiter")
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "dup@example.com", "password123", "recruiter")
	require.Error(t, err)
	assert.Equal(t, 400, apperrors.Status(err))
}

func TestLogin(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.Register(context.Background(), "r@example.com", "password123", "recruiter")
	require.NoError(t, err)

	tokens, err := svc.Login(context.Background(), "r@example.com", "password123")
	require.NoError(t, err)
	assert.NotEmpty(t, tokens.Token)
	assert.Equal(t, model.RoleRecruiter, tokens.Role)
	assert.Equal(t, "r@example.com", tokens.Email)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.Register(context.Background(), "r@example.com", "password123", "recruiter")
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), "r@example.com", "wrongpassword")
	require.Error(t, err)
	assert.Equal(t, 401, apperrors.Status(err))
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.Login(context.Background(), "ghost@example.com", "password123")
	require.Error(t, err)
	assert.Equal(t, 401, apperrors.Status(err))
}

func TestIdentify(t *testing.T) {
	svc, _ := newService(t)

	user, err := svc.Register(context.Background(), "p@example.com", "password123", "panel")
	require.NoError(t, err)
	tokens, err := svc.Login(context.Background(), "p@example.com", "password123")
	require.NoError(t, err)

	identity, err := svc.Identify(context.Background(), tokens.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, identity.ID)
	assert.Equal(t, model.RolePanel, identity.Role)
}

func TestIdentifyBadToken(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.Identify(context.Background(), "not-a-token")
	require.Error(t, err)
	assert.Equal(t, 403, apperrors.Status(err))
}

func TestIdentifyDeletedUser(t *testing.T) {
	svc, repo := newService(t)

	user, err := svc.Register(context.Background(), "gone@example.com", "password123", "panel")
	require.NoError(t, err)
	tokens, err := svc.Login(context.Background(), "gone@example.com", "password123")
	require.NoError(t, err)

	repo.mu.Lock()
	delete(repo.users, user.ID)
	repo.mu.Unlock()

	_, err = svc.Identify(context.Background(), tokens.Token)
	require.Error(t, err)
	assert.Equal(t, 401, apperrors.Status(err))
}
