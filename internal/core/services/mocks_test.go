package services_test

import (
	"context"
	"sync"

	"github.com/cgcym1234/authserver/internal/apperrors"
	"github.com/cgcym1234/authserver/internal/core/domain"
	portsrepo "github.com/cgcym1234/authserver/internal/core/ports/repositories"
)

// In-memory repository fakes. They enforce the same contracts the pgsql
// adapters do (ErrNotFound on absence, ErrDuplicate on unique violation) so
// the services can be exercised through their full lifecycle.

type memUserRepo struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]*domain.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[int64]*domain.User)}
}

func (r *memUserRepo) CreateUser(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	user.UserID = r.nextID
	if user.OrganizID == 0 {
		user.OrganizID = domain.DefaultOrganizationID
	}
	cp := *user
	r.users[user.UserID] = &cp
	return nil
}

func (r *memUserRepo) FindUserByID(_ context.Context, userID int64) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[userID]
	if !ok || u.DeletedAt != nil {
		return nil, apperrors.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) FindUserByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email && u.DeletedAt == nil {
			cp := *u
			return &cp, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *memUserRepo) UpdateUser(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.UserID]; !ok {
		return apperrors.ErrNotFound
	}
	cp := *user
	r.users[user.UserID] = &cp
	return nil
}

type memUserAuthRepo struct {
	mu     sync.Mutex
	nextID int64
	auths  map[int64]*domain.UserAuth
}

func newMemUserAuthRepo() *memUserAuthRepo {
	return &memUserAuthRepo{auths: make(map[int64]*domain.UserAuth)}
}

func (r *memUserAuthRepo) FindByTypeAndIdentifier(_ context.Context, identityType domain.AuthType, identifier string) (*domain.UserAuth, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.auths {
		if a.IdentityType == identityType && a.Identifier == identifier && a.DeletedAt == nil {
			cp := *a
			return &cp, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *memUserAuthRepo) Create(_ context.Context, auth *domain.UserAuth) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.auths {
		if a.IdentityType == auth.IdentityType && a.Identifier == auth.Identifier {
			return apperrors.ErrDuplicate
		}
	}
	r.nextID++
	auth.ID = r.nextID
	cp := *auth
	r.auths[auth.ID] = &cp
	return nil
}

func (r *memUserAuthRepo) UpdateCredential(_ context.Context, authID int64, credential string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.auths[authID]
	if !ok {
		return apperrors.ErrNotFound
	}
	a.Credential = credential
	return nil
}

type memTokenRepo struct {
	mu      sync.Mutex
	nextID  int64
	access  map[string]*domain.AccessToken
	refresh map[string]*domain.RefreshToken
}

func newMemTokenRepo() *memTokenRepo {
	return &memTokenRepo{
		access:  make(map[string]*domain.AccessToken),
		refresh: make(map[string]*domain.RefreshToken),
	}
}

func (r *memTokenRepo) RotateTokens(_ context.Context, userID int64, access *domain.AccessToken, refresh *domain.RefreshToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.deleteForUser(userID)
	r.nextID++
	access.ID = r.nextID
	r.nextID++
	refresh.ID = r.nextID
	ac, rc := *access, *refresh
	r.access[access.Token] = &ac
	r.refresh[refresh.Token] = &rc
	return nil
}

func (r *memTokenRepo) FindAccessToken(_ context.Context, token string) (*domain.AccessToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.access[token]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	cp := *t
	return &cp, nil
}

func (r *memTokenRepo) FindRefreshToken(_ context.Context, token string) (*domain.RefreshToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.refresh[token]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	cp := *t
	return &cp, nil
}

func (r *memTokenRepo) DeleteTokensForUser(_ context.Context, userID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.deleteForUser(userID)
	return nil
}

func (r *memTokenRepo) deleteForUser(userID int64) {
	for k, t := range r.access {
		if t.UserID == userID {
			delete(r.access, k)
		}
	}
	for k, t := range r.refresh {
		if t.UserID == userID {
			delete(r.refresh, k)
		}
	}
}

func (r *memTokenRepo) countForUser(userID int64) (accessN, refreshN int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.access {
		if t.UserID == userID {
			accessN++
		}
	}
	for _, t := range r.refresh {
		if t.UserID == userID {
			refreshN++
		}
	}
	return
}

type memCodeRepo struct {
	mu     sync.Mutex
	nextID int64
	codes  []*domain.ActiveCode
}

func newMemCodeRepo() *memCodeRepo {
	return &memCodeRepo{}
}

func (r *memCodeRepo) Create(_ context.Context, code *domain.ActiveCode) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	code.ID = r.nextID
	cp := *code
	r.codes = append(r.codes, &cp)
	return nil
}

func (r *memCodeRepo) FindByUserTypeAndCode(_ context.Context, userID int64, codeType domain.CodeType, code string) (*domain.ActiveCode, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := len(r.codes) - 1; i >= 0; i-- {
		c := r.codes[i]
		if c.UserID == userID && c.CodeType == codeType && c.Code == code {
			cp := *c
			return &cp, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *memCodeRepo) MarkConsumed(_ context.Context, codeID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.codes {
		if c.ID == codeID {
			c.State = true
			return nil
		}
	}
	return apperrors.ErrNotFound
}

func newRepoContainer() (*portsrepo.Container, *memUserRepo, *memUserAuthRepo, *memTokenRepo, *memCodeRepo) {
	users := newMemUserRepo()
	auths := newMemUserAuthRepo()
	tokens := newMemTokenRepo()
	codes := newMemCodeRepo()
	return &portsrepo.Container{
		User:       users,
		UserAuth:   auths,
		Token:      tokens,
		ActiveCode: codes,
	}, users, auths, tokens, codes
}

// fakeMailer records deliveries instead of dialing SMTP.
type fakeMailer struct {
	mu          sync.Mutex
	activations []string // links
	codes       []string // change-password codes
	failWith    error
}

func (m *fakeMailer) SendAccountActivation(_, link string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return m.failWith
	}
	m.activations = append(m.activations, link)
	return nil
}

func (m *fakeMailer) SendChangePasswordCode(_, code string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return m.failWith
	}
	m.codes = append(m.codes, code)
	return nil
}

// fakeBridge returns canned WeChat exchange results.
type fakeBridge struct {
	session    *domain.WxSession
	sessionErr error
	info       *domain.WxUserInfo
	infoErr    error

	exchangeCalls int
	decryptCalls  int
}

func (b *fakeBridge) Jscode2Session(_ context.Context, _ string) (*domain.WxSession, error) {
	b.exchangeCalls++
	if b.sessionErr != nil {
		return nil, b.sessionErr
	}
	return b.session, nil
}

func (b *fakeBridge) DecryptUserInfo(_, _, _ string) (*domain.WxUserInfo, error) {
	b.decryptCalls++
	if b.infoErr != nil {
		return nil, b.infoErr
	}
	return b.info, nil
}
