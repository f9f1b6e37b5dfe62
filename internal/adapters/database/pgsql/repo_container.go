package pgsql

import (
	portsrepo "github.com/cgcym1234/authserver/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewContainer wires every pgx repository against one pool.
func NewContainer(db *pgxpool.Pool) *portsrepo.Container {
	return &portsrepo.Container{
		User:       NewUserRepository(db),
		UserAuth:   NewUserAuthRepository(db),
		Token:      NewTokenRepository(db),
		ActiveCode: NewActiveCodeRepository(db),
	}
}
