package services_test

import (
	"context"
	"testing"

	"github.com/cgcym1234/authserver/internal/apperrors"
	"github.com/cgcym1234/authserver/internal/core/domain"
	"github.com/cgcym1234/authserver/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertCodeFail(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	apiErr, ok := apperrors.AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeCodeFail, apiErr.Code)
}

func TestVerificationService_IssueCodeShapes(t *testing.T) {
	repos, _, _, _, _ := newRepoContainer()
	svc := services.NewVerificationService(repos)
	ctx := context.Background()

	short, err := svc.IssueCode(ctx, 1, domain.CodeTypeChangePassword)
	require.NoError(t, err)
	assert.Len(t, short.Code, 4)
	assert.False(t, short.State)

	long, err := svc.IssueCode(ctx, 1, domain.CodeTypeActiveAccount)
	require.NoError(t, err)
	assert.Len(t, long.Code, 32)
	assert.False(t, long.State)
}

func TestVerificationService_ConfirmConsumesOnce(t *testing.T) {
	repos, _, _, _, _ := newRepoContainer()
	svc := services.NewVerificationService(repos)
	ctx := context.Background()

	code, err := svc.IssueCode(ctx, 1, domain.CodeTypeActiveAccount)
	require.NoError(t, err)

	require.NoError(t, svc.Confirm(ctx, 1, domain.CodeTypeActiveAccount, code.Code))
	assertCodeFail(t, svc.Confirm(ctx, 1, domain.CodeTypeActiveAccount, code.Code))
}

func TestVerificationService_ConfirmMismatches(t *testing.T) {
	repos, _, _, _, _ := newRepoContainer()
	svc := services.NewVerificationService(repos)
	ctx := context.Background()

	code, err := svc.IssueCode(ctx, 1, domain.CodeTypeChangePassword)
	require.NoError(t, err)

	// Wrong user, wrong type, wrong value: all rejected the same way.
	assertCodeFail(t, svc.Confirm(ctx, 2, domain.CodeTypeChangePassword, code.Code))
	assertCodeFail(t, svc.Confirm(ctx, 1, domain.CodeTypeActiveAccount, code.Code))
	assertCodeFail(t, svc.Confirm(ctx, 1, domain.CodeTypeChangePassword, "0000"))

	// The code itself is still live.
	require.NoError(t, svc.Confirm(ctx, 1, domain.CodeTypeChangePassword, code.Code))
}

func TestVerificationService_RequireConsumed(t *testing.T) {
	repos, _, _, _, _ := newRepoContainer()
	svc := services.NewVerificationService(repos)
	ctx := context.Background()

	code, err := svc.IssueCode(ctx, 1, domain.CodeTypeChangePassword)
	require.NoError(t, err)

	// Not yet confirmed.
	assertCodeFail(t, svc.RequireConsumed(ctx, 1, domain.CodeTypeChangePassword, code.Code))

	require.NoError(t, svc.Confirm(ctx, 1, domain.CodeTypeChangePassword, code.Code))

	// Once consumed the check passes, repeatedly.
	require.NoError(t, svc.RequireConsumed(ctx, 1, domain.CodeTypeChangePassword, code.Code))
	require.NoError(t, svc.RequireConsumed(ctx, 1, domain.CodeTypeChangePassword, code.Code))

	// Unknown codes still fail.
	assertCodeFail(t, svc.RequireConsumed(ctx, 1, domain.CodeTypeChangePassword, "9999"))
}

func TestVerificationService_LatestCodeWins(t *testing.T) {
	repos, _, _, _, codes := newRepoContainer()
	svc := services.NewVerificationService(repos)
	ctx := context.Background()

	first, err := svc.IssueCode(ctx, 1, domain.CodeTypeChangePassword)
	require.NoError(t, err)
	second, err := svc.IssueCode(ctx, 1, domain.CodeTypeChangePassword)
	require.NoError(t, err)
	require.Len(t, codes.codes, 2)

	// Both issued codes stay independently confirmable.
	require.NoError(t, svc.Confirm(ctx, 1, domain.CodeTypeChangePassword, second.Code))
	if first.Code != second.Code {
		require.NoError(t, svc.Confirm(ctx, 1, domain.CodeTypeChangePassword, first.Code))
	}
}
