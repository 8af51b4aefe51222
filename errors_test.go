package berth

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xraph/go-utils/errs"
)

func TestErrors_MatchSentinelsByCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"no contract", ErrNoContract("app.Alpha"), ErrNoContractSentinel},
		{"scope load", ErrScopeLoad("app", nil), ErrScopeLoadSentinel},
		{"invalid lifetime", ErrInvalidLifetime(7), ErrInvalidLifetimeSentinel},
		{"invalid declaration", ErrInvalidDeclaration("app.Alpha", "bad"), ErrInvalidDeclarationSentinel},
		{"contract not implemented", ErrContractNotImplemented("app.IAlpha", "app.Alpha"), ErrContractNotImplementedSentinel},
		{"registration rejected", NewRegistrationRejected("app.IAlpha", "app.Alpha", nil), ErrRegistrationRejectedSentinel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.err, tt.sentinel)
		})
	}

	assert.NotErrorIs(t, ErrNoContract("app.Alpha"), ErrScopeLoadSentinel)
}

func TestErrors_Context(t *testing.T) {
	err := ErrContractNotImplemented("app.IAlpha", "app.Alpha")
	assert.Equal(t, "app.IAlpha", err.GetContext()["contract"])
	assert.Equal(t, "app.Alpha", err.GetContext()["type"])

	decl := ErrInvalidDeclaration("app.Alpha", "type cannot be nil")
	assert.Equal(t, "type cannot be nil", decl.GetContext()["reason"])

	lifetime := ErrInvalidLifetime(7)
	assert.Equal(t, "7", lifetime.GetContext()["lifetime"])
}

func TestErrors_Cause(t *testing.T) {
	cause := errors.New("boom")

	var scopeErr *errs.Error
	require.ErrorAs(t, ErrScopeLoad("app", cause), &scopeErr)
	assert.ErrorIs(t, scopeErr.Cause(), cause)

	rejected := NewRegistrationRejected("app.IAlpha", "app.Alpha", cause)
	assert.ErrorIs(t, rejected.Cause(), cause)
}
