package leads_module

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestTranslateError(t *testing.T) {
	boom := errors.New("boom")
	cases := []struct {
		name string
		in   error
		want error
	}{
		{"nil", nil, nil},
		{"record not found", fmt.Errorf("query: %w", gorm.ErrRecordNotFound), ErrNotFound},
		{"translated duplicate", gorm.ErrDuplicatedKey, ErrDuplicateEmail},
		{"postgres unique violation", &pgconn.PgError{Code: "23505"}, ErrDuplicateEmail},
		{"sqlite unique message", errors.New("constraint failed: UNIQUE constraint failed: leads.email (2067)"), ErrDuplicateEmail},
		{"deadline", fmt.Errorf("exec: %w", context.DeadlineExceeded), ErrStoreUnavailable},
		{"bad conn", driver.ErrBadConn, ErrStoreUnavailable},
		{"other", boom, boom},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := translateError(tc.in)
			if tc.want == nil {
				require.NoError(t, got)
				return
			}
			require.ErrorIs(t, got, tc.want)
		})
	}
}

func TestTranslateErrorKeepsCauseForUnavailable(t *testing.T) {
	err := translateError(fmt.Errorf("ping: %w", context.DeadlineExceeded))
	require.ErrorIs(t, err, ErrStoreUnavailable)
	require.Contains(t, err.Error(), "context deadline exceeded")
}

func TestOtherPostgresErrorsAreNotDuplicates(t *testing.T) {
	err := translateError(&pgconn.PgError{Code: "23502", Message: "not null violation"})
	require.False(t, errors.Is(err, ErrDuplicateEmail))
	require.False(t, errors.Is(err, ErrStoreUnavailable))
}
