package postgres

import (
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name       string
		err        error
		constraint string
		want       bool
	}{
		{
			name:       "matching constraint",
			err:        &pq.Error{Code: "23505", Constraint: "users_email_key"},
			constraint: "users_email_key",
			want:       true,
		},
		{
			name:       "other constraint",
			err:        &pq.Error{Code: "23505", Constraint: "bookings_user_class_key"},
			constraint: "users_email_key",
			want:       false,
		},
		{
			name:       "other pq error code",
			err:        &pq.Error{Code: "23503", Constraint: "users_email_key"},
			constraint: "users_email_key",
			want:       false,
		},
		{
			name:       "plain error",
			err:        errors.New("connection reset"),
			constraint: "users_email_key",
			want:       false,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, isUniqueViolation(tc.err, tc.constraint))
		})
	}
}
