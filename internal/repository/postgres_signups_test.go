package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docuprint/internal/domain"
)

var signupTestColumns = []string{
	"signup_id", "full_name", "mobile", "state_id", "city_id", "community_id",
	"block_id", "flat_number", "status", "admin_notes", "created_at",
	"decided_by", "decided_at",
}

func TestPostgresSignups_Decide_Approves(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewPostgresSignupsRepo(db)

	decidedAt := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows(signupTestColumns).
		AddRow("sg-1", "A Kumar", "9876543210", "st-ka", "ct-blr", "cm-lakeview",
			"bl-lakeview-a", "A-101", "approved", "ID verified",
			decidedAt.Add(-time.Hour), "adm-anita", decidedAt)

	mock.ExpectQuery(`UPDATE signups`).
		WithArgs("approved", "ID verified", "adm-anita", decidedAt, "sg-1", domain.SignupPending).
		WillReturnRows(rows)

	s, err := repo.Decide(context.Background(), "sg-1", "adm-anita", domain.SignupApproved, "ID verified", decidedAt)
	require.NoError(t, err)
	assert.Equal(t, domain.SignupApproved, s.Status)
	assert.Equal(t, "adm-anita", s.DecidedBy)
	require.NotNil(t, s.DecidedAt)
	assert.Equal(t, decidedAt, *s.DecidedAt)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresSignups_Decide_AlreadyDecided(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewPostgresSignupsRepo(db)

	decidedAt := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	// CAS update matches zero rows, then the follow-up Get finds the
	// signup in its decided state.
	mock.ExpectQuery(`UPDATE signups`).
		WithArgs("approved", "", "adm-anita", decidedAt, "sg-1", domain.SignupPending).
		WillReturnRows(sqlmock.NewRows(signupTestColumns))
	mock.ExpectQuery(`FROM signups`).
		WithArgs("sg-1").
		WillReturnRows(sqlmock.NewRows(signupTestColumns).
			AddRow("sg-1", "A Kumar", "9876543210", "st-ka", "ct-blr", "cm-lakeview",
				"bl-lakeview-a", "A-101", "approved", "", decidedAt.Add(-time.Hour),
				"adm-ravi", decidedAt))

	_, err = repo.Decide(context.Background(), "sg-1", "adm-anita", domain.SignupApproved, "", decidedAt)
	assert.ErrorIs(t, err, ErrDecided)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresSignups_Decide_UnknownID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewPostgresSignupsRepo(db)

	decidedAt := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`UPDATE signups`).
		WithArgs("rejected", "", "adm-anita", decidedAt, "missing", domain.SignupPending).
		WillReturnRows(sqlmock.NewRows(signupTestColumns))
	mock.ExpectQuery(`FROM signups`).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(signupTestColumns))

	_, err = repo.Decide(context.Background(), "missing", "adm-anita", domain.SignupRejected, "", decidedAt)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}
