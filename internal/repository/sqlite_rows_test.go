package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/triage/internal/db"
	"github.com/alexanderramin/triage/internal/domain"
	"github.com/alexanderramin/triage/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRowRepo_SaveAndLoadOrdered(t *testing.T) {
	repo := NewSQLiteRowRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	rows := []domain.DynamicRow{
		testutil.NewTestRow(domain.GroupFinancialBenefits, 0, map[string]string{"amount": "100", "description": "Licence savings"}),
		testutil.NewTestRow(domain.GroupFinancialBenefits, 1, map[string]string{"amount": "250"}),
	}
	require.NoError(t, repo.SaveRows(ctx, domain.GroupFinancialBenefits, rows))

	loaded, err := repo.LoadRows(ctx, domain.GroupFinancialBenefits)
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, 0, loaded[0].Index)
	assert.Equal(t, "Licence savings", loaded[0].Fields["description"].Text)
	assert.Equal(t, "250", loaded[1].Fields["amount"].Text)
}

func TestRowRepo_LoadWithNoPriorSaveYieldsEmpty(t *testing.T) {
	repo := NewSQLiteRowRepo(testutil.NewTestDB(t))

	loaded, err := repo.LoadRows(context.Background(), domain.GroupFinancialBenefits)
	require.NoError(t, err)
	assert.Empty(t, loaded)
	assert.NotNil(t, loaded)
}

func TestRowRepo_GroupsAreIndependent(t *testing.T) {
	repo := NewSQLiteRowRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	fin := []domain.DynamicRow{testutil.NewTestRow(domain.GroupFinancialBenefits, 0, map[string]string{"amount": "1"})}
	non := []domain.DynamicRow{
		testutil.NewTestRow(domain.GroupNonFinancialBenefits, 0, map[string]string{"description": "Morale"}),
		testutil.NewTestRow(domain.GroupNonFinancialBenefits, 1, map[string]string{"description": "Compliance"}),
	}
	require.NoError(t, repo.SaveRows(ctx, domain.GroupFinancialBenefits, fin))
	require.NoError(t, repo.SaveRows(ctx, domain.GroupNonFinancialBenefits, non))

	gotFin, err := repo.LoadRows(ctx, domain.GroupFinancialBenefits)
	require.NoError(t, err)
	gotNon, err := repo.LoadRows(ctx, domain.GroupNonFinancialBenefits)
	require.NoError(t, err)
	assert.Len(t, gotFin, 1)
	assert.Len(t, gotNon, 2)
}

func TestRowRepo_SaveOverwritesWholeGroup(t *testing.T) {
	repo := NewSQLiteRowRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	three := []domain.DynamicRow{
		testutil.NewTestRow(domain.GroupFinancialBenefits, 0, map[string]string{"amount": "1"}),
		testutil.NewTestRow(domain.GroupFinancialBenefits, 1, map[string]string{"amount": "2"}),
		testutil.NewTestRow(domain.GroupFinancialBenefits, 2, map[string]string{"amount": "3"}),
	}
	require.NoError(t, repo.SaveRows(ctx, domain.GroupFinancialBenefits, three))

	one := []domain.DynamicRow{testutil.NewTestRow(domain.GroupFinancialBenefits, 0, map[string]string{"amount": "9"})}
	require.NoError(t, repo.SaveRows(ctx, domain.GroupFinancialBenefits, one))

	loaded, err := repo.LoadRows(ctx, domain.GroupFinancialBenefits)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "9", loaded[0].Fields["amount"].Text)
}

func TestRowRepo_UnknownGroupRejected(t *testing.T) {
	repo := NewSQLiteRowRepo(testutil.NewTestDB(t))

	_, err := repo.LoadRows(context.Background(), "mystery")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrStorageUnavailable)
}

func TestRowRepo_OverwriteRollsBackAsUnit(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	seed := []domain.DynamicRow{testutil.NewTestRow(domain.GroupFinancialBenefits, 0, map[string]string{"amount": "seed"})}
	require.NoError(t, NewSQLiteRowRepo(database).SaveRows(ctx, domain.GroupFinancialBenefits, seed))

	// Fail on the second write (first insert after the delete).
	boom := errors.New("disk full")
	uow := &testutil.FailOnNthExecUoW{DB: database, FailOn: 2, Err: boom}
	err := uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return NewSQLiteRowRepo(tx).SaveRows(ctx, domain.GroupFinancialBenefits, []domain.DynamicRow{
			testutil.NewTestRow(domain.GroupFinancialBenefits, 0, map[string]string{"amount": "new"}),
		})
	})
	require.Error(t, err)

	// The seed row survives: the delete was rolled back with the insert.
	loaded, err := NewSQLiteRowRepo(database).LoadRows(ctx, domain.GroupFinancialBenefits)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "seed", loaded[0].Fields["amount"].Text)
}
