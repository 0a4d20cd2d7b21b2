package queries_test

import (
	"testing"
	"time"

	"allocation/internal/core/application/usecases/queries"
	"allocation/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetDailySummaryQuery_Success(t *testing.T) {
	date := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	query, err := queries.NewGetDailySummaryQuery(date)

	require.NoError(t, err)
	assert.Equal(t, date, query.Date())
	assert.NoError(t, query.Validate())
}

func TestNewGetDailySummaryQuery_ZeroDate(t *testing.T) {
	_, err := queries.NewGetDailySummaryQuery(time.Time{})

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestGetDailySummaryQuery_Validate_NotConstructed(t *testing.T) {
	var query queries.GetDailySummaryQuery

	err := query.Validate()

	require.Error(t, err)
	require.ErrorIs(t, err, queries.ErrGetDailySummaryQueryIsNotConstructed)
}
