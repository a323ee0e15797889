package psqlbuilder

import (
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelect_UsesDollarPlaceholders(t *testing.T) {
	query, args, err := Select("member_id", "day_of_week").
		From("member_free_time").
		Where(squirrel.Eq{"member_id": []int64{1, 2}}).
		Where(squirrel.Eq{"day_of_week": "monday"}).
		ToSql()
	require.NoError(t, err)

	assert.Equal(t, "SELECT member_id, day_of_week FROM member_free_time WHERE member_id IN ($1,$2) AND day_of_week = $3", query)
	assert.Equal(t, []interface{}{int64(1), int64(2), "monday"}, args)
}

func TestDelete(t *testing.T) {
	query, args, err := Delete("member_free_time").Where(squirrel.Eq{"member_id": int64(5)}).ToSql()
	require.NoError(t, err)

	assert.Equal(t, "DELETE FROM member_free_time WHERE member_id = $1", query)
	assert.Equal(t, []interface{}{int64(5)}, args)
}
