package psqlbuilder

import (
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelect_UsesDollarPlaceholders(t *testing.T) {
	query, args, err := Select("id").
		From("bookings").
		Where(squirrel.Eq{"room_id": 3}).
		Where(squirrel.NotEq{"status": []string{"cancelled", "completed"}}).
		ToSql()

	require.NoError(t, err)
	assert.Equal(t, "SELECT id FROM bookings WHERE room_id = $1 AND status NOT IN ($2,$3)", query)
	assert.Equal(t, []interface{}{3, "cancelled", "completed"}, args)
}
