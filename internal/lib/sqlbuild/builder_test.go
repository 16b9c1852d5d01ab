package sqlbuild

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelect_Build(t *testing.T) {
	base := NewSelect("SELECT * FROM properties")

	tests := []struct {
		name         string
		stmt         Select
		expectedSQL  string
		expectedArgs []any
	}{
		{
			name:         "skeleton only",
			stmt:         base,
			expectedSQL:  "SELECT * FROM properties",
			expectedArgs: nil,
		},
		{
			name:         "single where",
			stmt:         base.Where(Pred("city LIKE ?", "%van%")),
			expectedSQL:  "SELECT * FROM properties\nWHERE city LIKE $1",
			expectedArgs: []any{"%van%"},
		},
		{
			name: "where predicates joined with AND",
			stmt: base.
				Where(Pred("owner_id = ?", int64(3))).
				Where(Pred("cost_per_night BETWEEN ? AND ?", int64(5000), int64(15000))),
			expectedSQL:  "SELECT * FROM properties\nWHERE owner_id = $1 AND cost_per_night BETWEEN $2 AND $3",
			expectedArgs: []any{int64(3), int64(5000), int64(15000)},
		},
		{
			name: "full statement numbers placeholders across clauses",
			stmt: base.
				Where(Pred("city LIKE ?", "%a%")).
				GroupBy("properties.id").
				Having(Pred("avg(rating) >= ?", 4.0)).
				OrderBy("cost_per_night").
				Limit(5),
			expectedSQL: "SELECT * FROM properties\nWHERE city LIKE $1\nGROUP BY properties.id" +
				"\nHAVING avg(rating) >= $2\nORDER BY cost_per_night\nLIMIT $3",
			expectedArgs: []any{"%a%", 4.0, 5},
		},
		{
			name:         "having without where",
			stmt:         base.GroupBy("id").Having(Pred("count(*) > ?", 1)),
			expectedSQL:  "SELECT * FROM properties\nGROUP BY id\nHAVING count(*) > $1",
			expectedArgs: []any{1},
		},
		{
			name:         "fragment without args",
			stmt:         base.Where(Pred("active")).Limit(2),
			expectedSQL:  "SELECT * FROM properties\nWHERE active\nLIMIT $1",
			expectedArgs: []any{2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := tt.stmt.Build()
			require.NoError(t, err)
			assert.Equal(t, tt.expectedSQL, q.SQL)
			assert.Equal(t, tt.expectedArgs, q.Args)
		})
	}
}

func TestSelect_IsImmutable(t *testing.T) {
	base := NewSelect("SELECT 1").Where(Pred("a = ?", 1))

	left := base.Where(Pred("b = ?", 2))
	right := base.Where(Pred("c = ?", 3))

	lq, err := left.Build()
	require.NoError(t, err)
	rq, err := right.Build()
	require.NoError(t, err)
	bq, err := base.Build()
	require.NoError(t, err)

	assert.Equal(t, "SELECT 1\nWHERE a = $1 AND b = $2", lq.SQL)
	assert.Equal(t, "SELECT 1\nWHERE a = $1 AND c = $2", rq.SQL)
	assert.Equal(t, "SELECT 1\nWHERE a = $1", bq.SQL)
}

func TestSelect_ValuesAreNeverInterpolated(t *testing.T) {
	q, err := NewSelect("SELECT * FROM users").
		Where(Pred("email = ?", "x'; DROP TABLE users; --")).
		Build()
	require.NoError(t, err)

	assert.NotContains(t, q.SQL, "DROP")
	assert.Equal(t, []any{"x'; DROP TABLE users; --"}, q.Args)
}

func TestSelect_PlaceholderMismatch(t *testing.T) {
	_, err := NewSelect("SELECT 1").Where(Pred("a = ? AND b = ?", 1)).Build()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrPlaceholderMismatch))
}
