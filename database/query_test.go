package database

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
)

type sticker struct {
	tableName struct{} `bun:"table:stickers,alias:s"`
	ID        int64    `bun:"id,pk,autoincrement"`
	Name      string   `bun:"name,notnull"`
}

// builderDB returns a DB that renders queries without ever connecting
func builderDB() *DB {
	sqldb := sql.OpenDB(pgdriver.NewConnector(
		pgdriver.WithAddr("127.0.0.1:5432"),
		pgdriver.WithInsecure(true),
	))
	return &DB{DB: bun.NewDB(sqldb, pgdialect.New())}
}

func TestQueryBuilderRendersSelect(t *testing.T) {
	db := builderDB()

	var dest []sticker
	sqlText := Query[sticker](db).
		Where("name", "dragon").
		WhereRaw("id IN (?)", bun.In([]int64{1, 2})).
		OrderBy("id", DESC).
		Limit(5).
		Offset(10).
		buildSelect(&dest).
		String()

	assert.Contains(t, sqlText, `"stickers"`)
	assert.Contains(t, sqlText, `"name" = 'dragon'`)
	assert.Contains(t, sqlText, "id IN (1, 2)")
	assert.Contains(t, sqlText, `ORDER BY "id" DESC`)
	assert.Contains(t, sqlText, "LIMIT 5")
	assert.Contains(t, sqlText, "OFFSET 10")
}

func TestQueryBuilderRendersUpdateFromMap(t *testing.T) {
	db := builderDB()

	query, err := Query[sticker](db).
		Where("id", int64(7)).
		buildUpdate(map[string]any{"name": "phoenix"})
	assert.NoError(t, err)

	sqlText := query.String()
	assert.Contains(t, sqlText, `"name" = 'phoenix'`)
	assert.Contains(t, sqlText, `"id" = 7`)
}

func TestQueryBuilderRejectsUnsupportedUpdatePayload(t *testing.T) {
	db := builderDB()

	_, err := Query[sticker](db).Where("id", 1).buildUpdate("not a map")
	assert.Error(t, err)
}
