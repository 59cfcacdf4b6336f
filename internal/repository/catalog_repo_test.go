package repository

import (
	"context"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"

	"shop-service/internal/catalog"
	"shop-service/internal/model"
)

// buildCatalogSQL renders the catalog listing query against a dry-run
// session so the generated SQL can be inspected without a database.
func buildCatalogSQL(t *testing.T, q catalog.Query) (string, []interface{}) {
	t.Helper()
	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{DryRun: true})
	require.NoError(t, err)

	r := &catalogRepo{db: db}
	var products []model.Product
	tx := sorted(r.apply(context.Background(), q), q).Find(&products)
	require.NoError(t, tx.Error)
	return tx.Statement.SQL.String(), tx.Statement.Vars
}

func TestCatalogSQLAlwaysHidesArchived(t *testing.T) {
	sql, vars := buildCatalogSQL(t, catalog.Query{})

	assert.Contains(t, sql, "archived = ?")
	assert.Contains(t, vars, false)
	assert.Contains(t, sql, "id ASC")
}

func TestCatalogSQLPriceBounds(t *testing.T) {
	minPrice, maxPrice := 100.0, 500.0
	sql, vars := buildCatalogSQL(t, catalog.Query{MinPrice: &minPrice, MaxPrice: &maxPrice})

	assert.Contains(t, sql, "price >= ?")
	assert.Contains(t, sql, "price <= ?")
	assert.Contains(t, vars, 100.0)
	assert.Contains(t, vars, 500.0)
}

func TestCatalogSQLNameSearch(t *testing.T) {
	sql, vars := buildCatalogSQL(t, catalog.Query{NameContains: "Phone"})

	assert.Contains(t, sql, "LOWER(title) LIKE ?")
	assert.Contains(t, vars, "%phone%")
}

func TestCatalogSQLFreeDeliveryNarrowing(t *testing.T) {
	sql, vars := buildCatalogSQL(t, catalog.Query{FreeDelivery: catalog.FreeDeliveryOnly})
	assert.Contains(t, sql, "free_delivery = ?")
	assert.Contains(t, vars, true)

	sql, _ = buildCatalogSQL(t, catalog.Query{FreeDelivery: catalog.FreeDeliveryAny})
	assert.NotContains(t, sql, "free_delivery")
}

func TestCatalogSQLAvailability(t *testing.T) {
	available := true
	sql, vars := buildCatalogSQL(t, catalog.Query{Available: &available})

	assert.Contains(t, sql, "available = ?")
	assert.Contains(t, vars, true)
}

func TestCatalogSQLTagIntersection(t *testing.T) {
	sql, vars := buildCatalogSQL(t, catalog.Query{TagIDs: []uint{1, 7}})

	assert.Contains(t, sql, "id IN (SELECT product_id FROM product_tags WHERE tag_id IN")
	assert.Contains(t, vars, uint(1))
	assert.Contains(t, vars, uint(7))
}

func TestCatalogSQLSortDirections(t *testing.T) {
	sql, _ := buildCatalogSQL(t, catalog.Query{
		Sort: []catalog.SortField{{Column: "price", Descending: true}},
	})
	assert.Contains(t, sql, "price DESC")

	sql, _ = buildCatalogSQL(t, catalog.Query{
		Sort: []catalog.SortField{{Column: "price"}},
	})
	assert.Contains(t, sql, "price ASC")
}

func TestCatalogSQLFromParsedRequest(t *testing.T) {
	// A full round trip of the storefront's price filter with the
	// "inc" token, which orders descending.
	q := catalog.Parse(url.Values{
		"filter[minPrice]": {"100"},
		"filter[maxPrice]": {"500"},
		"sort":             {"price"},
		"sortType":         {"inc"},
	})
	sql, vars := buildCatalogSQL(t, q)

	assert.Contains(t, sql, "price >= ?")
	assert.Contains(t, sql, "price <= ?")
	assert.Contains(t, vars, 100.0)
	assert.Contains(t, vars, 500.0)
	assert.Contains(t, sql, "price DESC")
	// The direction clause precedes the stable fallback.
	assert.Less(t, strings.Index(sql, "price DESC"), strings.Index(sql, "id ASC"))
}
