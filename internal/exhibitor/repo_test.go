package exhibitor

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketboard/pkg/database"
	"marketboard/pkg/models"
)

func testRepo(t *testing.T) *Repo {
	t.Helper()
	db, err := database.Open(database.Config{Path: filepath.Join(t.TempDir(), "test.db")})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, database.MigrateFile(db, "../../docs/schema.sql"))
	return NewRepo(db)
}

func seed(t *testing.T, r *Repo, items ...models.Exhibitor) {
	t.Helper()
	for _, e := range items {
		require.NoError(t, r.Create(context.Background(), e))
	}
}

func TestListOrderedByName(t *testing.T) {
	r := testRepo(t)
	seed(t, r,
		models.Exhibitor{ID: "b", Name: "Beta Farm", Category: models.CategoryFarmer},
		models.Exhibitor{ID: "a", Name: "Alpha Cafe", Category: models.CategoryCafe},
		models.Exhibitor{ID: "c", Name: "Gamma Foods", Category: models.CategoryFood},
	)

	got, err := r.List(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "Alpha Cafe", got[0].Name)
	assert.Equal(t, "Beta Farm", got[1].Name)
	assert.Equal(t, "Gamma Foods", got[2].Name)
}

func TestListCategoryFilter(t *testing.T) {
	r := testRepo(t)
	seed(t, r,
		models.Exhibitor{ID: "a", Name: "A", Category: models.CategoryFarmer},
		models.Exhibitor{ID: "b", Name: "B", Category: models.CategoryFood},
	)

	got, err := r.List(context.Background(), string(models.CategoryFarmer))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].ID)

	// unknown category matches nothing rather than failing
	got, err = r.List(context.Background(), "骨董品")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestGetByIDMissing(t *testing.T) {
	r := testRepo(t)
	got, err := r.GetByID(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCreateAndGetRoundTrip(t *testing.T) {
	r := testRepo(t)
	in := models.Exhibitor{
		ID:          "x1",
		Name:        "Farm A",
		Category:    models.CategoryFarmer,
		ShortDesc:   "short",
		LongDesc:    "long",
		ImageURL:    "exhibitors/1_abc_photo.jpg",
		WebsiteURL:  "https://example.com",
		Address:     "東京都",
		FacebookURL: "https://facebook.com/farma",
	}
	seed(t, r, in)

	got, err := r.GetByID(context.Background(), "x1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, in, *got)
}

func TestUpdate(t *testing.T) {
	r := testRepo(t)
	seed(t, r, models.Exhibitor{ID: "x1", Name: "Old", Category: models.CategoryFarmer})

	err := r.Update(context.Background(), models.Exhibitor{
		ID: "x1", Name: "New", Category: models.CategoryCafe, ShortDesc: "s",
	})
	require.NoError(t, err)

	got, err := r.GetByID(context.Background(), "x1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "New", got.Name)
	assert.Equal(t, models.CategoryCafe, got.Category)
}

func TestUpdateMissingFails(t *testing.T) {
	r := testRepo(t)
	err := r.Update(context.Background(), models.Exhibitor{ID: "ghost", Name: "X", Category: models.CategoryFood})
	assert.Error(t, err)
}

func TestDelete(t *testing.T) {
	r := testRepo(t)
	seed(t, r, models.Exhibitor{ID: "x1", Name: "A", Category: models.CategoryFarmer})

	ok, err := r.Delete(context.Background(), "x1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = r.Delete(context.Background(), "x1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestUpsertIdempotent(t *testing.T) {
	r := testRepo(t)
	e := models.Exhibitor{ID: "x1", Name: "A", Category: models.CategoryFarmer, ShortDesc: "v1"}
	require.NoError(t, r.Upsert(context.Background(), e))

	e.ShortDesc = "v2"
	require.NoError(t, r.Upsert(context.Background(), e))

	got, err := r.List(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "v2", got[0].ShortDesc)
}
