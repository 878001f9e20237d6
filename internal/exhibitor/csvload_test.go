package exhibitor

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketboard/pkg/models"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "exhibitors.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadValidRow(t *testing.T) {
	path := writeCSV(t, strings.Join([]string{
		"id,name,category,shortDesc,longDesc,imageUrl,websiteUrl",
		`1,Farm A,農家,x,y,z,https://example.com`,
	}, "\n"))

	got := Load(path)
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "Farm A", got[0].Name)
	assert.Equal(t, models.CategoryFarmer, got[0].Category)
	assert.Equal(t, "https://example.com", got[0].WebsiteURL)
}

func TestLoadSkipsMissingRequiredField(t *testing.T) {
	path := writeCSV(t, strings.Join([]string{
		"id,name,category,shortDesc,longDesc,imageUrl",
		`2,,農家,x,y,z`,
	}, "\n"))

	assert.Empty(t, Load(path))
}

func TestLoadSkipsInvalidCategory(t *testing.T) {
	path := writeCSV(t, strings.Join([]string{
		"id,name,category,shortDesc,longDesc,imageUrl",
		`3,Shop,骨董品,x,y,z`,
	}, "\n"))

	assert.Empty(t, Load(path))
}

func TestLoadSkipIsIndependentOfRowPosition(t *testing.T) {
	path := writeCSV(t, strings.Join([]string{
		"id,name,category,shortDesc,longDesc,imageUrl",
		`1,Bad Category,骨董品,x,y,z`,
		`2,Farm B,農家,x,y,z`,
		`3,,飲食,x,y,z`,
		`4,Cafe C,カフェ,x,y,z`,
	}, "\n"))

	got := Load(path)
	require.Len(t, got, 2)
	assert.Equal(t, "Farm B", got[0].Name)
	assert.Equal(t, "Cafe C", got[1].Name)
}

func TestLoadTrimsFields(t *testing.T) {
	path := writeCSV(t, strings.Join([]string{
		"id,name,category,shortDesc,longDesc,imageUrl,address",
		`1,  Farm A  , 農家 , x , y , z ,  東京都  `,
	}, "\n"))

	got := Load(path)
	require.Len(t, got, 1)
	assert.Equal(t, "Farm A", got[0].Name)
	assert.Equal(t, models.CategoryFarmer, got[0].Category)
	assert.Equal(t, "東京都", got[0].Address)
}

func TestLoadOptionalFieldsAbsent(t *testing.T) {
	path := writeCSV(t, strings.Join([]string{
		"id,name,category,shortDesc,longDesc,imageUrl",
		`1,Farm A,農家,x,y,z`,
	}, "\n"))

	got := Load(path)
	require.Len(t, got, 1)
	assert.Empty(t, got[0].WebsiteURL)
	assert.Empty(t, got[0].Address)
	assert.Empty(t, got[0].FacebookURL)
}

func TestLoadMissingFileYieldsEmptyCatalog(t *testing.T) {
	got := Load(filepath.Join(t.TempDir(), "does-not-exist.csv"))
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestLoadMalformedRowDoesNotAbort(t *testing.T) {
	path := writeCSV(t, strings.Join([]string{
		"id,name,category,shortDesc,longDesc,imageUrl",
		`1,Fa"rm,農家,x,y,z`,
		`2,Farm B,農家,x,y,z`,
	}, "\n"))

	got := Load(path)
	require.Len(t, got, 1)
	assert.Equal(t, "Farm B", got[0].Name)
}
