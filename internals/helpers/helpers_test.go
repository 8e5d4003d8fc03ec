// file: internals/helpers/helpers_test.go
package helper

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterAllowedFields(t *testing.T) {
	allow := map[string]string{
		"full_name": "orphan_full_name",
		"notes":     "orphan_notes",
	}

	raw := map[string]any{
		"full_name":  "Ahmad",
		"notes":      nil,
		"orphan_id":  99,
		"is_deleted": true,
	}

	out := FilterAllowedFields(raw, allow)

	assert.Len(t, out, 2)
	assert.Equal(t, "Ahmad", out["orphan_full_name"])
	assert.Contains(t, out, "orphan_notes")
	assert.NotContains(t, out, "orphan_id")
	assert.NotContains(t, out, "is_deleted")
}

func TestFilterAllowedFields_EmptyBody(t *testing.T) {
	out := FilterAllowedFields(map[string]any{}, map[string]string{"a": "col_a"})
	assert.Empty(t, out)
}

func TestBuildPagination(t *testing.T) {
	p := Paging{Page: 2, PerPage: 20, Offset: 20, Limit: 20}
	pg := BuildPagination(45, p, 20)

	assert.Equal(t, 3, pg.TotalPages)
	assert.True(t, pg.HasNext)
	assert.True(t, pg.HasPrev)
	assert.Equal(t, int64(45), pg.Total)
	assert.Equal(t, 20, pg.Count)
}

func TestBuildPagination_LastPage(t *testing.T) {
	p := Paging{Page: 3, PerPage: 20, Offset: 40, Limit: 20}
	pg := BuildPagination(45, p, 5)

	assert.False(t, pg.HasNext)
	assert.True(t, pg.HasPrev)
	assert.Equal(t, 5, pg.Count)
}

func TestGenerateUniqueFilename(t *testing.T) {
	name := GenerateUniqueFilename("foto anak (1).jpg")

	assert.True(t, strings.HasSuffix(name, "foto_anak_1_.jpg"))
	assert.NotEqual(t, name, GenerateUniqueFilename("foto anak (1).jpg"))
}

func TestIsValidAttachmentCategory(t *testing.T) {
	assert.True(t, IsValidAttachmentCategory("photos"))
	assert.True(t, IsValidAttachmentCategory("medical"))
	assert.False(t, IsValidAttachmentCategory("secrets"))
	assert.False(t, IsValidAttachmentCategory(""))
}
