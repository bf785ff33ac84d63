package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDreamService_Search(t *testing.T) {
	service := NewDreamService()

	t.Run("exact keyword", func(t *testing.T) {
		found := service.Search("งู")
		require.NotEmpty(t, found)
		assert.Equal(t, "งู", found[0].Keyword)
		assert.NotEmpty(t, found[0].TwoDigit)
		assert.NotEmpty(t, found[0].ThreeDigit)
	})

	t.Run("free text containing a keyword matches", func(t *testing.T) {
		found := service.Search("ฝันเห็นงูตัวใหญ่")
		require.NotEmpty(t, found)
		keywords := make([]string, 0, len(found))
		for _, e := range found {
			keywords = append(keywords, e.Keyword)
		}
		assert.Contains(t, keywords, "งู")
	})

	t.Run("short query contained in a keyword matches", func(t *testing.T) {
		found := service.Search("พระจันทร์")
		require.NotEmpty(t, found)
		// Also picks up "พระ" since the keyword is contained in the query.
		keywords := make([]string, 0, len(found))
		for _, e := range found {
			keywords = append(keywords, e.Keyword)
		}
		assert.Contains(t, keywords, "พระจันทร์")
		assert.Contains(t, keywords, "พระ")
	})

	t.Run("whitespace is trimmed", func(t *testing.T) {
		assert.Equal(t, service.Search("ช้าง"), service.Search("  ช้าง  "))
	})

	t.Run("no match is an empty result, not an error", func(t *testing.T) {
		assert.Empty(t, service.Search("ยานอวกาศ"))
	})

	t.Run("empty query returns nothing", func(t *testing.T) {
		assert.Nil(t, service.Search(""))
		assert.Nil(t, service.Search("   "))
	})
}

func TestDreamService_Suggestions(t *testing.T) {
	service := NewDreamService()

	t.Run("popular keywords all resolve", func(t *testing.T) {
		for _, keyword := range service.PopularDreams() {
			assert.NotEmpty(t, service.Search(keyword), "popular dream %q finds nothing", keyword)
		}
	})

	t.Run("every entry carries a known category", func(t *testing.T) {
		known := map[string]bool{}
		for _, c := range service.Categories() {
			known[c.ID] = true
		}
		for _, e := range service.entries {
			assert.True(t, known[e.Category], "entry %q has unknown category %q", e.Keyword, e.Category)
		}
	})
}
