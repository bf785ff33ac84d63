package services

import (
	"strings"

	"lekded/internal/data"
	"lekded/internal/models"
)

// DreamService answers free-text dream queries against the static
// dictionary.
type DreamService struct {
	entries []models.DreamEntry
}

func NewDreamService() *DreamService {
	return &DreamService{entries: data.Dreams}
}

// Search returns every entry whose keyword matches the query. Matching is
// case-insensitive and runs in both directions: a long free-text query
// hits short keywords it contains, and a short query hits longer
// keywords containing it. An empty or whitespace query returns nil, and
// no match is a normal empty result, not an error.
func (s *DreamService) Search(query string) []models.DreamEntry {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	var found []models.DreamEntry
	for _, e := range s.entries {
		kw := strings.ToLower(e.Keyword)
		if strings.Contains(q, kw) || strings.Contains(kw, q) {
			found = append(found, e)
		}
	}
	return found
}

// PopularDreams returns the fixed quick-search keyword list.
func (s *DreamService) PopularDreams() []string {
	return data.PopularDreams
}

// Categories returns the fixed category list.
func (s *DreamService) Categories() []models.DreamCategory {
	return data.DreamCategories
}
