package store

import (
	"cmp"
	"slices"
	"sort"
	"strings"

	"github.com/inovacc/repovault/internal/model"
)

// Search returns the records whose name, description or notes contain query
// (case-insensitive) and that carry every tag in tags. An empty query matches
// everything. Results keep storage order.
func (s *RepositoryStore) Search(query string, tags []string) []model.SavedRepository {
	return filter(s.ListAll(), query, tags)
}

func filter(recs []model.SavedRepository, query string, tags []string) []model.SavedRepository {
	needle := strings.ToLower(strings.TrimSpace(query))
	required := model.NormalizeTags(tags)

	out := make([]model.SavedRepository, 0, len(recs))

	for _, r := range recs {
		if !matchesText(r, needle) || !hasAllTags(r, required) {
			continue
		}

		out = append(out, r)
	}

	return out
}

func matchesText(r model.SavedRepository, needle string) bool {
	if needle == "" {
		return true
	}

	return strings.Contains(strings.ToLower(r.Name), needle) ||
		strings.Contains(strings.ToLower(r.Description), needle) ||
		strings.Contains(strings.ToLower(r.Notes), needle)
}

func hasAllTags(r model.SavedRepository, tags []string) bool {
	for _, t := range tags {
		if !r.HasTag(t) {
			return false
		}
	}

	return true
}

// DistinctTags returns the union of all record tags, sorted ascending.
func (s *RepositoryStore) DistinctTags() []string {
	seen := make(map[string]struct{})

	for _, r := range s.ListAll() {
		for _, t := range r.Tags {
			seen[t] = struct{}{}
		}
	}

	out := make([]string, 0, len(seen))
	for t := range seen {
		out = append(out, t)
	}

	sort.Strings(out)

	return out
}

// Sort returns a sorted copy of recs. The sort is stable. When sorting by
// lastViewedAt, never-viewed records come last in both directions; the
// direction only orders the viewed ones.
func Sort(recs []model.SavedRepository, field model.SortField, order model.SortOrder) []model.SavedRepository {
	out := slices.Clone(recs)
	desc := order == model.Descending

	slices.SortStableFunc(out, func(a, b model.SavedRepository) int {
		if field == model.SortByLastViewedAt {
			switch {
			case a.LastViewedAt == nil && b.LastViewedAt == nil:
				return 0
			case a.LastViewedAt == nil:
				return 1
			case b.LastViewedAt == nil:
				return -1
			}
		}

		c := compareBy(a, b, field)
		if desc {
			return -c
		}

		return c
	})

	return out
}

func compareBy(a, b model.SavedRepository, field model.SortField) int {
	switch field {
	case model.SortByName:
		if c := strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name)); c != 0 {
			return c
		}

		return strings.Compare(a.Name, b.Name)
	case model.SortByStars:
		return cmp.Compare(a.StarCount, b.StarCount)
	case model.SortBySavedAt:
		return a.SavedAt.Compare(b.SavedAt)
	case model.SortByLastViewedAt:
		return a.LastViewedAt.Compare(*b.LastViewedAt)
	default:
		return 0
	}
}

// Paginate returns the 1-based page of recs holding perPage items.
func Paginate(recs []model.SavedRepository, page, perPage int) model.Page {
	if perPage < 1 {
		perPage = 1
	}

	if page < 1 {
		page = 1
	}

	total := len(recs)
	pages := (total + perPage - 1) / perPage

	start := (page - 1) * perPage
	if start > total {
		start = total
	}

	end := min(start+perPage, total)

	items := make([]model.SavedRepository, 0, end-start)
	items = append(items, recs[start:end]...)

	return model.Page{
		Items:   items,
		Total:   total,
		Page:    page,
		PerPage: perPage,
		Pages:   pages,
	}
}

// Query filters, sorts and paginates the records. Unset sort and page size
// fields fall back to the persisted settings.
func (s *RepositoryStore) Query(q model.Query) model.Page {
	settings := s.GetSettings()

	field := q.Sort
	if !field.Valid() {
		field = settings.DefaultSortField
	}

	order := q.Order
	if !order.Valid() {
		order = settings.DefaultSortOrder
	}

	perPage := q.PerPage
	if perPage <= 0 {
		perPage = settings.ResultsPerPage
	}

	perPage = min(max(perPage, model.MinResultsPerPage), model.MaxResultsPerPage)

	matched := Sort(filter(s.ListAll(), q.Text, q.Tags), field, order)

	return Paginate(matched, q.Page, perPage)
}
