package model

// Query describes a filtered, sorted and paginated listing.
// Zero values fall back to the persisted Settings.
type Query struct {
	Text    string
	Tags    []string
	Sort    SortField
	Order   SortOrder
	Page    int // 1-based
	PerPage int
}

// Page is one page of a Query result.
type Page struct {
	Items   []SavedRepository `json:"items" yaml:"items"`
	Total   int               `json:"total" yaml:"total"`
	Page    int               `json:"page" yaml:"page"`
	PerPage int               `json:"perPage" yaml:"perPage"`
	Pages   int               `json:"pages" yaml:"pages"`
}
