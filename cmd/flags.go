package cmd

import (
	"strings"

	"github.com/inovacc/repovault/internal/core"
	"github.com/inovacc/repovault/internal/model"
	"github.com/spf13/pflag"
)

// sortFieldValue is a pflag.Value accepting model.SortField names and aliases.
type sortFieldValue struct {
	field *model.SortField
}

var _ pflag.Value = (*sortFieldValue)(nil)

func newSortFieldValue(p *model.SortField) *sortFieldValue {
	return &sortFieldValue{field: p}
}

func (v *sortFieldValue) String() string {
	if v.field == nil {
		return ""
	}

	return string(*v.field)
}

func (v *sortFieldValue) Set(s string) error {
	f, err := model.ParseSortField(s)
	if err != nil {
		return err
	}

	*v.field = f

	return nil
}

func (v *sortFieldValue) Type() string {
	return "field"
}

// sortOrderValue is a pflag.Value accepting asc or desc.
type sortOrderValue struct {
	order *model.SortOrder
}

var _ pflag.Value = (*sortOrderValue)(nil)

func newSortOrderValue(p *model.SortOrder) *sortOrderValue {
	return &sortOrderValue{order: p}
}

func (v *sortOrderValue) String() string {
	if v.order == nil {
		return ""
	}

	return string(*v.order)
}

func (v *sortOrderValue) Set(s string) error {
	o, err := model.ParseSortOrder(s)
	if err != nil {
		return err
	}

	*v.order = o

	return nil
}

func (v *sortOrderValue) Type() string {
	return "order"
}

// formatValue is a pflag.Value accepting json or yaml.
type formatValue struct {
	format *core.Format
}

var _ pflag.Value = (*formatValue)(nil)

func newFormatValue(p *core.Format) *formatValue {
	return &formatValue{format: p}
}

func (v *formatValue) String() string {
	if v.format == nil {
		return ""
	}

	return string(*v.format)
}

func (v *formatValue) Set(s string) error {
	f, err := core.ParseFormat(s)
	if err != nil {
		return err
	}

	*v.format = f

	return nil
}

func (v *formatValue) Type() string {
	return "format"
}

// sortFieldNames is used in flag help text.
func sortFieldNames() string {
	names := make([]string, 0, len(model.SortFields))
	for _, f := range model.SortFields {
		names = append(names, string(f))
	}

	return strings.Join(names, ", ")
}

// queryFlags are shared by list and search.
type queryFlags struct {
	tags    []string
	sort    model.SortField
	order   model.SortOrder
	page    int
	perPage int
	json    bool
}

func (q *queryFlags) register(fs *pflag.FlagSet) {
	fs.StringSliceVarP(&q.tags, "tag", "t", nil, "Only show repositories carrying every given tag (repeatable)")
	fs.Var(newSortFieldValue(&q.sort), "sort", "Sort field: "+sortFieldNames()+" (default from settings)")
	fs.Var(newSortOrderValue(&q.order), "order", "Sort order: asc or desc (default from settings)")
	fs.IntVar(&q.page, "page", 1, "Page number, starting at 1")
	fs.IntVar(&q.perPage, "per-page", 0, "Results per page (default from settings)")
	fs.BoolVar(&q.json, "json", false, "Output in JSON format")
}

func (q *queryFlags) query(text string) model.Query {
	return model.Query{
		Text:    text,
		Tags:    q.tags,
		Sort:    q.sort,
		Order:   q.order,
		Page:    q.page,
		PerPage: q.perPage,
	}
}
