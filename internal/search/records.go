package search

import "github.com/jagritimaurya743-source/college-society-management/internal/domain"

// SocietySchema searches societies by name and description, filtered by category.
var SocietySchema = Schema[domain.Society]{
	Text: []func(domain.Society) string{
		func(s domain.Society) string { return s.Name },
		func(s domain.Society) string { return s.Description },
	},
	Categorical: map[Field]Categorical[domain.Society]{
		FieldCategory: {
			Value:    func(s domain.Society) string { return string(s.Category) },
			Wildcard: domain.AllCategories,
		},
	},
}

// EventSchema searches events by title, description and owning society,
// filtered by status and type. Status filters are offered capitalised
// ("Upcoming") while records carry the lower-case form.
var EventSchema = Schema[domain.Event]{
	Text: []func(domain.Event) string{
		func(e domain.Event) string { return e.Title },
		func(e domain.Event) string { return e.Description },
		func(e domain.Event) string { return e.Society },
	},
	Categorical: map[Field]Categorical[domain.Event]{
		FieldStatus: {
			Value:    func(e domain.Event) string { return string(e.Status) },
			Wildcard: domain.AllStatuses,
			FoldCase: true,
		},
		FieldType: {
			Value:    func(e domain.Event) string { return e.Type },
			Wildcard: domain.AllTypes,
		},
	},
}

// SocietyCriteria is the directory page selection.
type SocietyCriteria struct {
	Query    string
	Category string
}

// EventCriteria is the events page selection.
type EventCriteria struct {
	Query  string
	Status string
	Type   string
}

// Societies applies c to records.
func Societies(records []domain.Society, c SocietyCriteria) []domain.Society {
	return SocietySchema.Filter(records, c.Query, map[Field]string{
		FieldCategory: c.Category,
	})
}

// Events applies c to records.
func Events(records []domain.Event, c EventCriteria) []domain.Event {
	return EventSchema.Filter(records, c.Query, map[Field]string{
		FieldStatus: c.Status,
		FieldType:   c.Type,
	})
}
