package models

// ValidationStats summarizes what a validation pass walked
type ValidationStats struct {
	TotalPages  int `json:"totalPages" yaml:"totalPages"`
	TotalEvents int `json:"totalEvents" yaml:"totalEvents"`
	TotalImages int `json:"totalImages" yaml:"totalImages"`

	// One entry per problem found, so a name can repeat
	PagesWithIssues  []string `json:"pagesWithIssues" yaml:"pagesWithIssues"`
	EventsWithIssues []string `json:"eventsWithIssues" yaml:"eventsWithIssues"` // "<page>/<event>"
}

// ValidationResult is the report produced by the asset validator
type ValidationResult struct {
	IsValid  bool            `json:"isValid" yaml:"isValid"`
	Errors   []string        `json:"errors" yaml:"errors"`
	Warnings []string        `json:"warnings" yaml:"warnings"`
	Stats    ValidationStats `json:"stats" yaml:"stats"`
}

// NewValidationResult returns an empty, valid result with non-nil slices
func NewValidationResult() ValidationResult {
	return ValidationResult{
		IsValid:  true,
		Errors:   []string{},
		Warnings: []string{},
		Stats: ValidationStats{
			PagesWithIssues:  []string{},
			EventsWithIssues: []string{},
		},
	}
}

// AddError records an error and marks the result invalid
func (r *ValidationResult) AddError(msg string) {
	r.Errors = append(r.Errors, msg)
	r.IsValid = false
}

// AddWarning records a warning; warnings never affect validity
func (r *ValidationResult) AddWarning(msg string) {
	r.Warnings = append(r.Warnings, msg)
}

// MarkPage records a page with an issue
func (r *ValidationResult) MarkPage(page string) {
	r.Stats.PagesWithIssues = append(r.Stats.PagesWithIssues, page)
}

// MarkEvent records an event with an issue as "<page>/<event>"
func (r *ValidationResult) MarkEvent(page, event string) {
	r.Stats.EventsWithIssues = append(r.Stats.EventsWithIssues, page+"/"+event)
}

// Finalize sets IsValid from the error list
func (r *ValidationResult) Finalize() {
	r.IsValid = len(r.Errors) == 0
}
