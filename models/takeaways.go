package models

// Takeaway category names. The set is closed: extraction never emits a
// key outside this list, and empty categories are omitted entirely.
const (
	CategoryMainPoints       = "Main Points"
	CategoryKeyFindings      = "Key Findings"
	CategoryInsights         = "Insights"
	CategoryActionItems      = "Action Items"
	CategoryTechnicalDetails = "Technical Details"
	CategoryQuestions        = "Questions"
)

// Takeaways maps a category name to its extracted sentences, in document
// order, capped per category.
type Takeaways map[string][]string

// Categories lists every valid takeaway category.
func Categories() []string {
	return []string{
		CategoryMainPoints,
		CategoryKeyFindings,
		CategoryInsights,
		CategoryActionItems,
		CategoryTechnicalDetails,
		CategoryQuestions,
	}
}
