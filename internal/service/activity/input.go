package activity

// ListActivitiesInput holds the optional filter for the eligibility
// listing. An empty AttributeCode means all attributes.
type ListActivitiesInput struct {
	AttributeCode string
}
