package common

// IssueError marks an issue that blocks the step
const IssueError = "error"

// ValidationIssue represents a single validation issue
type ValidationIssue struct {
	Type    string `json:"type"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// FieldErrors collapses error issues into one message per field.
// The first issue reported for a field wins.
func FieldErrors(issues []ValidationIssue) map[string]string {
	out := make(map[string]string)
	for _, issue := range issues {
		if issue.Type != IssueError || issue.Field == "" {
			continue
		}
		if _, exists := out[issue.Field]; !exists {
			out[issue.Field] = issue.Message
		}
	}
	return out
}
