package testutil

import (
	"testing"

	"vaxq-go/internal/model"
)

// NewRequest builds a valid request with the given id and patient name,
// failing the test if the fixture values stop validating.
func NewRequest(t *testing.T, id, name string) *model.Request {
	t.Helper()

	r, err := model.NewFromFields([]string{id, name, "380501112233", "pfizer", "2021-11-20", "09:00", "09:30"})
	if err != nil {
		t.Fatalf("building test request: %v", err)
	}
	return r
}
