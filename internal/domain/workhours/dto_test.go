package workhours

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tracklight/workhours-backend-go/internal/pkg/validator"
)

func fieldErrors(t *testing.T, err error) map[string]string {
	t.Helper()
	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	return errs.ToMap()
}

func TestCreateEntryRequest_Validate(t *testing.T) {
	req := CreateEntryRequest{Date: "2024-07-10", StartTime: "09:00", EndTime: "17:00"}
	assert.NoError(t, req.Validate())
}

func TestCreateEntryRequest_Validate_FormatErrorsPerField(t *testing.T) {
	req := CreateEntryRequest{Date: "2024-07-10", StartTime: "9am", EndTime: "17:00"}
	fields := fieldErrors(t, req.Validate())
	assert.Contains(t, fields, "start_time")
	assert.NotContains(t, fields, "end_time")

	req = CreateEntryRequest{Date: "2024-07-10", StartTime: "09:00", EndTime: "25:00"}
	fields = fieldErrors(t, req.Validate())
	assert.Contains(t, fields, "end_time")
	assert.NotContains(t, fields, "start_time")
}

// Ordering violations, including the zero-length interval, surface on
// end_time through the same check entries get at the service layer.
func TestCreateEntryRequest_Validate_OrderingError(t *testing.T) {
	req := CreateEntryRequest{Date: "2024-07-10", StartTime: "10:00", EndTime: "10:00"}
	fields := fieldErrors(t, req.Validate())
	assert.Equal(t, "end_time must be after start_time", fields["end_time"])

	req = CreateEntryRequest{Date: "2024-07-10", StartTime: "12:00", EndTime: "09:00"}
	fields = fieldErrors(t, req.Validate())
	assert.Contains(t, fields, "end_time")
}

func TestUpdateDefaultsRequest_Validate(t *testing.T) {
	req := UpdateDefaultsRequest{Entries: []TemplateRequest{
		{StartTime: "09:00", EndTime: "13:00"},
		{StartTime: "14:00", EndTime: "x"},
	}}
	fields := fieldErrors(t, req.Validate())
	assert.Contains(t, fields, "end_time")
}
