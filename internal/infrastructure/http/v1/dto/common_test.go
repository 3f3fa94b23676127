package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatTimestamp(t *testing.T) {
	moscow := time.FixedZone("MSK", 3*60*60)
	ts := time.Date(2024, 6, 15, 12, 30, 45, 0, moscow)

	// Always rendered in UTC.
	assert.Equal(t, "2024-06-15 09:30:45", FormatTimestamp(ts))

	assert.Nil(t, FormatTimestampPtr(nil))
	got := FormatTimestampPtr(&ts)
	require.NotNil(t, got)
	assert.Equal(t, "2024-06-15 09:30:45", *got)
}

func TestFormatDatePtr(t *testing.T) {
	assert.Nil(t, FormatDatePtr(nil))

	d := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	got := FormatDatePtr(&d)
	require.NotNil(t, got)
	assert.Equal(t, "2024-06-15", *got)
}

func TestUpdateEquipmentRequest_Dates(t *testing.T) {
	mounting := "2024-06-15"
	from := "2024-01-01"
	req := UpdateEquipmentRequest{MountingDate: &mounting, SkziFrom: &from}

	mountingDate, skziFrom, skziTo, err := req.Dates()
	require.NoError(t, err)
	require.NotNil(t, mountingDate)
	assert.Equal(t, time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), *mountingDate)
	require.NotNil(t, skziFrom)
	assert.Nil(t, skziTo)
}

func TestUpdateEquipmentRequest_Dates_Invalid(t *testing.T) {
	bad := "15.06.2024"
	req := UpdateEquipmentRequest{MountingDate: &bad}

	_, _, _, err := req.Dates()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid date format, expected YYYY-MM-DD")
}

func TestNewListResponse_NeverNull(t *testing.T) {
	resp := NewListResponse[string](nil)
	require.NotNil(t, resp.Items)
	assert.Equal(t, 0, resp.Total)

	resp = NewListResponse([]string{"a", "b"})
	assert.Equal(t, 2, resp.Total)
}
