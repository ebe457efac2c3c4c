package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTimestampDecodesZonedAndNaive(t *testing.T) {
	var batch Batch
	err := json.Unmarshal([]byte(`{
		"id": "BATCH001",
		"equipment_id": "EQ001",
		"product_id": "500002",
		"start_time": "2024-03-04T08:00:00Z",
		"end_time": "2024-03-04T10:00:00.123456"
	}`), &batch)
	require.NoError(t, err)

	require.True(t, batch.StartTime.Equal(time.Date(2024, 3, 4, 8, 0, 0, 0, time.UTC)))
	require.Equal(t, time.Local, batch.EndTime.Location())
	require.Equal(t, 10, batch.EndTime.Hour())
}

func TestTimestampRejectsGarbage(t *testing.T) {
	var ts Timestamp
	require.Error(t, json.Unmarshal([]byte(`"yesterday"`), &ts))
	require.Error(t, json.Unmarshal([]byte(`42`), &ts))
	require.NoError(t, json.Unmarshal([]byte(`null`), &ts))
	require.True(t, ts.IsZero())
}

func TestBatchUpdateEncodesCalendarID(t *testing.T) {
	update := BatchUpdate{
		ID:         "BATCH001",
		Start:      NewTimestamp(time.Date(2024, 3, 4, 8, 0, 0, 0, time.UTC)),
		End:        NewTimestamp(time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)),
		CalendarID: "EQ002",
	}
	raw, err := json.Marshal(update)
	require.NoError(t, err)
	require.JSONEq(t, `{"id":"BATCH001","start":"2024-03-04T08:00:00Z","end":"2024-03-04T10:00:00Z","calendarId":"EQ002"}`, string(raw))
}
