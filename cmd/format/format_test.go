package format

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fridagar/fridagar/calendar"
	"github.com/fridagar/fridagar/utils"
)

var entries = []calendar.Entry{
	{Date: calendar.Date{Year: 2023, Month: time.December, Day: 23}, Name: "Þorláksmessa"},
	{Date: calendar.Date{Year: 2023, Month: time.December, Day: 24}, Name: "Aðfangadagur", Holiday: true, HalfDay: true},
	{Date: calendar.Date{Year: 2023, Month: time.December, Day: 25}, Name: "Jóladagur", Holiday: true},
}

func TestEntriesTable(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	require.NoError(t, Entries(&buf, utils.FormatTable, entries))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, []string{"DATE", "WEEKDAY", "NAME", "TYPE"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"2023-12-23", "Saturday", "Þorláksmessa", "observance"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"2023-12-24", "Sunday", "Aðfangadagur", "half", "day"}, strings.Fields(lines[2]))
	assert.Equal(t, []string{"2023-12-25", "Monday", "Jóladagur", "holiday"}, strings.Fields(lines[3]))
}

func TestEntriesJSON(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	require.NoError(t, Entries(&buf, utils.FormatJSON, entries[1:2]))
	assert.JSONEq(t, `[{"date":"2023-12-24","name":"Aðfangadagur","holiday":true,"halfDay":true}]`, buf.String())

	buf.Reset()
	require.NoError(t, Entries(&buf, utils.FormatJSON, nil))
	assert.JSONEq(t, `[]`, buf.String())
}

func TestEntriesCSV(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	require.NoError(t, Entries(&buf, utils.FormatCSV, entries))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "date,weekday,name,holiday,half_day", lines[0])
	assert.Equal(t, "2023-12-24,Sunday,Aðfangadagur,true,true", lines[2])
	assert.Equal(t, "2023-12-25,Monday,Jóladagur,true,false", lines[3])
}

func TestDate(t *testing.T) {
	t.Parallel()
	d := calendar.Date{Year: 2023, Month: time.April, Day: 9}

	var buf bytes.Buffer
	require.NoError(t, Date(&buf, utils.FormatTable, d))
	assert.Equal(t, "2023-04-09\n", buf.String())

	buf.Reset()
	require.NoError(t, Date(&buf, utils.FormatJSON, d))
	assert.JSONEq(t, `{"date":"2023-04-09"}`, buf.String())
}

func TestUnknownFormat(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	assert.Error(t, Entries(&buf, "xml", entries))
	assert.Error(t, Date(&buf, "xml", entries[0].Date))
}
