package leads_module

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"leadcapture/database/entities"
)

var fixedTime = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func TestExportCSV(t *testing.T) {
	leads := []entities.Lead{
		{ID: 2, FullName: "Bea", Email: "bea@x.com", Phone: "555-2222", Interest: "Plan Pro", RegisteredAt: fixedTime.Add(time.Minute)},
		{ID: 1, FullName: "Ana, P", Email: "ana@x.com", Phone: "555-1111", Interest: "Plan Básico", RegisteredAt: fixedTime},
	}
	var buf bytes.Buffer
	require.NoError(t, ExportCSV(&buf, leads))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Equal(t, []string{
		"id,full_name,email,phone,interest,registered_at",
		"2,Bea,bea@x.com,555-2222,Plan Pro,2024-05-01T12:01:00Z",
		`1,"Ana, P",ana@x.com,555-1111,Plan Básico,2024-05-01T12:00:00Z`,
	}, lines)
}

func TestExportCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ExportCSV(&buf, nil))
	require.Equal(t, "id,full_name,email,phone,interest,registered_at\n", buf.String())
}

func TestDuplicatePhones(t *testing.T) {
	leads := []entities.Lead{
		{ID: 1, FullName: "A", Email: "a@x.com", Phone: "555-1", Interest: "X", RegisteredAt: fixedTime},
		{ID: 2, FullName: "B", Email: "b@x.com", Phone: "555-2", Interest: "X", RegisteredAt: fixedTime},
		{ID: 3, FullName: "C", Email: "c@x.com", Phone: "555-1", Interest: "Y", RegisteredAt: fixedTime},
		{ID: 4, FullName: "D", Email: "d@x.com", Phone: "555-3", Interest: "Y", RegisteredAt: fixedTime},
		{ID: 5, FullName: "E", Email: "e@x.com", Phone: "555-3", Interest: "Y", RegisteredAt: fixedTime},
		{ID: 6, FullName: "F", Email: "f@x.com", Phone: "555-3", Interest: "Y", RegisteredAt: fixedTime},
	}
	dups, err := DuplicatePhones(leads)
	require.NoError(t, err)
	require.Equal(t, []PhoneDuplicate{
		{Phone: "555-1", Count: 2, Emails: []string{"a@x.com", "c@x.com"}},
		{Phone: "555-3", Count: 3, Emails: []string{"d@x.com", "e@x.com", "f@x.com"}},
	}, dups)
}

func TestDuplicatePhonesTreatsNaNAsPlainText(t *testing.T) {
	leads := []entities.Lead{
		{ID: 1, FullName: "A", Email: "a@x.com", Phone: "NaN", Interest: "X", RegisteredAt: fixedTime},
		{ID: 2, FullName: "B", Email: "b@x.com", Phone: "NaN", Interest: "X", RegisteredAt: fixedTime},
		{ID: 3, FullName: "C", Email: "c@x.com", Phone: "123", Interest: "X", RegisteredAt: fixedTime},
	}
	dups, err := DuplicatePhones(leads)
	require.NoError(t, err)
	require.Equal(t, []PhoneDuplicate{{Phone: "NaN", Count: 2, Emails: []string{"a@x.com", "b@x.com"}}}, dups)

	dups, err = DuplicatePhones(leads[1:])
	require.NoError(t, err)
	require.Empty(t, dups)
}

func TestExportCSVKeepsNaNLikeValues(t *testing.T) {
	leads := []entities.Lead{
		{ID: 1, FullName: "NA", Email: "na@x.com", Phone: "NaN", Interest: "<nil>", RegisteredAt: fixedTime},
	}
	var buf bytes.Buffer
	require.NoError(t, ExportCSV(&buf, leads))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Equal(t, "1,NA,na@x.com,NaN,<nil>,2024-05-01T12:00:00Z", lines[1])
}

func TestDuplicatePhonesNone(t *testing.T) {
	dups, err := DuplicatePhones([]entities.Lead{{ID: 1, Phone: "1", Email: "a@x.com"}})
	require.NoError(t, err)
	require.Empty(t, dups)
	require.NotNil(t, dups)
}
