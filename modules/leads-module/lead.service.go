package leads_module

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"leadcapture/database/entities"
)

var exportColumns = []string{"id", "full_name", "email", "phone", "interest", "registered_at"}

// PhoneDuplicate is a phone number shared by more than one lead.
type PhoneDuplicate struct {
	Phone  string   `json:"phone"`
	Count  int      `json:"count"`
	Emails []string `json:"emails"`
}

func leadsFrame(leads []entities.Lead) dataframe.DataFrame {
	records := make([][]string, 0, len(leads)+1)
	records = append(records, exportColumns)
	for _, l := range leads {
		records = append(records, []string{
			strconv.FormatUint(uint64(l.ID), 10),
			l.FullName,
			l.Email,
			l.Phone,
			l.Interest,
			l.RegisteredAt.UTC().Format(time.RFC3339),
		})
	}
	return dataframe.LoadRecords(records,
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.NaNValues(nil),
	)
}

// ExportCSV writes leads as CSV in the order given, header first.
func ExportCSV(w io.Writer, leads []entities.Lead) error {
	if len(leads) == 0 {
		_, err := io.WriteString(w, strings.Join(exportColumns, ",")+"\n")
		return err
	}
	df := leadsFrame(leads)
	if df.Err != nil {
		return fmt.Errorf("build lead frame: %w", df.Err)
	}
	return df.WriteCSV(w)
}

// DuplicatePhones groups leads by phone and keeps the groups with more than one row.
// Grouping runs on the column records: gota's GroupBy rejects a string cell
// holding "NaN", which is a valid phone here.
func DuplicatePhones(leads []entities.Lead) ([]PhoneDuplicate, error) {
	dups := []PhoneDuplicate{}
	if len(leads) < 2 {
		return dups, nil
	}
	df := leadsFrame(leads)
	if df.Err != nil {
		return nil, fmt.Errorf("build lead frame: %w", df.Err)
	}
	phones := df.Col("phone").Records()
	emails := df.Col("email").Records()
	byPhone := make(map[string][]string)
	for i, phone := range phones {
		byPhone[phone] = append(byPhone[phone], emails[i])
	}
	for phone, shared := range byPhone {
		if len(shared) < 2 {
			continue
		}
		sort.Strings(shared)
		dups = append(dups, PhoneDuplicate{Phone: phone, Count: len(shared), Emails: shared})
	}
	sort.Slice(dups, func(i, j int) bool { return dups[i].Phone < dups[j].Phone })
	return dups, nil
}
