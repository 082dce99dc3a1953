package utils

import (
	"bytes"
	"encoding/csv"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/vd437/quick-cash-control/models"
)

// FormatCurrency renders a USD amount with thousands separators, e.g.
// "$4,999.99".
func FormatCurrency(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	s := strconv.FormatFloat(amount, 'f', 2, 64)
	dot := strings.Index(s, ".")
	intPart, frac := s[:dot], s[dot:]

	var b strings.Builder
	b.WriteString(sign)
	b.WriteString("$")
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	b.WriteString(frac)
	return b.String()
}

// FormatDate renders a timestamp for display. The long form carries the
// time of day, the short form is date only.
func FormatDate(t time.Time, long bool) string {
	if long {
		return t.Format("January 2, 2006 15:04")
	}
	return t.Format("Jan 2, 2006")
}

func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// SalesCSV renders sales as CSV with a header row, CRLF line endings and
// the denormalized sale fields only.
func SalesCSV(sales []models.Sale) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.UseCRLF = true

	if err := w.Write([]string{"id", "date", "product", "quantity", "unit_price", "total_price"}); err != nil {
		return "", err
	}
	for _, s := range sales {
		record := []string{
			strconv.Itoa(s.ID),
			s.Date.Format(time.RFC3339),
			s.ProductName,
			strconv.Itoa(s.Quantity),
			strconv.FormatFloat(s.UnitPrice, 'f', 2, 64),
			strconv.FormatFloat(s.TotalPrice, 'f', 2, 64),
		}
		if err := w.Write(record); err != nil {
			return "", err
		}
	}
	w.Flush()
	return buf.String(), w.Error()
}
