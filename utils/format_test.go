package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vd437/quick-cash-control/models"
)

func TestFormatCurrency(t *testing.T) {
	cases := map[float64]string{
		0:         "$0.00",
		5:         "$5.00",
		899.99:    "$899.99",
		4999.99:   "$4,999.99",
		1234567.5: "$1,234,567.50",
		-42.1:     "-$42.10",
	}
	for amount, want := range cases {
		assert.Equal(t, want, FormatCurrency(amount))
	}
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2024, 3, 7, 14, 5, 0, 0, time.UTC)
	assert.Equal(t, "Mar 7, 2024", FormatDate(d, false))
	assert.Equal(t, "March 7, 2024 14:05", FormatDate(d, true))
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 10.57, Round2(10.567))
	assert.Equal(t, 10.0, Round2(10.004))
}

func TestSalesCSV(t *testing.T) {
	date := time.Date(2024, 1, 2, 10, 30, 0, 0, time.UTC)
	sales := []models.Sale{
		{ID: 7, ProductName: "widget, deluxe", Quantity: 2, UnitPrice: 5, TotalPrice: 10, Date: date},
	}

	out, err := SalesCSV(sales)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\r\n"), "\r\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "id,date,product,quantity,unit_price,total_price", lines[0])
	// The comma in the product name must be quoted.
	assert.Equal(t, `7,2024-01-02T10:30:00Z,"widget, deluxe",2,5.00,10.00`, lines[1])
}

func TestSalesCSVEmpty(t *testing.T) {
	out, err := SalesCSV(nil)
	require.NoError(t, err)
	assert.Equal(t, "id,date,product,quantity,unit_price,total_price\r\n", out)
}
