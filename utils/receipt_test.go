package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vd437/quick-cash-control/models"
)

func TestReceiptHTML(t *testing.T) {
	sale := models.Sale{
		ID:          12,
		ProductName: "لابتوب ديل XPS 13",
		Quantity:    2,
		UnitPrice:   4999.99,
		TotalPrice:  9999.98,
		Date:        time.Date(2024, 6, 1, 18, 45, 0, 0, time.UTC),
	}

	html, err := ReceiptHTML(sale)
	require.NoError(t, err)

	assert.Contains(t, html, "Quick Cash Control")
	assert.Contains(t, html, "Receipt #: 12")
	assert.Contains(t, html, "June 1, 2024 18:45")
	assert.Contains(t, html, sale.ProductName)
	assert.Contains(t, html, "2x")
	assert.Contains(t, html, "$4,999.99")
	assert.Contains(t, html, "Total: $9,999.98")
}
