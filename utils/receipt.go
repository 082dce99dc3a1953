package utils

import (
	"bytes"
	"html/template"

	"github.com/vd437/quick-cash-control/models"
)

var receiptTmpl = template.Must(template.New("receipt").Funcs(template.FuncMap{
	"currency": FormatCurrency,
}).Parse(`<html>
  <head>
    <title>Receipt #{{.Sale.ID}}</title>
    <style>
      body { font-family: Arial, sans-serif; margin: 0; padding: 20px; font-size: 12px; }
      .receipt { width: 300px; margin: 0 auto; }
      .header, .footer { text-align: center; margin-bottom: 10px; }
      .company-name { font-size: 16px; font-weight: bold; }
      .divider { border-top: 1px dashed #000; margin: 10px 0; }
      .item-row { display: flex; justify-content: space-between; margin: 5px 0; }
      .total-row { font-weight: bold; margin-top: 10px; text-align: right; }
      .info-row { margin: 5px 0; }
    </style>
  </head>
  <body>
    <div class="receipt">
      <div class="header">
        <div class="company-name">Quick Cash Control</div>
        <div>123 Business Ave.</div>
        <div>contact@quickcashcontrol.com</div>
      </div>
      <div class="divider"></div>
      <div class="info-row">Receipt #: {{.Sale.ID}}</div>
      <div class="info-row">Date: {{.Date}}</div>
      <div class="divider"></div>
      <div class="item-row">
        <div style="flex: 3;">{{.Sale.ProductName}}</div>
        <div style="flex: 1; text-align: right;">{{.Sale.Quantity}}x</div>
        <div style="flex: 1; text-align: right;">{{currency .Sale.UnitPrice}}</div>
      </div>
      <div class="divider"></div>
      <div class="total-row">Total: {{currency .Sale.TotalPrice}}</div>
      <div class="divider"></div>
      <div class="footer">Thank you for your business!</div>
    </div>
  </body>
</html>
`))

// ReceiptHTML renders the printable receipt for a sale.
func ReceiptHTML(sale models.Sale) (string, error) {
	var buf bytes.Buffer
	err := receiptTmpl.Execute(&buf, map[string]interface{}{
		"Sale": sale,
		"Date": FormatDate(sale.Date, true),
	})
	return buf.String(), err
}
