package documents

import (
	"bytes"
	"html/template"
	"time"

	"catering_xpto/internal/domain/entities"
	"catering_xpto/pkg/money"
)

const contractHTMLTemplate = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <title>Catering Estimate {{.Invoice.ID}}</title>
  <style>
    body {
      margin: 0;
      padding: 40px;
      font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, Helvetica, Arial, sans-serif;
      color: #1a1f36;
      background: #f7f9fc;
    }
    .contract-card {
      background: #ffffff;
      max-width: 760px;
      margin: 0 auto;
      padding: 60px;
      box-shadow: 0 2px 5px rgba(0,0,0,0.04);
      border-radius: 4px;
    }
    h1 { margin: 0 0 8px 0; font-size: 24px; }
    .label {
      font-size: 11px;
      text-transform: uppercase;
      color: #8792a2;
      margin-bottom: 6px;
      font-weight: 600;
      letter-spacing: 0.3px;
    }
    .value { font-size: 14px; line-height: 1.5; }
    .meta-grid { display: flex; justify-content: space-between; margin: 32px 0; }
    .gov-badge {
      display: inline-block;
      padding: 3px 10px;
      font-size: 11px;
      font-weight: 600;
      text-transform: uppercase;
      background: #e8f0fe;
      color: #1a56db;
      border-radius: 3px;
    }
    table { width: 100%; border-collapse: collapse; margin-bottom: 30px; }
    th {
      text-align: left;
      text-transform: uppercase;
      font-size: 11px;
      color: #8792a2;
      border-bottom: 1px solid #e3e8ee;
      padding: 10px 0;
      font-weight: 600;
    }
    td { padding: 14px 0; border-bottom: 1px solid #e3e8ee; font-size: 14px; vertical-align: top; }
    .td-right { text-align: right; }
    .item-title { font-weight: 600; margin-bottom: 2px; }
    .item-sub { font-size: 12px; color: #697386; }
    .totals { display: flex; flex-direction: column; align-items: flex-end; }
    .total-row { display: flex; justify-content: space-between; width: 280px; padding: 6px 0; font-size: 14px; }
    .total-label { color: #697386; }
    .total-final { border-top: 1px solid #e3e8ee; margin-top: 10px; padding-top: 10px; font-weight: 700; font-size: 16px; }
    .section-title { font-size: 14px; font-weight: 700; margin: 40px 0 12px 0; }
    .footer { margin-top: 60px; font-size: 12px; color: #8792a2; border-top: 1px solid #e3e8ee; padding-top: 20px; }
  </style>
</head>
<body>
  <div class="contract-card">
    <h1>Catering Services Estimate</h1>
    <div class="value" style="color: #697386;">Reference {{.Invoice.ID}}</div>
    {{if .Invoice.IsGovernmentContract}}<div class="gov-badge" style="margin-top: 10px;">Government Contract</div>{{end}}

    <div class="meta-grid">
      <div>
        <div class="label">Prepared for</div>
        <div class="value">
          <strong>{{.Invoice.CustomerName}}</strong><br>
          {{.Invoice.CustomerEmail}}
        </div>
      </div>
      <div>
        <div class="label">Event date</div>
        <div class="value">{{formatDate .Invoice.EventDate}}</div>
        <div class="label" style="margin-top: 16px;">Service type</div>
        <div class="value">{{orDash .Invoice.ServiceType}}</div>
        <div class="label" style="margin-top: 16px;">Guest count</div>
        <div class="value">{{.Invoice.GuestCount}}</div>
      </div>
    </div>

    <table>
      <thead>
        <tr>
          <th style="width: 50%;">Description</th>
          <th class="td-right">Qty</th>
          <th class="td-right">Unit Price</th>
          <th class="td-right">Amount</th>
        </tr>
      </thead>
      <tbody>
        {{range .Items}}
        <tr>
          <td>
            <div class="item-title">{{.Title}}</div>
            {{if .Description}}<div class="item-sub">{{.Description}}</div>{{end}}
          </td>
          <td class="td-right">{{.Quantity}}</td>
          <td class="td-right">{{formatMoney .UnitPrice}}</td>
          <td class="td-right" style="font-weight: 500;">{{formatMoney .TotalPrice}}</td>
        </tr>
        {{end}}
      </tbody>
    </table>

    <div class="totals">
      <div class="total-row">
        <span class="total-label">Subtotal</span>
        <span class="total-value">{{formatMoney .Invoice.Totals.Subtotal}}</span>
      </div>
      {{if not .Invoice.IsGovernmentContract}}
      <div class="total-row">
        <span class="total-label">Hospitality tax</span>
        <span class="total-value">{{formatMoney .Invoice.Totals.HospitalityTax}}</span>
      </div>
      <div class="total-row">
        <span class="total-label">Service tax</span>
        <span class="total-value">{{formatMoney .Invoice.Totals.ServiceTax}}</span>
      </div>
      {{end}}
      <div class="total-row total-final">
        <span class="total-label" style="color: #1a1f36;">Total</span>
        <span class="total-value">{{formatMoney .Invoice.Totals.TotalAmount}}</span>
      </div>
      {{if .Invoice.Totals.DepositRequired}}
      <div class="total-row">
        <span class="total-label">Booking deposit</span>
        <span class="total-value">{{formatMoney .Invoice.Totals.DepositRequired}}</span>
      </div>
      {{end}}
    </div>

    {{if .Milestones}}
    <div class="section-title">Payment Schedule</div>
    <table>
      <thead>
        <tr>
          <th style="width: 60%;">Milestone</th>
          <th class="td-right">Due</th>
          <th class="td-right">Amount</th>
        </tr>
      </thead>
      <tbody>
        {{range .Milestones}}
        <tr>
          <td>{{.Description}}</td>
          <td class="td-right">{{formatDate .DueDate}}</td>
          <td class="td-right" style="font-weight: 500;">{{formatMoney .AmountCents}}</td>
        </tr>
        {{end}}
      </tbody>
    </table>
    {{end}}

    <div class="footer">
      This estimate is valid for 30 days from the date of issue. Prices include
      all listed services and applicable taxes. Booking is confirmed upon receipt
      of the deposit and signed agreement.
    </div>
  </div>
</body>
</html>
`

type contractView struct {
	Invoice    entities.Invoice
	Items      []entities.LineItem
	Milestones []entities.PaymentMilestone
}

// ContractRenderer produces the HTML estimate document attached to
// outgoing estimate emails and served by the contract endpoint.
type ContractRenderer struct {
	tpl *template.Template
}

func NewContractRenderer() *ContractRenderer {
	funcs := template.FuncMap{
		"formatMoney": formatMoney,
		"formatDate":  formatDate,
		"orDash":      orDash,
	}
	return &ContractRenderer{
		tpl: template.Must(template.New("contract").Funcs(funcs).Parse(contractHTMLTemplate)),
	}
}

func (r *ContractRenderer) RenderContract(inv entities.Invoice, items []entities.LineItem, milestones []entities.PaymentMilestone) (string, error) {
	var buf bytes.Buffer
	err := r.tpl.Execute(&buf, contractView{Invoice: inv, Items: items, Milestones: milestones})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

func formatMoney(amount money.Cents) string {
	return money.FormatUSD(amount)
}

func formatDate(value time.Time) string {
	if value.IsZero() {
		return "-"
	}
	return value.UTC().Format("January 2, 2006")
}

func orDash(value string) string {
	if value == "" {
		return "-"
	}
	return value
}
