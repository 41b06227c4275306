// Package view renders the employee pages as HTML.
package view

import (
	"html/template"
	"io"
	"sort"

	"billed/internal/newbill"
)

const layoutHTML = `{{define "layout"}}<!doctype html>
<html lang="fr">
<head>
  <meta charset="utf-8" />
  <title>Billed</title>
</head>
<body>
  <div class="page">{{template "content" .}}</div>
</body>
</html>{{end}}
{{define "vertical"}}<div class="vertical-navbar">
  <div class="layout-title">Billed</div>
  <div id="layout-icon1" data-testid="icon-window"{{if eq .Active "bills"}} class="active-icon"{{end}}></div>
  <div id="layout-icon2" data-testid="icon-mail"{{if eq .Active "new-bill"}} class="active-icon"{{end}}></div>
</div>{{end}}`

const billsHTML = `{{define "content"}}<div class="layout">
  {{template "vertical" .}}
  <div class="content">
    <div class="content-header">
      <div class="content-title">Mes notes de frais</div>
      <button type="button" data-testid="btn-new-bill" class="btn btn-primary">Nouvelle note de frais</button>
    </div>
    <div id="data-table">
      <table id="example" class="table table-striped">
        <thead>
          <tr><th>Type</th><th>Nom</th><th>Date</th><th>Montant</th><th>Statut</th><th>Actions</th></tr>
        </thead>
        <tbody data-testid="tbody">
        {{range .Rows}}
          <tr>
            <td>{{.Type}}</td>
            <td>{{.Name}}</td>
            <td>{{.Date}}</td>
            <td>{{.Amount}} €</td>
            <td>{{.Status}}</td>
            <td><div class="icon-actions"><div id="eye" data-testid="icon-eye" data-bill-url="{{.FileURL}}"></div></div></td>
          </tr>
        {{end}}
        </tbody>
      </table>
    </div>
  </div>
</div>{{end}}`

const errorHTML = `{{define "content"}}<div class="layout">
  {{template "vertical" .}}
  <div class="content">
    <div class="content-header">
      <div class="content-title">Erreur</div>
    </div>
    <div data-testid="error-message">{{.Message}}</div>
  </div>
</div>{{end}}`

const loadingHTML = `{{define "content"}}<div class="layout">
  {{template "vertical" .}}
  <div class="content">
    <div id="loading">Loading...</div>
  </div>
</div>{{end}}`

const newBillHTML = `{{define "content"}}<div class="layout">
  {{template "vertical" .}}
  <div class="content">
    <div class="content-header">
      <div class="content-title">Envoyer une note de frais</div>
    </div>
    <div class="form-newbill-container content-inner">
      <form data-testid="form-new-bill">
        <select required class="form-control blue-border" data-testid="expense-type">
        {{range .ExpenseTypes}}<option>{{.}}</option>{{end}}
        </select>
        <input type="text" class="form-control blue-border" data-testid="expense-name" placeholder="Vol Paris Londres" />
        <input required type="date" class="form-control blue-border" data-testid="datepicker" />
        <input required type="number" class="form-control blue-border input-icon input-icon-right" data-testid="amount" placeholder="348" />
        <input type="number" class="form-control blue-border" data-testid="vat" placeholder="70" />
        <input type="number" class="form-control blue-border" data-testid="pct" placeholder="20" />
        <textarea class="form-control blue-border" data-testid="commentary" rows="3"></textarea>
        <input required type="file" accept=".jpg,.jpeg,.png" class="form-control blue-border" data-testid="file" />
        <p class="message-error-file hidden" data-testid="message-error-file">Seuls les fichiers jpg, jpeg et png sont acceptés</p>
        <button type="submit" id="btn-send-bill" class="btn btn-primary">Envoyer</button>
      </form>
    </div>
  </div>
</div>{{end}}`

const loginHTML = `{{define "content"}}<div class="login">
  <form data-testid="form-employee"><input data-testid="employee-email-input" type="email" /><button type="submit">Se connecter</button></form>
  <form data-testid="form-admin"><input data-testid="admin-email-input" type="email" /><button type="submit">Se connecter</button></form>
</div>{{end}}`

var (
	billsTmpl   = mustPage(billsHTML)
	errorTmpl   = mustPage(errorHTML)
	loadingTmpl = mustPage(loadingHTML)
	newBillTmpl = mustPage(newBillHTML)
	loginTmpl   = mustPage(loginHTML)
)

func mustPage(content string) *template.Template {
	t := template.Must(template.New("page").Parse(layoutHTML))
	return template.Must(t.Parse(content))
}

// ExpenseTypes are the choices of the expense-type select.
var ExpenseTypes = []string{
	"Transports",
	"Restaurants et bars",
	"Hôtel et logement",
	"Services en ligne",
	"IT et électronique",
	"Equipement et matériel",
	"Fournitures de bureau",
}

// BillsData drives the listing page. Error wins over Loading, which wins
// over the table.
type BillsData struct {
	Bills   []*newbill.Bill
	Loading bool
	Error   string
}

type billRow struct {
	Type    string
	Name    string
	Date    string
	Amount  int
	Status  string
	FileURL string
}

// Bills renders the bills listing, newest first.
func Bills(w io.Writer, data BillsData) error {
	if data.Error != "" {
		return Error(w, data.Error)
	}
	if data.Loading {
		return loadingTmpl.ExecuteTemplate(w, "layout", map[string]any{"Active": "bills"})
	}

	sorted := append([]*newbill.Bill(nil), data.Bills...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date > sorted[j].Date
	})

	rows := make([]billRow, 0, len(sorted))
	for _, b := range sorted {
		rows = append(rows, billRow{
			Type:    b.Type,
			Name:    b.Name,
			Date:    FormatDate(b.Date),
			Amount:  b.Amount,
			Status:  FormatStatus(b.Status),
			FileURL: b.FileURL,
		})
	}

	return billsTmpl.ExecuteTemplate(w, "layout", map[string]any{
		"Active": "bills",
		"Rows":   rows,
	})
}

// Error renders the full-page error view with message.
func Error(w io.Writer, message string) error {
	return errorTmpl.ExecuteTemplate(w, "layout", map[string]any{
		"Active":  "bills",
		"Message": message,
	})
}

func NewBill(w io.Writer) error {
	return newBillTmpl.ExecuteTemplate(w, "layout", map[string]any{
		"Active":       "new-bill",
		"ExpenseTypes": ExpenseTypes,
	})
}

func Login(w io.Writer) error {
	return loginTmpl.ExecuteTemplate(w, "layout", map[string]any{})
}
