package report

import (
	"fmt"
	"time"

	"github.com/johnfercher/maroto/pkg/color"
	"github.com/johnfercher/maroto/pkg/consts"
	"github.com/johnfercher/maroto/pkg/pdf"
	"github.com/johnfercher/maroto/pkg/props"

	"github.com/alexandrumolea/fingrow/internal/timeutil"
)

var tableGrid = []uint{2, 3, 2, 1, 2, 2}

// WritePDF renders paginated report pages into an A4 portrait document at
// path. Page boundaries follow the paginator, not maroto's own overflow
// handling, so the first page keeps room for the summary block.
func WritePDF(path, currencySymbol string, pages []Page) error {
	m := pdf.NewMaroto(consts.Portrait, consts.A4)
	m.SetPageMargins(20, 10, 20)

	for i, page := range pages {
		if i > 0 {
			m.AddPage()
		}
		if page.First {
			renderFirstPageHeader(m, page, currencySymbol)
		} else {
			renderContinuationHeader(m, page)
		}
		renderTable(m, page, currencySymbol)
		renderFooter(m, page)
	}

	return m.OutputFileAndClose(path)
}

func renderFirstPageHeader(m pdf.Maroto, page Page, symbol string) {
	m.Row(12, func() {
		m.Col(12, func() {
			m.Text("Raport Activitate", props.Text{
				Top:   2,
				Style: consts.Bold,
				Size:  18,
			})
		})
	})
	m.Row(8, func() {
		m.Col(12, func() {
			m.Text(page.PeriodLabel, props.Text{
				Size: 12,
			})
		})
	})
	m.Line(1.0)

	m.Row(14, func() {
		m.Col(4, func() {
			m.Text("TOTAL ÎNCASAT", props.Text{Top: 1, Size: 8})
			m.Text(timeutil.FormatCurrency(symbol, page.TotalAmount), props.Text{
				Top:   6,
				Style: consts.Bold,
				Size:  12,
			})
		})
		m.Col(4, func() {
			m.Text("TOTAL ORE", props.Text{Top: 1, Size: 8})
			m.Text(timeutil.FormatHours(page.TotalHours), props.Text{
				Top:   6,
				Style: consts.Bold,
				Size:  12,
			})
		})
		m.Col(4, func() {
			m.Text("SESIUNI", props.Text{Top: 1, Size: 8})
			m.Text(fmt.Sprintf("%d", page.Sessions), props.Text{
				Top:   6,
				Style: consts.Bold,
				Size:  12,
			})
		})
	})
	m.Line(1.0)
}

func renderContinuationHeader(m pdf.Maroto, page Page) {
	m.Row(8, func() {
		m.Col(8, func() {
			m.Text(fmt.Sprintf("Raport Activitate - Continuare (%s)", page.PeriodLabel), props.Text{
				Top:  2,
				Size: 8,
			})
		})
		m.Col(4, func() {
			m.Text(fmt.Sprintf("Pagina %d din %d", page.Number, page.TotalPages), props.Text{
				Top:   2,
				Size:  8,
				Align: consts.Right,
			})
		})
	})
	m.Line(1.0)
}

func renderTable(m pdf.Maroto, page Page, symbol string) {
	headers := []string{"Dată", "Client", "Tip", "Ore", "Statut", "Sumă"}

	rows := make([][]string, 0, len(page.Activities))
	for _, a := range page.Activities {
		start := ""
		if a.StartDate != nil {
			start = timeutil.FormatDate(*a.StartDate)
		}
		status := "Pendent"
		if a.Invoiced {
			status = "Facturat"
		}
		rows = append(rows, []string{
			start,
			a.ClientName(),
			a.ActivityType().String(),
			fmt.Sprintf("%.1f", a.Hours),
			status,
			timeutil.FormatCurrency(symbol, a.TotalAmount),
		})
	}

	m.TableList(headers, rows, props.TableList{
		HeaderProp: props.TableListContent{
			Size:      9,
			GridSizes: tableGrid,
		},
		ContentProp: props.TableListContent{
			Size:      9,
			GridSizes: tableGrid,
		},
		Align:                consts.Left,
		AlternatedBackground: &color.Color{Red: 240, Green: 240, Blue: 240},
		HeaderContentSpace:   1,
		Line:                 false,
	})
}

func renderFooter(m pdf.Maroto, page Page) {
	m.Row(10, func() {
		m.Col(6, func() {
			m.Text(fmt.Sprintf("Pagina %d / %d", page.Number, page.TotalPages), props.Text{
				Top:  4,
				Size: 7,
			})
		})
		m.Col(6, func() {
			m.Text(fmt.Sprintf("Generat la %s", timeutil.FormatDateMedium(time.Now())), props.Text{
				Top:   4,
				Size:  7,
				Align: consts.Right,
			})
		})
	})
}
