package dashboard

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/amirhossein-jamali/ledger-dashboard/internal/domain/entity"
	errs "github.com/amirhossein-jamali/ledger-dashboard/internal/domain/error"
	"github.com/amirhossein-jamali/ledger-dashboard/internal/domain/port/report"
	"github.com/amirhossein-jamali/ledger-dashboard/internal/domain/port/usecase"
)

const notApplicable = "N/A"

// Export implements usecase.DashboardUseCase
func (s *Service) Export(ctx context.Context, req usecase.ExportRequest) (*usecase.ExportFile, error) {
	exporter, ok := s.exporters[req.Format]
	if !ok {
		return nil, fmt.Errorf("%w: format %q", errs.ErrUnsupportedExport, req.Format)
	}

	all, filtered, err := s.filtered(ctx, req.Criteria, false)
	if err != nil {
		return nil, err
	}

	var table report.Table
	switch req.Shape {
	case report.ShapeTransactions, "":
		table = TransactionsTable(filtered, s.cfg.Location)
	case report.ShapeSalesSummary:
		table = SalesSummaryTable(s.summarize(all, filtered, req.Criteria).SalesSummary)
	case report.ShapeBalanceSheet:
		table = BalanceSheetTable(s.summarize(all, filtered, req.Criteria).BalanceSheet)
	default:
		return nil, fmt.Errorf("%w: shape %q", errs.ErrUnsupportedExport, req.Shape)
	}

	var buf bytes.Buffer
	if err := exporter.Export(&buf, table); err != nil {
		s.logger.Error("Failed to render export", map[string]any{
			"shape":  table.Name,
			"format": string(exporter.Format()),
			"error":  err.Error(),
		})
		return nil, fmt.Errorf("render %s export: %w", exporter.Format(), err)
	}

	fileName := fmt.Sprintf("%s-%s-%s.%s",
		table.Name,
		s.timeProvider.Now().In(s.cfg.Location).Format("20060102"),
		uuid.NewString()[:8],
		exporter.Format(),
	)
	s.logger.Info("Export rendered", map[string]any{
		"file":  fileName,
		"rows":  len(table.Rows),
		"bytes": buf.Len(),
	})

	return &usecase.ExportFile{
		FileName:    fileName,
		ContentType: exporter.ContentType(),
		Content:     buf.Bytes(),
	}, nil
}

// TransactionsTable lays out the filtered transactions, timestamps rendered in loc
func TransactionsTable(records []entity.Transaction, loc *time.Location) report.Table {
	if loc == nil {
		loc = time.UTC
	}
	rows := make([][]string, 0, len(records))
	for _, tx := range records {
		name, _ := tx.UserName()
		previous := ""
		if tx.PreviousBalance != nil {
			previous = entity.FormatAmount(*tx.PreviousBalance)
		}
		amount := entity.FormatAmount(tx.Amount)
		if !tx.AmountValid {
			amount = ""
		}
		rows = append(rows, []string{
			tx.ID,
			tx.CreatedAt.In(loc).Format(time.RFC3339),
			string(tx.Type),
			name,
			tx.Description,
			amount,
			entity.FormatAmount(tx.Balance),
			previous,
		})
	}
	return report.Table{
		Name:    string(report.ShapeTransactions),
		Headers: []string{"ID", "Created At", "Type", "User", "Description", "Amount", "Balance", "Previous Balance"},
		Rows:    rows,
	}
}

// SalesSummaryTable lays out the per-user sales view
func SalesSummaryTable(summary []entity.UserSalesSummary) report.Table {
	rows := make([][]string, 0, len(summary))
	for _, u := range summary {
		rows = append(rows, []string{
			u.UserName,
			entity.FormatAmount(u.TotalSales),
			strconv.Itoa(u.OrderCount),
			entity.FormatAmount(u.LoanBalance),
		})
	}
	return report.Table{
		Name:    string(report.ShapeSalesSummary),
		Headers: []string{"User", "Total Sales", "Orders", "Loan Balance"},
		Rows:    rows,
	}
}

// BalanceSheetTable lays out the balance sheet as metric/value pairs
func BalanceSheetTable(sheet *entity.BalanceSheet) report.Table {
	if sheet == nil {
		sheet = entity.NewBalanceSheet(entity.SourceLocal)
	}

	successRate := notApplicable
	if rate, ok := sheet.SuccessRate(); ok {
		successRate = strconv.FormatFloat(rate*100, 'f', 2, 64) + "%"
	}
	averageOrder := notApplicable
	if avg, ok := sheet.AverageOrderValue(); ok {
		averageOrder = entity.FormatAmount(avg)
	}

	rows := [][]string{
		{"Previous Balance", entity.FormatAmount(sheet.PreviousBalance)},
		{"Total Revenue", entity.FormatAmount(sheet.TotalRevenue)},
		{"Total Top-ups", entity.FormatAmount(sheet.TotalTopups)},
		{"Total Refunds", entity.FormatAmount(sheet.TotalRefunds)},
		{"Top-ups and Refunds", entity.FormatAmount(sheet.TotalTopupsAndRefunds)},
		{"Total Expenses", entity.FormatAmount(sheet.TotalExpenses)},
		{"Net Position", entity.FormatAmount(sheet.NetPosition)},
		{"Net Cash Flow", entity.FormatAmount(sheet.NetCashFlow)},
		{"Orders", strconv.Itoa(sheet.OrderCount)},
		{"Approved Top-ups", strconv.Itoa(sheet.TopupCount)},
		{"Rejected Top-ups", strconv.Itoa(sheet.RejectedTopupCount)},
		{"Refunds", strconv.Itoa(sheet.RefundCount)},
		{"Active Users", strconv.Itoa(sheet.ActiveUsers)},
		{"Top-up Success Rate", successRate},
		{"Average Order Value", averageOrder},
	}
	for _, t := range entity.TransactionTypes() {
		rows = append(rows, []string{"Count " + string(t), strconv.Itoa(sheet.CountsByType[t])})
	}
	rows = append(rows, []string{"Source", string(sheet.Source)})

	return report.Table{
		Name:    string(report.ShapeBalanceSheet),
		Headers: []string{"Metric", "Value"},
		Rows:    rows,
	}
}
