// file: internals/features/finance/ledger/service/aggregator.go
package service

import (
	"sort"

	invoiceModel "feeportal_backend/internals/features/finance/invoices/model"
	paymentModel "feeportal_backend/internals/features/finance/payments/model"
	studentModel "feeportal_backend/internals/features/students/model"
)

/* =======================================================
   AGGREGATE REPORT — output types
======================================================= */

// ItemSummary is one fee item with its matched payments folded in.
type ItemSummary struct {
	studentModel.FeeItem
	Paid    float64 `json:"paid"`
	Pending float64 `json:"pending"`
}

type YearSummary struct {
	Year            string        `json:"year"`
	Items           []ItemSummary `json:"items"`
	TotalDue        float64       `json:"total_due"`
	TotalConcession float64       `json:"total_concession"`
	TotalPaid       float64       `json:"total_paid"`
	Balance         float64       `json:"balance"`
}

type OverallSummary struct {
	TotalDue                float64 `json:"total_due"`
	TotalConcession         float64 `json:"total_concession"`
	TotalPaid               float64 `json:"total_paid"`
	OutstandingInvoiceTotal float64 `json:"outstanding_invoice_total"`
	Balance                 float64 `json:"balance"`
}

type AggregateReport struct {
	RollNumber       string                  `json:"roll_number"`
	StudentName      string                  `json:"student_name"`
	MergedFeeDetails studentModel.FeeDetails `json:"merged_fee_details"`
	Years            []YearSummary           `json:"years"`
	Overall          OverallSummary          `json:"overall"`
}

/* =======================================================
   AGGREGATOR — pure, no I/O
======================================================= */

// Aggregate merges a student's enrollment snapshots, payment ledger and
// outstanding invoices into per-year and overall due/concession/paid/
// pending summaries.
//
// Records are processed ascending by creation time, so the most recently
// created row's fee snapshot wins on a year-key collision (key-wise
// overwrite, not a deep merge). Unpaid invoice totals are added on top of
// the fee-structure balance without deduplication; that is the inherited
// formula and callers must not assume the two sides reconcile.
func Aggregate(
	records []studentModel.StudentModel,
	payments []paymentModel.PaymentModel,
	unpaidInvoices []invoiceModel.InvoiceModel,
) AggregateReport {
	report := AggregateReport{
		MergedFeeDetails: studentModel.FeeDetails{},
		Years:            []YearSummary{},
	}
	if len(records) == 0 {
		return report
	}

	ordered := make([]studentModel.StudentModel, len(records))
	copy(ordered, records)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].StudentCreatedAt.Before(ordered[j].StudentCreatedAt)
	})

	report.RollNumber = ordered[len(ordered)-1].StudentRollNumber
	report.StudentName = ordered[len(ordered)-1].StudentName

	// Overlay each snapshot onto the accumulator; later records overwrite
	// earlier ones per year key.
	for _, rec := range ordered {
		for year, items := range rec.StudentFeeDetails.Data() {
			cp := make([]studentModel.FeeItem, len(items))
			copy(cp, items)
			report.MergedFeeDetails[year] = cp
		}
	}

	years := make([]string, 0, len(report.MergedFeeDetails))
	for year := range report.MergedFeeDetails {
		years = append(years, year)
	}
	sort.Strings(years)

	for _, year := range years {
		items := report.MergedFeeDetails[year]
		ys := YearSummary{Year: year, Items: make([]ItemSummary, 0, len(items))}

		for _, item := range items {
			paid := 0.0
			for _, p := range payments {
				if p.MatchesItem(year, item.ID, item.Name) {
					paid += p.PaymentAmount
				}
			}
			ys.Items = append(ys.Items, ItemSummary{
				FeeItem: item,
				Paid:    paid,
				Pending: clampZero(item.Payable() - paid),
			})
			ys.TotalDue += item.Amount
			ys.TotalConcession += item.Concession
		}

		for _, p := range payments {
			if p.MatchesYear(year) {
				ys.TotalPaid += p.PaymentAmount
			}
		}
		ys.Balance = clampZero(ys.TotalDue - ys.TotalConcession - ys.TotalPaid)

		report.Years = append(report.Years, ys)
		report.Overall.TotalDue += ys.TotalDue
		report.Overall.TotalConcession += ys.TotalConcession
		report.Overall.Balance += ys.Balance
	}

	for _, p := range payments {
		report.Overall.TotalPaid += p.PaymentAmount
	}
	for _, inv := range unpaidInvoices {
		report.Overall.OutstandingInvoiceTotal += inv.InvoiceTotalAmount
	}
	report.Overall.Balance += report.Overall.OutstandingInvoiceTotal

	return report
}

func clampZero(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
