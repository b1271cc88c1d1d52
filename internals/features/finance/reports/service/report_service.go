// file: internals/features/finance/reports/service/report_service.go
package service

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/jung-kurt/gofpdf"

	expenseModel "feeportal_backend/internals/features/finance/expenses/model"
	paymentModel "feeportal_backend/internals/features/finance/payments/model"
)

const reportDateLayout = "2006-01-02"

/* =======================================================
   PAYMENT ROWS
======================================================= */

// PaymentReportRow is a payment joined with the student it belongs to,
// already flattened for export.
type PaymentReportRow struct {
	PaymentID  string
	RollNumber string
	Student    string
	FeeType    string
	Amount     float64
	Method     string
	UTRNumber  string
	Cashier    string
	PaidAt     time.Time
}

func FlattenPayment(p paymentModel.PaymentModel, rollNumber, studentName, cashierName string) PaymentReportRow {
	utr := ""
	if p.PaymentUTRNumber != nil {
		utr = *p.PaymentUTRNumber
	}
	return PaymentReportRow{
		PaymentID:  p.PaymentID.String(),
		RollNumber: rollNumber,
		Student:    studentName,
		FeeType:    p.PaymentFeeType,
		Amount:     p.PaymentAmount,
		Method:     string(p.PaymentMethod),
		UTRNumber:  utr,
		Cashier:    cashierName,
		PaidAt:     p.PaymentCreatedAt,
	}
}

/* =======================================================
   CSV WRITERS
======================================================= */

func WritePaymentsCSV(w io.Writer, rows []PaymentReportRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{
		"payment_id", "roll_number", "student", "fee_type",
		"amount", "method", "utr_number", "cashier", "paid_at",
	}); err != nil {
		return err
	}
	for _, r := range rows {
		rec := []string{
			r.PaymentID,
			r.RollNumber,
			r.Student,
			r.FeeType,
			strconv.FormatFloat(r.Amount, 'f', 2, 64),
			r.Method,
			r.UTRNumber,
			r.Cashier,
			r.PaidAt.Format(reportDateLayout),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func WriteExpensesCSV(w io.Writer, rows []expenseModel.ExpenseModel) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{
		"expense_id", "title", "category", "amount", "spent_at", "notes",
	}); err != nil {
		return err
	}
	for _, e := range rows {
		notes := ""
		if e.ExpenseNotes != nil {
			notes = *e.ExpenseNotes
		}
		rec := []string{
			e.ExpenseID.String(),
			e.ExpenseTitle,
			e.ExpenseCategory,
			strconv.FormatFloat(e.ExpenseAmount, 'f', 2, 64),
			e.ExpenseSpentAt.Format(reportDateLayout),
			notes,
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

/* =======================================================
   PDF WRITERS
======================================================= */

// WritePaymentsPDF renders a landscape tabular collection report with a
// grand total line at the bottom.
func WritePaymentsPDF(w io.Writer, title string, from, to time.Time, rows []PaymentReportRow) error {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetTitle(title, false)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 8, title)
	pdf.Ln(7)
	pdf.SetFont("Arial", "", 9)
	pdf.Cell(0, 6, fmt.Sprintf("Period: %s to %s", from.Format(reportDateLayout), to.Format(reportDateLayout)))
	pdf.Ln(8)

	headers := []string{"Roll No", "Student", "Fee Type", "Amount", "Method", "UTR", "Cashier", "Paid At"}
	widths := []float64{22, 45, 70, 24, 18, 32, 38, 24}

	pdf.SetFont("Arial", "B", 8)
	pdf.SetFillColor(230, 230, 230)
	for i, hdr := range headers {
		pdf.CellFormat(widths[i], 7, hdr, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 8)
	total := 0.0
	for _, r := range rows {
		total += r.Amount
		cells := []string{
			r.RollNumber,
			r.Student,
			r.FeeType,
			strconv.FormatFloat(r.Amount, 'f', 2, 64),
			r.Method,
			r.UTRNumber,
			r.Cashier,
			r.PaidAt.Format(reportDateLayout),
		}
		for i, cell := range cells {
			pdf.CellFormat(widths[i], 6, cell, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.SetFont("Arial", "B", 9)
	pdf.CellFormat(widths[0]+widths[1]+widths[2], 7, "Total", "1", 0, "R", false, 0, "")
	pdf.CellFormat(widths[3], 7, strconv.FormatFloat(total, 'f', 2, 64), "1", 0, "L", false, 0, "")
	pdf.Ln(-1)

	return pdf.Output(w)
}

func WriteExpensesPDF(w io.Writer, title string, from, to time.Time, rows []expenseModel.ExpenseModel) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(title, false)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 8, title)
	pdf.Ln(7)
	pdf.SetFont("Arial", "", 9)
	pdf.Cell(0, 6, fmt.Sprintf("Period: %s to %s", from.Format(reportDateLayout), to.Format(reportDateLayout)))
	pdf.Ln(8)

	headers := []string{"Title", "Category", "Amount", "Spent At"}
	widths := []float64{75, 45, 30, 30}

	pdf.SetFont("Arial", "B", 8)
	pdf.SetFillColor(230, 230, 230)
	for i, hdr := range headers {
		pdf.CellFormat(widths[i], 7, hdr, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 8)
	total := 0.0
	for _, e := range rows {
		total += e.ExpenseAmount
		cells := []string{
			e.ExpenseTitle,
			e.ExpenseCategory,
			strconv.FormatFloat(e.ExpenseAmount, 'f', 2, 64),
			e.ExpenseSpentAt.Format(reportDateLayout),
		}
		for i, cell := range cells {
			pdf.CellFormat(widths[i], 6, cell, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.SetFont("Arial", "B", 9)
	pdf.CellFormat(widths[0]+widths[1], 7, "Total", "1", 0, "R", false, 0, "")
	pdf.CellFormat(widths[2], 7, strconv.FormatFloat(total, 'f', 2, 64), "1", 0, "L", false, 0, "")
	pdf.Ln(-1)

	return pdf.Output(w)
}
