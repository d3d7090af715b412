package output

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// PDFFormatter renders A4 payslip documents; a pay run gets one page per employee
type PDFFormatter struct{}

func (p PDFFormatter) Name() string { return "pdf" }

func (p PDFFormatter) Format(report *Report) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Payroll %s", report.TaxYear), false)

	if run := report.PayRun; run != nil {
		for _, l := range run.Lines {
			pdf.AddPage()
			pdfHeading(pdf, "Payslip", report.TaxYear)
			pdfLine(pdf, "Employer", run.Employer)
			pdfLine(pdf, "Employee", fmt.Sprintf("%s (%s)", l.EmployeeName, l.EmployeeID))
			pdfLine(pdf, "Period", run.Period.Format("January 2006"))
			pdfLine(pdf, "Payslip", l.PayslipID)
			pdf.Ln(4)
			pdfSections(pdf, payslipSections(l.Payslip))
		}
		pdf.AddPage()
		pdfHeading(pdf, "Employer declaration", report.TaxYear)
		pdfLine(pdf, "Employer", run.Employer)
		pdfLine(pdf, "Period", run.Period.Format("January 2006"))
		pdf.Ln(4)
		pdfSections(pdf, []section{{Title: "Monthly liability", Items: declarationItems(run.Declaration)}})
	} else {
		pdf.AddPage()
		title := "Payroll"
		if report.Payslip != nil {
			title = "Payslip"
		}
		pdfHeading(pdf, title, report.TaxYear)
		pdfSections(pdf, sections(report))
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render PDF: %w", err)
	}
	return buf.Bytes(), nil
}

func pdfHeading(pdf *gofpdf.Fpdf, title, taxYear string) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, title)
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, "Tax year "+taxYear)
	pdf.Ln(10)
}

func pdfLine(pdf *gofpdf.Fpdf, label, value string) {
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(40, 7, label+":", "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 7, value, "", 1, "L", false, 0, "")
}

func pdfSections(pdf *gofpdf.Fpdf, secs []section) {
	for _, s := range secs {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(0, 8, s.Title, "B", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		for _, it := range s.Items {
			pdf.CellFormat(110, 7, it.Label, "", 0, "L", false, 0, "")
			pdf.CellFormat(60, 7, consoleValue(it), "", 1, "R", false, 0, "")
		}
		pdf.Ln(4)
	}
}

