package pdfexport

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"

	dbmodels "jobportal-backend/models/db"
)

// GenerateConfirmation renders the submission confirmation slip for a
// submitted application.
func GenerateConfirmation(app dbmodels.Application, docs []dbmodels.Document) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GenerateConfirmation panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	if pdf.Error() != nil {
		return nil, pdf.Error()
	}
	pdf.CellFormat(0, 10, "Application Confirmation Slip", "", 1, "C", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "", 12)
	writeField(pdf, "Reference Number", app.ReferenceNumber)
	if app.User != nil {
		writeField(pdf, "Applicant", app.User.GetFullName())
		writeField(pdf, "Email", app.User.Email)
	}
	if app.Vacancy != nil {
		writeField(pdf, "Position", app.Vacancy.PositionTitle)
		writeField(pdf, "Place of Assignment", app.Vacancy.PlaceOfAssignment)
	}
	writeField(pdf, "Status", app.Status.ToHuman())
	writeField(pdf, "Submitted", app.SubmittedAt.Format("02.01.2006 15:04"))

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, "Attached Documents", "", 1, "", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
	for idx, doc := range docs {
		line := fmt.Sprintf("%d. %s (%s)", idx+1, doc.FileName, doc.DocumentType.ToHuman())
		pdf.CellFormat(0, 7, line, "", 1, "", false, 0, "")
	}

	pdf.Ln(10)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 5, "Keep this slip for your records. The reference number above is required for any inquiry about the application.", "", "", false)

	buf := new(bytes.Buffer)
	err = pdf.Output(buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeField(pdf *fpdf.Fpdf, name, value string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(60, 7, name+":", "", 0, "", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 7, value, "", 1, "", false, 0, "")
}
