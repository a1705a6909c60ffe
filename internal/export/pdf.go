package export

import (
	"fmt"
	"io"
	"time"

	"github.com/go-pdf/fpdf"

	"urlpro/internal/types"
)

// pdfRowLimit caps the link table to keep the report to a page or two.
const pdfRowLimit = 20

type Report struct {
	Username    string
	BaseURL     string
	TotalURLs   int64
	TotalClicks int64
	URLs        []types.ShortURL
	GeneratedAt time.Time
}

func WritePDF(w io.Writer, r Report) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("URL Analytics Report", true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "URL Analytics Report", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 7, "User: "+r.Username, "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 7, fmt.Sprintf("Total URLs: %d", r.TotalURLs), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 7, fmt.Sprintf("Total Clicks: %d", r.TotalClicks), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 7, "Generated: "+r.GeneratedAt.UTC().Format(timeLayout)+" UTC", "", 1, "L", false, 0, "")
	pdf.Ln(4)

	widths := []float64{80, 55, 20, 35}
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	for i, h := range []string{"Original URL", "Short URL", "Clicks", "Created"} {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	for i := range r.URLs {
		if i == pdfRowLimit {
			break
		}
		u := &r.URLs[i]
		pdf.CellFormat(widths[0], 6, tr(clip(u.OriginalURL, 48)), "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 6, tr(clip(u.Link(r.BaseURL), 32)), "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[2], 6, fmt.Sprintf("%d", u.ClickCount), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[3], 6, u.CreatedAt.UTC().Format(timeLayout), "1", 0, "L", false, 0, "")
		pdf.Ln(-1)
	}

	if len(r.URLs) > pdfRowLimit {
		pdf.Ln(2)
		pdf.SetFont("Helvetica", "I", 9)
		pdf.CellFormat(0, 6, fmt.Sprintf("... and %d more", len(r.URLs)-pdfRowLimit), "", 1, "L", false, 0, "")
	}

	return pdf.Output(w)
}

func clip(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
