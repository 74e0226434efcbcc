package pdf

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/jung-kurt/gofpdf"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"dealdesk/internal/models"
	"dealdesk/internal/services"
)

// Generator is the interface handlers and the CLI depend on (easy to fake in tests).
type Generator interface {
	WritePipelineReport(w io.Writer, data PipelineReportData) error
	GeneratePipelineReport(data PipelineReportData) (string, error)
}

// DocumentGenerator renders with gofpdf. With an empty FontPath it falls back
// to the core Helvetica font (cp1252 only).
type DocumentGenerator struct {
	RootDir  string
	FontPath string
	fontName string
}

type PipelineReportData struct {
	Board       services.Board
	Filter      models.DealFilter
	GeneratedAt time.Time
	Filename    string // bare file name; generated when empty
}

var money = message.NewPrinter(language.English)

func NewDocumentGenerator(rootDir, fontPath string) *DocumentGenerator {
	g := &DocumentGenerator{
		RootDir:  filepath.Clean(rootDir),
		FontPath: fontPath,
		fontName: "Helvetica",
	}
	if fontPath != "" {
		g.fontName = "DejaVu"
	}
	return g
}

// GeneratePipelineReport writes the report under RootDir and returns its
// "/name.pdf" path relative to RootDir.
func (g *DocumentGenerator) GeneratePipelineReport(data PipelineReportData) (string, error) {
	filename := data.Filename
	if filename == "" {
		filename = fmt.Sprintf("pipeline_%s.pdf", data.GeneratedAt.Format("20060102_150405"))
	}
	absPath, err := g.ensureTarget(filename)
	if err != nil {
		return "", err
	}
	f, err := os.Create(absPath)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", absPath, err)
	}
	if err := g.WritePipelineReport(f, data); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return "/" + filepath.ToSlash(filepath.Base(absPath)), nil
}

func (g *DocumentGenerator) WritePipelineReport(w io.Writer, data PipelineReportData) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Sales Pipeline", false)
	pdf.SetAuthor("dealdesk", false)
	pdf.SetMargins(15, 15, 15)
	pdf.SetAutoPageBreak(true, 20)
	g.addFont(pdf)
	tr := g.translator(pdf)

	pdf.AliasNbPages("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont(g.fontName, "", 9)
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d/{nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	// ===== Header
	pdf.SetFont(g.fontName, "B", 18)
	pdf.CellFormat(0, 10, "Sales Pipeline", "", 1, "C", false, 0, "")
	pdf.SetFont(g.fontName, "", 10)
	pdf.CellFormat(0, 6, tr(subtitle(data)), "", 1, "C", false, 0, "")
	g.hr(pdf)

	g.kvLine(pdf, "Deals", fmt.Sprintf("%d", data.Board.TotalCount))
	g.kvLine(pdf, "Pipeline value", formatCurrency(data.Board.TotalValue))
	pdf.Ln(2)

	// ===== One section per stage
	for _, col := range data.Board.Columns {
		g.sectionTitle(pdf, tr(fmt.Sprintf("%s (%d)  %s", col.Stage.Name, col.Count, formatCurrency(col.Value))))
		if len(col.Deals) == 0 {
			pdf.SetFont(g.fontName, "", 10)
			pdf.CellFormat(0, 6, "No deals in this stage.", "", 1, "L", false, 0, "")
			pdf.Ln(2)
			continue
		}
		g.dealTable(pdf, tr, col.Deals)
		pdf.Ln(3)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render pipeline report: %w", err)
	}
	return nil
}

var dealColumns = []struct {
	title string
	width float64
	align string
}{
	{"Deal", 50, "L"},
	{"Company", 40, "L"},
	{"Contact", 35, "L"},
	{"Value", 25, "R"},
	{"Close", 30, "C"},
}

func (g *DocumentGenerator) dealTable(pdf *gofpdf.Fpdf, tr func(string) string, deals []models.Deal) {
	pdf.SetFont(g.fontName, "B", 9)
	pdf.SetFillColor(235, 235, 235)
	for _, c := range dealColumns {
		pdf.CellFormat(c.width, 6, c.title, "1", 0, c.align, true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont(g.fontName, "", 9)
	for _, d := range deals {
		cells := []string{d.Name, d.Company, d.Contact, formatCurrency(d.Value), d.ExpectedCloseDate.String()}
		for i, c := range dealColumns {
			pdf.CellFormat(c.width, 6, tr(fit(pdf, cells[i], c.width-2)), "1", 0, c.align, false, 0, "")
		}
		pdf.Ln(-1)
	}
}

// === helpers ===
func (g *DocumentGenerator) sectionTitle(pdf *gofpdf.Fpdf, s string) {
	pdf.SetFont(g.fontName, "B", 12)
	pdf.CellFormat(0, 8, s, "", 1, "L", false, 0, "")
	pdf.SetFont(g.fontName, "", 10)
}

func (g *DocumentGenerator) kvLine(pdf *gofpdf.Fpdf, key, val string) {
	pdf.SetFont(g.fontName, "B", 10)
	pdf.CellFormat(40, 6, key+":", "", 0, "L", false, 0, "")
	pdf.SetFont(g.fontName, "", 10)
	pdf.CellFormat(0, 6, val, "", 1, "L", false, 0, "")
}

func (g *DocumentGenerator) hr(pdf *gofpdf.Fpdf) {
	y := pdf.GetY() + 1.5
	pdf.SetLineWidth(0.2)
	pdf.Line(15, y, 195, y)
	pdf.SetY(y + 3)
}

func (g *DocumentGenerator) ensureTarget(filename string) (string, error) {
	if err := os.MkdirAll(g.RootDir, 0o755); err != nil {
		return "", fmt.Errorf("create files dir: %w", err)
	}
	filename = filepath.Base(filename) // no path escapes
	return filepath.Join(g.RootDir, filename), nil
}

func (g *DocumentGenerator) addFont(pdf *gofpdf.Fpdf) {
	if g.FontPath == "" {
		return
	}
	pdf.AddUTF8Font(g.fontName, "", g.FontPath)
	pdf.AddUTF8Font(g.fontName, "B", g.FontPath)
}

// translator maps UTF-8 to cp1252 for core fonts; UTF-8 fonts take text as is.
func (g *DocumentGenerator) translator(pdf *gofpdf.Fpdf) func(string) string {
	if g.FontPath != "" {
		return func(s string) string { return s }
	}
	return pdf.UnicodeTranslatorFromDescriptor("")
}

func subtitle(data PipelineReportData) string {
	s := "Generated " + data.GeneratedAt.Format("2006-01-02 15:04")
	if data.Filter.Stage != "" && data.Filter.Stage != models.StageAll {
		s += ", stage: " + string(data.Filter.Stage)
	}
	if data.Filter.Search != "" {
		s += fmt.Sprintf(", search: %q", data.Filter.Search)
	}
	return s
}

// formatCurrency renders whole US dollars with grouping, e.g. $12,500.
func formatCurrency(v float64) string {
	return money.Sprintf("$%d", int64(math.Round(v)))
}

// fit truncates s with an ellipsis so it fits width mm in the current font.
func fit(pdf *gofpdf.Fpdf, s string, width float64) string {
	if pdf.GetStringWidth(s) <= width {
		return s
	}
	r := []rune(s)
	for len(r) > 0 && pdf.GetStringWidth(string(r)+"...") > width {
		r = r[:len(r)-1]
	}
	return string(r) + "..."
}
