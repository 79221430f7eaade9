package document

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// A4 page geometry in points, origin at the top-left corner.
const (
	pageWidth  = 595.0
	pageHeight = 842.0
	margin     = 56.0

	titleSize   = 20
	headingSize = 13
	bodySize    = 10

	footerY = pageHeight - 36
)

// line is one positioned run of text waiting to be paginated.
type line struct {
	text string
	size int
	gap  float64 // extra space above the line
}

type pdfFont struct {
	Name string `json:"name"`
	Size int    `json:"size"`
}

type pdfText struct {
	Value    string     `json:"value"`
	Position [2]float64 `json:"pos"`
	Font     pdfFont    `json:"font"`
}

type pdfContent struct {
	Text []pdfText `json:"text"`
}

type pdfPage struct {
	Content pdfContent `json:"content"`
}

type pdfDoc struct {
	Paper  string             `json:"paper"`
	Origin string             `json:"origin"`
	Pages  map[string]pdfPage `json:"pages"`
}

// RenderPDF writes the report to w as an A4 PDF with numbered pages.
func RenderPDF(w io.Writer, report Report) error {
	pages := paginate(flatten(report))

	doc := pdfDoc{
		Paper:  "A4",
		Origin: "upperLeft",
		Pages:  make(map[string]pdfPage, len(pages)),
	}
	for i, texts := range pages {
		texts = append(texts, pdfText{
			Value:    fmt.Sprintf("Page %d of %d", i+1, len(pages)),
			Position: [2]float64{pageWidth/2 - 28, footerY},
			Font:     pdfFont{Name: "Helvetica", Size: 9},
		})
		doc.Pages[fmt.Sprintf("%d", i+1)] = pdfPage{Content: pdfContent{Text: texts}}
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	if err := api.Create(nil, bytes.NewReader(data), w, model.NewDefaultConfiguration()); err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	return nil
}

// flatten turns the report into a single run of sized lines.
func flatten(report Report) []line {
	lines := []line{{text: report.Title, size: titleSize}}
	for _, section := range report.Sections {
		lines = append(lines, line{text: section.Heading, size: headingSize, gap: 10})
		for _, l := range section.Lines {
			lines = append(lines, line{text: l, size: bodySize})
		}
	}
	return lines
}

// paginate lays the lines out top to bottom, starting a new page when
// the next line would collide with the footer.
func paginate(lines []line) [][]pdfText {
	var pages [][]pdfText
	var current []pdfText
	y := margin

	for _, l := range lines {
		advance := float64(l.size) + 6 + l.gap
		if y+advance > footerY-24 && len(current) > 0 {
			pages = append(pages, current)
			current = nil
			y = margin
		}
		y += l.gap
		font := "Helvetica"
		if l.size > bodySize {
			font = "Helvetica-Bold"
		}
		current = append(current, pdfText{
			Value:    l.text,
			Position: [2]float64{margin, y},
			Font:     pdfFont{Name: font, Size: l.size},
		})
		y += float64(l.size) + 6
	}
	pages = append(pages, current)
	return pages
}
