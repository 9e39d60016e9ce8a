// Package export renders engine results (waste return manifests, item tags)
// to printable PDF documents. Grounded in the teacher's
// internal/export/pdf.go (page layout constants, per-page rendering,
// summary table) and internal/export/labels.go (QR-coded label sheets),
// adapted from per-sheet cut diagrams to per-container stow/return
// diagrams.
package export

import (
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"

	"github.com/ninaadsaxena/csms-nsh/internal/engine"
)

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	drawAreaTop  = marginTop + headerHeight + 5.0
)

// itemColors mirrors the teacher's palette of fill colors for placed
// rectangles.
var itemColors = []struct{ R, G, B int }{
	{76, 175, 80}, {33, 150, 243}, {255, 152, 0}, {156, 39, 176},
	{0, 188, 212}, {244, 67, 54}, {255, 235, 59}, {121, 85, 72},
}

// WriteManifestPDF renders a return manifest (spec.md §3's ReturnManifest)
// to a PDF: one page per undocking container footprint showing the items
// staged for return, followed by a summary page.
func WriteManifestPDF(path string, manifest engine.ReturnManifest, container *engine.Container) error {
	if len(manifest.ReturnItems) == 0 {
		return fmt.Errorf("no items to export")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	pdf.AddPage()
	renderManifestPage(pdf, manifest, container)

	pdf.AddPage()
	renderManifestSummary(pdf, manifest)

	return pdf.OutputFileAndClose(path)
}

func renderManifestPage(pdf *fpdf.Fpdf, manifest engine.ReturnManifest, container *engine.Container) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("Undocking Container %s (%dx%dx%d cm)", manifest.UndockingContainerID, container.Width, container.Depth, container.Height)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	stats := fmt.Sprintf("Items: %d | Total volume: %d cm3 | Total mass: %.2f kg", len(manifest.ReturnItems), manifest.TotalVolume, manifest.TotalWeight)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, stats, "", 0, "L", false, 0, "")

	drawWidth := pageWidth - marginLeft - marginRight
	drawHeight := pageHeight - drawAreaTop - marginBottom

	scaleX := drawWidth / float64(container.Width)
	scaleY := drawHeight / float64(container.Depth)
	scale := math.Min(scaleX, scaleY)

	canvasW := float64(container.Width) * scale
	canvasH := float64(container.Depth) * scale
	offsetX := marginLeft + (drawWidth-canvasW)/2
	offsetY := drawAreaTop

	pdf.SetFillColor(230, 230, 230)
	pdf.SetDrawColor(100, 100, 100)
	pdf.SetLineWidth(0.5)
	pdf.Rect(offsetX, offsetY, canvasW, canvasH, "FD")

	for i, item := range manifest.ReturnItems {
		box, ok := container.PositionOf(item.ItemID)
		if !ok {
			continue
		}
		col := itemColors[i%len(itemColors)]
		pw := float64(box.Width()) * scale
		ph := float64(box.Depth()) * scale
		px := offsetX + float64(box.Start.W)*scale
		py := offsetY + float64(box.Start.D)*scale

		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.SetDrawColor(30, 30, 30)
		pdf.SetLineWidth(0.3)
		pdf.Rect(px, py, pw, ph, "FD")

		if pw > 15 && ph > 6 {
			pdf.SetFont("Helvetica", "", 7)
			pdf.SetTextColor(0, 0, 0)
			labelW := pdf.GetStringWidth(item.Name)
			if labelW < pw-2 {
				pdf.SetXY(px+(pw-labelW)/2, py+ph/2-2)
				pdf.CellFormat(labelW, 4, item.Name, "", 0, "C", false, 0, "")
			}
		}
	}

	drawManifestLegend(pdf, manifest, offsetY+canvasH+5)
}

func drawManifestLegend(pdf *fpdf.Fpdf, manifest engine.ReturnManifest, startY float64) {
	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(marginLeft, startY)
	pdf.CellFormat(30, 4, "Items staged:", "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	xPos := marginLeft + 32
	maxX := pageWidth - marginRight

	for i, item := range manifest.ReturnItems {
		col := itemColors[i%len(itemColors)]
		label := fmt.Sprintf("%s (%s)", item.Name, item.Reason)
		labelW := pdf.GetStringWidth(label) + 6

		if xPos+labelW > maxX {
			startY += 5
			xPos = marginLeft
		}

		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.Rect(xPos, startY+0.5, 3, 3, "F")

		pdf.SetXY(xPos+4, startY)
		pdf.CellFormat(labelW-4, 4, label, "", 0, "L", false, 0, "")

		xPos += labelW + 2
	}
}

func renderManifestSummary(pdf *fpdf.Fpdf, manifest engine.ReturnManifest) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 10, "Waste Return Manifest Summary", "", 0, "L", false, 0, "")

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+12, pageWidth-marginRight, marginTop+12)

	y := marginTop + 18

	colWidths := []float64{40, 70, 60, 50}
	headers := []string{"Item ID", "Name", "Reason", "Return Plan Step"}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	xPos := marginLeft
	for i, header := range headers {
		pdf.SetXY(xPos, y)
		pdf.CellFormat(colWidths[i], 6, header, "1", 0, "C", true, 0, "")
		xPos += colWidths[i]
	}
	y += 6

	pdf.SetFont("Helvetica", "", 9)
	for i, item := range manifest.ReturnItems {
		xPos = marginLeft
		row := []string{
			item.ItemID,
			item.Name,
			string(item.Reason),
			fmt.Sprintf("%d", i+1),
		}
		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}
		for j, cell := range row {
			pdf.SetXY(xPos, y)
			pdf.CellFormat(colWidths[j], 6, cell, "1", 0, "C", true, 0, "")
			xPos += colWidths[j]
		}
		y += 6
	}

	y += 8
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, fmt.Sprintf("Total mass: %.2f kg, total volume: %d cm3", manifest.TotalWeight, manifest.TotalVolume), "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 4, "Generated by stowctl - Cargo Stowage Management", "", 0, "C", false, 0, "")
}
