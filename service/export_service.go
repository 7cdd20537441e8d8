package service

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/google/uuid"

	"github.com/GeraldTgit/magingwais/models"
	"github.com/GeraldTgit/magingwais/pricing"
	"github.com/GeraldTgit/magingwais/utils"
)

// ExportService renders a shopping list to a printable PDF through
// headless Chrome.
type ExportService struct {
	lists ListServiceInterface
}

// NewExportService creates a new ExportService
func NewExportService(lists ListServiceInterface) *ExportService {
	return &ExportService{lists: lists}
}

// Ensure ExportService implements ExportServiceInterface
var _ ExportServiceInterface = (*ExportService)(nil)

// detectChromePath detects the path to Chrome/Chromium executable
// Checks CHROME_PATH env var first, then common installation paths
func detectChromePath() string {
	if chromePath := os.Getenv("CHROME_PATH"); chromePath != "" {
		if _, err := os.Stat(chromePath); err == nil {
			return chromePath
		}
	}

	paths := []string{
		"/usr/bin/chromium",
		"/usr/bin/chromium-browser",
		"/usr/bin/google-chrome",
		"/usr/bin/google-chrome-stable",
		"/snap/bin/chromium",
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

const listTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
  body { font-family: Arial, sans-serif; margin: 24px; color: #222; }
  h1 { margin-bottom: 0; }
  .creator { color: #666; margin-bottom: 16px; }
  table { width: 100%; border-collapse: collapse; }
  th, td { border-bottom: 1px solid #ddd; padding: 6px 8px; text-align: left; }
  th { background: #f4f4f4; }
  td.num, th.num { text-align: right; }
  .bought { color: #888; text-decoration: line-through; }
  .totals { margin-top: 16px; text-align: right; font-size: 1.1em; }
  .over { color: #c0392b; }
</style>
</head>
<body>
  <h1>{{.List.Name}}</h1>
  {{if .List.CreatorNickname}}<div class="creator">Created by: {{.List.CreatorNickname}}</div>{{end}}
  <table>
    <tr>
      <th></th><th>Item</th><th>Brand</th><th class="num">Qty</th>
      <th class="num">Unit Price</th><th class="num">Subtotal</th>
    </tr>
    {{range .Lines}}
    <tr{{if .Bought}} class="bought"{{end}}>
      <td>{{if .Bought}}&#9745;{{else}}&#9744;{{end}}</td>
      <td>{{.Name}}</td>
      <td>{{.Brand}}</td>
      <td class="num">x{{.Quantity}}</td>
      <td class="num">{{.UnitPrice}}</td>
      <td class="num">{{.Subtotal}}</td>
    </tr>
    {{end}}
  </table>
  <div class="totals">
    <div>Total: <strong>{{.Total}}</strong></div>
    {{if .HasBudget}}<div>Budget: {{.Budget}}</div>
    <div{{if .OverBudget}} class="over"{{end}}>Change: {{.Change}}</div>{{end}}
  </div>
</body>
</html>`

type exportLine struct {
	Name      string
	Brand     string
	Quantity  int
	UnitPrice string
	Subtotal  string
	Bought    bool
}

// renderListHTML renders the shopping list export template
func renderListHTML(detail *models.ShoppingListDetail) (string, error) {
	lines := make([]exportLine, 0, len(detail.Items))
	for i := range detail.Items {
		item := &detail.Items[i]
		lines = append(lines, exportLine{
			Name:      item.ItemName,
			Brand:     item.Brand,
			Quantity:  item.Quantity,
			UnitPrice: utils.FormatPHP(pricing.UnitPrice(item)),
			Subtotal:  utils.FormatPHP(pricing.Subtotal(item)),
			Bought:    item.IsBought,
		})
	}

	templateData := struct {
		List       *models.ShoppingListDetail
		Lines      []exportLine
		Total      string
		HasBudget  bool
		Budget     string
		Change     string
		OverBudget bool
	}{
		List:  detail,
		Lines: lines,
		Total: utils.FormatPHP(detail.Total),
	}
	if detail.Budget != nil {
		templateData.HasBudget = true
		templateData.Budget = utils.FormatPHP(*detail.Budget)
		templateData.Change = utils.FormatPHP(detail.Change)
		templateData.OverBudget = detail.Change < 0
	}

	tmpl, err := template.New("list").Parse(listTemplate)
	if err != nil {
		return "", fmt.Errorf("failed to parse list template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, templateData); err != nil {
		return "", fmt.Errorf("failed to execute list template: %w", err)
	}
	return buf.String(), nil
}

// ExportListPDF renders a readable list as an A4 PDF. Visibility is
// gated exactly like any other read of the list.
func (s *ExportService) ExportListPDF(ctx context.Context, listID int64, actorID string) ([]byte, error) {
	detail, err := s.lists.GetList(ctx, listID, actorID)
	if err != nil {
		return nil, err
	}

	html, err := renderListHTML(detail)
	if err != nil {
		return nil, err
	}

	// Chrome only navigates to files and URLs, so stage the rendered
	// HTML in a throwaway temp file.
	htmlPath := filepath.Join(os.TempDir(), fmt.Sprintf("list_export_%s.html", uuid.NewString()))
	if err := os.WriteFile(htmlPath, []byte(html), 0644); err != nil {
		return nil, fmt.Errorf("failed to stage export html: %w", err)
	}
	defer os.Remove(htmlPath)

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox, // Required for running in Docker/containers
	)
	if chromePath := detectChromePath(); chromePath != "" {
		opts = append(opts, chromedp.ExecPath(chromePath))
	}
	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	defer allocCancel()

	chromedpCtx, chromedpCancel := chromedp.NewContext(allocCtx)
	defer chromedpCancel()

	var pdfBuf []byte
	err = chromedp.Run(chromedpCtx,
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			// A4: 8.27" x 11.69"
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).
				WithPaperHeight(11.69).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		log.Printf("❌ ExportListPDF: Failed to generate PDF for list %d: %v", listID, err)
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	log.Printf("✅ ExportListPDF: Generated PDF for list id=%d (%d bytes)", listID, len(pdfBuf))
	return pdfBuf, nil
}
