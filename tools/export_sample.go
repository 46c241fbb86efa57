// Renders the bundled sample resume to resume.json, resume.html, and
// resume.docx in the current directory, plus resume.pdf when -pdf is set and
// a Chrome binary is reachable. Development aid for eyeballing exporter
// output after template changes.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/mazenS1/Resume-Builder/internal/adapter/export"
	"github.com/mazenS1/Resume-Builder/internal/model"
	"github.com/mazenS1/Resume-Builder/pkg/infrastructure"
)

func main() {
	lang := flag.String("lang", "en", "sample language (en or ar)")
	withPDF := flag.Bool("pdf", false, "also render resume.pdf via headless Chrome")
	flag.Parse()

	r := model.SampleResume(*lang)
	isRTL := *lang == "ar"

	jsonBytes, err := export.ExportJSON(r)
	if err != nil {
		fail(err)
	}
	writeFile("resume.json", jsonBytes)

	html, err := export.RenderHTML(r, isRTL)
	if err != nil {
		fail(err)
	}
	writeFile("resume.html", []byte(html))

	docxBytes, err := export.ExportDOCX(r, isRTL)
	if err != nil {
		fail(err)
	}
	writeFile("resume.docx", docxBytes)

	if *withPDF {
		renderer := infrastructure.NewChromedpRenderer()
		pdfBytes, err := renderer.RenderHTMLToPDF(context.Background(), html)
		if err != nil {
			fail(err)
		}
		writeFile("resume.pdf", pdfBytes)
	}
}

func writeFile(name string, data []byte) {
	if err := os.WriteFile(name, data, 0o644); err != nil {
		fail(err)
	}
	fmt.Printf("wrote %s (%d bytes)\n", name, len(data))
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}
