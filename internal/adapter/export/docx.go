package export

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/mazenS1/Resume-Builder/internal/model"
	"github.com/mazenS1/Resume-Builder/internal/view"
)

// DOCX export writes a minimal ECMA-376 package by hand: one document part,
// a styles part, the content-types manifest, and the package relationships.
// The layout follows the app's print design: Times New Roman, uppercase
// bordered section headers, entry titles with right-tabbed date ranges, and
// indented bullet lines.

const docxFont = "Times New Roman"

// rightTabTwips is the right tab stop for date ranges: 6.5in of usable width
// on a letter page with 1in margins.
const rightTabTwips = 9360

const contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
<Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/>
</Types>`

const packageRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

const documentRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>
</Relationships>`

const stylesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:styles xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:docDefaults>
<w:rPrDefault><w:rPr><w:rFonts w:ascii="Times New Roman" w:hAnsi="Times New Roman" w:cs="Times New Roman"/><w:sz w:val="20"/></w:rPr></w:rPrDefault>
<w:pPrDefault><w:pPr><w:spacing w:after="40"/></w:pPr></w:pPrDefault>
</w:docDefaults>
</w:styles>`

// ExportDOCX serializes the document snapshot to DOCX bytes.
func ExportDOCX(r *model.Resume, isRTL bool) ([]byte, error) {
	snapshot := r.Clone()
	doc := buildDocumentXML(snapshot, isRTL)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	parts := []struct{ name, body string }{
		{"[Content_Types].xml", contentTypesXML},
		{"_rels/.rels", packageRelsXML},
		{"word/_rels/document.xml.rels", documentRelsXML},
		{"word/styles.xml", stylesXML},
		{"word/document.xml", doc},
	}
	for _, part := range parts {
		w, err := zw.Create(part.name)
		if err != nil {
			return nil, fmt.Errorf("failed to build docx: %w", err)
		}
		if _, err := w.Write([]byte(part.body)); err != nil {
			return nil, fmt.Errorf("failed to build docx: %w", err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("failed to build docx: %w", err)
	}
	return buf.Bytes(), nil
}

func buildDocumentXML(r *model.Resume, isRTL bool) string {
	d := &docWriter{rtl: isRTL}
	d.buf.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n")
	d.buf.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)

	// Header block: name, headline, contact line, all centered.
	d.para(paraProps{center: true, spacingAfter: 40},
		docRun{text: r.BasicInfo.Name, bold: true, size: 32})
	if r.BasicInfo.Headline != "" {
		d.para(paraProps{center: true, spacingAfter: 40},
			docRun{text: r.BasicInfo.Headline, size: 22})
	}
	if contact := contactLine(r.BasicInfo); contact != "" {
		d.para(paraProps{center: true, spacingAfter: 120},
			docRun{text: contact, size: 18})
	}

	for _, sec := range view.SortSections(r.Sections) {
		d.para(paraProps{spacingBefore: 200, spacingAfter: 80, bottomBorder: true},
			docRun{text: strings.ToUpper(view.SectionDisplayTitle(sec)), bold: true, size: 22})

		for _, e := range sec.Entries {
			titleRuns := []docRun{{text: e.Title, bold: true, size: 21}}
			if e.Subtitle != "" {
				titleRuns = append(titleRuns, docRun{text: " — " + e.Subtitle, size: 21})
			}
			if dates := view.FormatDateRange(e.StartDate, e.EndDate, e.IsCurrent); dates != "" {
				titleRuns = append(titleRuns,
					docRun{tab: true},
					docRun{text: dates, size: 19})
			}
			d.para(paraProps{rightTab: true, spacingAfter: 20}, titleRuns...)

			if org := orgLine(e); org != "" {
				d.para(paraProps{spacingAfter: 20}, docRun{text: org, italic: true, size: 19})
			}
			if e.Description != "" {
				d.para(paraProps{spacingAfter: 20}, docRun{text: e.Description, size: 20})
			}
			if e.ProjectURL != "" {
				d.para(paraProps{spacingAfter: 20}, docRun{text: e.ProjectURL, size: 19})
			}
			if len(e.TechStack) > 0 {
				d.para(paraProps{spacingAfter: 20},
					docRun{text: strings.Join(e.TechStack, " · "), italic: true, size: 19})
			}
			for _, b := range e.Bullets {
				d.para(paraProps{indentLeft: 360, spacingAfter: 20},
					docRun{text: "• " + b.Text, size: 20})
			}
		}
	}

	d.buf.WriteString(sectPr(isRTL))
	d.buf.WriteString(`</w:body></w:document>`)
	return d.buf.String()
}

func contactLine(b model.BasicInfo) string {
	parts := []string{}
	for _, v := range []string{b.Email, b.Phone, b.Location} {
		if v != "" {
			parts = append(parts, v)
		}
	}
	for _, l := range b.Links {
		parts = append(parts, l.Label+": "+l.URL)
	}
	return strings.Join(parts, "  •  ")
}

func orgLine(e model.Entry) string {
	switch {
	case e.CompanyOrOrg != "" && e.Location != "":
		return e.CompanyOrOrg + ", " + e.Location
	case e.CompanyOrOrg != "":
		return e.CompanyOrOrg
	case e.Location != "":
		return e.Location
	}
	return ""
}

type paraProps struct {
	center        bool
	rightTab      bool
	bottomBorder  bool
	indentLeft    int
	spacingBefore int
	spacingAfter  int
}

type docRun struct {
	text   string
	bold   bool
	italic bool
	size   int // half-points
	tab    bool
}

type docWriter struct {
	buf bytes.Buffer
	rtl bool
}

func (d *docWriter) para(props paraProps, runs ...docRun) {
	d.buf.WriteString(`<w:p><w:pPr>`)
	if d.rtl {
		d.buf.WriteString(`<w:bidi/>`)
	}
	if props.center {
		d.buf.WriteString(`<w:jc w:val="center"/>`)
	}
	if props.bottomBorder {
		d.buf.WriteString(`<w:pBdr><w:bottom w:val="single" w:sz="4" w:space="1" w:color="1a202c"/></w:pBdr>`)
	}
	if props.rightTab {
		fmt.Fprintf(&d.buf, `<w:tabs><w:tab w:val="right" w:pos="%d"/></w:tabs>`, rightTabTwips)
	}
	if props.indentLeft > 0 {
		fmt.Fprintf(&d.buf, `<w:ind w:left="%d"/>`, props.indentLeft)
	}
	if props.spacingBefore > 0 || props.spacingAfter > 0 {
		fmt.Fprintf(&d.buf, `<w:spacing w:before="%d" w:after="%d"/>`, props.spacingBefore, props.spacingAfter)
	}
	d.buf.WriteString(`</w:pPr>`)
	for _, r := range runs {
		d.writeRun(r)
	}
	d.buf.WriteString(`</w:p>`)
}

func (d *docWriter) writeRun(r docRun) {
	d.buf.WriteString(`<w:r><w:rPr>`)
	fmt.Fprintf(&d.buf, `<w:rFonts w:ascii="%s" w:hAnsi="%s" w:cs="%s"/>`, docxFont, docxFont, docxFont)
	if r.bold {
		d.buf.WriteString(`<w:b/>`)
	}
	if r.italic {
		d.buf.WriteString(`<w:i/>`)
	}
	if r.size > 0 {
		fmt.Fprintf(&d.buf, `<w:sz w:val="%d"/><w:szCs w:val="%d"/>`, r.size, r.size)
	}
	d.buf.WriteString(`</w:rPr>`)
	if r.tab {
		d.buf.WriteString(`<w:tab/>`)
	}
	if r.text != "" {
		d.buf.WriteString(`<w:t xml:space="preserve">`)
		// bytes.Buffer writes cannot fail, so EscapeText cannot either.
		_ = xml.EscapeText(&d.buf, []byte(r.text))
		d.buf.WriteString(`</w:t>`)
	}
	d.buf.WriteString(`</w:r>`)
}

func sectPr(isRTL bool) string {
	bidi := ""
	if isRTL {
		bidi = `<w:bidi/>`
	}
	return `<w:sectPr>` + bidi +
		`<w:pgSz w:w="12240" w:h="15840"/>` +
		`<w:pgMar w:top="1080" w:right="1080" w:bottom="1080" w:left="1080"/>` +
		`</w:sectPr>`
}
