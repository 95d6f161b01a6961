package export

import (
	"strings"
	"testing"

	"cvpress/internal/document"
	"cvpress/internal/layout"
)

func sampleDoc(t *testing.T) *document.Document {
	t.Helper()
	doc := document.New()
	doc.Header = document.Header{FirstName: "Ada", LastName: "Lovelace", City: "London", Email: "ada@example.com"}
	if err := doc.UpdateContent(doc.SectionOrder[0], "<b>Mathematician</b> and engineer"); err != nil {
		t.Fatalf("update content: %v", err)
	}
	if _, err := doc.AddExperience(doc.SectionOrder[1], document.ExperienceItem{
		Company: "Babbage & Co", Role: "Engineer", StartDate: "1837", EndDate: "1843",
		Description: "<ul><li>programs for the analytical engine</li></ul>",
	}); err != nil {
		t.Fatalf("add experience: %v", err)
	}
	if _, err := doc.AddLanguage(doc.SectionOrder[3], document.LanguageItem{Name: "French", Level: "Fluent"}); err != nil {
		t.Fatalf("add language: %v", err)
	}
	return doc
}

func twoPages(doc *document.Document) []layout.Page {
	return []layout.Page{
		{SectionIDs: doc.SectionOrder[:2]},
		{SectionIDs: doc.SectionOrder[2:]},
	}
}

func TestPageHTML(t *testing.T) {
	doc := sampleDoc(t)
	html, err := PageHTML(doc, twoPages(doc), layout.A4())
	if err != nil {
		t.Fatalf("PageHTML: %v", err)
	}

	if got := strings.Count(html, `<div class="page">`); got != 2 {
		t.Errorf("expected 2 page blocks, got %d", got)
	}
	// 页眉只在第 1 页渲染。
	if got := strings.Count(html, `id="cv-header"`); got != 1 {
		t.Errorf("expected 1 header block, got %d", got)
	}
	for _, want := range []string{
		"Ada Lovelace",
		"<b>Mathematician</b>",
		"Engineer, Babbage &amp; Co",
		"<li>programs for the analytical engine</li>",
		"French",
		"@page",
		"210mm 297mm",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("print html missing %q", want)
		}
	}
}

func TestPageHTMLUnknownSection(t *testing.T) {
	doc := sampleDoc(t)
	_, err := PageHTML(doc, []layout.Page{{SectionIDs: []string{"ghost"}}}, layout.A4())
	if err == nil {
		t.Fatal("page referencing unknown section should fail")
	}
}

func TestMeasureHTML(t *testing.T) {
	doc := sampleDoc(t)
	html, err := MeasureHTML(doc, layout.A4())
	if err != nil {
		t.Fatalf("MeasureHTML: %v", err)
	}

	if strings.Contains(html, `class="page"`) {
		t.Error("measurement surface must not be paginated")
	}
	if got := strings.Count(html, "data-id="); got != len(doc.SectionOrder) {
		t.Errorf("expected %d measurable sections, got %d", len(doc.SectionOrder), got)
	}
	for _, id := range doc.SectionOrder {
		if !strings.Contains(html, `data-id="`+id+`"`) {
			t.Errorf("section %s missing from measurement surface", id)
		}
	}
	if !strings.Contains(html, `id="cv-header"`) {
		t.Error("header missing from measurement surface")
	}
}

func TestMeasureAndPrintShareMarkup(t *testing.T) {
	doc := sampleDoc(t)
	measureHTML, err := MeasureHTML(doc, layout.A4())
	if err != nil {
		t.Fatalf("MeasureHTML: %v", err)
	}
	printHTML, err := PageHTML(doc, twoPages(doc), layout.A4())
	if err != nil {
		t.Fatalf("PageHTML: %v", err)
	}

	// 两个面必须输出相同的 section 标记，否则分页偏离打印结果。
	for _, fragment := range []string{
		"<b>Mathematician</b>",
		"<li>programs for the analytical engine</li>",
		`font-family: Arial, Helvetica, sans-serif;`,
	} {
		if !strings.Contains(measureHTML, fragment) || !strings.Contains(printHTML, fragment) {
			t.Errorf("fragment %q not shared by both surfaces", fragment)
		}
	}
}
