package document

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestNewDefaults(t *testing.T) {
	doc := New()
	if err := doc.Validate(); err != nil {
		t.Fatalf("fresh document invalid: %v", err)
	}
	if len(doc.SectionOrder) != 4 {
		t.Fatalf("expected 4 default sections, got %d", len(doc.SectionOrder))
	}
	wantKinds := []Kind{KindSummary, KindExperience, KindEducation, KindLanguages}
	for i, s := range doc.Ordered() {
		if s.Kind != wantKinds[i] {
			t.Errorf("section %d: kind %q, want %q", i, s.Kind, wantKinds[i])
		}
	}
	if !doc.Empty() {
		t.Error("fresh document should be empty")
	}
}

func TestValidateDetectsDrift(t *testing.T) {
	doc := New()

	broken := *doc
	broken.SectionOrder = append([]string(nil), doc.SectionOrder...)
	broken.SectionOrder[0] = "ghost"
	if err := broken.Validate(); err == nil {
		t.Error("unknown id in order should fail validation")
	}

	dup := *doc
	dup.SectionOrder = append([]string(nil), doc.SectionOrder...)
	dup.SectionOrder[1] = dup.SectionOrder[0]
	if err := dup.Validate(); err == nil {
		t.Error("duplicate id in order should fail validation")
	}
}

func TestValidateRejectsKeyIDMismatch(t *testing.T) {
	doc := &Document{
		SectionOrder: []string{"k1"},
		Sections: map[string]Section{
			"k1": {ID: "s1", Kind: KindSummary, Title: "Summary"},
		},
	}
	if err := doc.Validate(); err == nil {
		t.Error("map key diverging from section id should fail validation")
	}
}

func TestUpdateTitle(t *testing.T) {
	doc := New()
	summaryID := doc.SectionOrder[0]

	if err := doc.UpdateTitle(summaryID, "Profile"); err != nil {
		t.Fatalf("update title: %v", err)
	}
	if doc.Sections[summaryID].Title != "Profile" {
		t.Errorf("title not applied: %q", doc.Sections[summaryID].Title)
	}
	if err := doc.UpdateTitle("ghost", "X"); err != ErrSectionNotFound {
		t.Errorf("renaming unknown section: got %v, want ErrSectionNotFound", err)
	}
}

func TestReorder(t *testing.T) {
	doc := New()
	order := append([]string(nil), doc.SectionOrder...)
	order[0], order[3] = order[3], order[0]

	if err := doc.Reorder(order); err != nil {
		t.Fatalf("reorder: %v", err)
	}
	if doc.SectionOrder[0] != order[0] || doc.SectionOrder[3] != order[3] {
		t.Error("reorder not applied")
	}
	if err := doc.Validate(); err != nil {
		t.Fatalf("document invalid after reorder: %v", err)
	}

	if err := doc.Reorder(order[:2]); err == nil {
		t.Error("partial reorder should be rejected")
	}
	if err := doc.Reorder([]string{order[0], order[0], order[1], order[2]}); err == nil {
		t.Error("reorder with duplicates should be rejected")
	}
}

func TestAddRemoveSection(t *testing.T) {
	doc := New()
	custom := doc.AddSection(KindCustom, "Certifications")
	if len(doc.SectionOrder) != 5 {
		t.Fatalf("expected 5 sections after add, got %d", len(doc.SectionOrder))
	}
	if doc.SectionOrder[4] != custom.ID {
		t.Error("custom section should append at the end of the order")
	}

	if err := doc.RemoveSection(custom.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := doc.Validate(); err != nil {
		t.Fatalf("document invalid after remove: %v", err)
	}
	if err := doc.RemoveSection(custom.ID); err != ErrSectionNotFound {
		t.Errorf("removing retired id: got %v, want ErrSectionNotFound", err)
	}
}

func TestUpdateContentSanitizes(t *testing.T) {
	doc := New()
	summaryID := doc.SectionOrder[0]
	if err := doc.UpdateContent(summaryID, `<b>Go</b><script>alert(1)</script> engineer`); err != nil {
		t.Fatalf("update content: %v", err)
	}
	got := doc.Sections[summaryID].Content
	if strings.Contains(got, "<script") {
		t.Errorf("script survived sanitization: %q", got)
	}
	if !strings.Contains(got, "<b>Go</b>") {
		t.Errorf("allowed markup lost: %q", got)
	}
}

func TestExperienceItemLifecycle(t *testing.T) {
	doc := New()
	expID := doc.SectionOrder[1]

	item, err := doc.AddExperience(expID, ExperienceItem{
		Company:     "Acme",
		Role:        "Backend Engineer",
		Description: `<i>Built</i> <div>services</div>`,
	})
	if err != nil {
		t.Fatalf("add experience: %v", err)
	}
	if item.ID == "" {
		t.Fatal("item id not assigned")
	}
	stored := doc.Sections[expID].Experience[0]
	if strings.Contains(stored.Description, "<div>") {
		t.Errorf("description not sanitized: %q", stored.Description)
	}

	item.Role = "Staff Engineer"
	if err := doc.UpdateExperience(expID, item); err != nil {
		t.Fatalf("update experience: %v", err)
	}
	if doc.Sections[expID].Experience[0].Role != "Staff Engineer" {
		t.Error("update not applied")
	}

	if err := doc.RemoveExperience(expID, item.ID); err != nil {
		t.Fatalf("remove experience: %v", err)
	}
	if err := doc.RemoveExperience(expID, item.ID); err != ErrItemNotFound {
		t.Errorf("removing missing item: got %v, want ErrItemNotFound", err)
	}
}

func TestPlainText(t *testing.T) {
	doc := New()
	doc.Header = Header{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com"}
	_ = doc.UpdateContent(doc.SectionOrder[0], "<b>Python</b> and Docker expertise")
	_, _ = doc.AddExperience(doc.SectionOrder[1], ExperienceItem{
		Company: "Babbage & Co", Role: "Engineer", Description: "<ul><li>analytical engine</li></ul>",
	})
	_, _ = doc.AddLanguage(doc.SectionOrder[3], LanguageItem{Name: "English", Level: "Native"})

	text := doc.PlainText()
	for _, want := range []string{"Ada Lovelace", "Python and Docker expertise", "Engineer Babbage & Co", "analytical engine", "English Native"} {
		if !strings.Contains(text, want) {
			t.Errorf("plain text missing %q:\n%s", want, text)
		}
	}
	if strings.Contains(text, "<") {
		t.Errorf("markup leaked into plain text:\n%s", text)
	}
}

func TestValidateJSON(t *testing.T) {
	doc := New()
	raw, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if err := ValidateJSON(raw); err != nil {
		t.Fatalf("valid document rejected: %v", err)
	}

	bad := []byte(`{"header": {}, "sections": {}}`)
	if err := ValidateJSON(bad); err == nil {
		t.Error("payload without section_order should be rejected")
	}

	badKind := []byte(`{
		"header": {},
		"section_order": ["s1"],
		"sections": {"s1": {"id": "s1", "kind": "portfolio", "title": "X"}}
	}`)
	if err := ValidateJSON(badKind); err == nil {
		t.Error("unknown section kind should be rejected")
	}
}
