package match

import (
	"testing"

	"cvpress/internal/document"
)

func TestCheckATSEmptyDocument(t *testing.T) {
	report := CheckATS(document.New())
	if report.Ready {
		t.Fatal("empty document should not be ATS ready")
	}
	if len(report.Issues) != 5 {
		t.Fatalf("expected 5 issues, got %v", report.Issues)
	}
}

func TestCheckATSReady(t *testing.T) {
	doc := document.New()
	doc.Header = document.Header{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Phone:     "+44 20 7946 0000",
	}
	if _, err := doc.AddExperience(doc.SectionOrder[1], document.ExperienceItem{Company: "Babbage & Co"}); err != nil {
		t.Fatalf("add experience: %v", err)
	}

	report := CheckATS(doc)
	if !report.Ready {
		t.Fatalf("expected ready, issues: %v", report.Issues)
	}
	if len(report.Issues) != 0 {
		t.Fatalf("ready report must carry no issues, got %v", report.Issues)
	}
}

func TestCheckATSPartialHeader(t *testing.T) {
	doc := document.New()
	doc.Header = document.Header{FirstName: "Ada", Email: "ada@example.com"}
	_ = doc.UpdateContent(doc.SectionOrder[0], "Engineer")

	report := CheckATS(doc)
	if report.Ready {
		t.Fatal("missing last name and phone should block readiness")
	}
	want := map[string]bool{
		"last name is empty":      true,
		"phone number is missing": true,
	}
	if len(report.Issues) != len(want) {
		t.Fatalf("issues = %v", report.Issues)
	}
	for _, issue := range report.Issues {
		if !want[issue] {
			t.Errorf("unexpected issue %q", issue)
		}
	}
}
