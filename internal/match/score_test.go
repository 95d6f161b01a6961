package match

import (
	"reflect"
	"testing"

	"cvpress/internal/document"
)

func docWithSummary(t *testing.T, summary string) *document.Document {
	t.Helper()
	doc := document.New()
	if err := doc.UpdateContent(doc.SectionOrder[0], summary); err != nil {
		t.Fatalf("update summary: %v", err)
	}
	return doc
}

func TestKeywords(t *testing.T) {
	got := Keywords("Senior Python Developer with AWS and Docker experience")
	want := []string{"senior", "python", "developer", "aws", "docker", "experience"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Keywords = %v, want %v", got, want)
	}
}

func TestKeywordsDropShortAndDuplicate(t *testing.T) {
	got := Keywords("Go, go, GO! C# or k8s, k8s")
	// 按非字母数字边界切分后 "go"、"c"、"or" 都不足三个字符；
	// "k8s" 保留并去重。
	want := []string{"k8s"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Keywords = %v, want %v", got, want)
	}
}

func TestScoreMissingAndCoverage(t *testing.T) {
	doc := docWithSummary(t, "Senior <b>Python</b> developer, Docker deployments, production experience")
	result := Score("Senior Python Developer with AWS and Docker experience", doc)

	// 停用词（"with"、"and"）不计入分母：剩余 6 个关键词覆盖了 5 个。
	if result.Score != 83 {
		t.Errorf("score = %d, want 83", result.Score)
	}
	if !reflect.DeepEqual(result.Missing, []string{"aws"}) {
		t.Errorf("missing = %v, want [aws]", result.Missing)
	}
}

func TestScoreEmptyJobDescription(t *testing.T) {
	doc := docWithSummary(t, "anything at all")
	for _, jd := range []string{"", "   ", "a an &!"} {
		result := Score(jd, doc)
		if result.Score != 0 {
			t.Errorf("Score(%q) = %d, want 0", jd, result.Score)
		}
		if len(result.Missing) != 0 {
			t.Errorf("Score(%q) missing = %v, want empty", jd, result.Missing)
		}
	}
}

func TestScoreEmptyDocument(t *testing.T) {
	result := Score("kubernetes terraform golang", document.New())
	if result.Score != 0 {
		t.Errorf("score against empty document = %d, want 0", result.Score)
	}
	want := []string{"kubernetes", "terraform", "golang"}
	if !reflect.DeepEqual(result.Missing, want) {
		t.Errorf("missing = %v, want %v", result.Missing, want)
	}
}

func TestScoreBoundsAndMissingCap(t *testing.T) {
	jd := "alpha bravo charlie delta echo foxtrot golf hotel india juliett " +
		"kilo lima mike november oscar papa quebec romeo sierra tango"
	result := Score(jd, document.New())
	if result.Score < 0 || result.Score > 100 {
		t.Errorf("score %d out of [0,100]", result.Score)
	}
	if len(result.Missing) != maxMissing {
		t.Errorf("missing truncated to %d entries, want %d", len(result.Missing), maxMissing)
	}
	// 截断后仍保持首次出现的顺序。
	if result.Missing[0] != "alpha" || result.Missing[maxMissing-1] != "lima" {
		t.Errorf("missing order wrong: %v", result.Missing)
	}
}

func TestScoreFullCoverage(t *testing.T) {
	doc := docWithSummary(t, "Kubernetes and Terraform on Golang")
	result := Score("golang kubernetes terraform", doc)
	if result.Score != 100 {
		t.Errorf("score = %d, want 100", result.Score)
	}
	if len(result.Missing) != 0 {
		t.Errorf("missing = %v, want empty", result.Missing)
	}
}

func TestScoreIsPure(t *testing.T) {
	doc := docWithSummary(t, "Python and Docker")
	before := doc.PlainText()
	for i := 0; i < 3; i++ {
		_ = Score("python aws", doc)
	}
	if doc.PlainText() != before {
		t.Error("scoring mutated the document")
	}
}
