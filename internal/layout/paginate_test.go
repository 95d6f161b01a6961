package layout

import (
	"fmt"
	"math/rand"
	"reflect"
	"testing"
)

func sectionsOf(heights ...float64) []MeasuredSection {
	out := make([]MeasuredSection, 0, len(heights))
	for i, h := range heights {
		out = append(out, MeasuredSection{SectionID: fmt.Sprintf("s%d", i+1), HeightPx: h})
	}
	return out
}

func flatten(pages []Page) []string {
	var ids []string
	for _, p := range pages {
		ids = append(ids, p.SectionIDs...)
	}
	return ids
}

func TestPaginateSimpleFit(t *testing.T) {
	pages := Paginate(100, sectionsOf(200, 300, 250), 1000)
	want := []Page{{SectionIDs: []string{"s1", "s2", "s3"}}}
	if !reflect.DeepEqual(pages, want) {
		t.Fatalf("got %+v, want %+v", pages, want)
	}
}

func TestPaginateOverflowToSecondPage(t *testing.T) {
	pages := Paginate(100, sectionsOf(200, 500, 400), 1000)
	want := []Page{
		{SectionIDs: []string{"s1", "s2"}},
		{SectionIDs: []string{"s3"}},
	}
	if !reflect.DeepEqual(pages, want) {
		t.Fatalf("got %+v, want %+v", pages, want)
	}
}

func TestPaginateOversizedSectionOverflows(t *testing.T) {
	// 比整页还高：独占一页，从不拆分。
	pages := Paginate(0, sectionsOf(1400), 1000)
	want := []Page{{SectionIDs: []string{"s1"}}}
	if !reflect.DeepEqual(pages, want) {
		t.Fatalf("got %+v, want %+v", pages, want)
	}
}

func TestPaginateOversizedAmongOthers(t *testing.T) {
	pages := Paginate(0, sectionsOf(300, 1400, 300), 1000)
	want := []Page{
		{SectionIDs: []string{"s1"}},
		{SectionIDs: []string{"s2"}},
		{SectionIDs: []string{"s3"}},
	}
	if !reflect.DeepEqual(pages, want) {
		t.Fatalf("got %+v, want %+v", pages, want)
	}
}

func TestPaginateEmptyDocument(t *testing.T) {
	pages := Paginate(120, nil, 1000)
	if len(pages) != 1 {
		t.Fatalf("expected a single empty page, got %d pages", len(pages))
	}
	if len(pages[0].SectionIDs) != 0 {
		t.Fatalf("expected empty page, got %+v", pages[0])
	}
}

func TestPaginateHeaderOnlyOnFirstPage(t *testing.T) {
	// 600px 的 sections，页眉吃掉第 1 页的 500：第 1 页放一个，
	// 之后每页 1000px 的预算各放一个 600px 的 section。
	pages := Paginate(500, sectionsOf(400, 600, 600), 1000)
	want := []Page{
		{SectionIDs: []string{"s1"}},
		{SectionIDs: []string{"s2"}},
		{SectionIDs: []string{"s3"}},
	}
	if !reflect.DeepEqual(pages, want) {
		t.Fatalf("got %+v, want %+v", pages, want)
	}
}

func TestPaginateNonPositiveContentHeight(t *testing.T) {
	pages := Paginate(100, sectionsOf(10, 20, 30), 0)
	if len(pages) != 3 {
		t.Fatalf("degenerate geometry should yield one section per page, got %+v", pages)
	}
	got := flatten(pages)
	if !reflect.DeepEqual(got, []string{"s1", "s2", "s3"}) {
		t.Fatalf("degenerate order wrong: %v", got)
	}

	if pages := Paginate(0, nil, -50); len(pages) != 1 {
		t.Fatalf("negative height with no sections still needs one page, got %+v", pages)
	}
}

func TestPaginateCoverageProperty(t *testing.T) {
	// 随机高度向量：无论几何如何，摊平的输出必须精确复现输入顺序。
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 200; trial++ {
		n := rng.Intn(12)
		sections := make([]MeasuredSection, 0, n)
		want := make([]string, 0, n)
		for i := 0; i < n; i++ {
			id := fmt.Sprintf("s%d", i+1)
			sections = append(sections, MeasuredSection{SectionID: id, HeightPx: float64(rng.Intn(1500))})
			want = append(want, id)
		}
		header := float64(rng.Intn(400))
		content := float64(rng.Intn(1200)) - 100 // 偶尔为非正值

		pages := Paginate(header, sections, content)
		if len(pages) == 0 {
			t.Fatalf("trial %d: no pages", trial)
		}
		got := flatten(pages)
		if len(got) == 0 && len(want) == 0 {
			continue
		}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("trial %d: flattened %v, want %v (header=%v content=%v)", trial, got, want, header, content)
		}
	}
}

func TestPaginateDeterministic(t *testing.T) {
	sections := sectionsOf(120, 340, 560, 780, 90, 1400, 10)
	first := Paginate(150, sections, 1122)
	second := Paginate(150, sections, 1122)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("same input, different output:\n%+v\n%+v", first, second)
	}
}

func TestGeometryDefaults(t *testing.T) {
	g := Geometry{}.Normalize()
	if g != A4() {
		t.Fatalf("zero geometry should normalize to A4, got %+v", g)
	}
	a4 := A4()
	if a4.PageWidthPx() < 793 || a4.PageWidthPx() > 795 {
		t.Errorf("A4 width %v px, expected ~794", a4.PageWidthPx())
	}
	if a4.PageHeightPx() < 1122 || a4.PageHeightPx() > 1124 {
		t.Errorf("A4 height %v px, expected ~1123", a4.PageHeightPx())
	}
	wantContent := a4.PageHeightPx() - 2*a4.PaddingPx()
	diff := a4.ContentHeightPx() - wantContent
	if diff < -0.05 || diff > 0.05 {
		t.Errorf("content height %v, expected %v", a4.ContentHeightPx(), wantContent)
	}
}
