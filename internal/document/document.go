// Package document 是简历内容的内存模型：页眉加一组有序的分类 section。
// 一份 Document 只属于一个编辑会话；所有修改都走下面的方法，
// 保证消毒器是用户输入进入存储标记的唯一通道。
package document

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"cvpress/internal/sanitize"
)

// Kind 标记 section 联合体的具体类型。
type Kind string

const (
	KindSummary    Kind = "summary"
	KindExperience Kind = "experience"
	KindEducation  Kind = "education"
	KindLanguages  Kind = "languages"
	KindCustom     Kind = "custom"
)

// Header 渲染在第一页顶部，所有字段都是可为空的纯文本。
type Header struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	City      string `json:"city"`
	Email     string `json:"email"`
}

// ExperienceItem 是工作经历 section 里的一条任职记录。
type ExperienceItem struct {
	ID          string `json:"id"`
	Company     string `json:"company"`
	Role        string `json:"role"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Description string `json:"description"` // 已消毒的富文本
}

// EducationItem 是教育经历 section 里的一条学习记录。
type EducationItem struct {
	ID          string `json:"id"`
	School      string `json:"school"`
	Degree      string `json:"degree"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Description string `json:"description"` // 已消毒的富文本
}

// LanguageItem 是语言 section 里的一条语言记录。
type LanguageItem struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Level string `json:"level"`
}

// Section 是五种 section 类型的标签联合体。只有与 Kind 匹配的字段有意义，
// 其余保持零值。
type Section struct {
	ID    string `json:"id"`
	Kind  Kind   `json:"kind"`
	Title string `json:"title"`

	Content    string           `json:"content,omitempty"` // summary/custom 的富文本
	Experience []ExperienceItem `json:"experience,omitempty"`
	Education  []EducationItem  `json:"education,omitempty"`
	Languages  []LanguageItem   `json:"languages,omitempty"`
}

// Document 是页眉加 sections。SectionOrder 是渲染顺序的唯一来源；
// 调整顺序只改这个切片。
type Document struct {
	Header       Header             `json:"header"`
	SectionOrder []string           `json:"section_order"`
	Sections     map[string]Section `json:"sections"`
}

var (
	ErrSectionNotFound = errors.New("section not found")
	ErrItemNotFound    = errors.New("item not found")
)

// New 创建带四个默认 section 的空文档，每个 section 暂无条目。
// Section ID 是新生成的 UUID，永不复用。
func New() *Document {
	doc := &Document{Sections: map[string]Section{}}
	for _, s := range []Section{
		{Kind: KindSummary, Title: "Summary"},
		{Kind: KindExperience, Title: "Experience"},
		{Kind: KindEducation, Title: "Education"},
		{Kind: KindLanguages, Title: "Languages"},
	} {
		s.ID = uuid.NewString()
		doc.Sections[s.ID] = s
		doc.SectionOrder = append(doc.SectionOrder, s.ID)
	}
	return doc
}

// Validate 校验顺序与存储的双射：每个有序 id 恰好对应一个 section，
// 每个 section 在顺序里恰好出现一次，且 map 键必须等于 section 自身的 ID。
// 键与内部 ID 不一致的文档会让渲染产物里的 data-id 与顺序表对不上。
func (d *Document) Validate() error {
	if len(d.SectionOrder) != len(d.Sections) {
		return fmt.Errorf("section order lists %d ids, %d sections stored", len(d.SectionOrder), len(d.Sections))
	}
	seen := make(map[string]bool, len(d.SectionOrder))
	for _, id := range d.SectionOrder {
		if seen[id] {
			return fmt.Errorf("duplicate section id %q in order", id)
		}
		seen[id] = true
		s, ok := d.Sections[id]
		if !ok {
			return fmt.Errorf("ordered section id %q has no stored section", id)
		}
		if s.ID != id {
			return fmt.Errorf("section stored under key %q carries id %q", id, s.ID)
		}
	}
	return nil
}

// Ordered 按渲染顺序返回所有 section。
func (d *Document) Ordered() []Section {
	out := make([]Section, 0, len(d.SectionOrder))
	for _, id := range d.SectionOrder {
		if s, ok := d.Sections[id]; ok {
			out = append(out, s)
		}
	}
	return out
}

// AddSection 追加一个新 section 并返回它。用于用户自定义块；
// 默认四个由 New 创建。
func (d *Document) AddSection(kind Kind, title string) Section {
	s := Section{ID: uuid.NewString(), Kind: kind, Title: title}
	if d.Sections == nil {
		d.Sections = map[string]Section{}
	}
	d.Sections[s.ID] = s
	d.SectionOrder = append(d.SectionOrder, s.ID)
	return s
}

// RemoveSection 删除 section 及其顺序表条目。id 随之退役，不再发放。
func (d *Document) RemoveSection(id string) error {
	if _, ok := d.Sections[id]; !ok {
		return ErrSectionNotFound
	}
	delete(d.Sections, id)
	for i, ordered := range d.SectionOrder {
		if ordered == id {
			d.SectionOrder = append(d.SectionOrder[:i], d.SectionOrder[i+1:]...)
			break
		}
	}
	return nil
}

// Reorder 替换 section 顺序。新顺序必须是当前顺序的一个排列，
// 否则文档保持不变。
func (d *Document) Reorder(order []string) error {
	if len(order) != len(d.SectionOrder) {
		return fmt.Errorf("reorder lists %d ids, document has %d sections", len(order), len(d.SectionOrder))
	}
	seen := make(map[string]bool, len(order))
	for _, id := range order {
		if seen[id] {
			return fmt.Errorf("duplicate section id %q in reorder", id)
		}
		seen[id] = true
		if _, ok := d.Sections[id]; !ok {
			return fmt.Errorf("reorder references unknown section %q", id)
		}
	}
	d.SectionOrder = append([]string(nil), order...)
	return nil
}

// UpdateTitle 重命名 section。
func (d *Document) UpdateTitle(id, title string) error {
	s, ok := d.Sections[id]
	if !ok {
		return ErrSectionNotFound
	}
	s.Title = title
	d.Sections[id] = s
	return nil
}

// UpdateContent 把富文本提交到 summary/custom section。
// 消毒发生在提交时，而不是每次按键。
func (d *Document) UpdateContent(id, htmlContent string) error {
	s, ok := d.Sections[id]
	if !ok {
		return ErrSectionNotFound
	}
	s.Content = sanitize.HTML(htmlContent)
	d.Sections[id] = s
	return nil
}

// SanitizeAll 对每个富文本字段重跑消毒器。用于整份从线上传来的文档，
// 这类文档的单次提交没有走过 UpdateContent。
func (d *Document) SanitizeAll() {
	for id, s := range d.Sections {
		s.Content = sanitize.HTML(s.Content)
		for i := range s.Experience {
			s.Experience[i].Description = sanitize.HTML(s.Experience[i].Description)
		}
		for i := range s.Education {
			s.Education[i].Description = sanitize.HTML(s.Education[i].Description)
		}
		d.Sections[id] = s
	}
}
