package document

import (
	"strings"

	"cvpress/internal/sanitize"
)

// PlainText 按渲染顺序把整份文档压成无标记纯文本，不做大小写处理，
// 需要时由调用方转小写。字段间用空格、块间用换行连接，保住分词边界。
func (d *Document) PlainText() string {
	var b strings.Builder

	writeLine := func(parts ...string) {
		wrote := false
		for _, p := range parts {
			p = strings.TrimSpace(p)
			if p == "" {
				continue
			}
			if wrote {
				b.WriteByte(' ')
			}
			b.WriteString(p)
			wrote = true
		}
		if wrote {
			b.WriteByte('\n')
		}
	}

	writeLine(d.Header.FirstName, d.Header.LastName)
	writeLine(d.Header.City)
	writeLine(d.Header.Phone)
	writeLine(d.Header.Email)

	for _, s := range d.Ordered() {
		writeLine(s.Title)
		switch s.Kind {
		case KindSummary, KindCustom:
			writeLine(sanitize.Text(s.Content))
		case KindExperience:
			for _, item := range s.Experience {
				writeLine(item.Role, item.Company, item.StartDate, item.EndDate)
				writeLine(sanitize.Text(item.Description))
			}
		case KindEducation:
			for _, item := range s.Education {
				writeLine(item.Degree, item.School, item.StartDate, item.EndDate)
				writeLine(sanitize.Text(item.Description))
			}
		case KindLanguages:
			for _, item := range s.Languages {
				writeLine(item.Name, item.Level)
			}
		}
	}

	return strings.TrimSpace(b.String())
}

// Empty 报告文档是否完全没有用户内容：页眉为空且每个 section
// 既无文本也无条目。
func (d *Document) Empty() bool {
	if d.Header != (Header{}) {
		return false
	}
	for _, s := range d.Sections {
		if strings.TrimSpace(sanitize.Text(s.Content)) != "" {
			return false
		}
		if len(s.Experience) > 0 || len(s.Education) > 0 || len(s.Languages) > 0 {
			return false
		}
	}
	return true
}
