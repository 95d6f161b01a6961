package match

import (
	"strings"

	"cvpress/internal/document"
)

// ATSReport 是结构性前置检查清单，与关键词打分无关：
// Issues 为空时 Ready 才为真。
type ATSReport struct {
	Ready  bool     `json:"ready"`
	Issues []string `json:"issues"`
}

// CheckATS 枚举 ATS 解析器依赖、而文档缺失的结构性要求。
// 它从不失败；越不可用的文档只是收集越多问题。
func CheckATS(doc *document.Document) ATSReport {
	issues := []string{}

	if strings.TrimSpace(doc.Header.FirstName) == "" {
		issues = append(issues, "first name is empty")
	}
	if strings.TrimSpace(doc.Header.LastName) == "" {
		issues = append(issues, "last name is empty")
	}
	if strings.TrimSpace(doc.Header.Email) == "" {
		issues = append(issues, "email address is missing")
	}
	if strings.TrimSpace(doc.Header.Phone) == "" {
		issues = append(issues, "phone number is missing")
	}
	if !hasContent(doc) {
		issues = append(issues, "resume has no section content")
	}

	return ATSReport{Ready: len(issues) == 0, Issues: issues}
}

func hasContent(doc *document.Document) bool {
	for _, s := range doc.Ordered() {
		if strings.TrimSpace(s.Content) != "" {
			return true
		}
		if len(s.Experience) > 0 || len(s.Education) > 0 || len(s.Languages) > 0 {
			return true
		}
	}
	return false
}
