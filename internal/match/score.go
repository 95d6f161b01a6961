package match

import (
	"math"
	"strings"

	"cvpress/internal/document"
)

// maxMissing 限制返回给界面的缺失关键词数量。
const maxMissing = 12

// Result 是一份职位描述对一份简历的覆盖报告。
type Result struct {
	Score   int      `json:"score"`   // 0..100
	Missing []string `json:"missing"` // 简历中缺失的职位关键词，按首次出现顺序
}

// Score 计算简历覆盖了职位描述关键词集的多少。纯函数：不修改文档，
// 可以反复调用。空职位描述返回 {0, []}，不是错误。
func Score(jobDescription string, doc *document.Document) Result {
	jobKeywords := Keywords(jobDescription)
	if len(jobKeywords) == 0 {
		return Result{Score: 0, Missing: []string{}}
	}

	resume := keywordSet(strings.ToLower(doc.PlainText()))

	matched := 0
	missing := []string{}
	for _, kw := range jobKeywords {
		if resume[kw] {
			matched++
			continue
		}
		if len(missing) < maxMissing {
			missing = append(missing, kw)
		}
	}

	score := int(math.Round(100 * float64(matched) / float64(len(jobKeywords))))
	return Result{Score: score, Missing: missing}
}
