// Package match 把职位描述与简历全文做比对。这是字面词元匹配，
// 不是语义搜索：足以告诉候选人哪些词 ATS 过滤器会找不到。
package match

import (
	"strings"
	"unicode"
)

// stopwords 是冠词、连词与常见介词，它们只会撑大关键词分母，
// 不携带任何信号。
var stopwords = map[string]bool{
	"the": true, "and": true, "but": true, "nor": true, "yet": true,
	"for": true, "with": true, "from": true, "into": true, "onto": true,
	"upon": true, "over": true, "under": true, "about": true, "above": true,
	"below": true, "between": true, "among": true, "through": true,
	"during": true, "within": true, "without": true, "via": true,
	"per": true, "across": true, "after": true, "before": true,
	"against": true, "toward": true, "towards": true,
}

// Keywords 把文本切成去重后的小写关键词，保持首次出现的顺序。
// 词元按非字母数字边界切分；短于三个字符的词元与停用词被丢弃。
func Keywords(text string) []string {
	var (
		out  []string
		seen = map[string]bool{}
		word strings.Builder
	)

	flush := func() {
		if word.Len() == 0 {
			return
		}
		token := word.String()
		word.Reset()
		if len([]rune(token)) < 3 || stopwords[token] || seen[token] {
			return
		}
		seen[token] = true
		out = append(out, token)
	}

	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			word.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()
	return out
}

// keywordSet 把 Keywords 压成集合，用于不关心顺序的简历一侧。
func keywordSet(text string) map[string]bool {
	set := map[string]bool{}
	for _, kw := range Keywords(text) {
		set[kw] = true
	}
	return set
}
