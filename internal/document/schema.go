package document

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed document.schema.json
var schemaJSON string

var schema = gojsonschema.NewStringLoader(schemaJSON)

// ValidateJSON 在反序列化之前用文档 schema 校验原始载荷。
// 所有形状错误汇总成一条消息，调用方可直接作为一次 bad request 返回。
func ValidateJSON(raw []byte) error {
	res, err := gojsonschema.Validate(schema, gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return fmt.Errorf("validate document payload: %w", err)
	}
	if res.Valid() {
		return nil
	}
	msgs := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("document schema violation: %s", strings.Join(msgs, "; "))
}
