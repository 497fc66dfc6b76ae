// Package contact 实现联系表单：字段校验、输入清理和模拟提交
package contact

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// ErrInvalid 表单校验失败
var ErrInvalid = errors.New("contact: invalid form")

// Field 表单字段
type Field string

const (
	FieldName    Field = "name"
	FieldEmail   Field = "email"
	FieldCompany Field = "company"
	FieldPhone   Field = "phone"
	FieldBudget  Field = "budget"
	FieldMessage Field = "message"
)

// Fields 表单字段顺序
var Fields = []Field{FieldName, FieldEmail, FieldCompany, FieldPhone, FieldBudget, FieldMessage}

// 校验错误键，由界面翻译
const (
	ErrKeyRequired     = "required"
	ErrKeyInvalidEmail = "invalidEmail"
)

var emailPattern = regexp.MustCompile(`(?i)^[A-Z0-9._%+-]+@[A-Z0-9.-]+\.[A-Z]{2,}$`)

// 去除全部 HTML
var policy = bluemonday.StrictPolicy()

// Form 表单值
type Form struct {
	Name    string
	Email   string
	Company string
	Phone   string
	Budget  string
	Message string
}

// Get 返回字段值
func (f Form) Get(field Field) string {
	switch field {
	case FieldName:
		return f.Name
	case FieldEmail:
		return f.Email
	case FieldCompany:
		return f.Company
	case FieldPhone:
		return f.Phone
	case FieldBudget:
		return f.Budget
	case FieldMessage:
		return f.Message
	}
	return ""
}

// With 返回设置了字段值的副本
func (f Form) With(field Field, value string) Form {
	switch field {
	case FieldName:
		f.Name = value
	case FieldEmail:
		f.Email = value
	case FieldCompany:
		f.Company = value
	case FieldPhone:
		f.Phone = value
	case FieldBudget:
		f.Budget = value
	case FieldMessage:
		f.Message = value
	}
	return f
}

// Sanitize 去除 HTML 标签和首尾空白
func (f Form) Sanitize() Form {
	out := f
	for _, field := range Fields {
		out = out.With(field, strings.TrimSpace(policy.Sanitize(f.Get(field))))
	}
	return out
}

// ValidationError 各字段的校验错误
type ValidationError struct {
	Fields map[Field]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for f, key := range e.Fields {
		keys = append(keys, fmt.Sprintf("%s: %s", f, key))
	}
	sort.Strings(keys)
	return fmt.Sprintf("%v (%s)", ErrInvalid, strings.Join(keys, ", "))
}

// Unwrap 使 errors.Is(err, ErrInvalid) 成立
func (e *ValidationError) Unwrap() error {
	return ErrInvalid
}

// Validate 校验必填字段和邮箱格式
func (f Form) Validate() error {
	errs := make(map[Field]string)
	for _, field := range []Field{FieldName, FieldEmail, FieldMessage} {
		if strings.TrimSpace(f.Get(field)) == "" {
			errs[field] = ErrKeyRequired
		}
	}
	if _, missing := errs[FieldEmail]; !missing && !emailPattern.MatchString(strings.TrimSpace(f.Email)) {
		errs[FieldEmail] = ErrKeyInvalidEmail
	}
	if len(errs) > 0 {
		return &ValidationError{Fields: errs}
	}
	return nil
}
