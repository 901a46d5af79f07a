package message

import (
	"strings"
	"unicode/utf8"

	apperrors "github.com/xiebiao/marketplace/pkg/errors"
)

const maxSubjectLength = 120

// ContactInput 联系卖家表单
type ContactInput struct {
	Subject string
	Body    string
}

// ValidateContact 主题必填且不超过120个字符，正文必填
func ValidateContact(in ContactInput) (ContactInput, error) {
	out := ContactInput{
		Subject: strings.TrimSpace(in.Subject),
		Body:    strings.TrimSpace(in.Body),
	}

	var errs apperrors.FieldErrors
	switch {
	case out.Subject == "":
		errs.Add("subject", "请填写主题")
	case utf8.RuneCountInString(out.Subject) > maxSubjectLength:
		errs.Add("subject", "主题不能超过120个字符")
	}
	if out.Body == "" {
		errs.Add("message", "请填写消息内容")
	}

	if err := errs.Err(); err != nil {
		return ContactInput{}, err
	}
	return out, nil
}
