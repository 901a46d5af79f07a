package review

import (
	"strings"
	"unicode/utf8"

	apperrors "github.com/xiebiao/marketplace/pkg/errors"
)

const maxTextLength = 1000

// Input 评价表单
type Input struct {
	Rating   *int
	Text     string
	ImageURL string
}

// Validated 校验通过的评价字段
type Validated struct {
	Rating   int
	Text     string
	ImageURL string
}

// Validate 校验评价表单：评分必填且在1-5之间，内容和图片可选
func Validate(in Input) (*Validated, error) {
	var errs apperrors.FieldErrors
	out := &Validated{
		Text:     strings.TrimSpace(in.Text),
		ImageURL: strings.TrimSpace(in.ImageURL),
	}

	if in.Rating == nil || *in.Rating < 1 || *in.Rating > 5 {
		errs.Add("rating", "请给出1到5之间的评分")
	} else {
		out.Rating = *in.Rating
	}

	if utf8.RuneCountInString(out.Text) > maxTextLength {
		errs.Add("text", "评价内容不能超过1000个字符")
	}

	if err := errs.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
