package message

import (
	"context"
)

// Mail 一封待发送的通知邮件
type Mail struct {
	Subject string   `json:"subject"`
	Body    string   `json:"body"`
	From    string   `json:"from"`
	To      []string `json:"to"`
}

// Mailer 邮件通知
// 调用方把发送视为尽力而为：失败只记录日志，不影响主流程
type Mailer interface {
	Send(ctx context.Context, mail Mail) error
}
