package notify

import (
	"context"

	"go.uber.org/zap"

	"github.com/xiebiao/marketplace/internal/domain/message"
)

// LogMailer 只把邮件写入日志
type LogMailer struct {
	logger *zap.Logger
}

func NewLogMailer(logger *zap.Logger) *LogMailer {
	return &LogMailer{logger: logger}
}

func (m *LogMailer) Send(_ context.Context, mail message.Mail) error {
	m.logger.Info("mail notification",
		zap.String("from", mail.From),
		zap.Strings("to", mail.To),
		zap.String("subject", mail.Subject),
		zap.String("body", mail.Body),
	)
	return nil
}
