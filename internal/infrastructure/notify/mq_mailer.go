package notify

import (
	"context"
	"time"

	"github.com/xiebiao/marketplace/internal/domain/message"
	"github.com/xiebiao/marketplace/pkg/circuitbreaker"
)

// Publisher 发布消息（*mq.Publisher实现）
type Publisher interface {
	Publish(ctx context.Context, routingKey string, message interface{}) error
}

// MailEvent 发布到消息队列的邮件事件
type MailEvent struct {
	message.Mail
	OccurredAt time.Time `json:"occurred_at"`
}

// MQMailer 把邮件交给投递服务
// 熔断器打开时直接返回circuitbreaker.ErrOpenState，不再访问RabbitMQ
type MQMailer struct {
	publisher  Publisher
	breaker    *circuitbreaker.CircuitBreaker
	routingKey string
}

// NewMQMailer 创建基于消息队列的邮件通知
func NewMQMailer(publisher Publisher, breaker *circuitbreaker.CircuitBreaker, routingKey string) *MQMailer {
	return &MQMailer{
		publisher:  publisher,
		breaker:    breaker,
		routingKey: routingKey,
	}
}

// Send 发布邮件事件
func (m *MQMailer) Send(ctx context.Context, mail message.Mail) error {
	event := MailEvent{Mail: mail, OccurredAt: time.Now()}
	return m.breaker.Execute(func() error {
		return m.publisher.Publish(ctx, m.routingKey, event)
	})
}
