// Package notify 邮件通知的基础设施实现
//
// 开启mq时把邮件事件发布到RabbitMQ（经熔断器保护），
// 未开启时只写日志，便于本地开发。
package notify

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/xiebiao/marketplace/internal/domain/message"
	"github.com/xiebiao/marketplace/internal/infrastructure/config"
	"github.com/xiebiao/marketplace/pkg/circuitbreaker"
	"github.com/xiebiao/marketplace/pkg/mq"
)

// NewMailer 按配置创建邮件通知实现
func NewMailer(cfg *config.Config, logger *zap.Logger) (message.Mailer, func(), error) {
	if !cfg.MQ.Enabled {
		logger.Info("mq disabled, mail notifications go to log")
		return NewLogMailer(logger), func() {}, nil
	}

	publisher, err := mq.NewPublisher(cfg.MQ.URL, cfg.MQ.Exchange, cfg.MQ.ExchangeType)
	if err != nil {
		return nil, nil, fmt.Errorf("创建邮件发布者失败: %w", err)
	}

	breaker := circuitbreaker.NewCircuitBreaker("mail-publisher", circuitbreaker.Config{
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
	})
	breaker.SetStateChangeCallback(func(name string, from, to circuitbreaker.State) {
		logger.Warn("circuit breaker state changed",
			zap.String("name", name),
			zap.String("from", from.String()),
			zap.String("to", to.String()),
		)
	})

	cleanup := func() {
		if err := publisher.Close(); err != nil {
			logger.Warn("close mail publisher failed", zap.Error(err))
		}
	}
	return NewMQMailer(publisher, breaker, cfg.MQ.RoutingKey), cleanup, nil
}
