package contact

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/xiebiao/marketplace/internal/domain/message"
	"github.com/xiebiao/marketplace/internal/domain/product"
	"github.com/xiebiao/marketplace/internal/domain/user"
	"github.com/xiebiao/marketplace/pkg/circuitbreaker"
	apperrors "github.com/xiebiao/marketplace/pkg/errors"
	"github.com/xiebiao/marketplace/pkg/metrics"
	"github.com/xiebiao/marketplace/pkg/tracing"
)

const tracerName = "marketplace/application/contact"

// Options 通知邮件配置
type Options struct {
	From    string        // 发件人
	Timeout time.Duration // 单次通知的超时
}

// ContactSellerUseCase 联系卖家
// 消息入库即视为成功，邮件通知在后台尽力发送，失败只记日志
type ContactSellerUseCase struct {
	userRepo    user.Repository
	productRepo product.Repository
	messageRepo message.Repository
	mailer      message.Mailer
	opts        Options
	logger      *zap.Logger
}

// NewContactSellerUseCase 创建联系卖家用例
func NewContactSellerUseCase(
	userRepo user.Repository,
	productRepo product.Repository,
	messageRepo message.Repository,
	mailer message.Mailer,
	opts Options,
	logger *zap.Logger,
) *ContactSellerUseCase {
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	return &ContactSellerUseCase{
		userRepo:    userRepo,
		productRepo: productRepo,
		messageRepo: messageRepo,
		mailer:      mailer,
		opts:        opts,
		logger:      logger,
	}
}

// ContactRequest 联系卖家请求
type ContactRequest struct {
	SellerID  uint
	ProductID *uint // 找不到对应商品时忽略
	Subject   string
	Body      string
}

// ContactResult 发送结果，Redirect指向消息详情
type ContactResult struct {
	Redirect string
	Message  *MessageInfo
}

// Execute 执行顺序：
// 1. 卖家必须存在
// 2. 不能给自己发消息
// 3. 表单校验
// 4. 保存消息
// 5. 后台发送邮件通知
func (uc *ContactSellerUseCase) Execute(ctx context.Context, r user.Requester, req ContactRequest) (*ContactResult, error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "ContactSeller")
	defer span.End()

	if !r.IsAuthenticated() {
		return nil, apperrors.ErrUnauthorized
	}

	seller, err := uc.userRepo.FindByID(ctx, req.SellerID)
	if err != nil {
		return nil, err
	}
	if seller.ID == r.UserID {
		return nil, message.ErrSelfMessage
	}

	in, err := message.ValidateContact(message.ContactInput{Subject: req.Subject, Body: req.Body})
	if err != nil {
		return nil, err
	}

	buyer, err := uc.userRepo.FindByID(ctx, r.UserID)
	if err != nil {
		return nil, err
	}

	productID, err := uc.resolveProduct(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}

	msg := &message.ContactMessage{
		SenderID:   buyer.ID,
		ReceiverID: seller.ID,
		ProductID:  productID,
		Subject:    in.Subject,
		Body:       in.Body,
		CreatedAt:  time.Now(),
	}
	if err := uc.messageRepo.Create(ctx, msg); err != nil {
		return nil, err
	}
	metrics.IncCounter(metrics.ContactMessagesTotal)
	span.SetAttributes(attribute.Int64("message.id", int64(msg.ID)))

	mail := message.Mail{
		Subject: "[Marketplace] " + in.Subject,
		Body:    fmt.Sprintf("From: %s\nEmail: %s\n\n%s", buyer.DisplayName(), buyer.Email, in.Body),
		From:    uc.opts.From,
		To:      []string{seller.Email},
	}
	go uc.notify(context.WithoutCancel(ctx), msg.ID, mail)

	return &ContactResult{
		Redirect: messageURL(msg.ID),
		Message:  newMessageInfo(msg),
	}, nil
}

// resolveProduct 商品不存在时消息不关联商品
func (uc *ContactSellerUseCase) resolveProduct(ctx context.Context, id *uint) (*uint, error) {
	if id == nil {
		return nil, nil
	}
	p, err := uc.productRepo.FindByID(ctx, *id)
	if err != nil {
		if errors.Is(err, product.ErrProductNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p.ID, nil
}

// notify 在独立goroutine中执行，调用方已经返回
func (uc *ContactSellerUseCase) notify(ctx context.Context, messageID uint, mail message.Mail) {
	ctx, cancel := context.WithTimeout(ctx, uc.opts.Timeout)
	defer cancel()

	if err := uc.mailer.Send(ctx, mail); err != nil {
		result := "failed"
		if errors.Is(err, circuitbreaker.ErrOpenState) {
			result = "rejected"
		}
		metrics.IncCounterVec(metrics.MailNotificationsTotal, map[string]string{"result": result})
		uc.logger.Warn("seller notification failed",
			zap.Uint("message_id", messageID),
			zap.Strings("to", mail.To),
			zap.Error(err),
		)
		return
	}
	metrics.IncCounterVec(metrics.MailNotificationsTotal, map[string]string{"result": "sent"})
}
