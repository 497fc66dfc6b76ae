package contact

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"
)

// ErrBusy 上一次提交尚未结束
var ErrBusy = errors.New("contact: submission in progress")

// Status 提交状态
type Status string

const (
	StatusIdle       Status = "idle"
	StatusSubmitting Status = "submitting"
	StatusSuccess    Status = "success"
	StatusError      Status = "error"
)

// Sender 投递表单
type Sender interface {
	Send(ctx context.Context, f Form) error
}

// SenderFunc 函数形式的 Sender
type SenderFunc func(ctx context.Context, f Form) error

// Send 实现 Sender
func (fn SenderFunc) Send(ctx context.Context, f Form) error {
	return fn(ctx, f)
}

// LogSender 只记录日志的 Sender
type LogSender struct{}

// Send 实现 Sender
func (LogSender) Send(_ context.Context, f Form) error {
	log.Printf("[Contact] 收到表单: name=%q email=%q company=%q budget=%q", f.Name, f.Email, f.Company, f.Budget)
	return nil
}

// Controller 表单状态
//
// 界面线程调用 Set 修改字段，Submit 可以放到 goroutine 中执行；
// 所有状态访问都经过互斥锁。
type Controller struct {
	mu     sync.Mutex
	values Form
	errors map[Field]string
	status Status

	delay  time.Duration
	sender Sender
}

// NewController 创建表单控制器，sender 为 nil 时使用 LogSender
func NewController(delay time.Duration, sender Sender) *Controller {
	if sender == nil {
		sender = LogSender{}
	}
	return &Controller{
		errors: make(map[Field]string),
		status: StatusIdle,
		delay:  delay,
		sender: sender,
	}
}

// Set 修改字段值并清除该字段的错误
func (c *Controller) Set(field Field, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values = c.values.With(field, value)
	delete(c.errors, field)
}

// Values 当前字段值
func (c *Controller) Values() Form {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.values
}

// FieldError 返回字段的错误键，没有错误时为空
func (c *Controller) FieldError(field Field) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.errors[field]
}

// Status 当前提交状态
func (c *Controller) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// Submit 清理、校验并提交表单
//
// 校验失败时记录字段错误并返回 *ValidationError，状态不变。
// 提交前等待模拟延迟，ctx 取消时状态变为 error。
// 成功后表单被清空。
func (c *Controller) Submit(ctx context.Context) error {
	c.mu.Lock()
	if c.status == StatusSubmitting {
		c.mu.Unlock()
		return ErrBusy
	}
	form := c.values.Sanitize()
	if err := form.Validate(); err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			c.errors = verr.Fields
		}
		c.mu.Unlock()
		return err
	}
	c.status = StatusSubmitting
	c.mu.Unlock()

	err := c.send(ctx, form)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		log.Printf("[Contact] 提交失败: %v", err)
		c.status = StatusError
		return err
	}
	c.status = StatusSuccess
	c.values = Form{}
	c.errors = make(map[Field]string)
	return nil
}

func (c *Controller) send(ctx context.Context, form Form) error {
	if c.delay > 0 {
		timer := time.NewTimer(c.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}
	return c.sender.Send(ctx, form)
}
