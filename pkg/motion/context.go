package motion

import (
	"context"
	"errors"
)

// ErrNoActiveScope 在没有活动作用域的上下文中使用依赖作用域的控件
var ErrNoActiveScope = errors.New("motion: no active scope in context")

type scopeKey struct{}

// Context 返回携带该作用域的子上下文
func (s *Scope) Context(parent context.Context) context.Context {
	return context.WithValue(parent, scopeKey{}, s)
}

// FromContext 取出上下文中的作用域，已关闭的作用域视为不存在
func FromContext(ctx context.Context) (*Scope, bool) {
	if ctx == nil {
		return nil, false
	}
	s, ok := ctx.Value(scopeKey{}).(*Scope)
	if !ok || s == nil || s.closed {
		return nil, false
	}
	return s, true
}

// MustFromContext 同 FromContext，没有活动作用域时 panic(ErrNoActiveScope)
func MustFromContext(ctx context.Context) *Scope {
	s, ok := FromContext(ctx)
	if !ok {
		panic(ErrNoActiveScope)
	}
	return s
}
