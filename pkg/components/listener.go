package components

// PointerEventKind 指针事件类型
type PointerEventKind int

const (
	// PointerMove 指针在元素上移动
	PointerMove PointerEventKind = iota
	// PointerLeave 指针离开元素
	PointerLeave
)

// PointerHandler 指针事件回调，参数为视口坐标
type PointerHandler func(clientX, clientY float64)

// PointerListener 单个已注册的监听器
type PointerListener struct {
	ID      uint64
	Kind    PointerEventKind
	Handler PointerHandler
}

// ListenerComponent 元素上注册的指针事件监听器
type ListenerComponent struct {
	Listeners []PointerListener
}

// Count 返回指定类型的监听器数量
func (l *ListenerComponent) Count(kind PointerEventKind) int {
	n := 0
	for _, listener := range l.Listeners {
		if listener.Kind == kind {
			n++
		}
	}
	return n
}
