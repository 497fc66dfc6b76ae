package components

import "github.com/gonewx/sitemotion/pkg/ecs"

// NodeComponent 元素的节点信息
type NodeComponent struct {
	Name     string         // 调试用名称，如 "hero-title"
	Classes  []string       // 类名列表
	Parent   ecs.EntityID   // 父元素，0 表示根元素
	Children []ecs.EntityID // 子元素，按插入顺序
	Text     string         // 已本地化的显示文本（内核视为不透明内容）
}

// HasClass 检查节点是否包含指定类名
func (n *NodeComponent) HasClass(class string) bool {
	for _, c := range n.Classes {
		if c == class {
			return true
		}
	}
	return false
}
