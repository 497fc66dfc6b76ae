package ui

// ScrolledThreshold 滚动超过该偏移时导航栏进入 scrolled 状态
const ScrolledThreshold = 20.0

// Navbar 导航栏状态
type Navbar struct {
	scrolled bool
	menuOpen bool
	active   string
}

// NewNavbar 创建导航栏
func NewNavbar() *Navbar {
	return &Navbar{}
}

// Update 根据滚动偏移更新 scrolled 状态，状态变化时返回 true
func (n *Navbar) Update(scrollY float64) bool {
	scrolled := scrollY > ScrolledThreshold
	if scrolled == n.scrolled {
		return false
	}
	n.scrolled = scrolled
	return true
}

// IsScrolled 是否处于 scrolled 状态
func (n *Navbar) IsScrolled() bool { return n.scrolled }

// ToggleMenu 切换移动端菜单
func (n *Navbar) ToggleMenu() { n.menuOpen = !n.menuOpen }

// IsMenuOpen 移动端菜单是否展开
func (n *Navbar) IsMenuOpen() bool { return n.menuOpen }

// ScrollLocked 菜单展开时页面不可滚动
func (n *Navbar) ScrollLocked() bool { return n.menuOpen }

// Navigate 记录当前页面并收起菜单
func (n *Navbar) Navigate(pageID string) {
	n.active = pageID
	n.menuOpen = false
}

// Active 当前页面
func (n *Navbar) Active() string { return n.active }
