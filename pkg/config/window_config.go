package config

// 窗口与布局常量
const (
	DefaultWindowWidth  = 1280
	DefaultWindowHeight = 720
	DefaultWindowTitle  = "Sitemotion"

	// NavbarHeight 固定导航栏高度（覆盖在页面顶部，不占文档流）
	NavbarHeight = 64.0

	// SectionPaddingX 区块左右内边距
	SectionPaddingX = 80.0
	// SectionTitleHeight 区块标题高度（有标题时网格下移）
	SectionTitleHeight = 90.0

	// ScrollStep 一次滚轮滚动的像素数
	ScrollStep = 60.0

	// DefaultSubmitDelay 联系表单模拟提交延迟（秒）
	DefaultSubmitDelay = 1.5
)
