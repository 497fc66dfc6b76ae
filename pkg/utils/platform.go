//go:build !mobile

package utils

import "os"

// IsMobile 检测当前是否在移动设备上运行
// 设置 SITEMOTION_MOBILE_EMULATE=1 可在桌面端模拟移动模式
func IsMobile() bool {
	return os.Getenv("SITEMOTION_MOBILE_EMULATE") == "1"
}
