//go:build !mobile

package utils

import "testing"

func TestIsMobile(t *testing.T) {
	t.Setenv("SITEMOTION_MOBILE_EMULATE", "")
	if IsMobile() {
		t.Error("桌面端 IsMobile() 应返回 false")
	}
	t.Setenv("SITEMOTION_MOBILE_EMULATE", "1")
	if !IsMobile() {
		t.Error("设置模拟变量后 IsMobile() 应返回 true")
	}
}
