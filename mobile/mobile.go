//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 此包用于构建 Android (.aar) 和 iOS (.xcframework) 包，仅在 -tags mobile 时编译：
//
//	ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.gonewx.sitemotion -o build/android/sitemotion.aar -v ./mobile
//	ebitenmobile bind -target ios -tags mobile -o build/ios/Sitemotion.xcframework -v ./mobile
package mobile

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/gonewx/sitemotion/pkg/app"
	"github.com/gonewx/sitemotion/pkg/embedded"
	"github.com/gonewx/sitemotion/pkg/site"
)

func init() {
	embedded.Init(dataFS)

	storage, err := site.OpenStorage(site.AppName)
	if err != nil {
		log.Printf("偏好存储不可用: %v", err)
		storage = nil
	}

	siteApp, err := app.NewApp(app.Config{
		Verbose: true,
		Storage: storage,
	})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}
	mobile.SetGame(siteApp)
}

// Dummy 是一个空导出函数，确保包被 ebitenmobile 正确识别
func Dummy() {}
