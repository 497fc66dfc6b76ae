//go:build mobile

// embed.go - 移动端资源嵌入声明
//
// 构建前把根目录的 data/ 复制到此目录：
//
//	cp -r data mobile/
//	go build -tags mobile ./mobile
package mobile

import "embed"

//go:embed data/site.yaml
var dataFS embed.FS
