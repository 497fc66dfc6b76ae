package site

import (
	"fmt"
	"log"

	"github.com/gonewx/sitemotion/pkg/utils"
	"github.com/quasilyte/gdata/v2"
)

// AppName 偏好存储使用的应用名
const AppName = "sitemotion"

// OpenStorage 打开偏好存储
// 失败时调用方可以传 nil 给 NewSettingsManager，以内存模式运行
func OpenStorage(appName string) (*gdata.Manager, error) {
	if err := utils.EnsureStorageDir(); err != nil {
		return nil, fmt.Errorf("prepare storage dir: %w", err)
	}
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("open storage %s: %w", appName, err)
	}
	if p := utils.GetStoragePath(); p != "" {
		log.Printf("[Storage] 存储路径: %s", p)
	}
	return m, nil
}
