package scenes

import "github.com/gonewx/sitemotion/pkg/site"

// NewPageFactory 返回路由使用的页面工厂，每次导航创建新的页面场景
func NewPageFactory(opts PageOptions) site.PageFactory {
	return func(pageID string) (site.Page, error) {
		scene, err := NewPageScene(pageID, opts)
		if err != nil {
			return nil, err
		}
		return scene, nil
	}
}
