package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/joho/godotenv"

	"github.com/gonewx/sitemotion/pkg/app"
	"github.com/gonewx/sitemotion/pkg/contact"
	"github.com/gonewx/sitemotion/pkg/embedded"
	"github.com/gonewx/sitemotion/pkg/site"
)

var (
	// 命令行参数，未指定时读取环境变量（可放在 .env 中）
	configPath = flag.String("config", "", "站点配置路径（默认 data/site.yaml）")
	pageFlag   = flag.String("page", "", "启动页面 ID，如 home、portfolio")
	localeFlag = flag.String("locale", "", "语言：de 或 en")
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
)

func main() {
	// .env 不存在时忽略
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("加载 .env 失败: %v", err)
	}
	flag.Parse()

	embedded.Init(dataFS)

	storage, err := site.OpenStorage(site.AppName)
	if err != nil {
		log.Printf("偏好存储不可用，仅保存在内存: %v", err)
		storage = nil
	}

	cfg := app.Config{
		Verbose:        *verbose || os.Getenv("SITEMOTION_VERBOSE") == "1",
		SiteConfig:     *configPath,
		Page:           firstNonEmpty(*pageFlag, os.Getenv("SITEMOTION_PAGE")),
		Locale:         firstNonEmpty(*localeFlag, os.Getenv("SITEMOTION_LOCALE")),
		AcceptLanguage: firstNonEmpty(os.Getenv("LC_ALL"), os.Getenv("LANG")),
		PrefersDark:    os.Getenv("SITEMOTION_DARK") == "1",
		Storage:        storage,
		Sender:         contact.LogSender{},
	}

	siteApp, err := app.NewApp(cfg)
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}
	defer func() {
		if err := siteApp.Close(); err != nil {
			log.Printf("保存偏好失败: %v", err)
		}
	}()

	w, h := siteApp.Layout(0, 0)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(siteApp); err != nil {
		log.Fatal(err)
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
