package main

import (
	"flag"
	"log"
	"os"

	"github.com/decker502/pigeonrun/pkg/app"
	"github.com/decker502/pigeonrun/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	verbose := flag.Bool("verbose", false, "启用详细日志并绘制碰撞盒")
	configPath := flag.String("config", "", "游戏配置文件路径（.yaml 或 .toml），默认使用内置配置")
	seed := flag.Int64("seed", 0, "随机种子（0 表示按当前时间）")
	measuredStep := flag.Bool("measured-step", false, "按实际经过时间推进（上限 0.1 秒），而不是每帧固定 1/60 秒")
	flag.Parse()

	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:      *verbose,
		ConfigPath:   *configPath,
		Seed:         *seed,
		MeasuredStep: *measuredStep,
	})
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("游戏初始化失败: %v", err)
	}

	w, h := gameApp.Layout(0, 0)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("Pigeon Run")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
