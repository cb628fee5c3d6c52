package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"

	"github.com/palemoky/literature/internal/config"
	"github.com/palemoky/literature/internal/server"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "配置文件路径")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "literature",
	})

	// 加载配置
	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Warn("加载配置文件失败，使用默认配置", "err", err)
		cfg = config.Default()
	}

	// 创建服务器
	srv, err := server.NewServer(cfg, logger)
	if err != nil {
		logger.Fatal("创建服务器失败", "err", err)
	}

	// 优雅关闭
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := srv.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("服务器退出", "err", err)
	}
	logger.Info("服务器已关闭")
}
