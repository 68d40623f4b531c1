package app

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/hitoshi/userquery/internal/config"
	"github.com/hitoshi/userquery/internal/logger"
	"github.com/hitoshi/userquery/internal/metrics"
	"github.com/hitoshi/userquery/internal/user"
)

// Init はライブラリの初期化を行う。
// 環境変数からConfigを読み込み、JSON構造化ログをセットアップする。
// writerが指定された場合はログ出力先としてそのwriterを使用する。
func Init(w io.Writer) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		// 設定が読めなくてもエラーを記録できるよう既定レベルで初期化する
		logger.SetupDefault(w, slog.LevelInfo)
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.SetupDefault(w, cfg.LogLevel)

	return cfg, nil
}

// NewQueryService は設定に従って依存関係をワイヤリングしたクエリサービスを返す。
// メトリクスが有効かつregがnilでない場合のみregにコレクタを登録する。
func NewQueryService(cfg *config.Config, reg prometheus.Registerer) *user.Service {
	var recorder metrics.QueryRecorder
	if cfg.MetricsEnabled && reg != nil {
		recorder = metrics.NewCollector(reg, cfg.MetricsNamespace)
	}

	slog.Info("user query service initialized",
		slog.Bool("metrics_enabled", recorder != nil),
		slog.String("metrics_namespace", cfg.MetricsNamespace),
	)

	return user.NewService(recorder)
}
