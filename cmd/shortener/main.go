package main

import (
	"context"
	"errors"
	"os"

	"go.uber.org/zap"

	"github.com/fsdevblog/qrshort/internal/app"
	"github.com/fsdevblog/qrshort/internal/bmeta"
	"github.com/fsdevblog/qrshort/internal/config"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	_ = bmeta.Fprint(os.Stdout, bmeta.Meta{Version: buildVersion, Date: buildDate, Commit: buildCommit})

	appConf := config.MustLoadConfig(os.Args[1:])

	a := app.Must(app.New(*appConf))

	a.Logger.Info("Starting server", zap.Any("config", appConf))
	if err := a.Run(context.Background()); err != nil && !errors.Is(err, context.Canceled) {
		a.Logger.Error("server stopped with error", zap.Error(err))
		panic(err)
	}
}
