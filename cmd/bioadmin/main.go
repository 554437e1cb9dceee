package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/dmitrijs2005/bioadmin/internal/buildinfo"
	"github.com/dmitrijs2005/bioadmin/internal/client/cli"
	"github.com/dmitrijs2005/bioadmin/internal/client/config"
	"github.com/dmitrijs2005/bioadmin/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	log := logging.NewConsoleLogger(os.Stderr, slog.LevelInfo)

	app := cli.NewApp(cfg, log)
	app.Run(ctx)

}
