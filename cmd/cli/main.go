package main

import (
	"context"
	"log"
	"os"

	"github.com/sigerhq/fieldreport/internal/buildinfo"
	"github.com/sigerhq/fieldreport/internal/client/cli"
	"github.com/sigerhq/fieldreport/internal/client/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
