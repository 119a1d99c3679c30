package main

import (
	"Board/config"
	"Board/pkg/database"
	"Board/pkg/log"
	"Board/pkg/server"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	path := fmt.Sprintf("configs/config.%s.yaml", env)
	cfg := config.New(path)
	log.SetLevel(cfg.Debug())

	cliApp := &cli.App{
		Name:  "api-server",
		Usage: "discussion board api",
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "start http server",
				Action: func(ctx *cli.Context) error {
					appProvider, err := InitServer(cfg)
					if err != nil {
						return err
					}
					return server.Run(ctx, appProvider)
				},
			},
			{
				Name:  "migrate",
				Usage: "create or update database tables",
				Action: func(ctx *cli.Context) error {
					db, err := database.Open(cfg.Database)
					if err != nil {
						return err
					}
					if err := database.Migrate(db); err != nil {
						return err
					}
					log.L.Info("migrate success", zap.String("driver", cfg.Database.Driver))
					return nil
				},
			},
			{
				Name:  "delete-account",
				Usage: "delete an account together with its posts, comments and likes",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "id", Usage: "account id", Required: true},
				},
				Action: func(ctx *cli.Context) error {
					accounts, err := InitAccountService(cfg)
					if err != nil {
						return err
					}
					return accounts.Delete(ctx.Context, ctx.String("id"))
				},
			},
		},
	}
	if err := cliApp.Run(os.Args); err != nil {
		log.L.Fatal("command failed", zap.Error(err))
	}
}
