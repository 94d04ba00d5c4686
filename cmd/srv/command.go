package main

import "github.com/urfave/cli/v2"

func (s *srv) loadApp() {
	app := cli.NewApp()
	app.Action = cli.ShowAppHelp
	app.Name = "Oracle"
	app.Usage = ""
	app.Commands = []*cli.Command{
		{
			Action:      server.startApi,
			Name:        "api",
			Usage:       "Start service api",
			Category:    "Api",
			Description: `Serves the oracle consult, discount verification, and catalog endpoints.`,
		},
		{
			Action:   server.startMigrate,
			Name:     "migrate",
			Usage:    "Run database migration",
			Category: "Database",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "version",
					Usage: "migrate to a specific schema version instead of auto-migrating",
				},
			},
			Description: `Creates or updates the claims and attempts tables.`,
		},
	}

	s.app = app
}
