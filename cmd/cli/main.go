package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/truvote/portal/cmd"
	"github.com/truvote/portal/internal/authorization"
	"github.com/truvote/portal/internal/cli"
	"github.com/truvote/portal/internal/config"
	"github.com/truvote/portal/internal/crypto"
	"github.com/truvote/portal/internal/dic"
	"github.com/truvote/portal/internal/logger"
	"github.com/truvote/portal/internal/router/routes"
	"github.com/truvote/portal/internal/worker/client"
)

// Only purge-sessions needs the configured application, the other commands
// run without any configuration.
func main() {
	ctx := context.Background()
	var (
		log     logger.Logger
		guard   *authorization.RouteGuard
		workers client.BackgroundWorkerClient
	)

	if len(os.Args) > 1 && os.Args[1] == "purge-sessions" {
		appContext, _, err := cmd.Bootstrap()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		ctx = appContext
		log = dic.GetService[logger.Logger]()
		guard = dic.GetService[*authorization.RouteGuard]()
		workers = dic.GetService[client.BackgroundWorkerClient]()
	} else {
		log = logger.CreateLogger(&config.Config{LogLevel: logrus.InfoLevel})
		table, err := routes.NewTable(routes.DefaultRules(), routes.DefaultRoleDefaults(), "/signin")
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		guard = authorization.NewRouteGuard(
			table,
			authorization.NewVoterAuthorizationChecker(authorization.DefaultVoters()),
		)
	}

	err := cli.New(os.Stdout, log, guard, crypto.NewKeyManager(log), workers).Run(ctx, os.Args[1:])
	if workers != nil {
		_ = workers.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
