package main

import (
	"net/http"
	"os"

	"github.com/pkg/errors"

	"github.com/truvote/portal/cmd"
	"github.com/truvote/portal/internal"
	"github.com/truvote/portal/internal/config"
	"github.com/truvote/portal/internal/dic"
	"github.com/truvote/portal/internal/logger"
	"github.com/truvote/portal/internal/worker"
)

func main() {
	appContext, _, err := cmd.Bootstrap()
	if err != nil {
		panic(err)
	}
	log := dic.GetService[logger.Logger]()
	conf := dic.GetService[config.Config]()

	if !conf.DisableEmbedWorker {
		go func() {
			err := worker.StartBroker(appContext)
			if err != nil {
				log.WithError(err).Error("worker failed")
			}
		}()
		go func() {
			err := worker.StartScheduler(appContext)
			if err != nil {
				log.WithError(err).Error("scheduler failed")
			}
		}()
	}

	err = internal.StartServer(appContext, internal.Config{Address: conf.Address})
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.WithError(err).Error("server failed")
		os.Exit(1)
	}
	log.Info("http server stopped")
	os.Exit(0)
}
