package main

import (
	"os"

	"github.com/truvote/portal/cmd"
	"github.com/truvote/portal/internal/dic"
	"github.com/truvote/portal/internal/logger"
	"github.com/truvote/portal/internal/worker"
)

func main() {
	globalContext, _, err := cmd.Bootstrap()
	if err != nil {
		panic(err)
	}
	log := dic.GetService[logger.Logger]()

	go func() {
		err := worker.StartScheduler(globalContext)
		if err != nil {
			log.WithError(err).Error("scheduler failed")
		}
	}()

	err = worker.StartBroker(globalContext)
	if err != nil {
		log.WithError(err).Error("worker failed")
		os.Exit(1)
	}
	log.Info("worker stopped")
	os.Exit(0)
}
