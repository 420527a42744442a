package main

import (
	"bufio"
	"os"
	"os/signal"
	"syscall"

	"github.com/deadloct/minus-one/cmd"
	"github.com/deadloct/minus-one/data"
	"github.com/deadloct/minus-one/game"
	"github.com/deadloct/minus-one/lib"
	"github.com/deadloct/minus-one/settings"
	log "github.com/sirupsen/logrus"
)

func main() {
	settings.LoadEnvFiles()

	cfg, err := settings.Load()
	if err != nil {
		log.Panic(err)
	}

	log.SetOutput(os.Stderr)
	log.SetLevel(cfg.Level())
	log.Debugf("loaded %v config: %+v", cfg.Env, cfg)

	settings.ImportData()

	captions, err := lib.NewJSONCaptions(data.CaptionsJSON)
	if err != nil {
		log.Panic(err)
	}

	var chooser game.Chooser = lib.NewCryptoChooser()
	if cfg.Seed != 0 {
		log.Infof("using seeded randomness (seed %v)", cfg.Seed)
		chooser = lib.NewSeededChooser(cfg.Seed)
	}

	manager := cmd.NewManager(cmd.ManagerConfig{
		Captions: captions,
		Chooser:  chooser,
		Sender:   cmd.NewWriterSender(os.Stdout, cfg.Quoted),
	})
	manager.Welcome()

	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			lines <- scanner.Text()
		}

		if err := scanner.Err(); err != nil {
			log.Errorf("error reading input: %v", err)
		}
	}()

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)

	for {
		select {
		case <-sc:
			log.Info("Minus One exiting...")
			return

		case line, ok := <-lines:
			if !ok {
				log.Debug("input closed")
				return
			}

			if !manager.CommandHandler(line) {
				return
			}
		}
	}
}
