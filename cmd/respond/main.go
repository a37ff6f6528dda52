package main

import (
	"flag"
	"os"
	"time"

	"github.com/Murilinho145SG/respond"
	"github.com/Murilinho145SG/respond/config"
	"github.com/Murilinho145SG/respond/httpio"
	"github.com/Murilinho145SG/respond/log"
)

const VERSION = "0.1.0"

func main() {
	versionFlag := flag.Bool("version", false, "Print version and exit")
	initFlag := flag.String("init", "", "Write a default config file with the given name and exit")
	configFlag := flag.String("config", "", "Run with the given config file")
	flag.Parse()

	if *versionFlag {
		log.Info(VERSION)
		os.Exit(0)
	}

	if *initFlag != "" {
		if err := config.InitAndCreate(*initFlag); err != nil {
			log.Error(err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	cf := config.Default()
	if *configFlag != "" {
		var err error
		if cf, err = config.Load(*configFlag); err != nil {
			log.Error(err)
			os.Exit(1)
		}
	}
	log.DebugMode.Store(cf.Debug)

	router := respond.NewRouter()
	router.Route("/", func(w *httpio.Writer, r *httpio.Request) {
		w.Write([]byte("<h1>Hello World!</h1>"))
	})
	router.Route("/json", func(w *httpio.Writer, r *httpio.Request) {
		err := w.WriteJson(map[string]any{
			"method": r.Method,
			"path":   r.Path,
			"time":   time.Now().UTC(),
		}, true)
		if err != nil {
			w.WriteHeader(httpio.StatusInternalServerError)
		}
	})
	router.Route("/empty", func(w *httpio.Writer, r *httpio.Request) {
		w.WriteHeader(httpio.StatusNoContent)
	})

	var err error
	if cf.TLS.CertFile != "" {
		err = respond.RunTLS(cf.Address, router, cf.TLS.CertFile, cf.TLS.KeyFile, cf)
	} else {
		err = respond.Run(cf.Address, router, cf)
	}
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
