package main

import (
	"flag"
	"net/http"
	"os"

	"quoraprofiler-backend/lib/configutil"
	"quoraprofiler-backend/lib/restyutil"
	"quoraprofiler-backend/lib/serviceutil"
	"quoraprofiler-backend/services/quora"

	"github.com/joho/godotenv"
)

type Config struct {
	Port  int          `json:"port"`
	Quora quora.Config `json:"quora"`
}

func main() {
	verbose := flag.Bool("v", false, "Enable verbose logging/instrumentation.")
	flag.Parse()

	godotenv.Load()

	ctx := serviceutil.SignalContext()

	InitTelemetry(ctx, *verbose)

	cfg, err := configutil.ReadConfig[Config]("config.json5")
	if err != nil && !os.IsNotExist(err) {
		serviceutil.Fatal("read config", err)
	}
	if cfg.Port == 0 {
		cfg.Port = 8000
	}
	cfg.Quora = cfg.Quora.WithEnvDefaults()

	service := quora.NewService(cfg.Quora)
	if *verbose {
		service.SetRestyInstrumentOutput(
			restyutil.NewFilesystemOutput(".dev/resty/quora"),
		)
	}

	mux := http.NewServeMux()
	quora.RegisterHandlers(mux, service)

	go serviceutil.StartHttpServer(cfg.Port, mux)
	<-ctx.Done()
}
