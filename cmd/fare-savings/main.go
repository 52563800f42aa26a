package main

import (
	"flag"
	"fmt"
	"log"

	lib "github.com/theoremus-urban-solutions/fare-savings"
	"github.com/theoremus-urban-solutions/fare-savings/config"
	"github.com/theoremus-urban-solutions/fare-savings/faretable"
)

func main() {
	configPath := flag.String("config", "config.yml", "path to configuration file")
	method := flag.String("method", "", "fare method column to analyze (overrides config)")
	flag.Parse()

	lib.InitLogging()
	cfg, err := config.LoadAppConfig(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if *method != "" {
		cfg.Fares.Method = *method
	}

	log.Printf("analyzing fare data from %s", cfg.Fares.CSVPath)
	tbl, err := faretable.Load(cfg.Fares.CSVPath)
	if err != nil {
		log.Fatalf("load fare table: %v", err)
	}

	methods := tbl.Methods()
	if cfg.Fares.Method != "" {
		m := faretable.Method(cfg.Fares.Method)
		if !tbl.HasMethod(m) {
			log.Fatalf("unknown fare method %q; available: %v", cfg.Fares.Method, tbl.Methods())
		}
		methods = []faretable.Method{m}
	}

	opts := lib.ReportOptions{
		Currency:   cfg.Report.Currency,
		TopSavings: cfg.Report.TopSavings,
	}
	stations := tbl.Stations()
	for _, m := range methods {
		result := lib.FindSavings(tbl, stations, m)
		fmt.Println(lib.BuildSavingsReport(tbl, result, opts))
	}
}
