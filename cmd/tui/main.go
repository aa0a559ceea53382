package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"admin-console/config"
	"admin-console/internal/console/delivery/tui"
	"admin-console/internal/console/repository/remote"
	"admin-console/internal/entities"
	"admin-console/pkg/log"
	"admin-console/pkg/notice"
)

// main runs the terminal console on one entity page.
//
// Flags override the config file: --config picks the file, --entity the
// page, --backend-url the admin backend.
func main() {
	flags := pflag.NewFlagSet("admin-console-tui", pflag.ExitOnError)
	configFile := flags.String("config", "", "path to config.yaml")
	entity := flags.String("entity", "category", "entity page to open")
	logFile := flags.String("log-file", "admin-console-tui.log", "file the console logs to")
	flags.String("backend-url", "", "admin backend base URL")
	list := flags.Bool("list", false, "list the available entities and exit")
	_ = flags.Parse(os.Args[1:])

	if *configFile != "" {
		viper.SetConfigFile(*configFile)
	}
	_ = viper.BindPFlag("backend.url", flags.Lookup("backend-url"))

	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger: the terminal belongs to the console, so logs go to a file
	f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Println("Failed to open log file: ", err)
		os.Exit(1)
	}
	defer f.Close()
	logger := log.Init(log.ZapConfig{
		Level:    cfg.Logger.Level,
		Mode:     cfg.Logger.Mode,
		Encoding: log.EncodingJSON,
		Output:   f,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Console domain
	client := remote.NewClient(ctx, entities.ClientConfig(cfg.Backend))
	registry := entities.NewRegistry(client, cfg.Entities, logger)

	if *list {
		for _, e := range registry.Entities() {
			fmt.Printf("%-20s %s\n", e.Name, e.Title)
		}
		return
	}

	feed := notice.NewFeed(32, cfg.Notice.TTL, logger)
	page, err := registry.NewPage(*entity, feed)
	if err != nil {
		fmt.Println("Failed to open page: ", err)
		os.Exit(1)
	}

	// 4. Run
	logger.Infof(ctx, "Opening %s against %s", *entity, cfg.Backend.URL)
	if _, err := tea.NewProgram(tui.New(ctx, page, feed), tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		logger.Errorf(ctx, "tui: %v", err)
		fmt.Println("Console exited with error: ", err)
		os.Exit(1)
	}
}
