package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"

	"github.com/jonmartinstorm/profilsnusern/internal/config"
	"github.com/jonmartinstorm/profilsnusern/internal/contact"
	"github.com/jonmartinstorm/profilsnusern/internal/fetcher"
	"github.com/jonmartinstorm/profilsnusern/internal/logger"
	"github.com/jonmartinstorm/profilsnusern/internal/ui"
)

var usernameFlag string

var rootCmd = &cobra.Command{
	Use:           "profilsnusern",
	Short:         "Portefølje bygget fra en offentlig GitHub-profil",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Long = ui.Green.Render("profilsnusern") + "\n" +
		ui.Dim.Render("Henter en GitHub-profil, velger ut repos, utleder teknologier og viser alt som en porteføljeside.")
	rootCmd.PersistentFlags().StringVarP(&usernameFlag, "username", "u", "", "GitHub-bruker (overstyrer PROFILE_USERNAME)")
}

// setup leser konfigurasjon, setter opp logging og HTTP-klienter. Logger
// skrives til logOut.
func setup(logOut io.Writer) (config.Config, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return config.Config{}, err
	}
	if usernameFlag != "" {
		cfg.Username = usernameFlag
	}

	logger.SetupLogger(logOut, cfg.LogFormat)
	logger.SetDebug(cfg.Debug)

	client := &http.Client{Timeout: cfg.RequestTimeout}
	fetcher.HttpClient = client
	contact.HttpClient = client
	return cfg, nil
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	err := rootCmd.ExecuteContext(ctx)
	cancel()
	if err != nil {
		fmt.Fprintln(os.Stderr, ui.Red.Render("feil:"), err)
		os.Exit(1)
	}
}
