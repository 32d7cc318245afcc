//go:build !integration

package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"bitbucket.org/crgw/retell-calcom-hub/internal/calcom"
	"bitbucket.org/crgw/retell-calcom-hub/internal/config"
	"bitbucket.org/crgw/retell-calcom-hub/internal/tools/logging"
	"bitbucket.org/crgw/retell-calcom-hub/internal/web"
	"bitbucket.org/crgw/retell-calcom-hub/internal/webhook/factory"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func execute(args []string) int {
	exitCode := 0

	cmd := newRootCommand(func(httpServer *http.Server, log *zerolog.Logger) int {
		return serverApp(httpServer, log)
	}, func(code int) {
		exitCode = code
	})
	cmd.SetArgs(args)

	if err := cmd.Execute(); err != nil {
		return 1
	}

	return exitCode
}

type runFunc func(httpServer *http.Server, log *zerolog.Logger) int

func newRootCommand(run runFunc, setExitCode func(int)) *cobra.Command {
	var (
		envFile string
		port    string
	)

	cmd := &cobra.Command{
		Use:           "retell-calcom",
		Short:         "Books Cal.com appointments from Retell voice agent function calls",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			configuration, err := loadConfiguration(envFile, port)
			if err != nil {
				log := logging.New(os.Getenv("LOG_LEVEL"))
				log.Error().Err(err).Msg("Invalid configuration")
				return err
			}

			log := logging.New(configuration.LogLevel)

			log.Info().
				Str("environment", configuration.Env).
				Str("calcomBaseUrl", configuration.CalCom.BaseURL).
				Str("function", configuration.FunctionName).
				Msg("Starting Retell Cal.com booking API")

			setExitCode(run(newHTTPServer(configuration, log, cmd.Name()), log))

			return nil
		},
	}

	cmd.Flags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before reading the environment")
	cmd.Flags().StringVar(&port, "port", "", "listening port, overrides PORT")

	return cmd
}

func loadConfiguration(envFile string, port string) (config.Config, error) {
	configuration, err := config.Load(envFile)
	if err != nil {
		return config.Config{}, err
	}

	if port != "" {
		configuration.Port = port
	}

	return configuration, nil
}

func newHTTPServer(configuration config.Config, log *zerolog.Logger, name string) *http.Server {
	var host string
	if os.Getenv("TEST") == "true" {
		host = "localhost"
	}

	functionFactory := factory.NewFactory(configuration, calcom.WithName(name))

	return &http.Server{
		Addr:              fmt.Sprintf("%s:%s", host, configuration.Port),
		Handler:           web.SetupRouter(log, configuration, functionFactory),
		ReadHeaderTimeout: 10 * time.Second,
	}
}
