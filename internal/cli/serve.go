package cli

import (
	"fmt"
	"os"

	"github.com/lacquerai/calcform/internal/server"
	"github.com/lacquerai/calcform/internal/style"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Start an HTTP server exposing the calculator.

The server provides:
- REST API evaluating one calculation per request
- WebSocket live form: edit the fields and receive the result after every edit
- Prometheus metrics endpoint

Every flag can also be set in the config file under 'serve' or through
CALCFORM_SERVE_* environment variables.`,
	Example: `
  calcform serve                          # Serve on localhost:8080
  calcform serve --port 9000 --host 0.0.0.0
  calcform serve --metrics=false          # Without the /metrics endpoint`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		config := serverConfig()

		srv, err := server.New(config)
		if err != nil {
			style.Error(cmd.ErrOrStderr(), fmt.Sprintf("Failed to create server: %v", err))
			os.Exit(1)
		}

		if !viper.GetBool("quiet") {
			addr := fmt.Sprintf("%s:%d", config.Host, config.Port)
			style.Success(cmd.OutOrStdout(), fmt.Sprintf("calcform server starting at http://%s", addr))
			fmt.Fprintf(cmd.OutOrStdout(), "🧮 API: http://%s/api/v1/evaluate\n", addr)
			fmt.Fprintf(cmd.OutOrStdout(), "🔌 Live form: ws://%s/api/v1/live\n", addr)
			if config.EnableMetrics {
				fmt.Fprintf(cmd.OutOrStdout(), "📊 Metrics: http://%s/metrics\n", addr)
			}
		}

		if err := srv.StartWithGracefulShutdown(cmd.Context()); err != nil {
			style.Error(cmd.ErrOrStderr(), fmt.Sprintf("Server error: %v", err))
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	defaults := server.DefaultConfig()

	serveCmd.Flags().IntP("port", "p", defaults.Port, "server port")
	serveCmd.Flags().String("host", defaults.Host, "server host")
	serveCmd.Flags().Bool("metrics", defaults.EnableMetrics, "enable Prometheus metrics endpoint")
	serveCmd.Flags().Bool("cors", defaults.EnableCORS, "enable CORS headers")
	serveCmd.Flags().Duration("shutdown-timeout", defaults.ShutdownTimeout, "time allowed for open requests on shutdown")

	_ = viper.BindPFlag("serve.port", serveCmd.Flags().Lookup("port"))
	_ = viper.BindPFlag("serve.host", serveCmd.Flags().Lookup("host"))
	_ = viper.BindPFlag("serve.metrics", serveCmd.Flags().Lookup("metrics"))
	_ = viper.BindPFlag("serve.cors", serveCmd.Flags().Lookup("cors"))
	_ = viper.BindPFlag("serve.shutdown_timeout", serveCmd.Flags().Lookup("shutdown-timeout"))
}

// serverConfig builds the server configuration from flags, config file and
// environment, in viper's order of precedence
func serverConfig() *server.Config {
	config := server.DefaultConfig()
	config.Host = viper.GetString("serve.host")
	config.Port = viper.GetInt("serve.port")
	config.EnableMetrics = viper.GetBool("serve.metrics")
	config.EnableCORS = viper.GetBool("serve.cors")

	if timeout := viper.GetDuration("serve.shutdown_timeout"); timeout > 0 {
		config.ShutdownTimeout = timeout
	}

	return config
}
