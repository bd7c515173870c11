package commands

import (
	"fmt"
	"log"
	"net"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/spf13/cobra"

	"github/itish2003/smartcity/config"
	"github/itish2003/smartcity/server"
	"github/itish2003/smartcity/services"
	"github/itish2003/smartcity/web"
)

// NewServeCommand creates the serve command.
func NewServeCommand(newGenerator GeneratorFactory) *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the web UI and JSON API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.FromEnv()
			if err != nil {
				return err
			}
			if port != "" {
				cfg.Port = port
			}

			// One model client per process, shared by every request.
			generator, err := newGenerator(cmd.Context(), cfg)
			if err != nil {
				return fmt.Errorf("failed to create %s client: %w", cfg.Provider, err)
			}
			log.Printf("SERVER: Using %s provider.", cfg.Provider)

			renderer, err := web.NewRenderer(cfg.TemplatesDir)
			if err != nil {
				return err
			}

			secret := cfg.SessionSecret
			if secret == "" {
				log.Println("SERVER: SESSION_SECRET not set, sessions will not survive a restart.")
				secret = uuid.NewString() + uuid.NewString()
			}
			store := sessions.NewCookieStore([]byte(secret))
			store.Options.HttpOnly = true
			store.Options.MaxAge = 86400

			gin.SetMode(gin.ReleaseMode)
			router := server.NewRouter(server.Dependencies{
				Assistant: services.NewAssistantService(generator, cfg.Decoding),
				Dashboard: services.NewDashboardService(),
				Reports:   services.NewReportService(cfg.UnidocLicenseKey),
				Renderer:  renderer,
				Sessions:  store,
				Provider:  string(cfg.Provider),
			})

			addr := net.JoinHostPort("", cfg.Port)
			log.Printf("SERVER: Health check available at: http://localhost:%s/health", cfg.Port)
			return server.Run(cmd.Context(), addr, router, renderer)
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "", "port to listen on (overrides PORT)")

	return cmd
}
