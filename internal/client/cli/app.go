package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/dmitrijs2005/bioadmin/internal/client/api"
	"github.com/dmitrijs2005/bioadmin/internal/client/config"
	"github.com/dmitrijs2005/bioadmin/internal/client/services"
	"github.com/dmitrijs2005/bioadmin/internal/logging"
)

// App is the interactive bioadmin client. One App owns one API client and
// therefore one session; commands run strictly sequentially.
type App struct {
	config     *config.Config
	auth       services.AuthService
	directory  services.DirectoryService
	log        logging.Logger
	reader     *bufio.Reader
	out        io.Writer
	operatorID string
}

// NewApp wires the API client and services from cfg.
func NewApp(cfg *config.Config, log logging.Logger) *App {
	apiClient := api.NewRESTClient(cfg.ServerEndpointAddr, cfg.RequestTimeout, cfg.InsecureSkipVerify)

	return &App{
		config:    cfg,
		auth:      services.NewAuthService(apiClient, log),
		directory: services.NewDirectoryService(apiClient, cfg.PageSize, log),
		log:       log,
		reader:    bufio.NewReader(os.Stdin),
		out:       os.Stdout,
	}
}

func (a *App) isLoggedIn() bool {
	return a.auth.IsAuthenticated()
}

// Run prompts for an initial login and starts the REPL. It blocks until the
// user exits.
func (a *App) Run(ctx context.Context) {
	defer a.auth.Close(ctx)

	_ = a.Login(ctx)
	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))
}

func (a *App) getStatus() string {
	if a.isLoggedIn() {
		return a.operatorID
	}
	return "not logged in"
}
