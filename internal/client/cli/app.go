package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/lakeforum/lakecli/internal/client/api"
	"github.com/lakeforum/lakecli/internal/client/config"
	"github.com/lakeforum/lakecli/internal/client/credstore"
	"github.com/lakeforum/lakecli/internal/client/refdata"
	"github.com/lakeforum/lakecli/internal/client/session"
	"github.com/lakeforum/lakecli/internal/logging"

	_ "modernc.org/sqlite"
)

type App struct {
	config  *config.Config
	client  *api.Client
	session *session.Session
	refdata *refdata.Store
	creds   *credstore.SQLiteStore
	log     logging.Logger
	reader  *bufio.Reader
}

func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	creds, err := credstore.Open(ctx, cfg.CredentialDB)
	if err != nil {
		return nil, err
	}

	apiTransport := api.NewTransport(cfg.APIBaseURL, cfg.APITimeout, creds, api.FallbackRequestFailed)
	picTransport := api.NewTransport(cfg.PicBaseURL, cfg.UploadTimeout, creds, api.FallbackUploadFailed)

	client := api.NewClient(apiTransport, picTransport)
	sess := session.New(client.Auth, client.User, creds, log)

	// A 401 anywhere drops the session; the REPL prompt falls back to the
	// logged-out state, which is this client's "redirect to login".
	apiTransport.SetAuthFailureHook(sess.HandleAuthFailure)
	picTransport.SetAuthFailureHook(sess.HandleAuthFailure)

	return &App{
		config:  cfg,
		client:  client,
		session: sess,
		refdata: refdata.New(client.Posts, log),
		creds:   creds,
		log:     log,
		reader:  bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.creds.Close()
	a.session.Restore(ctx)
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.session.LoggedIn()
}
