package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/sigerhq/fieldreport/internal/client/api"
	"github.com/sigerhq/fieldreport/internal/client/catalog"
	"github.com/sigerhq/fieldreport/internal/client/config"
	"github.com/sigerhq/fieldreport/internal/client/identity"
	"github.com/sigerhq/fieldreport/internal/client/selection"
	"github.com/sigerhq/fieldreport/internal/client/services"
	"github.com/sigerhq/fieldreport/internal/client/store"
	"github.com/sigerhq/fieldreport/internal/client/uploads"
	"github.com/sigerhq/fieldreport/internal/common"
	"github.com/sigerhq/fieldreport/internal/logging"

	_ "modernc.org/sqlite"
)

type App struct {
	config *config.Config
	log    logging.Logger

	client api.Client
	loader *catalog.Loader
	repos  *store.Repositories
	db     *sql.DB

	resolver  *services.Resolver
	submitter *services.Submitter
	history   *services.History

	attachments *uploads.Store
	pipeline    *uploads.Pipeline

	cascade *selection.Cascade
	source  catalog.Source

	session  string
	identity identity.Identity

	mode services.FormMode
	form services.FormFields

	reader *bufio.Reader
	now    func() time.Time
}

func NewApp(c *config.Config) (*App, error) {

	ctx := context.Background()

	logger := logging.NewDefault()

	repos, db, err := store.Open(ctx, c.DatabasePath)
	if err != nil {
		log.Printf("error initializing database: %s", err.Error())
		return nil, err
	}

	apiClient := api.NewHTTPClient(c.APIBaseURL, c.HTTPTimeout)

	attachments := uploads.NewStore()

	return &App{
		config:      c,
		log:         logger,
		client:      apiClient,
		loader:      catalog.NewLoader(apiClient, repos.Catalog, logger),
		repos:       repos,
		db:          db,
		resolver:    services.NewResolver(apiClient, logger),
		submitter:   services.NewSubmitter(apiClient, repos.Journal, logger),
		history:     services.NewHistory(apiClient, logger),
		attachments: attachments,
		pipeline: uploads.NewPipeline(apiClient, attachments, logger,
			c.MaxAttachments, c.MaxFileSizeBytes, c.Bucket),
		cascade: selection.NewCascade(nil),
		mode:    services.ModeCreate,
		reader:  bufio.NewReader(os.Stdin),
		now:     time.Now,
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.Close()

	log.Println("Welcome to the SIGER field-reporting CLI (type 'help' for commands)")

	_ = a.Login(ctx)
	_ = a.Reload(ctx)

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)

	// Let in-flight photo uploads settle before the process exits.
	a.pipeline.Wait()
}

func (a *App) Close() {
	if a.client != nil {
		_ = a.client.Close()
	}
	if a.db != nil {
		_ = a.db.Close()
	}
}

func (a *App) isLoggedIn() bool {
	return a.session != ""
}

// userID is the identity reports are filed under. Auth is a local stub, so
// this is the configured placeholder until a real backend account exists.
func (a *App) userID() string {
	if a.identity.UserID != "" {
		return a.identity.UserID
	}
	return a.config.UserID
}

func (a *App) today() string {
	return common.Today(a.now())
}

// getStatus renders the prompt suffix: the logged-in user plus the current
// selection breadcrumb, e.g. "(budi irigasi-01/act002/sub003)".
func (a *App) getStatus() string {
	s := ""
	if a.identity.Username != "" {
		s = a.identity.Username
	}
	st := a.cascade.State()
	crumb := ""
	if st.ProjectID != "" {
		crumb = st.ProjectID
	}
	if st.ActivityID != "" {
		crumb += "/" + st.ActivityID
	}
	if st.SubActivityID != "" {
		crumb += "/" + st.SubActivityID
	}
	if crumb != "" {
		if s != "" {
			s += " "
		}
		s += crumb
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}
