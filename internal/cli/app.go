// Package cli implements apsctl, a scriptable client for the APS backend that
// drives the same session controller as the web console.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/noah-isme/aps-console/internal/calendar"
	"github.com/noah-isme/aps-console/internal/confirm"
	"github.com/noah-isme/aps-console/internal/notification"
	"github.com/noah-isme/aps-console/internal/session"
	"github.com/noah-isme/aps-console/pkg/apsclient"
	"github.com/noah-isme/aps-console/pkg/config"
	"github.com/noah-isme/aps-console/pkg/eventbus"
	"github.com/noah-isme/aps-console/pkg/logger"
	"github.com/noah-isme/aps-console/pkg/storage"
)

// ErrReported is returned when an operation failed and the failure was
// already printed as a notification.
var ErrReported = errors.New("operation failed")

// App carries what every apsctl command needs.
type App struct {
	In         io.Reader
	Out        io.Writer
	ErrOut     io.Writer
	HTTPClient *http.Client
	Now        func() time.Time

	backendURL string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
	client *apsclient.Client
	failed bool
}

// NewApp wires the process's standard streams.
func NewApp() *App {
	return &App{In: os.Stdin, Out: os.Stdout, ErrOut: os.Stderr}
}

// RootCommand builds the apsctl command tree.
func RootCommand(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "apsctl",
		Short:         "Command line client for the APS production scheduler",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&app.backendURL, "backend", "", "backend base URL (defaults to BACKEND_BASE_URL)")
	root.PersistentFlags().BoolVarP(&app.verbose, "verbose", "v", false, "log backend calls")
	root.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		return app.setup()
	}

	root.AddCommand(
		scheduleCommand(app),
		equipmentCommand(app),
		productsCommand(app),
		processesCommand(app),
		uploadCommand(app),
		generateCommand(app),
		exportCommand(app),
		printCommand(app),
		batchCommand(app),
	)
	return root
}

func (a *App) setup() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	a.cfg = cfg
	if a.backendURL == "" {
		a.backendURL = cfg.Backend.BaseURL
	}

	a.logger, err = logger.NewCLI(a.verbose)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	opts := []apsclient.Option{apsclient.WithLogger(a.logger.Named("apsclient"))}
	if a.HTTPClient != nil {
		opts = append(opts, apsclient.WithHTTPClient(a.HTTPClient))
	}
	if a.Now != nil {
		opts = append(opts, apsclient.WithClock(a.Now))
	}
	a.client = apsclient.New(a.backendURL, opts...)
	return nil
}

// dialog answers yes when --yes was given, prompts on a terminal, and
// otherwise declines each request with a warning.
func (a *App) dialog(yes bool) confirm.Dialog {
	if yes {
		return confirm.AlwaysYes
	}
	if f, ok := a.In.(interface{ Fd() uintptr }); ok && !term.IsTerminal(int(f.Fd())) {
		return confirm.Func(func(_ context.Context, req confirm.Request) (bool, error) {
			fmt.Fprintf(a.ErrOut, "%s: stdin is not a terminal; answering no (pass --yes to confirm)\n", req.Message)
			return false, nil
		})
	}
	return confirm.NewPrompt(a.In, a.ErrOut)
}

// controller opens a one-shot console session. Notifications are printed as
// they are raised; error notifications make the command fail.
func (a *App) controller(dialog confirm.Dialog, outDir string) (*session.Controller, error) {
	var downloader session.Downloader
	if outDir != "" {
		store, err := storage.NewLocalStorage(outDir)
		if err != nil {
			return nil, err
		}
		downloader = localDownloader{store: store}
	}

	ctrl := session.New(session.Config{
		ID: "apsctl",
		Calendar: calendar.AdapterConfig{
			HourStart: a.cfg.Calendar.HourStart,
			HourEnd:   a.cfg.Calendar.HourEnd,
			Location:  a.cfg.Calendar.Location(),
		},
		NotificationTTL: time.Minute,
		MaxUploadBytes:  a.cfg.Upload.MaxFileSizeBytes,
		PrintFontPath:   a.cfg.Print.FontPath,
		Now:             a.Now,
	}, a.client, dialog, downloader, nil, a.logger)

	eventbus.Subscribe(ctrl.Bus(), func(e session.NotificationRaised) {
		if e.Notification.Kind == notification.KindError {
			a.failed = true
		}
		fmt.Fprintf(a.ErrOut, "[%s] %s\n", e.Notification.Kind, e.Notification.Message)
	})
	return ctrl, nil
}

// finish turns an error notification without a returned error into ErrReported.
func (a *App) finish(err error) error {
	if err != nil {
		return err
	}
	if a.failed {
		return ErrReported
	}
	return nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

type localDownloader struct {
	store *storage.LocalStorage
}

func (d localDownloader) Save(_ context.Context, _, filename, contentType string, data []byte) (*session.SavedFile, error) {
	rel, err := d.store.Save(filename, data)
	if err != nil {
		return nil, err
	}
	return &session.SavedFile{
		Filename:    filename,
		ContentType: contentType,
		Size:        len(data),
		Path:        d.store.Path(rel),
	}, nil
}
