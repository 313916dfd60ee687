package main

import (
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/ibsatassew/ContactsApp/contacts"
	"github.com/ibsatassew/ContactsApp/util/cliutil"

	"github.com/carlmjohnson/versioninfo"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/urfave/cli/v2"
	"golang.org/x/text/language"
)

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(-1)
	}
}

var bookFlags = []cli.Flag{
	&cli.BoolFlag{
		Name:    "collate",
		Usage:   "order contact names by locale collation rules, ignoring case and accents",
		EnvVars: []string{"CONTACTS_COLLATE"},
	},
	&cli.StringFlag{
		Name:    "locale",
		Usage:   "BCP 47 language tag used with --collate",
		Value:   "en",
		EnvVars: []string{"CONTACTS_LOCALE"},
	},
	&cli.IntFlag{
		Name:    "seed",
		Usage:   "start with this many generated fake contacts",
		EnvVars: []string{"CONTACTS_SEED"},
	},
	&cli.Int64Flag{
		Name:    "seed-random",
		Usage:   "random seed for generated contacts",
		Value:   215,
		EnvVars: []string{"CONTACTS_SEED_RANDOM"},
	},
}

func run(args []string) error {
	return newApp().Run(args)
}

func newApp() *cli.App {
	app := &cli.App{
		Name:    "contacts",
		Usage:   "interactive contact manager",
		Version: versioninfo.Short(),
	}
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "log-level",
			Usage:   "log verbosity level (eg: warn, info, debug)",
			EnvVars: []string{"CONTACTS_LOG_LEVEL", "LOG_LEVEL"},
		},
		&cli.StringFlag{
			Name:    "log-format",
			Usage:   "log output format (text or json)",
			EnvVars: []string{"CONTACTS_LOG_FMT"},
		},
		&cli.StringFlag{
			Name:    "log-file",
			Usage:   "write logs to this file instead of stderr",
			EnvVars: []string{"CONTACTS_LOG_FILE"},
		},
		&cli.StringFlag{
			Name:    "metrics-listen",
			Usage:   "IP or address, and port, to listen on for metrics APIs (disabled if empty)",
			EnvVars: []string{"CONTACTS_METRICS_LISTEN"},
		},
	}
	app.Flags = append(app.Flags, bookFlags...)
	app.Commands = []*cli.Command{
		cmdMenu,
		cmdTree,
	}
	app.Action = runMenu
	return app
}

func configLogger(cctx *cli.Context) (*slog.Logger, func(), error) {
	logger, closer, err := cliutil.SetupSlog(cliutil.LogOptions{
		LogPath:   cctx.String("log-file"),
		LogFormat: cctx.String("log-format"),
		LogLevel:  cctx.String("log-level"),
	})
	if err != nil {
		return nil, nil, err
	}
	return logger, func() { closer.Close() }, nil
}

// Serves prometheus metrics on addr in the background. Returns a nil server if addr is empty.
func startMetrics(addr string, logger *slog.Logger) (*http.Server, net.Addr, error) {
	if addr == "" {
		return nil, nil, nil
	}
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, nil, fmt.Errorf("metrics listener: %w", err)
	}
	srv := &http.Server{
		Handler: promhttp.Handler(),
	}
	go func() {
		logger.Info("starting metrics endpoint", "addr", ln.Addr())
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics endpoint failed", "error", err)
		}
	}()
	return srv, ln.Addr(), nil
}

// Builds the in-memory contact book described by the flags.
func openBook(cctx *cli.Context, logger *slog.Logger) (*contacts.Book, error) {
	config := contacts.BookConfig{
		Logger: logger,
	}
	if cctx.Bool("collate") {
		tag, err := language.Parse(cctx.String("locale"))
		if err != nil {
			return nil, fmt.Errorf("invalid locale: %w", err)
		}
		config.Comparator = contacts.NameComparator(tag)
	}
	book := contacts.NewBook(config)
	if n := cctx.Int("seed"); n > 0 {
		if err := contacts.Seed(book, n, cctx.Int64("seed-random")); err != nil {
			return nil, err
		}
	}
	return book, nil
}
