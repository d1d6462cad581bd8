package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/Adda-Baaj/portfolio-client/internal/app"
	"github.com/Adda-Baaj/portfolio-client/internal/config"
	"github.com/Adda-Baaj/portfolio-client/internal/contact"
	"github.com/Adda-Baaj/portfolio-client/internal/domain"
	"github.com/Adda-Baaj/portfolio-client/internal/logger"
	"github.com/spf13/pflag"
)

const usage = `usage: portfolio <command> [flags]

commands:
  contact   send a message through the portfolio contact form
  resume    download the resume PDF
`

var errUsage = errors.New("invalid usage")

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, pflag.ErrHelp) {
			fmt.Fprintf(os.Stderr, "portfolio: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return errUsage
	}

	cmd, rest := args[0], args[1:]
	fs := pflag.NewFlagSet("portfolio "+cmd, pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.String("backend-url", "", "backend base URL (defaults to BACKEND_URL, then the site origin)")
	fs.String("log-level", "", "log level: debug, info, warn, error")
	fs.Int64("timeout", 0, "request timeout in seconds")

	var req domain.ContactRequest
	var requestFile string
	switch cmd {
	case "contact":
		fs.StringVar(&req.Name, "name", "", "your name")
		fs.StringVar(&req.Email, "email", "", "your email address")
		fs.StringVar(&req.Subject, "subject", "", "message subject")
		fs.StringVar(&req.Message, "message", "", "message body")
		fs.StringVarP(&requestFile, "file", "f", "", "read the request from a YAML or JSON file")
	case "resume":
		fs.StringP("out", "o", "", "directory the resume is saved into")
		fs.String("user-agent", "", "user agent used for platform detection")
		fs.String("share-command", "", "native share helper, e.g. termux-share")
		fs.Bool("verify-magic", false, "require the body to sniff as a PDF")
	case "-h", "--help", "help":
		fmt.Fprint(stdout, usage)
		return nil
	default:
		fmt.Fprint(stderr, usage)
		return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}

	if err := fs.Parse(rest); err != nil {
		return err
	}

	cfg, err := config.Load(fs)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.Init(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	portfolio, err := app.NewPortfolio(cfg, log, stdout)
	if err != nil {
		logger.ErrorObj("failed to initialize portfolio client", "error", err.Error())
		return err
	}
	logger.DebugObj("running command", "command", cmd)

	switch cmd {
	case "contact":
		if requestFile != "" {
			fromFile, err := contact.LoadRequestFile(requestFile)
			if err != nil {
				logger.WarnObj("contact request file rejected", "request_file", map[string]any{
					"path":  requestFile,
					"error": err.Error(),
				})
				return err
			}
			req = mergeRequest(fromFile, req)
		}
		return portfolio.SubmitContact(ctx, req)
	default:
		return portfolio.DownloadResume(ctx)
	}
}

// mergeRequest lets explicit flags override values read from a request file.
func mergeRequest(base, flags domain.ContactRequest) domain.ContactRequest {
	if flags.Name != "" {
		base.Name = flags.Name
	}
	if flags.Email != "" {
		base.Email = flags.Email
	}
	if flags.Subject != "" {
		base.Subject = flags.Subject
	}
	if flags.Message != "" {
		base.Message = flags.Message
	}
	return base
}
