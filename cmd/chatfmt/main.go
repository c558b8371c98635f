package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/CipherCosmos/chatfmt/internal/config"
	"github.com/CipherCosmos/chatfmt/internal/logging"
	"github.com/CipherCosmos/chatfmt/internal/markup"
	"github.com/CipherCosmos/chatfmt/internal/msgio"
	"github.com/CipherCosmos/chatfmt/internal/termview"
	"github.com/CipherCosmos/chatfmt/internal/textutil"
	"github.com/gdamore/tcell/v2"
)

const version = "0.1.0"

func printHelp() {
	fmt.Print(`chatfmt - Chat message formatter

USAGE:
    chatfmt [OPTIONS] [FILE]

Formats one chat message for display. The message is read from FILE,
or from standard input when FILE is missing or "-".

OPTIONS:
    -f, --format FORMAT   Output format: html, json or text (default html)
    -p, --preview         Show the message in an interactive terminal viewer
    -c, --config PATH     Read configuration from PATH
    -V, --version         Print the version and exit
    -h, --help            Show this help message and exit
`)
}

type options struct {
	format     string
	configPath string
	file       string
	preview    bool
	help       bool
	version    bool
}

func parseArgs(args []string) (options, error) {
	var opts options
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "-h" || arg == "--help":
			opts.help = true
		case arg == "-V" || arg == "--version":
			opts.version = true
		case arg == "-p" || arg == "--preview":
			opts.preview = true
		case arg == "-f" || arg == "--format":
			i++
			if i == len(args) {
				return opts, fmt.Errorf("%s needs a value", arg)
			}
			opts.format = args[i]
		case strings.HasPrefix(arg, "--format="):
			opts.format = strings.TrimPrefix(arg, "--format=")
		case arg == "-c" || arg == "--config":
			i++
			if i == len(args) {
				return opts, fmt.Errorf("%s needs a value", arg)
			}
			opts.configPath = args[i]
		case strings.HasPrefix(arg, "--config="):
			opts.configPath = strings.TrimPrefix(arg, "--config=")
		case strings.HasPrefix(arg, "-") && arg != "-":
			return opts, fmt.Errorf("unknown option %s", arg)
		case opts.file != "":
			return opts, fmt.Errorf("unexpected argument %s", arg)
		default:
			opts.file = arg
		}
	}
	return opts, nil
}

func main() {
	opts, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "chatfmt: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'chatfmt --help' for usage.")
		os.Exit(2)
	}
	if opts.help {
		printHelp()
		os.Exit(0)
	}
	if opts.version {
		fmt.Println("chatfmt " + version)
		os.Exit(0)
	}

	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "chatfmt: %v\n", err)
		os.Exit(1)
	}
	if opts.format != "" {
		format := strings.ToLower(strings.TrimSpace(opts.format))
		if format != config.FormatHTML && format != config.FormatJSON && format != config.FormatText {
			fmt.Fprintf(os.Stderr, "chatfmt: unknown format %q (want html, json or text)\n", opts.format)
			os.Exit(2)
		}
		cfg.OutputFormat = format
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "chatfmt: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.Init(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "chatfmt: logging to file disabled: %v\n", err)
	}

	text, truncated, err := readMessage(opts.file, cfg.MaxMessageBytes)
	if err != nil {
		logger.Error("read message", "error", err)
		fmt.Fprintf(os.Stderr, "chatfmt: %v\n", err)
		os.Exit(1)
	}
	if truncated {
		logger.Warn("message truncated", "limit_bytes", cfg.MaxMessageBytes)
		fmt.Fprintf(os.Stderr, "chatfmt: message longer than %d bytes, output is truncated\n", cfg.MaxMessageBytes)
	}
	logger.Info("formatting message",
		"source", sourceLabel(opts.file),
		"format", cfg.OutputFormat,
		"preview", opts.preview,
		"bytes", len(text))

	if opts.preview {
		if err := runPreview(sourceLabel(opts.file), textutil.ExpandTabs(text, cfg.TabWidth)); err != nil {
			logger.Error("preview", "error", err)
			fmt.Fprintf(os.Stderr, "chatfmt: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := writeOutput(os.Stdout, cfg.OutputFormat, text); err != nil {
		logger.Error("write output", "error", err)
		fmt.Fprintf(os.Stderr, "chatfmt: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig resolves the effective configuration. A file named on the
// command line must exist; the default location may be absent.
func loadConfig(path string) (config.Config, error) {
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return config.Config{}, fmt.Errorf("config: %w", err)
		}
		return config.Load(path)
	}
	if p, err := config.DefaultPath(); err == nil {
		path = p
	}
	return config.Load(path)
}

func readMessage(path string, limit int) (string, bool, error) {
	if path == "" || path == "-" {
		return msgio.ReadMessage(os.Stdin, limit)
	}
	return msgio.ReadMessageFile(path, limit)
}

// sourceLabel names the message origin for logs and the preview title.
func sourceLabel(path string) string {
	if path == "" || path == "-" {
		return "stdin"
	}
	return filepath.Base(path)
}

func writeOutput(w io.Writer, format, text string) error {
	switch format {
	case config.FormatJSON:
		return markup.EncodeJSON(w, markup.RenderMessage(text))
	case config.FormatText:
		_, err := fmt.Fprintln(w, markup.RenderText(text))
		return err
	default:
		_, err := fmt.Fprintln(w, markup.RenderHTML(markup.RenderMessage(text)))
		return err
	}
}

func runPreview(title, text string) error {
	// UTF-8 fallback keeps Unicode messages legible on terminals with a
	// limited locale.
	tcell.SetEncodingFallback(tcell.EncodingFallbackUTF8)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	return termview.Run(screen, title, markup.RenderStyledLines(text))
}
