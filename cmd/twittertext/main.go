package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/gookit/color"
	"github.com/muesli/reflow/wordwrap"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	twittertext "github.com/riverfjs/twittertext-go"
	"github.com/riverfjs/twittertext-go/autolink"
	"github.com/riverfjs/twittertext-go/internal/buffer"
)

const (
	defaultMode  = "entities"
	defaultWidth = 80
)

var modes = []string{"entities", "urls", "hashtags", "mentions", "cashtags", "reply", "validate", "autolink", "markdown"}

// usageError 参数错误，退出码 2
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

type options struct {
	mode       string
	bare       bool
	codePoints bool
	jsonOut    bool
	colorMode  string
	width      int
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var opts options
	flags := pflag.NewFlagSet("twittertext", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVarP(&opts.mode, "mode", "m", defaultMode, "Mode: "+strings.Join(modes, "|"))
	flags.BoolVar(&opts.bare, "without-protocol", true, "Extract URLs without protocol such as example.com (--without-protocol=false disables)")
	flags.BoolVar(&opts.codePoints, "code-points", false, "Report offsets in code points instead of UTF-16 code units")
	flags.BoolVarP(&opts.jsonOut, "json", "j", false, "JSON output")
	flags.StringVar(&opts.colorMode, "color", "auto", "Color output: auto|always|never")
	flags.IntVarP(&opts.width, "width", "w", 0, "Wrap width for the text echo (0 uses terminal width if available)")

	flags.SetInterspersed(true)
	flags.Usage = func() {
		fmt.Fprintf(stderr, "Usage: twittertext [flags] [text...]\n")
		fmt.Fprintln(stderr, "\nIf no text is provided, it is read from stdin.")
		fmt.Fprintln(stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}

	if err := execute(opts, flags.Args(), stdin, stdout); err != nil {
		var ue *usageError
		if errors.As(err, &ue) {
			fmt.Fprintf(stderr, "%v\n", err)
			flags.Usage()
			return 2
		}
		fmt.Fprintf(stderr, "%s: %v\n", opts.mode, err)
		return 1
	}
	return 0
}

func execute(opts options, args []string, stdin io.Reader, stdout io.Writer) error {
	if !validMode(opts.mode) {
		return &usageError{msg: fmt.Sprintf("unknown mode %q", opts.mode)}
	}
	if err := configureColor(opts.colorMode, stdout); err != nil {
		return err
	}

	text, err := readText(args, stdin)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	extractor := twittertext.NewExtractor(twittertext.WithURLWithoutProtocol(opts.bare))
	switch opts.mode {
	case "entities":
		return printEntities(stdout, opts, text, extractor.ExtractEntitiesWithIndices(text), true)
	case "urls":
		return printEntities(stdout, opts, text, extractor.ExtractURLsWithIndices(text), false)
	case "hashtags":
		return printEntities(stdout, opts, text, extractor.ExtractHashtagsWithIndices(text), false)
	case "mentions":
		return printEntities(stdout, opts, text, extractor.ExtractMentionsOrListsWithIndices(text), false)
	case "cashtags":
		return printEntities(stdout, opts, text, extractor.ExtractCashtagsWithIndices(text), false)
	case "reply":
		return printReply(stdout, opts, extractor, text)
	case "validate":
		return printValidation(stdout, opts, extractor, text)
	case "autolink":
		_, err := fmt.Fprintln(stdout, autolink.New().AutoLink(text))
		return err
	case "markdown":
		return autolink.New().AutoLinkMarkdown([]byte(text), stdout)
	}
	return nil
}

func validMode(mode string) bool {
	for _, m := range modes {
		if m == mode {
			return true
		}
	}
	return false
}

func configureColor(mode string, w io.Writer) error {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", "auto":
		if !isTerminal(w) {
			color.Disable()
		}
	case "always":
		color.Enable = true
		color.ForceColor()
	case "never":
		color.Disable()
	default:
		return &usageError{msg: fmt.Sprintf("invalid --color %q: expected auto|always|never", mode)}
	}
	return nil
}

// readText 参数用空格连接；无参数时读 stdin 并去掉末尾换行
func readText(args []string, stdin io.Reader) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}

func printEntities(w io.Writer, opts options, text string, entities []twittertext.Entity, echo bool) error {
	colored := colorize(text, entities)
	if opts.codePoints {
		converted, err := twittertext.ToCodePoints(text, entities)
		if err != nil {
			return err
		}
		entities = converted
	}

	if opts.jsonOut {
		if entities == nil {
			entities = []twittertext.Entity{}
		}
		return writeJSON(w, entities)
	}

	if echo {
		fmt.Fprintln(w, wordwrap.String(colored, resolveWidth(opts.width, w)))
		if len(entities) > 0 {
			fmt.Fprintln(w)
		}
	}
	for _, e := range entities {
		if echo {
			fmt.Fprintf(w, "%-8s [%d, %d] %s\n", e.Type, e.Start, e.End, paint(e.Type, display(e)))
		} else {
			fmt.Fprintln(w, display(e))
		}
	}
	return nil
}

func printReply(w io.Writer, opts options, x *twittertext.Extractor, text string) error {
	name, ok := x.ExtractReplyScreenname(text)
	if opts.jsonOut {
		var reply *string
		if ok {
			reply = &name
		}
		return writeJSON(w, map[string]*string{"reply": reply})
	}
	if ok {
		fmt.Fprintln(w, name)
	}
	return nil
}

// validationResult validate 模式的 JSON 输出
type validationResult struct {
	Valid     bool   `json:"valid"`
	Length    int    `json:"length"`
	MaxLength int    `json:"max_length"`
	Error     string `json:"error,omitempty"`
}

func printValidation(w io.Writer, opts options, x *twittertext.Extractor, text string) error {
	v := twittertext.NewValidator(twittertext.WithExtractor(x))
	res := validationResult{Length: v.TweetLength(text), MaxLength: v.MaxLength()}
	verr := v.ValidateTweet(text)
	res.Valid = verr == nil
	if verr != nil {
		res.Error = verr.Error()
	}

	if opts.jsonOut {
		if err := writeJSON(w, res); err != nil {
			return err
		}
	} else if res.Valid {
		fmt.Fprintf(w, "%s (%d/%d)\n", color.FgGreen.Sprint("valid"), res.Length, res.MaxLength)
	}
	if verr != nil {
		return verr
	}
	return nil
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

func display(e twittertext.Entity) string {
	return e.Value + e.ListSlug
}

func paint(t twittertext.EntityType, s string) string {
	switch t {
	case twittertext.URL:
		return color.FgCyan.Sprint(s)
	case twittertext.Hashtag:
		return color.FgGreen.Sprint(s)
	case twittertext.Mention:
		return color.FgYellow.Sprint(s)
	case twittertext.Cashtag:
		return color.FgMagenta.Sprint(s)
	}
	return s
}

// colorize 给原文中的实体上色，实体偏移为 UTF-16
func colorize(text string, entities []twittertext.Entity) string {
	tb := buffer.New(text)
	for _, e := range entities {
		if e.Start < tb.UTF16Offset() {
			continue
		}
		tb.CopyTo(e.Start)
		tb.Write(paint(e.Type, tb.Skip(e.End)))
	}
	tb.CopyRest()
	return tb.String()
}

func resolveWidth(width int, w io.Writer) int {
	if width > 0 {
		return width
	}
	return terminalWidth(w, defaultWidth)
}

func terminalWidth(w io.Writer, fallback int) int {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			return width
		}
	}
	if value := os.Getenv("COLUMNS"); value != "" {
		if width, err := strconv.Atoi(value); err == nil && width > 0 {
			return width
		}
	}
	return fallback
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
