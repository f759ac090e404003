package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"

	derbyjson "github.com/crzwdjk/derbyjson"
	"github.com/crzwdjk/derbyjson/i18n"
)

const stdioName = "-"

var build string
var semanticVersion = "v0.2.0" + build

func main() {
	var lang string
	app := &cli.App{
		Name:    "derbyjson",
		Usage:   "Validate and convert DerbyJSON v0.2 documents",
		Version: semanticVersion,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "lang",
				Usage:       "Language for diagnostics (en or ja)",
				Value:       "en",
				Destination: &lang,
			},
		},
		Before: func(*cli.Context) error {
			i18n.SetLanguage(lang)
			return nil
		},
		Commands: []*cli.Command{
			validateCommand(),
			convertCommand(),
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func validateCommand() *cli.Command {
	var input string
	var dupStrict bool
	return &cli.Command{
		Name:  "validate",
		Usage: "Decode a document and report every schema violation",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "input",
				Aliases:     []string{"i"},
				Usage:       "Path to a DerbyJSON file (.json or .yaml), or \"-\" for stdin",
				Required:    true,
				Destination: &input,
			},
			&cli.BoolFlag{
				Name:        "dup-keys",
				Usage:       "Also reject duplicate JSON object keys",
				Destination: &dupStrict,
			},
		},
		Action: func(*cli.Context) error {
			data, err := readInput(input)
			if err != nil {
				return err
			}
			opt := derbyjson.DecodeOpt{}
			if dupStrict {
				opt.Strictness.OnDuplicateKey = derbyjson.Error
			}
			_, err = decodeAuto(input, data, opt)
			if err != nil {
				printIssues(err)
				return cli.Exit("document is not valid DerbyJSON", 1)
			}
			fmt.Fprintln(os.Stderr, "OK")
			return nil
		},
	}
}

func convertCommand() *cli.Command {
	var input, output, to, indent string
	var stampUUID bool
	return &cli.Command{
		Name:  "convert",
		Usage: "Convert a document between JSON and YAML",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "input",
				Aliases:     []string{"i"},
				Usage:       "Path to a DerbyJSON file (.json or .yaml), or \"-\" for stdin",
				Required:    true,
				Destination: &input,
			},
			&cli.StringFlag{
				Name:        "output",
				Aliases:     []string{"o"},
				Usage:       "Destination path, or \"-\" for stdout",
				Value:       stdioName,
				Destination: &output,
			},
			&cli.StringFlag{
				Name:        "to",
				Usage:       "Target format: json or yaml (default: the other one)",
				Destination: &to,
			},
			&cli.StringFlag{
				Name:        "indent",
				Usage:       "Indent string for JSON output",
				Value:       "  ",
				Destination: &indent,
			},
			&cli.BoolFlag{
				Name:        "stamp-uuid",
				Usage:       "Mint a document UUID when the input carries none",
				Destination: &stampUUID,
			},
		},
		Action: func(*cli.Context) error {
			data, err := readInput(input)
			if err != nil {
				return err
			}
			doc, err := decodeAuto(input, data, derbyjson.DecodeOpt{})
			if err != nil {
				printIssues(err)
				return cli.Exit("document is not valid DerbyJSON", 1)
			}
			if stampUUID {
				switch t := doc.(type) {
				case *derbyjson.Game:
					t.EnsureUUID()
				case *derbyjson.Rosters:
					t.EnsureUUID()
				}
			}
			target := to
			if target == "" {
				if isYAMLPath(input) {
					target = "json"
				} else {
					target = "yaml"
				}
			}
			w, closeFn, err := openOutput(output)
			if err != nil {
				return err
			}
			defer closeFn()
			switch target {
			case "json":
				out, err := derbyjson.Encode(doc, derbyjson.EncodeOpt{Indent: indent})
				if err != nil {
					printIssues(err)
					return cli.Exit("encode failed", 1)
				}
				out = append(out, '\n')
				_, err = w.Write(out)
				return err
			case "yaml":
				if err := derbyjson.EncodeYAML(w, doc); err != nil {
					printIssues(err)
					return cli.Exit("encode failed", 1)
				}
				return nil
			default:
				return fmt.Errorf("unknown target format %q", target)
			}
		},
	}
}

func readInput(path string) ([]byte, error) {
	if path == stdioName {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func openOutput(path string) (io.Writer, func(), error) {
	if path == stdioName {
		return os.Stdout, func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}

func isYAMLPath(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

func decodeAuto(path string, data []byte, opt derbyjson.DecodeOpt) (derbyjson.Document, error) {
	if isYAMLPath(path) {
		return derbyjson.DecodeYAML(data, opt)
	}
	return derbyjson.Decode(data, opt)
}

func printIssues(err error) {
	iss, ok := derbyjson.AsIssues(err)
	if !ok {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	for _, it := range iss {
		fmt.Fprintf(os.Stderr, "%s: %s (%s)\n", it.Path, i18n.T(it.Code, nil), it.Message)
	}
}
