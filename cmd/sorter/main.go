package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"
	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/multiversx/mx-sorting-go/comparing/prompt"
	"github.com/multiversx/mx-sorting-go/config"
	"github.com/multiversx/mx-sorting-go/sorting"
	"github.com/urfave/cli"
)

var (
	sorterHelpTemplate = `NAME:
   {{.Name}} - {{.Usage}}
USAGE:
   {{.HelpName}} {{if .VisibleFlags}}[global options]{{end}}
   {{if len .Authors}}
AUTHOR:
   {{range .Authors}}{{ . }}{{end}}
   {{end}}{{if .Commands}}
GLOBAL OPTIONS:
   {{range .VisibleFlags}}{{.}}
   {{end}}
VERSION:
   {{.Version}}
   {{end}}
`
	configurationFile = cli.StringFlag{
		Name:  "config",
		Usage: "The main configuration file to load",
		Value: "./config.toml",
	}
	items = cli.StringFlag{
		Name:  "items",
		Usage: "Comma-separated list of items to sort interactively",
		Value: "",
	}
	logLevel = cli.StringFlag{
		Name:  "log-level",
		Usage: "This flag specifies the logger levels and patterns, overriding the configuration file",
		Value: "",
	}

	log = logger.GetOrCreate("main")
)

func main() {
	app := cli.NewApp()
	cli.AppHelpTemplate = sorterHelpTemplate
	app.Name = "Interactive Sorter CLI App"
	app.Version = "v1.0.0"
	app.Usage = "This binary sorts a list of items by asking the operator to rank them two at a time"
	app.Flags = []cli.Flag{
		configurationFile,
		items,
		logLevel,
	}
	app.Authors = []cli.Author{
		{
			Name:  "The MultiversX Team",
			Email: "contact@multiversx.com",
		},
	}

	app.Action = func(c *cli.Context) error {
		return runSorter(c)
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}

func runSorter(ctx *cli.Context) error {
	cfg, err := config.LoadConfig(ctx.GlobalString(configurationFile.Name))
	if err != nil {
		return err
	}

	logLevelPattern := cfg.Logs.LogLevel
	if len(ctx.GlobalString(logLevel.Name)) > 0 {
		logLevelPattern = ctx.GlobalString(logLevel.Name)
	}
	err = logger.SetLogLevel(logLevelPattern)
	if err != nil {
		return err
	}

	log.Debug("configuration loaded", "config", spew.Sdump(*cfg))

	itemsToSort := parseItems(ctx.GlobalString(items.Name))
	if len(itemsToSort) == 0 {
		return fmt.Errorf("no items to sort, provide them with --%s", items.Name)
	}

	comparator, err := prompt.NewPromptComparator(prompt.ArgsPromptComparator[string]{
		In:  os.Stdin,
		Out: os.Stdout,
	})
	if err != nil {
		return err
	}

	sorter, err := sorting.NewTimSorter(sorting.ArgsTimSorter[string]{
		Comparator:   comparator,
		MinRunPolicy: sorting.MinRunPolicy(cfg.Sorting.MinRunPolicy),
	})
	if err != nil {
		return err
	}

	sorted, err := sorter.Sort(context.Background(), itemsToSort)
	if err != nil {
		return err
	}

	fmt.Printf("\nsorted: %s\n", strings.Join(sorted, ", "))
	log.Info("sort finished", "num items", len(sorted), "num comparisons", sorter.Comparisons())

	return nil
}

func parseItems(rawItems string) []string {
	parsed := make([]string, 0)
	for _, item := range strings.Split(rawItems, ",") {
		item = strings.TrimSpace(item)
		if len(item) > 0 {
			parsed = append(parsed, item)
		}
	}

	return parsed
}
