package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/goliatone/go-formfields/components/emailcheck"
	"github.com/goliatone/go-formfields/internal/server"
	"github.com/goliatone/go-formfields/pkg/fields"
	"github.com/goliatone/go-formfields/pkg/prompt"
)

type cli struct {
	configFile string
	cfg        *viper.Viper
	registry   *fields.Registry
	driver     prompt.Driver
}

func newRootCmd() *cobra.Command {
	return (&cli{}).command()
}

func (c *cli) command() *cobra.Command {
	root := &cobra.Command{
		Use:           "formfields",
		Short:         "Render and serve Datastar form field fragments",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(c.configFile)
			if err != nil {
				return err
			}
			if err := bindFlags(cfg, cmd.Flags()); err != nil {
				return err
			}
			c.cfg = cfg

			registry, err := buildRegistry(cfg)
			if err != nil {
				return err
			}
			c.registry = registry
			return nil
		},
	}

	root.PersistentFlags().StringVar(&c.configFile, "config", "", "config file (default: ./formfields.yaml)")
	root.PersistentFlags().String("fields-dir", "", "directory with custom field definitions (yaml/json)")
	root.PersistentFlags().String("templates-dir", "", "directory whose templates/*.tpl override the built-in ones")

	root.AddCommand(c.renderCmd(), c.tagsCmd(), c.serveCmd(), c.promptCmd())
	return root
}

func (c *cli) renderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "render [tag...]",
		Short: "Print the markup of the given tags (all when none are given)",
		RunE: func(cmd *cobra.Command, args []string) error {
			tags := args
			if len(tags) == 0 {
				tags = c.registry.Tags()
			}
			out := cmd.OutOrStdout()
			for _, tag := range tags {
				markup, err := c.registry.Mount(tag)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "<%s>\n%s</%s>\n", tag, markup, tag)
			}
			return nil
		},
	}
}

func (c *cli) tagsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tags",
		Short: "List registered tags and their bound variables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			for _, tag := range c.registry.Tags() {
				def, _ := c.registry.Definition(tag)
				fmt.Fprintf(out, "%s\t%s\n", tag, strings.Join(def.Bindings, ","))
			}
			return nil
		},
	}
}

func (c *cli) serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a demo page, field fragments and the validation endpoint",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := newLogger(c.cfg.GetString(cfgKeyLogLevel))
			srv, err := server.New(c.registry, server.Config{
				Addr:         c.cfg.GetString(cfgKeyAddr),
				Title:        c.cfg.GetString(cfgKeyTitle),
				DatastarSrc:  c.cfg.GetString(cfgKeyDatastarSrc),
				TemplatesDir: c.cfg.GetString(cfgKeyTemplatesDir),
				Logger:       logger,
			})
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return srv.Run(ctx)
		},
	}
	cmd.Flags().String(cfgKeyAddr, ":8080", "listen address")
	cmd.Flags().String(cfgKeyTitle, "Form fields", "demo page title")
	cmd.Flags().String("datastar-src", "", "Datastar client bundle URL")
	cmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")
	return cmd
}

func (c *cli) promptCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "prompt [tag...]",
		Short: "Fill the fields in the terminal and print the values as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := []prompt.Option{
				prompt.WithValidator(fields.BindEmail, func(address string) error {
					return emailcheck.ValidateAddress(cmd.Context(), address)
				}),
			}
			if c.driver != nil {
				opts = append(opts, prompt.WithDriver(c.driver))
			}
			values, err := prompt.NewFiller(c.registry, opts...).Fill(cmd.Context(), args)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(values)
		},
	}
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

// bindFlags exposes every flag to viper under its snake_case key so flags take
// precedence over env and file values only when set.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	var bindErr error
	flags.VisitAll(func(f *pflag.Flag) {
		if bindErr != nil {
			return
		}
		if err := v.BindPFlag(strings.ReplaceAll(f.Name, "-", "_"), f); err != nil {
			bindErr = fmt.Errorf("bind flag %q: %w", f.Name, err)
		}
	})
	return bindErr
}
