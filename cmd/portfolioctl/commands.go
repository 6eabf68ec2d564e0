package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"portfolio-cms/internal/app"
	"portfolio-cms/internal/config"
	"portfolio-cms/internal/domain"
	"portfolio-cms/internal/model"
	"portfolio-cms/internal/usecase"

	"github.com/spf13/cobra"
)

type cli struct {
	configPath string
	cfg        *config.Config
}

func newRootCmd() *cobra.Command {
	c := &cli{}
	root := &cobra.Command{
		Use:           "portfolioctl",
		Short:         "Operate the portfolio CMS: schema, seed data, repository sync and resume export",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(c.configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid config: %w", err)
			}
			c.cfg = cfg
			return nil
		},
	}
	root.PersistentFlags().StringVar(&c.configPath, "config", os.Getenv("CONFIG_PATH"), "path to a YAML config file")

	root.AddCommand(
		c.migrateCmd(),
		c.seedCmd(),
		c.syncCmd(),
		c.resumeCmd(),
		c.variantsCmd(),
	)
	return root
}

func (c *cli) open(cmd *cobra.Command) *app.App {
	logger := c.cfg.NewLogger(cmd.ErrOrStderr())
	return app.New(cmd.Context(), c.cfg, logger)
}

func (c *cli) migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the database tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := c.open(cmd)
			defer a.Close()
			return a.Migrate(cmd.Context())
		},
	}
}

func (c *cli) seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load the configured seed skills and projects into the database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := c.open(cmd)
			defer a.Close()
			if a.Import == nil {
				return app.ErrNoDatabase
			}
			res, err := a.Import.Import(cmd.Context(), domain.ResumeProfile{
				Skills:   c.cfg.Seed.Skills,
				Projects: c.cfg.Seed.Projects,
			})
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), res)
		},
	}
}

func (c *cli) syncCmd() *cobra.Command {
	var (
		token          string
		maxRepos       int
		includePrivate bool
	)
	cmd := &cobra.Command{
		Use:   "sync [username]",
		Short: "Import repositories from GitHub into the projects table",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := c.open(cmd)
			defer a.Close()
			if a.Sync == nil {
				return app.ErrNoDatabase
			}
			req := usecase.SyncRequest{
				Username:       c.cfg.GitHub.Username,
				Token:          c.cfg.GitHub.Token,
				MaxRepos:       c.cfg.GitHub.MaxRepos,
				IncludePrivate: c.cfg.GitHub.IncludePrivate,
			}
			if len(args) == 1 {
				req.Username = args[0]
			}
			if cmd.Flags().Changed("token") {
				req.Token = token
			}
			if cmd.Flags().Changed("max-repos") && maxRepos != 0 {
				req.MaxRepos = maxRepos
			}
			if cmd.Flags().Changed("include-private") {
				req.IncludePrivate = includePrivate
			}
			res := a.Sync.Sync(cmd.Context(), req)
			if err := writeJSON(cmd.OutOrStdout(), res); err != nil {
				return err
			}
			if !res.Success {
				return errors.New("sync failed")
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&token, "token", "", "GitHub token (defaults to GITHUB_TOKEN)")
	cmd.Flags().IntVar(&maxRepos, "max-repos", config.DefaultMaxRepos, "maximum number of repositories to import")
	cmd.Flags().BoolVar(&includePrivate, "include-private", false, "include the token owner's private repositories")
	return cmd
}

func (c *cli) resumeCmd() *cobra.Command {
	var (
		variant     string
		profilePath string
		out         string
		pdf         bool
		noProjects  bool
	)
	cmd := &cobra.Command{
		Use:   "resume",
		Short: "Generate the resume as HTML or PDF",
		Long: `Generate the resume from the database, or from a JSON profile file with --profile.
The profile file is validated against the import schema and needs no database.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := c.open(cmd)
			defer a.Close()

			res, err := c.renderResume(cmd.Context(), a, profilePath, variant, !noProjects)
			if err != nil {
				return err
			}
			if len(res.Readiness.Missing) > 0 {
				a.Logger.Warn("profile is incomplete", "missing", res.Readiness.Missing)
			}

			doc := []byte(res.HTML)
			if pdf {
				if doc, err = a.Export.ToPDF(cmd.Context(), res.HTML); err != nil {
					return err
				}
			}
			return writeOutput(cmd.OutOrStdout(), out, doc)
		},
	}
	cmd.Flags().StringVar(&variant, "variant", "", "role variant id, as listed by the variants command")
	cmd.Flags().StringVar(&profilePath, "profile", "", "render a JSON profile file instead of the database")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (defaults to stdout)")
	cmd.Flags().BoolVar(&pdf, "pdf", false, "render PDF through headless Chrome")
	cmd.Flags().BoolVar(&noProjects, "no-projects", false, "leave out the featured projects section")
	return cmd
}

func (c *cli) renderResume(ctx context.Context, a *app.App, profilePath, variant string, includeProjects bool) (*usecase.ExportResult, error) {
	if profilePath == "" {
		if a.Store == nil {
			return nil, app.ErrNoDatabase
		}
		return a.Export.HTML(ctx, usecase.ExportRequest{VariantID: variant, IncludeProjects: includeProjects})
	}

	raw, err := os.ReadFile(profilePath)
	if err != nil {
		return nil, err
	}
	doc, err := model.Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", profilePath, err)
	}
	if variant == "" {
		variant = doc.Variant
	}
	if !includeProjects {
		doc.Projects = nil
	}
	return a.Export.RenderProfile(doc.ResumeProfile, variant)
}

func (c *cli) variantsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "variants",
		Short: "List the role variants available to resume export",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tLABEL\tTITLE")
			for _, v := range c.cfg.RoleVariants() {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", v.ID, v.Label, v.Title)
			}
			return tw.Flush()
		},
	}
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeOutput(stdout io.Writer, path string, data []byte) error {
	if path == "" {
		_, err := stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
