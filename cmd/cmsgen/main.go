package main

import (
	"fmt"
	"os"

	"github.com/ormasoftchile/cmsgen/pkg/catalog"
	"github.com/ormasoftchile/cmsgen/pkg/config"
	"github.com/ormasoftchile/cmsgen/pkg/generate"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags.
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cmsgen",
	Short: "Generate typed zod packages from CMS catalogs",
	Long: `cmsgen — reads the CMS catalogs (content-types.json, sections.json) from the
working directory and regenerates the @cms-types TypeScript packages: one zod
schema plus inferred type per embedded JSON-Schema fragment, an aggregating
index and a package.json per namespace.

Every run is a full regeneration; unchanged input produces byte-identical
output. Settings can also be placed in an optional cmsgen.yaml (flags win).`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

var (
	genAll          bool
	genContentTypes bool
	genSections     bool

	outDir           string
	contentTypesFile string
	sectionsFile     string
	packageVersion   string
	zodVersion       string
)

func runGenerate(cmd *cobra.Command, args []string) error {
	applyWorkspaceConfig(cmd)

	both := genAll || (!genContentTypes && !genSections)
	p := &generate.Pipeline{
		Sink:           &generate.DirSink{Root: outDir},
		Reporter:       &generate.Reporter{Out: os.Stdout, Err: os.Stderr},
		PackageVersion: packageVersion,
		ZodVersion:     zodVersion,
	}

	total := 0
	failed := false

	if both || genContentTypes {
		fmt.Printf("Generating %s/%s from %s...\n", generate.Scope, generate.NamespaceContentTypes, contentTypesFile)
		n, err := p.ContentTypes(contentTypesFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "  ✗ content-types: %v\n", err)
			failed = true
		} else {
			fmt.Printf("✓ content-types: %d unit(s)\n", n)
			total += n
		}
	}

	if both || genSections {
		fmt.Printf("Generating %s/%s from %s...\n", generate.Scope, generate.NamespaceSections, sectionsFile)
		n, err := p.Sections(sectionsFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "  ✗ sections: %v\n", err)
			failed = true
		} else {
			fmt.Printf("✓ sections: %d unit(s)\n", n)
			total += n
		}
	}

	if failed || total == 0 {
		fmt.Fprintln(os.Stderr, "Generation failed: nothing usable was produced")
		os.Exit(1)
	}
	return nil
}

// applyWorkspaceConfig fills flag values from cmsgen.yaml for every flag the
// user did not set explicitly. A broken config file is reported and ignored.
func applyWorkspaceConfig(cmd *cobra.Command) {
	cwd, err := os.Getwd()
	if err != nil {
		return
	}
	cfg, err := config.LoadWorkspace(cwd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		return
	}
	if cfg == nil {
		return
	}
	flags := cmd.Flags()
	if !flags.Changed("out") && cfg.Out != "" {
		outDir = cfg.Out
	}
	if !flags.Changed("content-types-file") && cfg.ContentTypesFile != "" {
		contentTypesFile = cfg.ContentTypesFile
	}
	if !flags.Changed("sections-file") && cfg.SectionsFile != "" {
		sectionsFile = cfg.SectionsFile
	}
	if cfg.PackageVersion != "" {
		packageVersion = cfg.PackageVersion
	}
	if cfg.ZodVersion != "" {
		zodVersion = cfg.ZodVersion
	}
}

// --- validate ---

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the catalog files against their schemas",
	RunE:  runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	applyWorkspaceConfig(cmd)

	checks := []struct {
		path string
		fn   func(string) []*catalog.ValidationError
	}{
		{contentTypesFile, catalog.ValidateContentTypesFile},
		{sectionsFile, catalog.ValidateSectionsFile},
	}

	failed := false
	for _, c := range checks {
		errs := c.fn(c.path)
		if len(errs) == 0 {
			fmt.Printf("✓ %s is valid\n", c.path)
			continue
		}
		failed = true
		fmt.Fprintf(os.Stderr, "Validation failed for %s: %d error(s)\n", c.path, len(errs))
		for i, e := range errs {
			fmt.Fprintf(os.Stderr, "  %d. [%s] %s\n", i+1, e.Phase, e.Message)
			if e.Path != "" {
				fmt.Fprintf(os.Stderr, "     at: %s\n", e.Path)
			}
		}
	}
	if failed {
		return fmt.Errorf("catalog validation failed")
	}
	return nil
}

// --- list / status ---

var listCmd = &cobra.Command{
	Use:   "list [namespace]",
	Short: "List generated unit names per namespace",
	Long: `List the generated unit names by reading the emitted index files back.
Namespace is one of: content-types, sections. Omit it to list both.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	applyWorkspaceConfig(cmd)

	namespaces := []string{generate.NamespaceContentTypes, generate.NamespaceSections}
	if len(args) == 1 {
		namespaces = []string{args[0]}
	}

	sink := &generate.DirSink{Root: outDir}
	for _, ns := range namespaces {
		names := generate.ListUnits(sink, ns)
		fmt.Printf("%s/%s (%d unit(s)):\n", generate.Scope, ns, len(names))
		for _, name := range names {
			fmt.Printf("  %s\n", name)
		}
	}
	return nil
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Report whether both namespaces have been generated",
	RunE: func(cmd *cobra.Command, args []string) error {
		applyWorkspaceConfig(cmd)

		st := generate.Status(&generate.DirSink{Root: outDir})
		for _, ns := range []string{generate.NamespaceContentTypes, generate.NamespaceSections} {
			mark := "✗"
			if st[ns] {
				mark = "✓"
			}
			fmt.Printf("  %s %s/%s\n", mark, generate.Scope, ns)
		}
		return nil
	},
}

// --- schema export ---

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Catalog schema operations",
}

var schemaExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the catalog JSON Schemas to stdout",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, export := range []func() ([]byte, error){
			catalog.ExportContentTypesSchema,
			catalog.ExportSectionsSchema,
		} {
			data, err := export()
			if err != nil {
				return fmt.Errorf("generate schema: %w", err)
			}
			fmt.Println(string(data))
		}
		return nil
	},
}

// --- version ---

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("cmsgen %s (build: %s)\n", version, commit)
	},
}

func init() {
	rootCmd.Flags().BoolVarP(&genAll, "all", "a", false, "Generate both catalogs (the default when no selector is given)")
	rootCmd.Flags().BoolVar(&genContentTypes, "content-types", false, "Generate the content-type catalog only")
	rootCmd.Flags().BoolVar(&genSections, "sections", false, "Generate the section catalog only")

	rootCmd.PersistentFlags().StringVar(&outDir, "out", "node_modules/@cms-types", "Output root for the generated packages")
	rootCmd.PersistentFlags().StringVar(&contentTypesFile, "content-types-file", "content-types.json", "Path to the content-type catalog")
	rootCmd.PersistentFlags().StringVar(&sectionsFile, "sections-file", "sections.json", "Path to the section catalog")

	schemaCmd.AddCommand(schemaExportCmd)

	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(schemaCmd)
	rootCmd.AddCommand(versionCmd)
}
