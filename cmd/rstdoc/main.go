// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/rstdoc

// rstdoc generates reStructuredText documentation from schema specifications.
package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog"

	"github.com/woozymasta/rstdoc"
)

var (
	Version    = "dev"
	Commit     = "unknown"
	BuildTime  = time.Unix(0, 0)
	URL        = "https://github.com/woozymasta/rstdoc"
	_buildTime string
)

// cliOptions describes rstdoc CLI flags and subcommands.
type cliOptions struct {
	Version   versionCommand   `command:"version" description:"Print version information"`
	Render    renderCommand    `command:"render" description:"Render namespace documentation into an output directory"`
	Hierarchy hierarchyCommand `command:"hierarchy" description:"Render the type hierarchy of a namespace"`
	Sections  sectionsCommand  `command:"sections" description:"Show how types sort into source file sections"`
	Template  templateCommand  `command:"template" description:"Print a built-in page template"`
}

// namespaceSelectFlags groups namespace selection flags.
type namespaceSelectFlags struct {
	Namespace string `short:"n" long:"namespace" description:"Namespace name to render (default: first declared namespace)"`
}

// outputFlags groups logging verbosity flags.
type outputFlags struct {
	Quiet bool `short:"q" long:"quiet" description:"Suppress status output"`
}

// renderCommand renders the full documentation tree for one namespace.
type renderCommand struct {
	runner *cliRunner

	NamespaceFlags namespaceSelectFlags `group:"Namespace Select"`
	OutputFlags    outputFlags          `group:"Output"`

	Title           string `short:"T" long:"title" description:"Master page title (default: namespace full name)"`
	FilePerType     bool   `short:"f" long:"file-per-type" description:"Write one include fragment per documented type"`
	SeparateSource  bool   `short:"s" long:"separate-source" description:"Render YAML sources into a dedicated document"`
	NoSource        bool   `long:"no-source" description:"Skip YAML source rendering"`
	NoTableTitles   bool   `long:"no-table-titles" description:"Suppress spec table captions"`
	WrapWidth       int    `short:"w" long:"wrap" description:"Wrap width for section intro text" default:"80"`
	SourceHashFile  string `long:"hash-file" description:"Track the spec repo git hash in this file and skip regeneration when unchanged"`
	ForceRegenerate bool   `long:"force" description:"Regenerate even when the tracked git hash is unchanged"`

	Args struct {
		NamespaceFile string `positional-arg-name:"namespace-file" description:"Namespace YAML file" required:"yes"`
		OutputDir     string `positional-arg-name:"output-dir" description:"Output directory for generated RST files" required:"yes"`
	} `positional-args:"yes"`
}

// Execute runs the render subcommand.
func (command *renderCommand) Execute(_ []string) error {
	return command.runner.runRender(command)
}

// hierarchyCommand renders the type hierarchy fragment.
type hierarchyCommand struct {
	runner *cliRunner

	NamespaceFlags namespaceSelectFlags `group:"Namespace Select"`

	Args struct {
		NamespaceFile string `positional-arg-name:"namespace-file" description:"Namespace YAML file" required:"yes"`
		Output        string `positional-arg-name:"output" description:"Output RST file path (optional; stdout when omitted)"`
	} `positional-args:"yes"`
}

// Execute runs the hierarchy subcommand.
func (command *hierarchyCommand) Execute(_ []string) error {
	return command.runner.runHierarchy(command)
}

// sectionsCommand shows the type-to-section sorting of a namespace.
type sectionsCommand struct {
	runner *cliRunner

	NamespaceFlags namespaceSelectFlags `group:"Namespace Select"`

	Args struct {
		NamespaceFile string `positional-arg-name:"namespace-file" description:"Namespace YAML file" required:"yes"`
	} `positional-args:"yes"`
}

// Execute runs the sections subcommand.
func (command *sectionsCommand) Execute(_ []string) error {
	return command.runner.runSections(command)
}

// templateCommand exports a built-in page template.
type templateCommand struct {
	runner *cliRunner

	TemplateName string `short:"t" long:"template" description:"Built-in page template" choice:"index" choice:"credits" default:"index"`

	Args struct {
		Output string `positional-arg-name:"output" description:"Output template file path (optional; stdout when omitted)"`
	} `positional-args:"yes"`
}

// Execute runs the template subcommand.
func (command *templateCommand) Execute(_ []string) error {
	return command.runner.runTemplate(command.TemplateName, command.Args.Output)
}

// versionCommand prints version information.
type versionCommand struct {
	runner *cliRunner
}

// Execute runs the version subcommand.
func (command *versionCommand) Execute(_ []string) error {
	command.runner.printVersionInfo()
	return nil
}

// cliRunner executes CLI operations with custom IO streams.
type cliRunner struct {
	stdout      io.Writer
	stderr      io.Writer
	programName string
}

func init() {
	if _buildTime != "" {
		if t, err := time.Parse(time.RFC3339, _buildTime); err == nil {
			BuildTime = t.UTC()
		}
	}
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes CLI logic and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	programName := strings.TrimSpace(os.Args[0])
	if programName == "" {
		programName = "rstdoc"
	}

	runner := cliRunner{
		programName: filepath.Base(programName),
		stdout:      stdout,
		stderr:      stderr,
	}

	return runner.run(args)
}

// run parses CLI args and maps errors to process exit codes.
func (runner *cliRunner) run(args []string) int {
	err := parseCLIArgs(args, runner)
	if err == nil {
		return 0
	}

	var flagErr *flags.Error
	if errors.As(err, &flagErr) {
		if flagErr.Type == flags.ErrHelp {
			writeCLIError(runner.stdout, err)
			return 0
		}

		writeCLIError(runner.stderr, err)
		return 2
	}

	writeCLIError(runner.stderr, err)
	return 1
}

// parseCLIArgs parses CLI arguments and triggers subcommand execution.
func parseCLIArgs(args []string, runner *cliRunner) error {
	options := &cliOptions{}
	options.Version.runner = runner
	options.Render.runner = runner
	options.Hierarchy.runner = runner
	options.Sections.runner = runner
	options.Template.runner = runner

	parser := flags.NewParser(options, flags.HelpFlag)
	parser.Name = runner.programName
	applyCommandLongDescriptions(parser, runner.programName)

	_, err := parser.ParseArgs(args)
	return err
}

// applyCommandLongDescriptions configures detailed command help text.
func applyCommandLongDescriptions(parser *flags.Parser, programName string) {
	descriptions := map[string]string{
		"render": strings.TrimSpace(fmt.Sprintf(`
Render the full documentation tree of a namespace into an output directory.
The namespace file location also serves as the specification source directory.

Examples:
> $ %s render spec/namespace.yaml docs/source
> $ %s render -f -s --hash-file docs/source/.spec-hash spec/namespace.yaml docs/source
`, programName, programName)),
		"hierarchy": strings.TrimSpace(fmt.Sprintf(`
Render the flattened type hierarchy as a nested cross-referenced list.
Writes RST to the file argument or stdout.

Examples:
> $ %s hierarchy spec/namespace.yaml > hierarchy.inc
> $ %s hierarchy -n core spec/namespace.yaml docs/source/hierarchy.inc
`, programName, programName)),
		"sections": strings.TrimSpace(fmt.Sprintf(`
Show how the registered types sort into one section per source file.

Examples:
> $ %s sections spec/namespace.yaml
`, programName)),
		"template": strings.TrimSpace(fmt.Sprintf(`
Print built-in page template text (index or credits).
Use it as a starting point for a custom master page.

Examples:
> $ %s template > index.rst.gotmpl
> $ %s template -t credits templates/credits.rst.gotmpl
`, programName, programName)),
	}

	for commandName, description := range descriptions {
		command := parser.Find(commandName)
		if command == nil {
			continue
		}

		command.LongDescription = description
	}
}

// writeCLIError writes a plain-text CLI error line to the selected stream.
func writeCLIError(output io.Writer, err error) {
	if err == nil {
		return
	}

	_, _ = fmt.Fprintln(output, err.Error())
}

// logger builds the console status logger for build commands.
func (runner *cliRunner) logger(quiet bool) zerolog.Logger {
	if quiet {
		return zerolog.Nop()
	}

	writer := zerolog.ConsoleWriter{Out: runner.stderr, TimeFormat: time.TimeOnly}
	return zerolog.New(writer).With().Timestamp().Logger()
}

// loadNamespace loads the namespace file and selects one namespace by name,
// defaulting to the first declared namespace. The catalog is built from the
// directory holding the namespace file.
func loadNamespace(namespaceFile, name string) (*rstdoc.Namespace, *rstdoc.Catalog, error) {
	namespaces, err := rstdoc.LoadNamespaces(namespaceFile)
	if err != nil {
		return nil, nil, err
	}

	ns := namespaces[0]
	if name != "" {
		ns = nil
		for _, candidate := range namespaces {
			if candidate.Name == name {
				ns = candidate
				break
			}
		}

		if ns == nil {
			return nil, nil, fmt.Errorf("namespace %q not declared in %q", name, namespaceFile)
		}
	}

	catalog, err := rstdoc.BuildCatalog(filepath.Dir(namespaceFile), ns)
	if err != nil {
		return nil, nil, err
	}

	return ns, catalog, nil
}

// runRender executes the render flow with the optional git hash check.
func (runner *cliRunner) runRender(command *renderCommand) error {
	log := runner.logger(command.OutputFlags.Quiet)
	specDir := filepath.Dir(command.Args.NamespaceFile)

	if command.SourceHashFile != "" && !command.ForceRegenerate {
		if gitHashMatches(command.SourceHashFile, specDir) {
			log.Info().Str("hash-file", command.SourceHashFile).
				Msg("specification sources unchanged; skipping regeneration")
			return nil
		}
	}

	ns, catalog, err := loadNamespace(command.Args.NamespaceFile, command.NamespaceFlags.Namespace)
	if err != nil {
		return err
	}

	log.Info().Str("namespace", ns.Name).Int("types", catalog.Len()).Msg("rendering namespace")

	builder := rstdoc.NewBuilder(ns, catalog, rstdoc.BuildOptions{
		OutputDir:       command.Args.OutputDir,
		Title:           command.Title,
		FilePerType:     command.FilePerType,
		SeparateSource:  command.SeparateSource,
		HideSource:      command.NoSource,
		HideTableTitles: command.NoTableTitles,
		WrapWidth:       command.WrapWidth,
		Logger:          log,
	})
	if err := builder.Build(); err != nil {
		return fmt.Errorf("render namespace %q: %w", ns.Name, err)
	}

	if command.SourceHashFile != "" {
		if err := storeGitHash(command.SourceHashFile, specDir); err != nil {
			log.Warn().Err(err).Msg("could not store specification source hash")
		}
	}

	log.Info().Int("files", len(builder.WrittenFiles())).Msg("render complete")
	return nil
}

// runHierarchy renders the type hierarchy to stdout or a file.
func (runner *cliRunner) runHierarchy(command *hierarchyCommand) error {
	_, catalog, err := loadNamespace(command.Args.NamespaceFile, command.NamespaceFlags.Namespace)
	if err != nil {
		return err
	}

	doc := rstdoc.NewDocument()
	rstdoc.RenderHierarchy(doc, catalog, rstdoc.HierarchyLabel, "Type Hierarchy")

	if strings.TrimSpace(command.Args.Output) == "" {
		if _, err := io.WriteString(runner.stdout, doc.String()); err != nil {
			return fmt.Errorf("write hierarchy to stdout: %w", err)
		}

		return nil
	}

	if err := doc.WriteFile(command.Args.Output); err != nil {
		return fmt.Errorf("write hierarchy: %w", err)
	}

	return nil
}

// runSections prints the type-to-section sorting of a namespace.
func (runner *cliRunner) runSections(command *sectionsCommand) error {
	ns, catalog, err := loadNamespace(command.Args.NamespaceFile, command.NamespaceFlags.Namespace)
	if err != nil {
		return err
	}

	for _, section := range catalog.Sections(ns) {
		if _, err := fmt.Fprintf(runner.stdout, "%s (%s)\n", section.Title, section.Source); err != nil {
			return fmt.Errorf("write sections to stdout: %w", err)
		}

		for _, typeName := range section.DataTypes {
			if _, err := fmt.Fprintf(runner.stdout, "    %s\n", typeName); err != nil {
				return fmt.Errorf("write sections to stdout: %w", err)
			}
		}
	}

	return nil
}

// runTemplate writes a built-in page template to stdout or a file.
func (runner *cliRunner) runTemplate(templateName, outputPath string) error {
	tpl, err := rstdoc.BuiltinTemplate(templateName)
	if err != nil {
		return fmt.Errorf("load built-in template %q: %w", templateName, err)
	}

	if strings.TrimSpace(outputPath) == "" {
		if _, err := io.WriteString(runner.stdout, tpl); err != nil {
			return fmt.Errorf("write template to stdout: %w", err)
		}

		return nil
	}

	if err := os.WriteFile(outputPath, []byte(tpl), 0o600); err != nil {
		return fmt.Errorf("write template file %q: %w", outputPath, err)
	}

	return nil
}

// gitRevisionHash returns the current git revision of the given directory.
func gitRevisionHash(dir string) (string, error) {
	command := exec.Command("git", "rev-parse", "HEAD")
	command.Dir = dir

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	command.Stdout = &stdout
	command.Stderr = &stderr

	if err := command.Run(); err != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail == "" {
			detail = err.Error()
		}

		return "", fmt.Errorf("git rev-parse: %s", detail)
	}

	return strings.TrimSpace(stdout.String()), nil
}

// gitHashMatches reports whether the stored hash equals the current git
// revision of the spec directory. Any failure counts as a mismatch so
// generation proceeds.
func gitHashMatches(hashFile, dir string) bool {
	stored, err := os.ReadFile(hashFile)
	if err != nil {
		return false
	}

	current, err := gitRevisionHash(dir)
	if err != nil {
		return false
	}

	return current != "" && strings.TrimSpace(string(stored)) == current
}

// storeGitHash writes the current git revision of the spec directory into
// the hash file.
func storeGitHash(hashFile, dir string) error {
	current, err := gitRevisionHash(dir)
	if err != nil {
		return err
	}

	if err := os.WriteFile(hashFile, []byte(current+"\n"), 0o600); err != nil {
		return fmt.Errorf("write hash file %q: %w", hashFile, err)
	}

	return nil
}

func (runner *cliRunner) printVersionInfo() {
	_, _ = fmt.Fprintf(runner.stdout, `url:      %s
file:     %s
version:  %s
commit:   %s
built:    %s
`, URL, os.Args[0], Version, Commit, BuildTime)
}
