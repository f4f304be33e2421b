package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dgallion1/calloutmd/internal/callout"
	"github.com/dgallion1/calloutmd/internal/parser"
	"github.com/dgallion1/calloutmd/internal/pipeline"
)

func newRenderCmd(root *rootOptions) *cobra.Command {
	var (
		outDir string
		jobs   int
	)

	cmd := &cobra.Command{
		Use:   "render [files...]",
		Short: "Render Markdown files to HTML",
		Long: `Render each Markdown file to HTML. The language of the default callout
labels comes from the file's locale directory under --docs-dir.

Without --out the HTML of every file is written to standard output in
argument order. With --out each file is written to <out>/<path>.html, where
<path> is relative to --docs-dir.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := root.logger(cmd.ErrOrStderr())
			site, err := root.site(cmd, log)
			if err != nil {
				return err
			}

			sources := make([]pipeline.Source, 0, len(args))
			for _, path := range args {
				if !parser.IsSupportedExtension(path) {
					return fmt.Errorf("unsupported file type: %s", path)
				}
				data, err := os.ReadFile(path)
				if err != nil {
					return err
				}
				sources = append(sources, pipeline.Source{Path: filepath.ToSlash(path), Markdown: string(data)})
			}

			core := []pipeline.Stage{callout.New(callout.Options{PathToLang: site.PathToLang, Logger: log})}
			w := pipeline.NewWorker(pipeline.New(core, pipeline.WithLogger(log)), log, jobs)
			results := w.RenderAll(cmd.Context(), sources)

			failed := 0
			for _, r := range results {
				if r.Err != nil {
					failed++
					reportFailure(cmd.ErrOrStderr(), r)
					continue
				}
				if err := writeResult(cmd.OutOrStdout(), outDir, site.DocsDir, r); err != nil {
					return err
				}
				log.Info("rendered", "path", r.Path, "hash", r.Hash)
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d documents failed", failed, len(results))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", "", "write one .html file per input into this directory")
	cmd.Flags().IntVarP(&jobs, "jobs", "j", 4, "documents rendered in parallel")
	return cmd
}

func reportFailure(w io.Writer, r pipeline.Result) {
	fmt.Fprintf(w, "%s: %v\n", r.Path, r.Err)
	var iconErr *callout.InvalidIconError
	if errors.As(r.Err, &iconErr) {
		fmt.Fprintf(w, "\n%s\n\n", iconErr.Hint())
	}
}

func writeResult(stdout io.Writer, outDir, docsDir string, r pipeline.Result) error {
	if outDir == "" {
		_, err := io.WriteString(stdout, r.HTML+"\n")
		return err
	}
	target := filepath.Join(outDir, outputName(r.Path, docsDir))
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	return os.WriteFile(target, []byte(r.HTML+"\n"), 0o644)
}

// outputName maps a source path to its .html name below the output
// directory. Files outside docsDir keep only their base name.
func outputName(path, docsDir string) string {
	name := filepath.Base(path)
	if rel, err := filepath.Rel(docsDir, path); err == nil && !strings.HasPrefix(rel, "..") {
		name = rel
	}
	return strings.TrimSuffix(name, filepath.Ext(name)) + ".html"
}

