package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/uiforge/designaudit/pkg/design"
	"github.com/uiforge/designaudit/pkg/mcp"
	"github.com/uiforge/designaudit/pkg/watcher"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP server on stdin/stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			session, err := newSession(cmd.Context(), logger)
			if err != nil {
				return err
			}
			srv := mcp.NewServer(session, logger)
			logger.Info("mcp server listening on stdio")
			return srv.ServeStdio()
		},
	}
}

func watchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch <directory>",
		Short: "Watch an export directory and re-analyze changed documents",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			session, err := newSession(cmd.Context(), logger)
			if err != nil {
				return err
			}

			handler := func(path string, removed bool) {
				if removed {
					logger.Info("document removed", "file", path)
					return
				}
				doc, err := design.LoadDocument(path, logger)
				if err != nil {
					color.New(color.FgRed).Fprintf(os.Stderr, "✗ %s: %v\n", path, err)
					return
				}
				roots := session.FindComponents(doc.Root)
				if len(roots) == 0 {
					logger.Info("no components in document", "file", path)
					return
				}
				results := session.AnalyzeBatch(cmd.Context(), roots)
				for _, r := range results {
					if r.Err != "" {
						color.New(color.FgRed).Fprintf(os.Stderr, "✗ %s: %s\n", r.Component, r.Err)
						continue
					}
					printReadiness(r.Component, r.Metadata.Readiness.Score)
				}
			}

			opts := watcher.DefaultOptions()
			if flagDebounce > 0 {
				opts.DebounceMs = flagDebounce
			}
			dw, err := watcher.NewDocumentWatcher(handler, opts, logger)
			if err != nil {
				return err
			}
			if err := dw.Start(args[0]); err != nil {
				return err
			}
			defer dw.Stop()

			fmt.Fprintf(os.Stderr, "watching %s, press Ctrl-C to stop\n", args[0])
			sig := make(chan os.Signal, 1)
			signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
			select {
			case <-sig:
			case <-cmd.Context().Done():
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&flagDebounce, "debounce", 0, "Debounce window in milliseconds (0 = default)")
	return cmd
}
