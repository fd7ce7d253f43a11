package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/uiforge/designaudit/pkg/command"
	"github.com/uiforge/designaudit/pkg/naming"
)

func analyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze <document>",
		Short: "Analyze components and print reconciled metadata",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			session, err := newSession(cmd.Context(), logger)
			if err != nil {
				return err
			}

			_, el, err := loadTarget(args[0], logger)
			if err != nil {
				return err
			}

			if flagElementID != "" {
				md, err := session.AnalyzeComponent(cmd.Context(), el)
				if err != nil {
					return err
				}
				printReadiness(md.Component, md.Readiness.Score)
				return printJSON(md)
			}

			roots := session.FindComponents(el)
			if len(roots) == 0 {
				return fmt.Errorf("no components found in %s", args[0])
			}
			results := session.AnalyzeBatch(cmd.Context(), roots)
			for _, r := range results {
				if r.Err != "" {
					color.New(color.FgRed).Fprintf(os.Stderr, "✗ %s: %s\n", r.Component, r.Err)
					continue
				}
				printReadiness(r.Component, r.Metadata.Readiness.Score)
			}
			return printJSON(results)
		},
	}
	cmd.Flags().StringVarP(&flagElementID, "element", "e", "", "Component element ID (default: all component roots)")
	return cmd
}

func printReadiness(name string, score int) {
	c := color.New(color.FgGreen)
	switch {
	case score < 40:
		c = color.New(color.FgRed)
	case score < 70:
		c = color.New(color.FgYellow)
	}
	c.Fprintf(os.Stderr, "● %s: readiness %d/100\n", name, score)
}

func tokensCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokens <document>",
		Short: "Extract design token usage from a document or subtree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			session, err := newSession(cmd.Context(), logger)
			if err != nil {
				return err
			}
			_, el, err := loadTarget(args[0], logger)
			if err != nil {
				return err
			}

			ext, sum, err := session.ExtractTokens(cmd.Context(), el)
			if err != nil {
				return err
			}
			if sum.HardCodedValues > 0 {
				color.New(color.FgYellow).Fprintf(os.Stderr,
					"⚠ %d of %d values are hard-coded\n", sum.HardCodedValues, sum.TotalTokens)
			}
			return printJSON(struct {
				Summary any `json:"summary"`
				Tokens  any `json:"tokens"`
			}{Summary: sum, Tokens: ext.All()})
		},
	}
	cmd.Flags().StringVarP(&flagElementID, "element", "e", "", "Subtree root element ID (default: document root)")
	return cmd
}

func namingCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "naming <document>",
		Short: "Report generic and numbered layer names",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			session, err := newSession(cmd.Context(), logger)
			if err != nil {
				return err
			}
			_, el, err := loadTarget(args[0], logger)
			if err != nil {
				return err
			}

			issues := session.NamingIssues(el)
			for _, issue := range issues {
				c := color.New(color.FgYellow)
				if issue.Severity == naming.SeverityError {
					c = color.New(color.FgRed)
				}
				c.Fprintf(os.Stderr, "%s %q -> %q (%s)\n",
					issue.Severity, issue.CurrentName, issue.SuggestedName, issue.Path)
			}
			return printJSON(issues)
		},
	}
	cmd.Flags().StringVarP(&flagElementID, "element", "e", "", "Subtree root element ID (default: document root)")
	return cmd
}

func renameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename <document>",
		Short: "Preview a batch rename plan for a subtree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			_, el, err := loadTarget(args[0], logger)
			if err != nil {
				return err
			}

			ops, err := naming.PreviewRenames(el, naming.RenameOptions{
				Strategy: naming.Strategy(flagStrategy),
				Prefix:   flagPrefix,
				Case:     naming.CaseConvention(flagCase),
				MaxDepth: flagMaxDepth,
			})
			if err != nil {
				return err
			}

			cmds := make([]command.Command, 0, len(ops))
			for _, op := range ops {
				cmds = append(cmds, command.RenameElement{ElementID: op.ElementID, NewName: op.NewName})
			}
			if err := command.ValidateAll(cmds); err != nil {
				return err
			}
			color.New(color.FgCyan).Fprintf(os.Stderr, "%d renames planned\n", len(cmds))
			for _, c := range cmds {
				fmt.Fprintln(os.Stderr, "  "+c.Describe())
			}
			return printJSON(ops)
		},
	}
	cmd.Flags().StringVarP(&flagElementID, "element", "e", "", "Subtree root element ID (default: document root)")
	cmd.Flags().StringVar(&flagStrategy, "strategy", "semantic", "Rename strategy: semantic, bem, prefix, case")
	cmd.Flags().StringVar(&flagPrefix, "prefix", "", "Prefix for the prefix strategy")
	cmd.Flags().StringVar(&flagCase, "case", "kebab", "Case convention for the case strategy: kebab, snake, camel, pascal")
	return cmd
}

func recommendCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recommend <document>",
		Short: "Propose missing component properties from the family catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			session, err := newSession(cmd.Context(), logger)
			if err != nil {
				return err
			}
			_, el, err := loadTarget(args[0], logger)
			if err != nil {
				return err
			}

			recs, err := session.RecommendProperties(cmd.Context(), el)
			if err != nil {
				return err
			}
			if len(recs) == 0 {
				color.New(color.FgGreen).Fprintln(os.Stderr, "✓ no missing properties")
			}
			return printJSON(recs)
		},
	}
	cmd.Flags().StringVarP(&flagElementID, "element", "e", "", "Component element ID (default: document root)")
	_ = cmd.MarkFlagRequired("element")
	return cmd
}
