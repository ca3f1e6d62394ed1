// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/spf13/cobra"
	"github.com/yourbase/nestedini/envvar"
	"github.com/yourbase/nestedini/ini"
	"zombiezen.com/go/log"
)

type globalOptions struct {
	files   []string
	verbose bool
	logger  log.Logger
}

func newRootCommand() *cobra.Command {
	opts := new(globalOptions)
	root := &cobra.Command{
		Use:           "nestedini",
		Short:         "Read and edit INI files with nested sections",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			opts.logger = newLogger(cmd.ErrOrStderr(), opts.verbose)
			return nil
		},
	}
	root.PersistentFlags().StringArrayVarP(&opts.files, "file", "f", nil,
		"INI `path` to operate on; get and sections accept several, highest precedence first (default $NESTEDINI_FILE)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", envvar.Bool("NESTEDINI_VERBOSE"),
		"log each step")

	root.AddCommand(newGetCommand(opts))
	root.AddCommand(newSetCommand(opts))
	root.AddCommand(newSectionsCommand(opts))
	root.AddCommand(newDumpCommand(opts))
	root.AddCommand(newCheckCommand(opts))
	return root
}

func (opts *globalOptions) paths() ([]string, error) {
	if len(opts.files) > 0 {
		return opts.files, nil
	}
	if p := envvar.Get("NESTEDINI_FILE", ""); p != "" {
		return []string{p}, nil
	}
	return nil, errors.New("no file given: pass --file or set NESTEDINI_FILE")
}

func (opts *globalOptions) path() (string, error) {
	paths, err := opts.paths()
	if err != nil {
		return "", err
	}
	if len(paths) > 1 {
		return "", fmt.Errorf("got %d files; this command takes exactly one", len(paths))
	}
	return paths[0], nil
}

// newLogger returns a logger that writes to w. Debug entries are dropped
// unless verbose is set.
func newLogger(w io.Writer, verbose bool) log.Logger {
	level := log.Info
	if verbose {
		level = log.Debug
	}
	return &log.LevelFilter{
		Min:    level,
		Output: log.New(w, "", log.ShowLevel, nil),
	}
}

func (opts *globalOptions) output() log.Logger {
	if opts.logger == nil {
		return log.Default()
	}
	return opts.logger
}

func (opts *globalOptions) debugf(ctx context.Context, format string, args ...interface{}) {
	log.Logf(ctx, opts.output(), log.Debug, format, args...)
}

func (opts *globalOptions) infof(ctx context.Context, format string, args ...interface{}) {
	log.Logf(ctx, opts.output(), log.Info, format, args...)
}

// valueTypes lists the names accepted by --type.
var valueTypes = []string{"string", "int", "uint", "float", "bool"}

func newGetCommand(opts *globalOptions) *cobra.Command {
	var typ string
	cmd := &cobra.Command{
		Use:   "get SECTION KEY",
		Short: "Print the value of an entry",
		Long: `Print the value of KEY in the section with the fully qualified name SECTION.

With several --file flags the first file that has the entry wins. A missing
entry prints the zero value of --type.`,
		Example: `  nestedini get -f settings.ini Server.HTTP Port
  nestedini get -f user.ini -f /etc/app.ini --type int Server.HTTP Port`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			paths, err := opts.paths()
			if err != nil {
				return err
			}
			fset, err := ini.OpenFiles(paths...)
			if err != nil {
				return err
			}
			section, key := args[0], args[1]
			if fset.FindEntry(section+"."+key) == nil {
				opts.debugf(ctx, "%s.%s not found in %q", section, key, paths)
			}
			text, err := lookupText(fset, section, key, typ)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), text)
			return err
		},
	}
	cmd.Flags().StringVarP(&typ, "type", "t", "string", fmt.Sprintf("convert the value to one of %q", valueTypes))
	return cmd
}

func lookupText(fset ini.FileSet, section, key, typ string) (string, error) {
	switch typ {
	case "string":
		return ini.Lookup[string](fset, section, key)
	case "int":
		return lookupFormatted[int64](fset, section, key)
	case "uint":
		return lookupFormatted[uint64](fset, section, key)
	case "float":
		return lookupFormatted[float64](fset, section, key)
	case "bool":
		return lookupFormatted[bool](fset, section, key)
	default:
		return "", fmt.Errorf("unknown type %q (want one of %q)", typ, valueTypes)
	}
}

func lookupFormatted[T ini.Scalar](fset ini.FileSet, section, key string) (string, error) {
	v, err := ini.Lookup[T](fset, section, key)
	if err != nil {
		return "", err
	}
	return ini.FormatValue(v), nil
}

func newSetCommand(opts *globalOptions) *cobra.Command {
	var (
		typ    string
		create bool
	)
	cmd := &cobra.Command{
		Use:   "set SECTION KEY VALUE",
		Short: "Store a value and rewrite the file",
		Long: `Store VALUE under KEY in the section with the fully qualified name SECTION.

Missing sections, including their parents, are appended to the file. The file
is rewritten immediately.`,
		Example: `  nestedini set -f settings.ini Server.HTTP Port 8080
  nestedini set -f new.ini --create --type bool Features Beta true`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			path, err := opts.path()
			if err != nil {
				return err
			}
			f, err := ini.Open(path)
			if errors.Is(err, fs.ErrNotExist) && create {
				opts.debugf(ctx, "%s does not exist; creating", path)
				f, err = ini.Create(path)
			}
			if err != nil {
				return err
			}
			section, key, value := args[0], args[1], args[2]
			if err := setText(f, section, key, value, typ); err != nil {
				return err
			}
			opts.infof(ctx, "Set %s.%s in %s", section, key, path)
			return nil
		},
	}
	cmd.Flags().StringVarP(&typ, "type", "t", "string", fmt.Sprintf("require VALUE to be one of %q", valueTypes))
	cmd.Flags().BoolVar(&create, "create", false, "create the file if it does not exist")
	return cmd
}

func setText(f *ini.File, section, key, value, typ string) error {
	switch typ {
	case "string":
		return ini.Set(f, section, key, value)
	case "int":
		return setParsed[int64](f, section, key, value)
	case "uint":
		return setParsed[uint64](f, section, key, value)
	case "float":
		return setParsed[float64](f, section, key, value)
	case "bool":
		return setParsed[bool](f, section, key, value)
	default:
		return fmt.Errorf("unknown type %q (want one of %q)", typ, valueTypes)
	}
}

func setParsed[T ini.Scalar](f *ini.File, section, key, value string) error {
	v, err := ini.ParseValue[T](value)
	if err != nil {
		return fmt.Errorf("set %s.%s: %w", section, key, err)
	}
	return ini.Set(f, section, key, v)
}

func newSectionsCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "sections",
		Short: "List fully qualified section names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := opts.paths()
			if err != nil {
				return err
			}
			fset, err := ini.OpenFiles(paths...)
			if err != nil {
				return err
			}
			for _, title := range fset.Sections() {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), title); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newDumpCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "dump",
		Short: "Print the file in canonical form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := opts.path()
			if err != nil {
				return err
			}
			f, err := ini.Open(path)
			if err != nil {
				return err
			}
			_, err = f.WriteTo(cmd.OutOrStdout())
			return err
		},
	}
}

func newCheckCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify that files parse and survive a rewrite unchanged",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			paths, err := opts.paths()
			if err != nil {
				return err
			}
			for _, path := range paths {
				if err := check(path); err != nil {
					return err
				}
				opts.debugf(ctx, "%s: ok", path)
			}
			opts.infof(ctx, "Checked %d file(s)", len(paths))
			return nil
		},
	}
}

func check(path string) error {
	f, err := ini.Open(path)
	if err != nil {
		return err
	}
	data, err := f.MarshalText()
	if err != nil {
		return fmt.Errorf("check %s: %w", path, err)
	}
	reparsed := new(ini.File)
	if err := reparsed.UnmarshalText(data); err != nil {
		return fmt.Errorf("check %s: rewritten file does not parse: %w", path, err)
	}
	if !f.Equal(reparsed) {
		return fmt.Errorf("check %s: rewritten file differs from the file on disk", path)
	}
	return nil
}
