// Command proxygen generates proxy stubs for sets of interfaces.
//
// Usage:
//
//	//go:generate go run github.com/miruken-go/proxy/cmd/proxygen --proxy EchoProxy=Echo,Pinger
//
// Stubs can also be described in a yaml file:
//
//	output: proxy_gen.go
//	proxies:
//	  - name: EchoProxy
//	    contracts: [Echo, Pinger]
package main

import (
	"fmt"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
	"github.com/miruken-go/proxy/internal/gen"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string
	cmd := &cobra.Command{
		Use:   "proxygen",
		Short: "Generate proxy stubs for sets of interfaces",
		Long: `proxygen loads a Go package and generates a stub for each requested
set of interfaces.  Stubs register themselves with the proxy package so
delegating, intercepting and invoking proxies can be created for them.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := gen.LoadConfig(configPath, cmd.Flags())
			if err != nil {
				return report(cmd, err)
			}
			logger := newLogger(cmd, cfg.Verbose)
			if _, err = gen.New(cfg, logger).Generate(); err != nil {
				return report(cmd, err)
			}
			return nil
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&configPath, "config", "", "yaml file describing the proxies")
	flags.String("dir", "", "directory to load the package from (default \".\")")
	flags.String("pattern", "", "package pattern relative to dir (default \".\")")
	flags.String("output", "", "generated file name (default \"proxy_gen.go\")")
	flags.StringArray("proxy", nil, "proxy to generate as Name=Contract[,Contract...]")
	flags.IntP("verbose", "v", 0, "log verbosity")
	return cmd
}

func newLogger(cmd *cobra.Command, verbosity int) logr.Logger {
	out := cmd.ErrOrStderr()
	return funcr.New(func(prefix, args string) {
		if prefix != "" {
			_, _ = fmt.Fprintf(out, "%s: %s\n", prefix, args)
		} else {
			_, _ = fmt.Fprintln(out, args)
		}
	}, funcr.Options{Verbosity: verbosity}).WithName("proxygen")
}

func report(cmd *cobra.Command, err error) error {
	_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "proxygen: %v\n", err)
	return err
}
