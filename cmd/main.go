package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/automaxprocs/maxprocs"

	"github.com/shahchayan9/gRPC-Communication/cmd/client"
	"github.com/shahchayan9/gRPC-Communication/cmd/coordinator"
	"github.com/shahchayan9/gRPC-Communication/cmd/ingest"
	"github.com/shahchayan9/gRPC-Communication/cmd/worker"
	"github.com/shahchayan9/gRPC-Communication/common"
)

var (
	rootCmd = &cobra.Command{
		Use:   "crashquery",
		Short: "Partitioned query service over traffic-crash records",
		Long: `A coordinator fans queries out to per-borough shard workers and merges
their results with per-process timing data.`,
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&common.LogDebug, "log-debug", "d", false, "Enable debug logs")
	rootCmd.PersistentFlags().BoolVarP(&common.LogJson, "log-json", "j", false, "Print logs in JSON format")

	rootCmd.AddCommand(client.Cmd)
	rootCmd.AddCommand(coordinator.Cmd)
	rootCmd.AddCommand(ingest.Cmd)
	rootCmd.AddCommand(worker.Cmd)
}

func main() {
	common.DoWithLabels(map[string]string{
		"process": "main",
	}, func() {
		if _, err := maxprocs.Set(); err != nil {
			_, _ = fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		if err := rootCmd.Execute(); err != nil {
			_, _ = fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	})
}
