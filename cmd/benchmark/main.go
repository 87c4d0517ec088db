// Command benchmark drives load against a running item service and
// reports latency statistics.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "benchmark",
	Short: "Load generator for the item service",
	Long: `benchmark exercises the item service REST API and reports
throughput and latency percentiles. Two modes are available: a fixed
request count (benchmark) and a fixed wall-clock duration (load-test).`,
	Version:       "1.0.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("server", "http://localhost:8080", "base URL of the item service")
	flags.StringP("operation", "p", "mixed", "operation to benchmark (create, get, list, update, delete, mixed)")
	flags.IntP("concurrency", "c", 10, "number of parallel workers")
	flags.String("username", "", "username for password authentication")
	flags.String("password", "", "password for password authentication")
	flags.String("token", "", "static bearer token")
	flags.String("api-key", "", "static API key")

	viper.SetEnvPrefix("ITEMSVC_BENCH")
	viper.AutomaticEnv()
	viper.BindPFlags(flags)

	rootCmd.AddCommand(benchmarkCmd)
	rootCmd.AddCommand(loadTestCmd)
}
