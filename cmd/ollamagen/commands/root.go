package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lowkeylabs/ollamagen/pkg/cli"
)

var (
	// Global flags
	cfgFile     string
	contextName string
	outputFile  string
	outputJSON  bool
	jqExpr      string
	verbose     bool

	// Global configuration
	globalConfig *cli.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ollamagen",
	Short: "Ollama generate API CLI tool",
	Long: `ollamagen - A command line interface for the Ollama generate API.

Talk to a local or remote Ollama server: one-shot generations, live
streaming output, and multi-turn conversations whose context survives
across invocations through saved sessions.

Configuration is stored in ~/.ollamagen/ and supports multiple contexts,
similar to kubectl's context management.

Examples:
  # Point a context at a remote server
  ollamagen config add-context lab --base-url http://gpu-box:11434 --model mistral

  # One-shot generation
  ollamagen -c lab generate "Why is the sky blue?"

  # Stream a long answer and keep the conversation in a session
  ollamagen -c lab stream --session sky "Tell me more"

  # Pipe machine-readable output
  ollamagen generate -f request.yaml --json --jq '.response'
`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.ollamagen/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&contextName, "context", "c", "", "context name to use")
	rootCmd.PersistentFlags().StringVarP(&outputFile, "output", "o", "", "output file (default: stdout)")
	rootCmd.PersistentFlags().BoolVar(&outputJSON, "json", false, "output as JSON (for piping)")
	rootCmd.PersistentFlags().StringVar(&jqExpr, "jq", "", "jq filter applied to the output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	// Add subcommands
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(streamCmd)
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(modelsCmd)
	rootCmd.AddCommand(sessionCmd)
}

func initConfig() {
	var err error
	globalConfig, err = cli.LoadConfig(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing config: %v\n", err)
		os.Exit(1)
	}
}

// getConfig returns the global configuration
func getConfig() *cli.Config {
	return globalConfig
}

// getContext returns the context configuration to use
func getContext() (*cli.Context, error) {
	cfg := getConfig()
	if cfg == nil {
		return nil, fmt.Errorf("configuration not initialized")
	}
	return cfg.ResolveContext(contextName)
}
