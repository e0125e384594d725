package commands

import (
	"time"

	"github.com/lowkeylabs/ollamagen/pkg/cli"
	"github.com/lowkeylabs/ollamagen/pkg/ollama"
)

// createClient creates an API client from the resolved context configuration.
func createClient(ctx *cli.Context) *ollama.Client {
	var opts []ollama.Option

	if ctx.BaseURL != "" {
		opts = append(opts, ollama.WithBaseURL(ctx.BaseURL))
	}
	if ctx.Model != "" {
		opts = append(opts, ollama.WithModel(ctx.Model))
	}
	if ctx.System != "" {
		opts = append(opts, ollama.WithSystem(ctx.System))
	}
	if ctx.Timeout > 0 {
		opts = append(opts, ollama.WithTimeout(time.Duration(ctx.Timeout)*time.Second))
	}

	return ollama.NewClient(opts...)
}

// outputResult renders a result honoring the global output flags.
func outputResult(result any) error {
	format := cli.FormatYAML
	if outputJSON {
		format = cli.FormatJSON
	}
	return cli.Output(result, cli.OutputOptions{
		Format: format,
		File:   outputFile,
		JQ:     jqExpr,
	})
}

// printVerbose prints when -v is set.
func printVerbose(format string, args ...any) {
	cli.PrintVerbose(verbose, format, args...)
}

// printStats prints generation metrics from a completed response.
func printStats(resp *ollama.GenerateResponse) {
	cli.PrintInfo("total %s, load %s, prompt %d tok in %s, output %d tok in %s (%s)",
		cli.FormatDuration(resp.TotalDuration),
		cli.FormatDuration(resp.LoadDuration),
		resp.PromptEvalCount,
		cli.FormatDuration(resp.PromptEvalDuration),
		resp.EvalCount,
		cli.FormatDuration(resp.EvalDuration),
		cli.FormatTokensPerSecond(resp.EvalCount, resp.EvalDuration),
	)
}
