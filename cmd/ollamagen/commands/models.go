package commands

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/lowkeylabs/ollamagen/pkg/cli"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "Model inventory",
}

var modelsListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List models installed on the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfgCtx, err := getContext()
		if err != nil {
			return err
		}
		client := createClient(cfgCtx)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		models, err := client.Models.List(ctx)
		if err != nil {
			return fmt.Errorf("list models failed: %w", err)
		}

		if outputJSON || jqExpr != "" || outputFile != "" {
			return outputResult(models)
		}

		if len(models) == 0 {
			fmt.Println("No models installed")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tSIZE\tFAMILY\tQUANT\tMODIFIED")
		for _, m := range models {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				m.Name,
				cli.FormatBytes(m.Size),
				m.Details.Family,
				m.Details.QuantizationLevel,
				m.ModifiedAt.Format("2006-01-02"),
			)
		}
		w.Flush()
		return nil
	},
}

func init() {
	modelsCmd.AddCommand(modelsListCmd)
}
