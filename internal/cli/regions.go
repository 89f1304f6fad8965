package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// NewRegionsCommand creates the regions subcommand
func NewRegionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "regions",
		Short: "List supported regions",
		Args:  cobra.NoArgs,
		RunE:  executeRegionsCommand,
	}

	cmd.Flags().Bool("json", false, "Print full region data as JSON")

	return cmd
}

func executeRegionsCommand(cobraCmd *cobra.Command, _ []string) error {
	_, m, err := setup(cobraCmd)
	if err != nil {
		return err
	}

	regions := m.Regions()
	out := cobraCmd.OutOrStdout()

	if asJSON, _ := cobraCmd.Flags().GetBool("json"); asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(regions)
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "REGION\tFIRST NAMES\tSURNAMES\tCITIES\tPHONE FORMATS")
	for _, r := range regions {
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\n",
			r.Key, len(r.FirstNames), len(r.Surnames), len(r.Cities), len(r.PhoneFormats))
	}
	return w.Flush()
}
