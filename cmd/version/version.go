package version

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/metal-toolbox/user-echo/cmd"
	"github.com/metal-toolbox/user-echo/internal/version"
)

var extended bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "get the current version",
	RunE: func(c *cobra.Command, args []string) error {
		if !extended {
			fmt.Fprintln(c.OutOrStdout(), version.Current().String())
			return nil
		}

		out, err := json.MarshalIndent(version.Current(), "", "  ")
		if err != nil {
			return err
		}

		fmt.Fprintln(c.OutOrStdout(), string(out))
		return nil
	},
}

func init() {
	cmd.RootCmd.AddCommand(versionCmd)
	versionCmd.Flags().BoolVarP(&extended, "extended", "e", false, "extended build version info")
}
