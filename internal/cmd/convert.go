package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newConvertCmd(v *viper.Viper) *cobra.Command {
	convertCmd := &cobra.Command{
		Use:          "convert x",
		Short:        "convert x from --unit to --to, rounding half up",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newConfig(v)
			if err != nil {
				return err
			}
			from, err := c.Scale()
			if err != nil {
				return err
			}

			target, err := cmd.Flags().GetString("to")
			if err != nil {
				return err
			}
			to, err := ParseUnit(target)
			if err != nil {
				return errors.Wrap(err, "invalid --to")
			}

			x, err := c.parseOperand(from, args[0])
			if err != nil {
				return err
			}

			log.WithFields(log.Fields{
				"op":   cmd.Name(),
				"from": from.Prec(),
				"to":   to.Prec(),
			}).Debugf("converting %s", args[0])

			_, err = fmt.Fprintln(cmd.OutOrStdout(), c.format(to, from.Rescale(x, to)))
			return err
		},
	}
	convertCmd.Flags().String("to", "wad", "target unit")
	return convertCmd
}
