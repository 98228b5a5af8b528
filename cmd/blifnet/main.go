package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/pborges/blifnet"
	"github.com/pborges/blifnet/internal/blif"
	"github.com/pborges/blifnet/internal/netlist"
)

var log = logrus.New()

func main() {
	root := &cobra.Command{
		Use:           "blifnet",
		Short:         "BLIF netlist front end for the iCE40 place-and-route flow",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")
	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			log.SetLevel(logrus.DebugLevel)
		}
	}
	root.AddCommand(checkCmd(), versionCmd())

	if err := root.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func checkCmd() *cobra.Command {
	var outPath string
	cmd := &cobra.Command{
		Use:   "check <file.blif>",
		Short: "parse and validate a BLIF netlist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log.WithField("file", args[0]).Debug("reading netlist")
			d, err := blif.ReadFile(args[0])
			if err != nil {
				return err
			}
			printSummary(cmd, d.Top())
			if outPath == "" {
				return nil
			}
			log.WithField("file", outPath).Debug("writing netlist")
			f, err := os.Create(outPath)
			if err != nil {
				return err
			}
			if err := blif.Write(f, d); err != nil {
				f.Close()
				return err
			}
			return f.Close()
		},
	}
	cmd.Flags().StringVarP(&outPath, "write", "w", "", "write the parsed netlist back out as BLIF")
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "print the blifnet version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), blifnet.Version())
		},
	}
}

func printSummary(cmd *cobra.Command, top *netlist.Model) {
	cells := make(map[string]int)
	for _, inst := range top.Instances() {
		cells[inst.InstanceOf().Name()]++
	}
	for name, count := range cells {
		log.WithFields(logrus.Fields{"cell": name, "count": count}).Debug("instances")
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %d ports, %d nets, %d instances\n",
		top.Name(), len(top.Ports()), len(top.Nets()), len(top.Instances()))
}
