package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "healthcalc",
		Short: "BMI, TDEE and Indian diet plan calculator",
	}

	var configPath string
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to config YAML (defaults built in)")

	rootCmd.AddCommand(calcCmd(&configPath))
	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(plansCmd())
	rootCmd.AddCommand(exportCmd(&configPath))
	rootCmd.AddCommand(serveCmd(&configPath))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func calcCmd(configPath *string) *cobra.Command {
	var (
		asJSON bool
		flags  profileFlags
	)

	cmd := &cobra.Command{
		Use:   "calc [project-path]",
		Short: "Compute BMI, TDEE, target calories and diet plan",
		Long: "Reads profile.yaml from project-path, or builds the profile from flags " +
			"when no path is given.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			p, err := flags.resolve(args)
			if err != nil {
				return err
			}
			return runCalc(p, *configPath, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	flags.register(cmd)
	return cmd
}

func validateCmd() *cobra.Command {
	var flags profileFlags

	cmd := &cobra.Command{
		Use:   "validate [project-path]",
		Short: "Validate a profile without running the calculator",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			p, err := flags.resolve(args)
			if err != nil {
				return err
			}
			return runValidate(p)
		},
	}

	flags.register(cmd)
	return cmd
}

func plansCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plans [category]",
		Short: "Show the diet plan for one BMI category, or all of them",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			category := ""
			if len(args) == 1 {
				category = args[0]
			}
			return runPlans(category)
		},
	}
}

func exportCmd(configPath *string) *cobra.Command {
	var (
		out   string
		flags profileFlags
	)

	cmd := &cobra.Command{
		Use:   "export [project-path]",
		Short: "Write the calculation and diet plan to an xlsx workbook",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			p, err := flags.resolve(args)
			if err != nil {
				return err
			}
			return runExport(p, *configPath, out)
		},
	}

	cmd.Flags().StringVarP(&out, "output", "o", "healthcalc.xlsx", "output xlsx path")
	flags.register(cmd)
	return cmd
}

func serveCmd(configPath *string) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runServe(*configPath, port)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "HTTP server port (overrides config)")
	return cmd
}
