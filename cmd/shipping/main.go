package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/Hardik-Dharmik/shipping-b/internal/interfaces/cli/createadmin"
	"github.com/Hardik-Dharmik/shipping-b/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "shipping",
		Short: "Shipping portal backend",
		Long:  `Backend for the shipping portal: customer registration, admin approval, support tickets and shipping quotes.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		createadmin.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
