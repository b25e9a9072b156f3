// portalctl herramienta de operación del portal: migraciones, alta del primer admin
// y envío del censo del equipo local.
//
// Uso:
//
//	portalctl migrate
//	portalctl seed-admin --email admin@rdp.mx --password Adm1n
//	portalctl censo --api http://localhost:3000 --token <jwt> [--dry-run]
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:           "portalctl",
		Short:         "Operación del Portal RDP",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(seedAdminCmd())
	rootCmd.AddCommand(censoCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
