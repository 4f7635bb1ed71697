// Copyright © 2024 Ettore Di Giacinto <mudler@mocaccino.org>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program. If not, see <http://www.gnu.org/licenses/>.

package cmd

import (
	"os"
	"strings"

	"github.com/mudler/hibernate/pkg/console"
	"github.com/mudler/hibernate/pkg/hibernate"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/twpayne/go-vfs/v4"
)

func fail(s string) {
	log.Error(s)
	os.Exit(1)
}
func checkErr(err error) {
	if err != nil {
		fail("fatal error: " + err.Error())
	}
}

func init() {
	switch strings.ToLower(os.Getenv("LOGLEVEL")) {
	case "error":
		log.SetLevel(log.ErrorLevel)
	case "warning":
		log.SetLevel(log.WarnLevel)
	case "debug":
		log.SetLevel(log.DebugLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "hibernate",
	Short: "Configure hibernation to a swapfile",
	Long: `hibernate wires up resume-from-swapfile support: it can create and
activate a swapfile, registers it in /etc/fstab, computes the resume
offset, patches the kernel command line and the initramfs hook list, and
regenerates both artifacts.

For example:

	$> hibernate --create-swapfile --swap-size 16
	$> hibernate -p
	$> hibernate --non-interactive
`,
	Run: func(cmd *cobra.Command, args []string) {
		if os.Geteuid() != 0 {
			fail("hibernate must be run as root")
		}

		cfg := hibernate.DefaultConfig()
		cfg.CreateSwapfile, _ = cmd.Flags().GetBool("create-swapfile")
		cfg.SwapSizeGB, _ = cmd.Flags().GetInt("swap-size")
		cfg.Preview, _ = cmd.Flags().GetBool("preview")
		cfg.NonInteractive, _ = cmd.Flags().GetBool("non-interactive")
		checkErr(cfg.Validate())

		l := log.StandardLogger()
		var c hibernate.Console
		if cfg.Preview {
			c = console.NewPreviewConsole(console.PreviewWithLogger(l))
		} else {
			c = console.NewStandardConsole(console.WithLogger(l))
		}
		confirm := hibernate.NewConfirmer(l, cfg, os.Stdin, os.Stdout)

		checkErr(hibernate.Setup(l, cfg, vfs.OSFS, c, confirm))
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	checkErr(err)
}

func init() {
	rootCmd.Flags().Bool("create-swapfile", false, "Create and configure a swapfile")
	rootCmd.Flags().Int("swap-size", hibernate.DefaultSwapSizeGB, "Swapfile size in GB")
	rootCmd.Flags().BoolP("preview", "p", false, "Show what would be done without making changes")
	rootCmd.Flags().Bool("non-interactive", false, "Apply all changes without prompting")
}
