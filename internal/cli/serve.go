package cli

import (
	api "todo-desktop/cmd/api"

	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Open the task window on a local address",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.close()

	handler, err := api.NewHandler(a.tasks, a.cfg)
	if err != nil {
		return err
	}
	return handler.Start(a.cfg.Addr())
}
