package cli

import (
	"github.com/spf13/cobra"

	"lsbkit/internal/server"
)

func ServeAppCommand() *cobra.Command {
	var opts server.Options

	command := &cobra.Command{
		Use:     "serve",
		Short:   "Serve an API to perform steganography and ciphers over the web",
		Example: "lsbkit serve --port 8888 --allow-origin http://localhost:3000",
		RunE: func(cmd *cobra.Command, args []string) error {
			return server.StartServer(cmd.Context(), opts)
		},
	}

	command.Flags().StringVar(&opts.Port, "port", "8080", "Port on which to start the server")
	command.Flags().StringSliceVar(&opts.AllowOrigins, "allow-origin", nil, "Origins allowed to call the API from a browser. All origins are allowed when empty")

	return command
}
