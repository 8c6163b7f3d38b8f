package cmd

import (
	"context"
	"errors"
	"io"

	"github.com/alecthomas/kong"

	"github.com/renato0307/maestro/internal/version"
)

var (
	errRemoteForm  = errors.New("forms need an interactive session; connect without a command")
	errRemoteServe = errors.New("the daemon is already running")
)

// RunRemote parses and runs a command line against this container.
// It serves commands sent to the daemon over SSH.
func (c *Container) RunRemote(ctx context.Context, args []string, out io.Writer) error {
	cli := CLI{
		Container: c,
		ctx:       ctx,
		out:       out,
		remote:    true,
	}

	exited := false
	parser, err := kong.New(&cli,
		kong.Name("maestro"),
		kong.Description(version.Tagline),
		kong.Vars{"version": version.Info()},
		kong.Writers(out, out),
		kong.Exit(func(int) { exited = true }),
		kong.Bind(&cli),
	)
	if err != nil {
		return err
	}

	kctx, err := parser.Parse(args)
	if exited {
		// --help and --version already wrote their output
		return nil
	}
	if err != nil {
		return err
	}
	return kctx.Run()
}
