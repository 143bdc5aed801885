/*
Package cli provides command-line utilities for the faraday command.

It includes output formatters for the text and JSON formats shared by the
subcommands, and a signal-aware context for interruptible runs:

	ctx := cli.SetupSignalHandler()
	formatter := cli.NewFormatter(cli.FormatJSON)
	if err := formatter.FormatTo(os.Stdout, result); err != nil {
		return err
	}
*/
package cli
