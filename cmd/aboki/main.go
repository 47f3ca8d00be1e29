package main

import (
	"aboki/cmd/aboki/commands"
	"aboki/lib/serviceutil"
	"os"
)

func main() {
	ctx, cancel := serviceutil.SignalContext()
	code := commands.ExecuteContext(ctx)
	cancel()
	os.Exit(code)
}
