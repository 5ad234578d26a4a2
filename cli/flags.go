package cli

const (
	FlagHome        = "home"
	FlagPacked      = "packed"
	FlagLenientBool = "lenient-bool"
	FlagFormat      = "format"
	FlagLogLevel    = "log-level"
	FlagLogJSON     = "log-json"

	DefaultHome = "~/.abi-cli"
)
