package cli

// Globals defines global flags available to all commands.
type Globals struct {
	Telemetry bool   `help:"Show timing telemetry for operations." env:"EXPRLEX_TELEMETRY"`
	Color     string `help:"When to use colors (${enum})." enum:"auto,always,never" default:"auto" env:"EXPRLEX_COLOR"`
}

type Commands struct {
	Globals

	Lex   LexCmd   `cmd:"" help:"Show the tokens of an expression."`
	Check CheckCmd `cmd:"" help:"Report bytes the lexer could not classify."`
	Watch WatchCmd `cmd:"" help:"Re-check an expression file whenever it changes."`
	Kinds KindsCmd `cmd:"" help:"Show the token kind classification table."`
}
