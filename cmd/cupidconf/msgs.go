package cupidconf

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort   = "Query key = value configuration files"
	MsgGetShort    = "Print the first value whose key matches a pattern"
	MsgListShort   = "Print every value whose key matches a pattern"
	MsgCheckShort  = "Test a string against the patterns stored under a key"
	MsgKeysShort   = "List the distinct keys in the config file"
	MsgDumpShort   = "Print the whole config store"
	MsgFormatShort = "Show the configuration file format reference"

	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate man page"
)

// Long messages
const (
	MsgRootLong = `cupidconf reads simple "key = value" configuration files and answers
wildcard lookups against them. Keys may repeat; lookups honor file order.

Key lookups (get, list) treat the argument as a glob pattern matched
against stored keys. The check command flips that around: the key is
compared literally, and the values stored under it are treated as glob
patterns tested against your candidate string.`

	MsgGetLong = `Get scans the config file in order and prints the value of the first
entry whose key matches the given glob pattern. A pattern with no
wildcard characters matches only the exact key.`

	MsgListLong = `List prints the values of every entry whose key matches the given glob
pattern, one per line, in file order.`

	MsgCheckLong = `Check compares the key literally (no glob expansion on the key side)
and tests the candidate string against each value stored under it,
treating those values as glob patterns. Prints "true" or "false"; the
exit status mirrors the result.`

	MsgDumpLong = `Dump prints every entry of the config store. The default text output
keeps file order; json, toml, yaml, and xml are available for tooling.`
)

// Examples
const (
	MsgGetExample = `  cupidconf get editor
  cupidconf get "path*"
  cupidconf -f ./app.conf get config_dir`

	MsgCheckExample = `  cupidconf check ignore readme.txt
  cupidconf check ignore build_output && echo skipped`

	MsgDumpExample = `  cupidconf dump
  cupidconf dump --format yaml
  cupidconf -f ./app.conf dump --format json`
)
