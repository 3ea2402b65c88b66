package cmd

const DESCRIPTION = `
cookieparse reads the value of an HTTP Cookie request header and
prints the name/value pairs it holds, in the order they were sent.
Malformed entries are skipped instead of failing the whole header,
and values are URL-decoded unless another decoder is chosen.
`

const (
	ParseDescription = `The parse command prints every cookie found in a Cookie
header, one "name<TAB>value" line per cookie, or a JSON
array with --json. Values holding tabs, newlines or other
control characters are printed quoted; --json is exact. The header is taken from the argument,
from --file, from --cookie pairs or from standard input.

Example:
        cookieparse parse "a=1; b=hello+world"
        cookieparse parse --decode raw --json "a=1; b=%20"
        cookieparse parse --cookie a=1 --cookie b=2
        echo "Cookie: a=1" | cookieparse parse

`
	GetDescription = `The get command prints the value of the first cookie with
the given name. With --all every value sent under that
name is printed, one per line. A missing cookie is an error.

Example:
        cookieparse get session "session=abc; theme=dark"

`
	ImportDescription = `The import command reads a Firefox or Chrome cookie
database, or a Netscape cookies.txt file, keeps the cookies
that apply to --domain and prints them like parse does.
Without --from the default profile of the first installed
browser is used, trying Firefox, LibreWolf, Chrome, Chromium,
Edge and Brave in that order. Values are kept as stored
unless --decode is given.

Example:
        cookieparse import --domain example.com
        cookieparse import --from cookies.sqlite --domain example.com

`
)
