// Package cookiestore reads cookies for one domain out of a browser cookie
// store and renders them as a Cookie request header, which the CLI then
// runs through the regular header parser.
//
// Supported stores are Firefox (moz_cookies SQLite), Chrome (cookies
// SQLite, plain values and Linux "v10" encrypted values) and the Netscape
// text format used by curl and wget. SQLite stores are copied to a
// temporary directory before they are opened so a running browser does not
// hold a lock on them.
//
// DetectBrowser finds the store of the default profile of the first
// installed browser when no path is given.
//
// Cookie values are never logged; only names, hosts and paths are.
package cookiestore
