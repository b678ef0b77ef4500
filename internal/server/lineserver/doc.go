// Package lineserver serves the single-shot line protocol.
//
// A client connects, writes one newline-terminated command and reads one
// newline-terminated response, after which the server closes the
// connection. Two commands exist:
//
//	PUT<key><message>  ->  OK | NO | NO<existing message>
//	GET<key>           ->  <message> | (empty line)
//
// Keys are exactly domain.KeySize characters; messages hold at most
// domain.MaxMessageSize characters. Any other line is answered with NO.
//
// Every accepted connection is served on its own goroutine against a
// shared memory.Store. A read or write failure on a connection is either
// fatal to the whole server (Config.FailFast) or confined to that
// connection. Fatal conditions surface as *FatalError values that carry
// the process exit code.
package lineserver
