// Package domain defines the core domain values for msgserver.
//
// The domain is small: a fixed-width key, a bounded message, and the
// structured errors that describe why a request was rejected. Values here
// carry no IO dependencies so both the store and the protocol layer can
// share them.
package domain
