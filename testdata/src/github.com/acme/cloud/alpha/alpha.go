// Package alpha is a stub SDK with a few prerelease APIs.
package alpha

// Client talks to the v2 backend.
//
//prerelease:Alpha "until v2"
type Client struct {
	Addr string
}

// Options is stable.
type Options struct {
	Retries int
}

// Tune is still being designed.
//
//prerelease:Alpha
func (o *Options) Tune() int { return o.Retries }

// Box is a generic prerelease container.
//
//prerelease:Experimental
type Box[T any] struct {
	V T
}

// DefaultRetries may change without notice.
//
//prerelease:Preview
var DefaultRetries = 3

// Version of the wire protocol.
//
//prerelease:Prerelease
const Version = "2.0.0-alpha.1"

// Connect opens a connection with stable options.
//
//prerelease:Experimental
func Connect() *Options { return &Options{} }

// NewClient creates a client.
//
//prerelease:Alpha
func NewClient() *Client { return &Client{} }

// Stable is not marked.
func Stable() *Options { return &Options{} }
