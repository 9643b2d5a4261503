// Package sdk has one prerelease client.
package sdk

// Client talks to the v2 backend.
//
//prerelease:Alpha "until v2"
type Client struct{}

// NewClient creates a client.
//
//prerelease:Alpha
func NewClient() *Client { return &Client{} }
