package main

import (
	"example.com/basic/sdk"
)

func main() {
	c := sdk.NewClient()
	_ = c
}
