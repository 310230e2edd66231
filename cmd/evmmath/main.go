package main

import (
	"github.com/govalues/evmmath/internal/cmd"
)

func main() {
	cmd.Execute()
}
