package main

import (
	"github.com/xgx-io/xgx-errwhile/cmd/errwhile/commands"
)

func main() {
	commands.Execute()
}
