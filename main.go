package main

import (
	"github.com/metal-toolbox/user-echo/cmd"
	_ "github.com/metal-toolbox/user-echo/cmd/server"
	_ "github.com/metal-toolbox/user-echo/cmd/version"
)

func main() {
	cmd.Execute()
}
