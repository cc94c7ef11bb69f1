package main

import "github.com/nekruzvatanshoev/carstats/pkg/cmd"

func main() {
	cmd.Execute()
}
