package main

import "github.com/SalmaDammak/experiment-logger/internal/cmd"

func main() {
    cmd.Execute()
}
