// Command create-prompt adds a new prompt to the prompt library.
package main

import "github.com/berth-dev/promptkit/internal/cli"

func main() {
	cli.ExecuteCreate()
}
