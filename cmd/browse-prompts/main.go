// Command browse-prompts lists the prompt library and prints a prompt by number.
package main

import "github.com/berth-dev/promptkit/internal/cli"

func main() {
	cli.ExecuteBrowse()
}
