package main

import "github.com/heyyadarsh/biteai-cli/cmd/biteai"

func main() {
	biteai.Execute()
}
