package main

import "hpa-news-api/internal/cli"

func main() {
	cli.Execute()
}
