package main

import (
	"context"

	"dayline/internal/cli"
)

func main() {
	ctx := context.Background()
	cli.Main(ctx)
}
