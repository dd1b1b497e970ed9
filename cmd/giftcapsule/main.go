// Command giftcapsule runs the GiftCapsule API and its maintenance tasks.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"fmt"
	"os"

	"github.com/gulzeynep/GiftCapsule-web/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
