/*
Copyright © 2024 pando
*/
package main

import "github.com/pandodao/watch-wallet/cmd/watchwallet-cli/cmd"

func main() {
	cmd.Execute()
}
