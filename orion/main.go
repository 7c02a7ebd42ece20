// Orion estimates the power and area of on-chip networks.
package main

import "github.com/sarchlab/orion/orion/cmd"

func main() {
	cmd.Execute()
}
