// Command vmsim simulates the translation of a trace of virtual addresses
// through a TLB and a page table.
package main

import "github.com/Victorgalves/VirtualMemory/vmsim/cmd"

func main() {
	cmd.Execute()
}
