// Svtool applies operation scripts to fixed-capacity containers. It is
// mainly useful for reproducing and inspecting container workloads.
package main

func main() {
	Execute()
}
