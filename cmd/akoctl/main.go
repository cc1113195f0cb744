// Command akoctl is the CLI front-end for the ako configuration format:
// the external collaborator spec.md §6 describes but excludes from the
// core library.
package main

func main() {
	execute()
}
