// Command polctl decodes registry policy (.pol) files.
package main

func main() {
	execute()
}
