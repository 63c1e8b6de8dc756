package main

import "github.com/nguyentranbao-ct/product-catalog/cmd"

func main() {
	cmd.Execute()
}
