package main

import (
	"github.com/rocketsoftware/jvmfind/bootstrap"
)

var (
	productName    = "jvmfind"
	productTitle   = "jvmfind"
	productVersion = "Dummy version number"
)

func main() {
	bootstrap.Run(productName, productTitle, productVersion)
}
