package main

import (
	turboenc "github.com/Blessedsan123/turboenc/src"
)

func main() {
	turboenc.GenSymbolsMain()
}
