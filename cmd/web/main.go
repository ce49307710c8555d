package main

import "artisanhub/internal/app"

func main() {
	app.Run()
}
