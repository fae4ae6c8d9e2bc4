package main

import "github.com/RiccardoGrin/board-brawl-sub001/cmd/app"

func main() {
	app.Run()
}
