package main

import "github.com/TimJentzsch/buttercup/bot"

func main() {
	bot.Start()
}
