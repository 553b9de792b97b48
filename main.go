package main

import "restaurant_manager/cmd"

func main() {
	cmd.Execute()
}
