package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/jacobaustin123/othello/internal/othello"
)

func main() {
	moves := flag.String("moves", "", "space-separated moves in field notation, e.g. \"d3 c3 b3\"")
	flag.Parse()

	state := othello.NewState()
	for _, field := range strings.Fields(*moves) {
		move, err := othello.ParseField(field)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		if err = state.ApplyAction(move); err != nil {
			fmt.Printf("move %s: %s\n", field, err)
			os.Exit(1)
		}
	}

	fmt.Println(state)
	fmt.Printf("black %d, white %d, outcome %s\n",
		state.DiscCount(0), state.DiscCount(1), state.Outcome())
}
