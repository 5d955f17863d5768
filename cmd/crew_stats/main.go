package main

import (
	"os"

	"github.com/datacore/crew_stats/internal/app"
)

func main() {
	os.Exit(app.Run(os.Args[1:]))
}
