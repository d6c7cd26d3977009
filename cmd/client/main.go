package main

import (
	"os"

	"rag-assistant/client/internal/app"
)

func main() {
	os.Exit(app.Run())
}
