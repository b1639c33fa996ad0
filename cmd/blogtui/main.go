package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"miniblog/cmd/blogtui/ui"
)

func main() {
	server := flag.String("server", "http://127.0.0.1:8080", "Blog API base URL")
	flag.Parse()

	p := tea.NewProgram(ui.NewRootModel(*server), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
